package main

// csvtoparquet converts a float CSV file to a parquet file of DOUBLE
// columns.  The CSV is read with default settings (automatic header
// detection, separators ",;\t").

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kshedden/numcsv"
)

func main() {

	infile := flag.String("in", "", "Path to the CSV file")
	outfile := flag.String("out", "", "Path where the parquet file is written")
	flag.Parse()

	if *infile == "" {
		io.WriteString(os.Stderr, "'in' is a required argument\n")
		os.Exit(1)
	}

	if *outfile == "" {
		io.WriteString(os.Stderr, "'out' is a required argument\n")
		os.Exit(1)
	}

	f, err := os.Open(*infile)
	if err != nil {
		msg := fmt.Sprintf("Cannot open file '%s'.\n", *infile)
		io.WriteString(os.Stderr, msg)
		os.Exit(1)
	}
	defer f.Close()

	tbl, err := numcsv.Read(f)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Exit(1)
	}

	if err := numcsv.WriteParquet(tbl, *outfile); err != nil {
		panic(err)
	}
}
