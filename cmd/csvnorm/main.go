package main

// csvnorm reads a table of floating-point numbers in a delimited text
// format and writes it back to standard output in normalized form:
// the first configured separators, quoted header names, and shortest
// exact float rendering.

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kshedden/numcsv"
)

func main() {

	valueSeps := flag.String("valuesep", "", "Accepted value separator characters (default \",;\\t\")")
	lineSeps := flag.String("linesep", "", "Accepted line separator characters (default \"\\n\")")
	quotes := flag.String("quotes", "", "Accepted quote characters (default \"\\\"'\")")
	header := flag.String("header", "auto", "Header handling: 'auto', 'none', or 'firstrow'")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("usage: %s [flags] filename\n", os.Args[0])
		return
	}

	fname := flag.Arg(0)
	f, err := os.Open(fname)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("%v\n", err))
		os.Exit(1)
	}
	defer f.Close()

	rdr := numcsv.NewReader(f)
	rdr.Settings.SetValueSeparators(*valueSeps)
	rdr.Settings.SetLineSeparators(*lineSeps)
	rdr.Settings.SetQuotes(*quotes)

	switch *header {
	case "auto":
		rdr.Settings.SetHeaderType(numcsv.HeaderAuto)
	case "none":
		rdr.Settings.SetHeaderType(numcsv.HeaderNone)
	case "firstrow":
		rdr.Settings.SetHeaderType(numcsv.HeaderFirstRow)
	default:
		io.WriteString(os.Stderr, "header must be 'auto', 'none', or 'firstrow'\n")
		os.Exit(1)
	}

	tbl := numcsv.NewTable()
	if err := rdr.Read(tbl); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Exit(1)
	}

	w := numcsv.NewWriter(os.Stdout)
	if err := w.Write(tbl); err != nil {
		panic(err)
	}
}
