package main

// csvcolumnize takes a float CSV file and saves the data from each
// column into a separate file.  Numeric data can be stored either in
// text or binary (little-endian float64) format.  A text file
// containing the column names is also generated.

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kshedden/numcsv"
)

func doSplit(tbl *numcsv.Table, colDir string, mode string) {

	cf, err := os.Create(filepath.Join(colDir, "columns.txt"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("unable to create file in %s: %v\n", colDir, err))
		return
	}
	defer cf.Close()

	for j := 0; j < tbl.Len(); j++ {
		cf.WriteString(fmt.Sprintf("%d,%s\n", j+1, tbl.Column(j).Name))
	}

	for j := 0; j < tbl.Len(); j++ {

		fn := filepath.Join(colDir, fmt.Sprintf("%d", j))
		f, err := os.Create(fn)
		if err != nil {
			os.Stderr.WriteString(fmt.Sprintf("unable to create file for column %d: %v\n", j+1, err))
			return
		}

		if mode == "binary" {
			buf := new(bytes.Buffer)
			for _, x := range tbl.Column(j).Data {
				binary.Write(buf, binary.LittleEndian, x)
			}
			f.Write(buf.Bytes())
		} else {
			for _, x := range tbl.Column(j).Data {
				f.WriteString(fmt.Sprintf("%v\n", x))
			}
		}

		f.Close()
	}
}

func main() {

	infile := flag.String("in", "", "A float CSV file name")
	colDir := flag.String("out", "", "A directory for writing the columns")
	mode := flag.String("mode", "text", "Write numeric data as 'text' or 'binary'")
	flag.Parse()

	if *infile == "" || *colDir == "" {
		os.Stderr.WriteString(fmt.Sprintf("usage: %s -in=file -out=directory -mode=mode\n", os.Args[0]))
		return
	}

	if (*mode != "text") && (*mode != "binary") {
		os.Stderr.WriteString("mode must be either 'text' or 'binary'\n")
		return
	}

	f, err := os.Open(*infile)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("%v\n", err))
		return
	}
	defer f.Close()

	tbl, err := numcsv.Read(f)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		return
	}

	doSplit(tbl, *colDir, *mode)
}
