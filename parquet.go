package numcsv

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes the table to path as a snappy-compressed
// parquet file of DOUBLE columns.  An unnamed column is written as
// column_<index>.  As with Writer.Write, rows are truncated to the
// shortest column.
//
// Column names become parquet schema tags, so they must not contain
// ',' or '='.
func WriteParquet(tbl *Table, path string) error {

	if tbl.Len() == 0 {
		return fmt.Errorf("cannot write an empty table to %s", path)
	}

	md := make([]string, tbl.Len())
	for j := 0; j < tbl.Len(); j++ {
		name := tbl.Column(j).Name
		if name == "" {
			name = fmt.Sprintf("column_%d", j)
		}
		md[j] = fmt.Sprintf("name=%s, type=DOUBLE", name)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fw.Close()

	pw, err := writer.NewCSVWriter(md, fw, 4)
	if err != nil {
		return err
	}
	pw.RowGroupSize = 128 * 1024 * 1024 //128M
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	nrows := tbl.NumRows()
	rec := make([]interface{}, tbl.Len())
	for i := 0; i < nrows; i++ {
		for j := 0; j < tbl.Len(); j++ {
			rec[j] = tbl.Column(j).Data[i]
		}
		if err := pw.Write(rec); err != nil {
			return err
		}
	}

	return pw.WriteStop()
}
