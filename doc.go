package numcsv

// Copyright 2026 Kerby Shedden

/*

Package numcsv reads and writes tables of floating-point numbers in a
CSV-like text format.  The format supports several value separators,
line separators, and quote characters at once, an optional header row
that can be detected automatically, and nothing else: there are no
escape characters, no escaped quotes, and every data cell must convert
to a float64 or the whole parse fails.

Parsed data is held in a Table, an ordered collection of named Column
values that the caller owns and may rearrange between calls.  A failed
parse returns a ReadError describing the first problem encountered,
with the row, column, and offending cell.

A parsed Table can be written back as delimited text with a Writer, or
exported to a parquet file of DOUBLE columns with WriteParquet.

*/
