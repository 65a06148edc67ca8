package internal

import (
	"bytes"
	"io"
)

type CSVService interface {
	CsvToEntities(r io.Reader,
		entityMapper func(record []string) (interface{}, error)) ([]interface{}, error)
	EntitiesToCsv(header []string, records [][]string) (*bytes.Buffer, error)
}
