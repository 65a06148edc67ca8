package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sync"
)

var (
	csvServiceInstance *csvService
	once               sync.Once
)

type csvService struct{}

func NewCSVService() *csvService {
	once.Do(func() {
		csvServiceInstance = &csvService{}
	})
	return csvServiceInstance
}

func (c *csvService) CsvToEntities(r io.Reader,
	entityMapper func(record []string) (interface{}, error)) ([]interface{}, error) {
	csvReader := csv.NewReader(r)

	// Skip header
	_, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var entityList []interface{}
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		entity, err := entityMapper(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entityList = append(entityList, entity)
	}

	return entityList, nil
}

func (c *csvService) EntitiesToCsv(header []string, records [][]string) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}

	return buf, nil
}
