package render

import (
	"bytes"
	"encoding/csv"
)

func RenderCSV(table Table) ([]byte, error) {
	return writeCSV(table.Records())
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
