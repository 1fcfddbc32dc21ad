package utils

import (
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/facette/natsort"
)

// CSV holds output rows keyed by their first column, ordered naturally so
// that "10" sorts after "9".
type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

// WriteAsCSV sorts data naturally by its first column and writes it as
// name.csv under outputDir, with a leading header row.
func WriteAsCSV(data CSV, columns []string, outputDir, name string) error {
	file, err := OpenFile(outputDir, name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	sort.Sort(data)
	if err := w.WriteAll(data); err != nil {
		return fmt.Errorf("writing %s rows: %w", name, err)
	}
	return nil
}
