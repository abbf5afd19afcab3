package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/facette/natsort"
)

// CSV rows sort by their first column in natural order, so "Cu_10eV" precedes "Cu_300eV".
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

// WriteAsCSV writes the header followed by data sorted in natural order.
func WriteAsCSV(data CSV, path, filename string, columns []string) error {
	file, err := os.Create(path + GetFilename(filename) + ".csv")
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", filename, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	sort.Sort(data)
	if err := w.WriteAll(data); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}

// WriteColumns writes equally long float columns under the given header.
func WriteColumns(file *os.File, columnNames []string, columns ...[]float64) error {
	rows := [][]string{columnNames}
	if len(columns) > 0 {
		for i := range columns[0] {
			row := make([]string, len(columns))
			for j := range columns {
				row[j] = strconv.FormatFloat(columns[j][i], 'g', -1, 64)
			}
			rows = append(rows, row)
		}
	}
	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}
