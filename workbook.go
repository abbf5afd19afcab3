package main

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// Workbook collects the sweeps of every scenario, one sheet each.
type Workbook struct {
	file   *excelize.File
	sheets int
}

func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

func sheetName(scenario string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, scenario)
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

func (w *Workbook) Add(r *Result) error {
	sheet := sheetName(r.name)
	if w.sheets == 0 {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), sheet); err != nil {
			return fmt.Errorf("unable to rename sheet: %w", err)
		}
	} else if _, err := w.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("unable to add sheet %s: %w", sheet, err)
	}
	w.sheets++

	header := []any{"phi (V)", "J_e (A m^-2)", "J_s (A m^-2)", "J_hv (A m^-2)", "J_tot (A m^-2)", "", "E (eV)", "delta"}
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	c := r.currents
	rows := max(len(c.Potential), len(r.energies))
	for i := range rows {
		row := make([]any, 8)
		if i < len(c.Potential) {
			row[0] = c.Potential[i]
			row[1] = finiteOrEmpty(c.Capture[i])
			row[2] = finiteOrEmpty(c.Secondary[i])
			row[3] = finiteOrEmpty(c.Photo[i])
			row[4] = finiteOrEmpty(c.Total[i])
		}
		if i < len(r.energies) {
			row[6] = r.energies[i]
			row[7] = finiteOrEmpty(r.yields[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("unable to write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func (w *Workbook) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return err
	}
	return w.file.Close()
}
