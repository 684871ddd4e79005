// Package report renders the farm data into an XLSX workbook and reads crop
// sheets back for import.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"farmdash/entities"
	"farmdash/pkg/dashboard"
)

const (
	SheetSummary    = "Summary"
	SheetCrops      = "Crops"
	SheetActivities = "Activities"
	SheetResources  = "Resources"
)

var (
	cropHeader     = []any{"ID", "Name", "Variety", "Planting Date", "Harvest Date", "Status"}
	activityHeader = []any{"ID", "Description", "Date", "Crop"}
	resourceHeader = []any{"ID", "Name", "Quantity", "Type", "Crop"}
)

// Data is one snapshot of the three collections plus their summary.
type Data struct {
	Crops      []entities.Crop
	Activities []entities.ActivityView
	Resources  []entities.ResourceView
	Summary    dashboard.Summary
}

// Write renders d as an XLSX workbook.
func Write(w io.Writer, d Data) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	for _, s := range []string{SheetCrops, SheetActivities, SheetResources} {
		if _, err := x.NewSheet(s); err != nil {
			return fmt.Errorf("sheet %s: %w", s, err)
		}
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	names := map[string]string{}
	for _, c := range d.Crops {
		names[c.ID] = c.Name
	}
	cropName := func(ref entities.CropRef) string {
		if n := ref.Name(); n != "" {
			return n
		}
		if n, ok := names[ref.ID]; ok {
			return n
		}
		return ref.ID
	}

	summary := [][]any{{"Metric", "Value", "Trend"}}
	for _, c := range d.Summary.Cards {
		summary = append(summary, []any{c.Title, c.Value, c.Trend})
	}
	summary = append(summary, []any{}, []any{"Crop", "Progress %", "Status"})
	for _, p := range d.Summary.Progress {
		summary = append(summary, []any{p.Name, p.Percent, p.Status})
	}

	crops := [][]any{cropHeader}
	for _, c := range d.Crops {
		crops = append(crops, []any{c.ID, c.Name, c.Variety,
			entities.FormatDateForInput(c.PlantingDate), entities.FormatDateForInput(c.HarvestDate), c.Status})
	}
	acts := [][]any{activityHeader}
	for _, a := range d.Activities {
		acts = append(acts, []any{a.ID, a.Description, entities.FormatDateForInput(a.Date), cropName(a.Crop)})
	}
	res := [][]any{resourceHeader}
	for _, r := range d.Resources {
		res = append(res, []any{r.ID, r.Name, r.Quantity, r.Type, cropName(r.Crop)})
	}

	for sheet, rows := range map[string][][]any{
		SheetSummary:    summary,
		SheetCrops:      crops,
		SheetActivities: acts,
		SheetResources:  res,
	} {
		if err := writeRows(x, sheet, rows, bold); err != nil {
			return err
		}
	}
	x.SetActiveSheet(0)
	_, err = x.WriteTo(w)
	return err
}

func writeRows(x *excelize.File, sheet string, rows [][]any, header int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := x.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}
	end, _ := excelize.ColumnNumberToName(len(rows[0]))
	return x.SetColWidth(sheet, "A", end, 18)
}

// ReadCrops parses the Crops sheet back into write shapes. Rows with an
// unparseable date are reported by row number; blank rows are skipped.
func ReadCrops(r io.Reader) ([]entities.CropInput, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	rows, err := x.GetRows(SheetCrops)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("crops sheet is empty")
	}

	norm := func(s string) string { return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) }
	col := map[string]int{}
	for i, h := range rows[0] {
		col[norm(h)] = i
	}
	for _, need := range []string{"name", "variety", "plantingdate", "harvestdate"} {
		if _, ok := col[need]; !ok {
			return nil, fmt.Errorf("crops sheet missing column %q, found %v", need, rows[0])
		}
	}
	get := func(rec []string, key string) string {
		i, ok := col[key]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []entities.CropInput
	for n, rec := range rows[1:] {
		if strings.TrimSpace(strings.Join(rec, "")) == "" {
			continue
		}
		plant, err := entities.ParseDateFromInput(get(rec, "plantingdate"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		harvest, err := entities.ParseDateFromInput(get(rec, "harvestdate"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		out = append(out, entities.CropInput{
			Name:         get(rec, "name"),
			Variety:      get(rec, "variety"),
			PlantingDate: plant,
			HarvestDate:  harvest,
			Status:       get(rec, "status"),
		}.WithDefaults())
	}
	return out, nil
}
