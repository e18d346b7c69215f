package serviceImp

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"transledger/entities"
	"transledger/pkg/calc"
	"transledger/pkg/export/service"
)

// utf8BOM makes spreadsheet tools default to UTF-8 when opening the file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type exportSvc struct{}

func NewExportService() service.ExportService { return &exportSvc{} }

// projectRows derives the full 11-column view without touching the sheet:
// load dates from start date + position, amounts from freight × settled
// tons, numeric cells rendered with two decimals.
func projectRows(s *entities.Sheet) [][]string {
	start, ok := calc.ParseDate(s.StartDate)
	if !ok {
		start = time.Now().Truncate(24 * time.Hour)
	}
	out := make([][]string, 0, len(s.Rows))
	for i, r := range s.Rows {
		// r is a copy; the caller's sheet stays untouched
		r.LoadDate = calc.FormatDate(calc.LoadDate(start, i))
		r.Amount = calc.Format2(calc.Amount(r.Freight, r.SettleTons))
		r.LoadNetWeight = numericCell(r.LoadNetWeight)
		r.UnloadTons = numericCell(r.UnloadTons)
		r.Freight = numericCell(r.Freight)
		r.SettleTons = numericCell(r.SettleTons)
		out = append(out, r.Values())
	}
	return out
}

// numericCell formats a parseable numeric field with two decimals; blank or
// malformed input is passed through untouched for the boundary to flag.
func numericCell(v string) string {
	d, ok := calc.ParseDecimal(v)
	if !ok {
		return v
	}
	return calc.Format2(d)
}

func (e *exportSvc) CSV(s *entities.Sheet) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	header := make([]string, len(entities.Columns))
	for i, c := range entities.Columns {
		header[i] = c.Label
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, cells := range projectRows(s) {
		if err := w.Write(cells); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exportSvc) XLSX(s *entities.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sheet1"
	for i, c := range entities.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, c.Label); err != nil {
			return nil, err
		}
	}
	for ri, cells := range projectRows(s) {
		for ci, v := range cells {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exportSvc) FileName(s *entities.Sheet, ext string) string {
	name := s.Name
	if name == "" {
		name = s.ID
	}
	name = strings.ReplaceAll(name, "/", "_")
	if !strings.HasSuffix(strings.ToLower(name), "."+ext) {
		name += "." + ext
	}
	return name
}
