package serviceImp

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"transledger/entities"
)

func testSheet() *entities.Sheet {
	return &entities.Sheet{
		ID:        "tbl_test",
		Name:      "2024-01-01-",
		StartDate: "2024-01-01",
		Rows: []entities.Row{
			{Idx: 0, LoadPlace: "装车地A", Vehicle: "蒙J87721", Model: "PAC",
				LoadNetWeight: "32.5", UnloadDate: "2024-01-02", UnloadPlace: "卸货地B",
				UnloadTons: "31.8", Freight: "100", SettleTons: "31.8"},
			{Idx: 1, LoadPlace: "装车地B", Vehicle: "蒙J87721", Model: "PAC",
				Freight: "19.99", SettleTons: "3.3"},
			{Idx: 2, LoadPlace: "含,逗号", Vehicle: "蒙J87721", Model: "PAC"},
		},
	}
}

func TestCSV_ShapeAndBOM(t *testing.T) {
	b, err := NewExportService().CSV(testSheet())
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if !bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing UTF-8 byte-order mark")
	}

	lines := strings.Split(strings.TrimRight(string(b[3:]), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (1 header + 3 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "装车日期,装车地,车辆,产品型号,装车净重,卸车日期,卸货地,") {
		t.Errorf("header = %q", lines[0])
	}
	// delimiter inside a cell must be quoted
	if !strings.Contains(lines[3], `"含,逗号"`) {
		t.Errorf("comma cell not quoted: %q", lines[3])
	}
}

func TestCSV_RoundTripAndFormatting(t *testing.T) {
	sh := testSheet()
	b, err := NewExportService().CSV(sh)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	for i, rec := range records {
		if len(rec) != 11 {
			t.Fatalf("record %d has %d fields, want 11", i, len(rec))
		}
	}

	row0 := records[1]
	want0 := []string{"2024-01-01", "装车地A", "蒙J87721", "PAC", "32.50",
		"2024-01-02", "卸货地B", "31.80", "100.00", "31.80", "3180.00"}
	for i, w := range want0 {
		if row0[i] != w {
			t.Errorf("row0[%d] = %q, want %q", i, row0[i], w)
		}
	}

	row1 := records[2]
	if row1[0] != "2024-01-02" {
		t.Errorf("row1 loadDate = %q, want derived 2024-01-02", row1[0])
	}
	if row1[10] != "65.97" {
		t.Errorf("row1 amount = %q, want 65.97", row1[10])
	}

	row2 := records[3]
	if row2[10] != "0.00" {
		t.Errorf("blank inputs amount = %q, want 0.00", row2[10])
	}
	if row2[4] != "" {
		t.Errorf("blank numeric cell = %q, want empty", row2[4])
	}
}

func TestCSV_PureRead(t *testing.T) {
	sh := testSheet()
	if _, err := NewExportService().CSV(sh); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if sh.Rows[0].Amount != "" || sh.Rows[0].LoadDate != "" {
		t.Errorf("export mutated the sheet: %+v", sh.Rows[0])
	}
	if sh.TotalAmount != nil {
		t.Error("export set a total")
	}
}

func TestXLSX_Smoke(t *testing.T) {
	b, err := NewExportService().XLSX(testSheet())
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open generated xlsx: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Sheet1", "A1"); v != "装车日期" {
		t.Errorf("A1 = %q, want 装车日期", v)
	}
	if v, _ := f.GetCellValue("Sheet1", "K1"); v != "金额" {
		t.Errorf("K1 = %q, want 金额", v)
	}
	if v, _ := f.GetCellValue("Sheet1", "K2"); v != "3180.00" {
		t.Errorf("K2 = %q, want 3180.00", v)
	}
	if v, _ := f.GetCellValue("Sheet1", "A4"); v != "2024-01-03" {
		t.Errorf("A4 = %q, want 2024-01-03", v)
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		want string
	}{
		{"2024-01-01-2024-01-05", "csv", "2024-01-01-2024-01-05.csv"},
		{"a/b", "csv", "a_b.csv"},
		{"", "xlsx", "tbl_test.xlsx"},
	}
	e := NewExportService()
	for _, tc := range cases {
		sh := testSheet()
		sh.Name = tc.name
		if got := e.FileName(sh, tc.ext); got != tc.want {
			t.Errorf("FileName(%q, %s) = %q, want %q", tc.name, tc.ext, got, tc.want)
		}
	}
}
