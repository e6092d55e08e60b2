package catalog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := fixture()
	if err := ExportXLSX(&buf, in); err != nil {
		t.Fatalf("export: %v", err)
	}
	out, err := ImportXLSX(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%+v\nout=%+v", in, out)
	}
}

func TestImportXLSXReportsRow(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	_ = f.SetSheetRow(sheet, "A1", &xlsxHeader)
	good := []interface{}{"A", "Shirt", "S-1", CategorySchool, "M", 100, 3, "Aundh"}
	bad := []interface{}{"B", "Vest", "S-2", CategoryIndustrial, "L", 100, "lots", "Aundh"}
	_ = f.SetSheetRow(sheet, "A2", &good)
	_ = f.SetSheetRow(sheet, "A3", &bad)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ImportXLSX(&buf)
	if err == nil || !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("expected row 3 error, got %v", err)
	}
}

func TestImportXLSXShortRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	header := xlsxHeader[:importColumns]
	_ = f.SetSheetRow(sheet, "A1", &header)
	// branch left empty and no status column: the row ends at stock
	short := []interface{}{"A", "Shirt", "S-1", CategorySchool, "M", 100, 3}
	_ = f.SetSheetRow(sheet, "A2", &short)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	items, err := ImportXLSX(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := Item{ID: "A", Name: "Shirt", SKU: "S-1", Category: CategorySchool, Size: "M", Price: 100, Stock: 3}
	if len(items) != 1 || items[0] != want {
		t.Fatalf("unexpected items %+v", items)
	}
}
