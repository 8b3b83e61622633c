// Package report builds the downloadable loan report spreadsheet.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"peminjaman-console/models"
)

const sheet = "Peminjaman"

var columnWidths = []float64{5, 8, 20, 25, 15, 8, 15, 15, 12, 30}

var header = []string{
	"No", "ID", "User", "Produk", "Lokasi", "Qty",
	"Tanggal Mulai", "Tanggal Selesai", "Status", "Catatan",
}

// Filename is the download name for an export generated now.
func Filename(now time.Time) string {
	return "Laporan_Peminjaman_" + now.Format("2006-01-02") + ".xlsx"
}

// BuildLaporanPeminjaman renders the filtered loan list into a styled sheet:
// a three-row report header (title, export date, record count), a blank
// spacer, the column header row, then one row per loan. Callers must not
// pass an empty list; the screens abort the export before reaching here.
func BuildLaporanPeminjaman(loans []models.Loan, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	// Info header, rows 1-3, each merged across the table width.
	info := []string{
		"LAPORAN DATA PEMINJAMAN",
		"Tanggal Export: " + now.Format("2/1/2006"),
		fmt.Sprintf("Total Data: %d peminjaman", len(loans)),
	}
	for i, v := range info {
		row := i + 1
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), v); err != nil {
			return nil, err
		}
		if err := f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row)); err != nil {
			return nil, err
		}
	}

	// Column header, row 5. Row 4 stays blank.
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, l := range loans {
		row := 6 + i
		values := []any{
			i + 1,
			l.ID,
			l.User.Name,
			l.Product.ProductName,
			l.Location.LocationName,
			l.Qty,
			formatDate(l.StartDate),
			formatDate(l.EndDate),
			statusLabel(l.Status),
			noteLabel(l.Note),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := applyStyles(f, len(loans)); err != nil {
		return nil, err
	}
	return f, nil
}

func formatDate(s string) string {
	if t, ok := models.ParseDate(s); ok {
		return t.Format("02/01/2006")
	}
	return s
}

func statusLabel(status string) string {
	if status == models.StatusDipinjam {
		return "Dipinjam"
	}
	return "Dikembalikan"
}

func noteLabel(note string) string {
	if note == "" {
		return "-"
	}
	return note
}

func applyStyles(f *excelize.File, rows int) error {
	thin := []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}

	infoStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thin,
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E86AB"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thin,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", "J3", infoStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A5", "J5", headerStyle); err != nil {
		return err
	}
	if rows > 0 {
		if err := f.SetCellStyle(sheet, "A6", fmt.Sprintf("J%d", 5+rows), dataStyle); err != nil {
			return err
		}
	}

	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	for row := 1; row <= 5; row++ {
		if err := f.SetRowHeight(sheet, row, 25); err != nil {
			return err
		}
	}
	return nil
}
