// Package export renders a filtered admission set as CSV or XLSX. Exports
// operate on the filtered and sorted collection, never on a single page.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/medinest/simrs/internal/domain/patient"
)

// Columns is the fixed export header, in contract order.
var Columns = []string{
	"No. RM",
	"Nama Pasien",
	"NIK",
	"Gender",
	"Diagnosa",
	"Tanggal Masuk",
	"Dokter",
	"Ruangan",
	"Metode Bayar",
	"Status",
}

const dateLayout = "2006-01-02"

// WriteCSV writes the records as CSV. Free-text columns (name, diagnosis,
// doctor, room, payment method) are always double-quoted so embedded commas
// survive; the NIK is prefixed with an apostrophe so spreadsheets keep it as
// a digit string instead of truncating it to a float.
func WriteCSV(w io.Writer, recs []*patient.Record) error {
	var b strings.Builder
	b.WriteString(strings.Join(Columns, ","))
	b.WriteByte('\n')

	for _, r := range recs {
		fields := []string{
			r.ID,
			quote(r.Name),
			"'" + r.NIK,
			string(r.Gender),
			quote(r.Diagnosis),
			r.AdmissionDate.Format(dateLayout),
			quote(r.Doctor),
			quote(r.RoomName),
			quote(string(r.PaymentMethod)),
			string(r.Status),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteXLSX writes the records as a single-sheet XLSX workbook with the same
// column contract as WriteCSV.
func WriteXLSX(w io.Writer, recs []*patient.Record) error {
	f := excelize.NewFile()

	const sheet = "Pasien Rawat Inap"
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to locate header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			f.Close()
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for row, r := range recs {
		values := []any{
			r.ID,
			r.Name,
			r.NIK,
			string(r.Gender),
			r.Diagnosis,
			r.AdmissionDate.Format(dateLayout),
			r.Doctor,
			r.RoomName,
			string(r.PaymentMethod),
			string(r.Status),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				f.Close()
				return fmt.Errorf("failed to locate cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				f.Close()
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return f.Close()
}

// FileName builds a timestamped export file name, e.g.
// pasien-rawat-inap-20240601-1530.csv.
func FileName(ext string, now time.Time) string {
	return fmt.Sprintf("pasien-rawat-inap-%s.%s", now.Format("20060102-1504"), ext)
}
