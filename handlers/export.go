package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"lgs.et/fleet/config"
	"lgs.et/fleet/models"
)

var dispatchExportHeaders = []string{
	"Serial No", "Model", "Variant", "Customer", "Destination",
	"Transporter", "Truck No", "Status", "QC Inspector", "Dispatch Manager",
	"Dispatch Date", "Created At",
}

func dispatchExportRow(d models.DispatchRecord) []interface{} {
	return []interface{}{
		d.SerialNo, d.Model, d.Variant, d.CustomerName, d.DestinationCity,
		d.TransporterName, d.TruckNo, d.Status, d.QcInspectorName, d.DispatchManagerName,
		d.DispatchDate.Time().Format("2006-01-02"),
		d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

var telebirrExportHeaders = []string{
	"Date", "Agent", "Floated", "Total Sales", "Daily Income",
	"Returned", "Variance", "Status", "Supervisor",
}

func telebirrExportRow(t models.TelebirrTransaction) []interface{} {
	return []interface{}{
		t.Date.Time().Format("2006-01-02"), t.AgentName,
		t.FloatedAmount, t.TotalSales, t.DailyIncome,
		t.AmountReturned, t.Variance, t.Status, t.SupervisorName,
	}
}

// ExportDispatchExcel downloads the dispatch register as a spreadsheet.
func ExportDispatchExcel(w http.ResponseWriter, r *http.Request) {
	var records []models.DispatchRecord
	if err := config.DB.Order("created_at DESC").Find(&records).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	rows := make([][]interface{}, len(records))
	for i, d := range records {
		rows[i] = dispatchExportRow(d)
	}
	writeExcel(w, "Dispatch Register", dispatchExportHeaders, rows)
}

// ExportDispatchCSV downloads the dispatch register as CSV.
func ExportDispatchCSV(w http.ResponseWriter, r *http.Request) {
	var records []models.DispatchRecord
	if err := config.DB.Order("created_at DESC").Find(&records).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	rows := make([][]interface{}, len(records))
	for i, d := range records {
		rows[i] = dispatchExportRow(d)
	}
	writeCSV(w, "dispatch_register", dispatchExportHeaders, rows)
}

// ExportTelebirrExcel downloads the cash ledger as a spreadsheet.
func ExportTelebirrExcel(w http.ResponseWriter, r *http.Request) {
	var txs []models.TelebirrTransaction
	if err := config.DB.Order("date DESC").Find(&txs).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	rows := make([][]interface{}, len(txs))
	for i, t := range txs {
		rows[i] = telebirrExportRow(t)
	}
	writeExcel(w, "Telebirr Ledger", telebirrExportHeaders, rows)
}

// ExportTelebirrCSV downloads the cash ledger as CSV.
func ExportTelebirrCSV(w http.ResponseWriter, r *http.Request) {
	var txs []models.TelebirrTransaction
	if err := config.DB.Order("date DESC").Find(&txs).Error; err != nil {
		writeDomainError(w, err)
		return
	}

	rows := make([][]interface{}, len(txs))
	for i, t := range txs {
		rows[i] = telebirrExportRow(t)
	}
	writeCSV(w, "telebirr_ledger", telebirrExportHeaders, rows)
}

// writeExcel builds the workbook and streams it as a download.
func writeExcel(w http.ResponseWriter, title string, headers []string, rows [][]interface{}) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(sheet, "A1", title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetRowHeight(sheet, 1, 30)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(sheet, col, col, 20)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", title, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// writeCSV streams rows as a CSV download.
func writeCSV(w http.ResponseWriter, name string, headers []string, rows [][]interface{}) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	cw.Write(headers)
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}
		cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		http.Error(w, "failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
