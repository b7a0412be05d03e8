package report

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is a single-sheet tabular export.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// BuildWorkbook renders the sheet with a bold header row and frozen panes.
func BuildWorkbook(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
		return nil, err
	}

	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if len(sheet.Header) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(sheet.Header))
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", lastCol+"1", style); err != nil {
			return nil, err
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func changeRequestSheet(rows []ChangeRequestRow) Sheet {
	s := Sheet{
		Name:   "Change Requests",
		Header: []string{"Employee", "Email", "Requested At", "Clock In", "Clock Out", "Note", "Status"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []string{r.EmployeeName, r.Email, r.RequestedAt, r.ClockInTime, r.ClockOutTime, r.Note, r.Status})
	}
	return s
}

func attendanceSheet(rows []AttendanceRow) Sheet {
	s := Sheet{
		Name:   "Attendance",
		Header: []string{"Employee", "Clock In", "Clock Out", "Hours", "Status"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []string{r.EmployeeName, r.ClockInTime, r.ClockOutTime, r.DurationHours, r.Status})
	}
	return s
}

func timeOffSheet(rows []TimeOffRow) Sheet {
	s := Sheet{
		Name:   "Time Off",
		Header: []string{"Employee", "Policy", "Start Date", "End Date", "Reason", "Status"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []string{r.EmployeeName, r.Policy, r.StartDate, r.EndDate, r.Reason, r.Status})
	}
	return s
}
