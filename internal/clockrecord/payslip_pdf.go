package clockrecord

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/payweek"
)

type payslip struct {
	CompanyName    string
	EmployeeName   string
	EmployeeNumber string
	Position       string
	PayRate        string
	Week           payweek.Week
	Records        []ClockRecord
}

// pdfLine is one text row; bold rows use the Helvetica-Bold font.
type pdfLine struct {
	text string
	bold bool
}

func (p payslip) lines() []pdfLine {
	out := []pdfLine{
		{text: p.CompanyName, bold: true},
		{text: "Weekly Payslip", bold: true},
		{},
		{text: fmt.Sprintf("Employee: %s (%s)", p.EmployeeName, p.EmployeeNumber)},
		{text: "Position: " + p.Position},
		{text: "Period: " + p.Week.Period()},
		{text: "Pay rate: " + p.PayRate + " / hour"},
		{},
		{text: "Timecards", bold: true},
	}

	for _, r := range p.Records {
		end := "in progress"
		hours := "-"
		if r.ClockOutTime != nil {
			end = r.ClockOutTime.UTC().Format("15:04")
		}
		if r.DurationSeconds != nil {
			hours = payweek.Hours(*r.DurationSeconds).StringFixed(payweek.OutputPlaces) + " h"
		}
		out = append(out, pdfLine{text: fmt.Sprintf("%s  %s - %s  %s",
			r.ClockInTime.UTC().Format("Mon Jan 2"),
			r.ClockInTime.UTC().Format("15:04"),
			end,
			hours,
		)})
	}

	out = append(out,
		pdfLine{},
		pdfLine{text: "Total hours: " + p.Week.HoursString(), bold: true},
		pdfLine{text: "Total pay: " + p.Week.PayString(), bold: true},
	)
	return out
}

func renderPayslip(p payslip) ([]byte, error) {
	return writeTextPDF(p.lines())
}

// writeTextPDF lays lines out top-down on a single A4 page.
func writeTextPDF(lines []pdfLine) ([]byte, error) {
	var content strings.Builder
	content.WriteString("BT\n14 TL\n50 800 Td\n")
	current := ""
	for i, line := range lines {
		font := "/F1"
		if line.bold {
			font = "/F2"
		}
		if font != current {
			fmt.Fprintf(&content, "%s 11 Tf\n", font)
			current = font
		}
		if i > 0 {
			content.WriteString("T*\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", escapePDFText(line.text))
	}
	content.WriteString("ET")
	stream := content.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)

	return buf.Bytes(), nil
}

func escapePDFText(v string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(v)
}
