package scrape

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/advocates/roster/internal/roster"
)

// Column order of the published roll table.
const (
	colID = iota
	colName
	colFirm
	colAddress
	colEmail
	colPhone
	colPlot
	colEnrollment
	colRenewal
	colCertificate
	colStatus
	columnCount
)

// Result is the outcome of parsing one roll page.
type Result struct {
	Records []roster.Record
	// Skipped counts data rows with fewer than the expected cells.
	Skipped int
}

// Parse reads the roll HTML and extracts one record per data row. Header
// rows (those containing th cells) are ignored.
func Parse(r io.Reader) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("parse html: %w", err)
	}

	res := Result{Records: []roster.Record{}}
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < columnCount {
			res.Skipped++
			return
		}
		cell := func(i int) string {
			return strings.TrimSpace(cells.Eq(i).Text())
		}
		res.Records = append(res.Records, roster.Record{
			ID:             cell(colID),
			Name:           normalizeSpace(cell(colName)),
			FirmName:       normalizeSpace(cell(colFirm)),
			Address:        normalizeSpace(cell(colAddress)),
			Email:          cell(colEmail),
			Phone:          cell(colPhone),
			PlotNo:         cell(colPlot),
			EnrollmentDate: cell(colEnrollment),
			RenewalDate:    cell(colRenewal),
			CertificateNo:  cell(colCertificate),
			Status:         roster.Status(cell(colStatus)),
		})
	})
	return res, nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
