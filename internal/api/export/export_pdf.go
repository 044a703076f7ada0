package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/FACorreiaa/wanderplan/internal/api/budget"
	"github.com/FACorreiaa/wanderplan/internal/api/maps"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

const qrSizePx = 256

// ReportPDF renders the itinerary, its budget breakdown and the travel
// report as an A4 document. Days with activities carry a QR code of their
// route link.
func ReportPDF(itinerary *types.TripItinerary, travelers int) ([]byte, error) {
	if itinerary == nil {
		return nil, types.ErrItineraryNotReady
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, tr(itinerary.Destination), "", 1, "L", false, 0, "")
	if itinerary.Summary != "" {
		pdf.SetFont("Arial", "I", 12)
		pdf.MultiCell(0, 6, tr(itinerary.Summary), "", "L", false)
	}
	pdf.Ln(4)

	writeBudget(pdf, tr, itinerary, travelers)

	for i, day := range itinerary.Days {
		if err := writeDay(pdf, tr, itinerary.Destination, day, i); err != nil {
			return nil, err
		}
	}

	if itinerary.DetailedReport != nil {
		writeReport(pdf, tr, itinerary.DetailedReport)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func writeBudget(pdf *gofpdf.Fpdf, tr func(string) string, itinerary *types.TripItinerary, travelers int) {
	b := budget.Compute(itinerary, travelers)
	sectionTitle(pdf, tr, "Estimated Cost Breakdown")
	pdf.SetFont("Arial", "", 11)
	if b.Empty() {
		pdf.CellFormat(0, 7, "No cost estimates available.", "", 1, "L", false, 0, "")
	}
	for _, e := range b.Entries {
		r, g, bl := hexToRGB(e.Color)
		pdf.SetFillColor(r, g, bl)
		pdf.CellFormat(4, 6, "", "", 0, "L", true, 0, "")
		pdf.CellFormat(60, 6, " "+tr(string(e.Category)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(e.Label), "", 1, "R", false, 0, "")
	}
	if itinerary.TotalEstimatedCost > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(64, 7, "Model estimate", "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(budget.FormatAmount(itinerary.Currency, itinerary.TotalEstimatedCost)), "T", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, tr(b.Note), "", "L", false)
	pdf.Ln(4)
}

func writeDay(pdf *gofpdf.Fpdf, tr func(string) string, destination string, day types.DayPlan, dayIndex int) error {
	pdf.AddPage()
	r, g, b := hexToRGB(maps.DayColor(dayIndex))
	pdf.SetTextColor(r, g, b)
	title := fmt.Sprintf("Day %d", day.DayNumber)
	if day.Title != "" {
		title += ": " + day.Title
	}
	sectionTitle(pdf, tr, title)
	pdf.SetTextColor(0, 0, 0)

	textWidth := 0.0
	link, err := maps.RouteLink(day, destination, maps.TravelModeDriving)
	if err == nil {
		png, err := maps.RouteQRCode(link, qrSizePx)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("route-day-%d", day.DayNumber)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		pageW, _ := pdf.GetPageSize()
		_, _, right, _ := pdf.GetMargins()
		pdf.ImageOptions(name, pageW-right-35, pdf.GetY(), 35, 35, false, opts, 0, link)
		left, _, _, _ := pdf.GetMargins()
		textWidth = pageW - left - right - 40
	}

	if len(day.Activities) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.CellFormat(textWidth, 7, "No activities planned.", "", 1, "L", false, 0, "")
		return nil
	}

	for _, a := range day.Activities {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(textWidth, 6, tr(fmt.Sprintf("%s - %s", a.TimeSlot, a.Name)), "", "L", false)

		pdf.SetFont("Arial", "", 10)
		var meta []string
		if a.Duration != "" {
			meta = append(meta, a.Duration)
		}
		meta = append(meta, string(a.Category))
		if a.CostEstimate != nil {
			meta = append(meta, "approx. "+strings.TrimSpace(fmt.Sprintf("%g", *a.CostEstimate)))
		}
		if a.Location != "" {
			meta = append(meta, a.Location)
		}
		pdf.MultiCell(textWidth, 5, tr(strings.Join(meta, " | ")), "", "L", false)
		if a.Description != "" {
			pdf.MultiCell(textWidth, 5, tr(a.Description), "", "L", false)
		}
		if a.GoogleMapLink != "" {
			pdf.SetTextColor(5, 150, 105)
			pdf.CellFormat(textWidth, 5, "View on Google Maps", "", 1, "L", false, 0, a.GoogleMapLink)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(3)
	}
	return nil
}

func writeReport(pdf *gofpdf.Fpdf, tr func(string) string, report *types.DetailedReport) {
	pdf.AddPage()
	sectionTitle(pdf, tr, "Travel Report")
	sections := []struct{ title, body string }{
		{"Why this trip fits you", report.WhyThisFits},
		{"Logistics", report.Logistics},
		{"Packing tips", report.PackingTips},
		{"Local etiquette", report.LocalEtiquette},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(s.title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(s.body), "", "L", false)
		pdf.Ln(3)
	}
}

func hexToRGB(hex string) (int, int, int) {
	var r, g, b int
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
