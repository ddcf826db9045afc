package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/gitinfo"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

const (
	pdfMargin     = 10 // mm
	pdfLineHeight = 6  // mm
	pdfFontSize   = 10
)

// WritePDF renders a one-or-more page A4 summary of res to path.
func WritePDF(res *stats.Result, git *gitinfo.Info, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", pdfFontSize+6)
	pdf.CellFormat(usable, pdfLineHeight+2, "Project Code Statistics", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", pdfFontSize-1)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(usable, pdfLineHeight, "Path: "+res.Root, "", 1, "L", false, 0, "")
	if git != nil && git.Branch != "" {
		line := fmt.Sprintf("Git: %s @ %s", git.Branch, git.Commit)
		if git.IsDirty {
			line += " (dirty)"
		}
		pdf.CellFormat(usable, pdfLineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.CellFormat(usable, pdfLineHeight, "Code (excluding blank lines and comments)", "", 1, "L", false, 0, "")

	colWidths := []float64{40, 25, 35, 20, 35, 20}
	headers := []string{"Language", "Files", "Lines", "Lines %", "Chars", "Chars %"}
	pdf.SetFont("Helvetica", "B", pdfFontSize-1)
	pdf.SetFillColor(235, 240, 245)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", pdfFontSize-1)
	for _, row := range BuildCodeRows(res) {
		cells := []string{
			lang.CodeLabel(row.Tag),
			FmtInt(row.Stat.Files),
			FmtInt(row.Stat.CodeLines),
			fmt.Sprintf("%.1f%%", row.LinePct),
			FmtInt(row.Stat.CodeChars),
			fmt.Sprintf("%.1f%%", row.CharPct),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidths[i], pdfLineHeight, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", pdfFontSize-1)
	totals := []string{
		"Total",
		FmtInt(res.TotalCodeFiles()),
		FmtInt(res.TotalCodeLines()),
		"100.0%",
		FmtInt(res.TotalCodeChars()),
		"100.0%",
	}
	for i, cell := range totals {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], pdfLineHeight, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	if len(res.AssetStats) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", pdfFontSize+2)
		pdf.CellFormat(usable, pdfLineHeight, "Assets", "", 1, "L", false, 0, "")

		assetWidths := []float64{80, 40, 55}
		assetHeaders := []string{"Category", "Files", "Size"}
		pdf.SetFont("Helvetica", "B", pdfFontSize-1)
		for i, h := range assetHeaders {
			pdf.CellFormat(assetWidths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", pdfFontSize-1)
		for _, row := range BuildAssetRows(res) {
			pdf.CellFormat(assetWidths[0], pdfLineHeight, assets.Label(row.Category), "1", 0, "L", false, 0, "")
			pdf.CellFormat(assetWidths[1], pdfLineHeight, FmtInt(row.Stat.Files), "1", 0, "R", false, 0, "")
			pdf.CellFormat(assetWidths[2], pdfLineHeight, FmtBytes(row.Stat.Bytes), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}

		pdf.SetFont("Helvetica", "B", pdfFontSize-1)
		pdf.CellFormat(assetWidths[0], pdfLineHeight, "Total", "1", 0, "L", false, 0, "")
		pdf.CellFormat(assetWidths[1], pdfLineHeight, FmtInt(res.AssetTotalFiles), "1", 0, "R", false, 0, "")
		pdf.CellFormat(assetWidths[2], pdfLineHeight, FmtBytes(res.AssetTotalBytes), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF report: %w", err)
	}
	return nil
}
