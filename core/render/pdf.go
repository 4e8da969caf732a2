// Package render — PDF renderer.
// Lays out cleaned Markdown with gofpdf core fonts: headings, paragraphs,
// lists, fenced code and pipe tables. Images are shown as a caption line.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/docscraper/core"
)

var (
	numberedItem  = regexp.MustCompile(`^\d+\.\s`)
	imageLine     = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)`)
	separatorCell = regexp.MustCompile(`^:?-{3,}:?$`)
	inlineLink    = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	inlineCode    = regexp.MustCompile("`([^`]+)`")
)

// headingSizes maps heading levels to font sizes in points.
var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders Markdown content as an A4 PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.PageMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(meta.Title, true)
	pdf.SetCreator("docscraper", true)
	pdf.AddPage()

	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	d.front(meta)

	var table [][]string
	inCode := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inCode && strings.HasPrefix(trimmed, "|") {
			table = append(table, splitRow(trimmed))
			continue
		}
		if len(table) > 0 {
			d.table(table)
			table = nil
		}

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			d.pdf.Ln(2)
			continue
		}
		if inCode {
			d.code(line)
			continue
		}

		switch {
		case trimmed == "":
			d.pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			d.heading(strings.TrimSpace(strings.TrimLeft(trimmed, "#")), level)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			d.paragraph("• " + trimmed[2:])
		case numberedItem.MatchString(trimmed):
			d.paragraph(trimmed)
		case imageLine.MatchString(trimmed):
			m := imageLine.FindStringSubmatch(trimmed)
			d.caption(fmt.Sprintf("[%s: %s]", m[1], m[2]))
		default:
			d.paragraph(line)
		}
	}
	if len(table) > 0 {
		d.table(table)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfDoc writes Markdown blocks onto a gofpdf document. Text passes
// through tr so UTF-8 input maps onto the core fonts' code page.
type pdfDoc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (d *pdfDoc) front(meta core.PageMetadata) {
	if meta.Title != "" {
		d.pdf.SetFont("Helvetica", "B", 18)
		d.pdf.MultiCell(0, 8, d.tr(meta.Title), "", "L", false)
		d.pdf.Ln(4)
	}
	if meta.Source != "" {
		d.pdf.SetFont("Helvetica", "I", 9)
		d.pdf.SetTextColor(100, 100, 100)
		d.pdf.MultiCell(0, 5, d.tr("Source: "+meta.Source), "", "L", false)
		d.pdf.SetTextColor(0, 0, 0)
		d.pdf.Ln(6)
	}
}

func (d *pdfDoc) heading(text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 10
	}
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", size)
	d.pdf.MultiCell(0, size*0.6, d.tr(stripInline(text)), "", "L", false)
	d.pdf.Ln(2)
}

func (d *pdfDoc) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 5, d.tr(stripInline(text)), "", "L", false)
}

func (d *pdfDoc) caption(text string) {
	d.pdf.SetFont("Helvetica", "I", 9)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "L", false)
}

func (d *pdfDoc) code(line string) {
	d.pdf.SetFont("Courier", "", 9)
	d.pdf.SetFillColor(245, 245, 245)
	d.pdf.MultiCell(0, 4.5, d.tr(line), "", "L", true)
}

// table draws rows as a bordered grid with equal column widths. The first
// row is the header; separator rows are skipped.
func (d *pdfDoc) table(rows [][]string) {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return
	}

	pageW, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	colW := (pageW - left - right) / float64(cols)

	d.pdf.Ln(2)
	for i, row := range rows {
		if isSeparatorRow(row) {
			continue
		}
		header := i == 0
		if header {
			d.pdf.SetFont("Helvetica", "B", 9)
			d.pdf.SetFillColor(230, 230, 230)
		} else {
			d.pdf.SetFont("Helvetica", "", 9)
		}
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = d.fit(stripInline(row[c]), colW-2)
			}
			d.pdf.CellFormat(colW, 6, cell, "1", 0, "L", header, 0, "")
		}
		d.pdf.Ln(6)
	}
	d.pdf.Ln(2)
}

// fit translates text and shortens it until it fits width.
func (d *pdfDoc) fit(text string, width float64) string {
	out := d.tr(text)
	if d.pdf.GetStringWidth(out) <= width {
		return out
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		out = d.tr(string(runes) + "...")
		if d.pdf.GetStringWidth(out) <= width {
			return out
		}
	}
	return ""
}

// splitRow splits a pipe table row into trimmed cells.
func splitRow(line string) []string {
	line = strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func isSeparatorRow(row []string) bool {
	for _, cell := range row {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return len(row) > 0
}

// stripInline removes inline Markdown formatting.
func stripInline(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = inlineLink.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
