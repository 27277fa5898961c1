// Package pdf implements the invoice drawing capability on top of fpdf.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Document is an A4 portrait PDF canvas. It satisfies invoice.Canvas.
type Document struct {
	f *fpdf.Fpdf
}

func New() *Document {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)

	return &Document{f: f}
}

func (d *Document) AddPage() {
	d.f.AddPage()
}

func (d *Document) SetFont(family, style string, size float64) {
	d.f.SetFont(family, style, size)
}

func (d *Document) SetTextColor(r, g, b int) {
	d.f.SetTextColor(r, g, b)
}

func (d *Document) SetFillColor(r, g, b int) {
	d.f.SetFillColor(r, g, b)
}

func (d *Document) SetDrawColor(r, g, b int) {
	d.f.SetDrawColor(r, g, b)
}

func (d *Document) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}

	d.f.Rect(x, y, w, h, style)
}

func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.f.Line(x1, y1, x2, y2)
}

func (d *Document) Text(x, y float64, s string) {
	d.f.Text(x, y, s)
}

// SplitText wraps s on word boundaries to fit the given width using the
// current font metrics.
func (d *Document) SplitText(s string, width float64) []string {
	return d.f.SplitText(s, width)
}

func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.f.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return buf.Bytes(), nil
}
