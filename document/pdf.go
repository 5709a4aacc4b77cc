package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"ResumeBot/model"
)

// FileName is the name the document is delivered under.
const FileName = "curriculo.pdf"

const (
	pageTitle   = "Currículo Profissional"
	leftMargin  = 20.0
	rightMargin = 15.0
	indentWidth = 5.0
	fontFamily  = "Helvetica"
)

type rgb struct{ r, g, b int }

var (
	accent = rgb{70, 130, 180}
	black  = rgb{0, 0, 0}
	white  = rgb{255, 255, 255}
	gray   = rgb{128, 128, 128}
)

// Generate renders rec and returns the PDF bytes.
func Generate(rec model.Record) ([]byte, error) {
	blocks, err := Render(rec)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, blocks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDF draws blocks onto A4 pages with a title band and page numbers.
func WritePDF(w io.Writer, blocks []Block) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(pageTitle, true)
	pdf.SetMargins(leftMargin, 10, rightMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetHeaderFunc(func() {
		pageWidth, _ := pdf.GetPageSize()
		setFill(pdf, accent)
		pdf.Rect(0, 0, pageWidth, 20, "F")
		pdf.SetFont(fontFamily, "B", 16)
		setText(pdf, white)
		pdf.SetXY(0, 5)
		pdf.CellFormat(pageWidth, 10, tr(pageTitle), "", 1, "C", false, 0, "")
		pdf.SetY(22)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		setText(pdf, gray)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	setText(pdf, black)
	for _, b := range blocks {
		draw(pdf, tr, b)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error writing pdf: %w", err)
	}
	return nil
}

func draw(pdf *fpdf.Fpdf, tr func(string) string, b Block) {
	x := leftMargin + float64(b.Indent)*indentWidth
	switch b.Kind {
	case SectionHeader:
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", 14)
		setText(pdf, accent)
		pdf.CellFormat(0, 12, tr(b.Text), "", 1, "L", false, 0, "")
		setText(pdf, black)
	case SubBlockHeader:
		pdf.Ln(1)
		pdf.SetX(x)
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(0, 7, tr(b.Text), "", 1, "L", false, 0, "")
	case LabeledLine:
		size, height := 11.0, 5.0
		if b.Indent == 0 {
			size, height = 12, 6
		}
		pdf.SetFont(fontFamily, style(b.Emphasis), size)
		pdf.SetX(x)
		pdf.MultiCell(0, height, tr(b.Label+": "+b.Text), "", "L", false)
	case BulletLine:
		pdf.SetFont(fontFamily, style(b.Emphasis), 10)
		pdf.SetX(x)
		pdf.MultiCell(0, 5, tr("- "+b.Text), "", "L", false)
	}
}

func style(emphasis bool) string {
	if emphasis {
		return "B"
	}
	return ""
}

func setText(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}

func setFill(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.r, c.g, c.b)
}
