// Package pdf renders an Offer into the fixed A4 document template:
// a cover page, one spec-sheet page per product, and a summary page.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nuradoo/go-oferta/internal/models"
)

// Generator builds offer documents. It carries only configuration:
// every Generate call owns its own document handle and cursor, so a
// single Generator can serve concurrent calls.
type Generator struct {
	// LogoPath is the fixed-path logo asset. Absence is not fatal; the
	// header falls back to the company initials.
	LogoPath string
}

func NewGenerator(logoPath string) *Generator {
	return &Generator{LogoPath: logoPath}
}

// Filename returns the deterministic download name for an offer
// document.
func Filename(offerNumber string) string {
	return fmt.Sprintf("oferta-%s.pdf", offerNumber)
}

// Generate lays out the complete document and returns its bytes.
//
// The sequence is strictly linear with no backtracking: cover page
// (header, title, client box, footer note), then one forced new page
// per product in input order, then the summary page (title, recap
// table when more than one product, grand total, warranty terms,
// signatures, optional notes). Asset failures degrade to placeholders
// and never abort; the only error surfaced is a failure of the PDF
// writer itself.
func (g *Generator) Generate(offer models.Offer) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	r := &renderer{
		doc: doc,
		cur: newCursor(doc, 10),
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}

	// The logo read is the one up-front asset load; everything after
	// it is synchronous in-order drawing.
	logo := loadLogo(g.LogoPath)

	doc.AddPage()
	r.header(logo)
	r.title()
	r.clientInfo(offer)
	r.coverFooter(offer)

	for i := range offer.Products {
		doc.AddPage()
		r.cur.MoveTo(20)
		r.productPage(i, offer.Products[i])
	}

	doc.AddPage()
	r.cur.MoveTo(30)
	r.summaryTitle()
	if len(offer.Products) > 1 {
		r.summaryTable(offer.Products)
	}
	r.grandTotal(offer.TotalAmount)
	r.terms()
	r.signatures()
	r.notes(offer.Notes)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write offer document: %w", err)
	}
	return buf.Bytes(), nil
}
