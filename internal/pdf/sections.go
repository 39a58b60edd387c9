package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nuradoo/go-oferta/internal/models"
)

// Company facts printed on every offer. These are fixed parts of the
// document template, not configuration.
const (
	companyInitials = "NURA"
	companySigner   = "NURA DOO"
	companyCity     = "Preshevë"
)

var (
	companyContactLines = []string{"www.nura.rs", "office@nura.rs", "Preshevë"}
	companyPhoneLines   = []string{"tel & fax: 017/868 360", "mob: 062 / 289 911"}

	warrantyTerms = []string{
		"• Dritaret garancion 10 vite",
		"• Mekanizmat garancion 10 vite",
		"• Roletët garancion 5 vite",
		"• Xhami garancion 5 vite",
		"• Elektromotori garancion 2 vite",
	}
)

// Product page geometry: image column left, specification column
// right, both sharing one fixed height.
const (
	productImageW = 90.0
	productImageH = 120.0
	specColumnGap = 10.0

	specLineHeight = 6.0 // minimum advance per attribute row
	specWrapLine   = 4.0 // advance per wrapped value line
	specLabelWidth = 45.0
	// specBottomBand reserves the lower part of the column for the
	// pricing box; attribute rows never enter it.
	specBottomBand = 35.0
)

// renderer carries the per-generation state shared by the section
// functions: the document handle, the explicit layout cursor, and the
// cp1252 translator for the Albanian diacritics.
type renderer struct {
	doc      *gofpdf.Fpdf
	cur      *cursor
	tr       func(string) string
	imageSeq int
}

// placeImage registers a validated payload under a per-document name
// and draws it at the given box.
func (r *renderer) placeImage(a imageAsset, x, y, w, h float64) {
	r.imageSeq++
	name := fmt.Sprintf("img%d", r.imageSeq)
	opts := gofpdf.ImageOptions{ImageType: a.format}
	r.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(a.data))
	r.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// header draws the logo block and the bordered company contact box on
// the first page. A missing logo degrades to the company initials on a
// green panel inside the same reserved box; it never blocks the
// document.
func (r *renderer) header(logo assetResult) {
	if logo.ok {
		r.placeImage(logo.asset, margin, r.cur.y, 80, 40)
	} else {
		r.doc.SetFillColor(70, 150, 70)
		r.doc.Rect(margin, r.cur.y, 80, 40, "F")
		r.doc.SetFont("Helvetica", "B", 28)
		r.doc.SetTextColor(255, 255, 255)
		r.doc.Text(margin+25, r.cur.y+25, r.tr(companyInitials))
		r.doc.SetTextColor(0, 0, 0)
	}

	r.doc.SetFillColor(250, 250, 250)
	r.doc.Rect(margin+85, r.cur.y, contentWidth-85, 40, "F")
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(margin+85, r.cur.y, contentWidth-85, 40, "D")

	r.doc.SetFont("Helvetica", "", 10)
	r.doc.SetTextColor(0, 0, 0)
	for i, line := range companyContactLines {
		r.doc.Text(margin+90, r.cur.y+10+float64(i)*5, r.tr(line))
	}
	for i, line := range companyPhoneLines {
		s := r.tr(line)
		r.doc.Text(pageWidth-margin-r.doc.GetStringWidth(s)-5, r.cur.y+10+float64(i)*5, s)
	}

	r.cur.Advance(50)
}

// title draws the centered document title.
func (r *renderer) title() {
	r.cur.Advance(20)
	r.doc.SetFont("Helvetica", "B", 24)
	r.doc.SetTextColor(0, 0, 0)
	t := r.tr("O F E R T Ë")
	r.doc.Text((pageWidth-r.doc.GetStringWidth(t))/2, r.cur.y, t)
	r.cur.Advance(30)
}

// clientInfo draws the bordered client box: four labeled rows, each
// with an underline rule. Missing values still get their label and
// rule.
func (r *renderer) clientInfo(offer models.Offer) {
	r.doc.SetFillColor(248, 248, 248)
	r.doc.Rect(margin, r.cur.y, contentWidth, 50, "F")
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(margin, r.cur.y, contentWidth, 50, "D")

	rows := []struct{ label, value string }{
		{"KLIENTI", strings.ToUpper(offer.ClientName)},
		{"TEL", ""},
		{"EMAIL", offer.ClientEmail},
		{"OFERTA NR.", offer.OfferNumber},
	}

	for i, row := range rows {
		y := r.cur.y + 12 + float64(i)*10
		r.doc.SetFont("Helvetica", "B", 11)
		r.doc.SetTextColor(0, 0, 0)
		r.doc.Text(margin+10, y, r.tr(row.label))

		valueX := margin + 70.0
		r.doc.SetLineWidth(0.3)
		r.doc.Line(valueX, y+1, valueX+100, y+1)

		if row.value != "" {
			r.doc.SetFont("Helvetica", "", 11)
			r.doc.Text(valueX+5, y, r.tr(row.value))
		}
	}

	r.cur.Advance(60)
}

// coverFooter draws the validity notice and the issue place/date line.
func (r *renderer) coverFooter(offer models.Offer) {
	r.doc.SetFont("Helvetica", "", 9)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(margin, r.cur.y, r.tr("Oferta vlen për 20 ditë"))
	r.doc.Text(pageWidth-margin-60, r.cur.y, r.tr(companyCity+" "+formatIssueDate(offer.Date)))
	r.cur.Advance(20)
}

type specRow struct{ label, value string }

// specRows lists the attribute rows in the fixed document order.
func specRows(p models.Product) []specRow {
	return []specRow{
		{"Profili:", p.Profili},
		{"Ngjyra e profilit:", p.NgjyraProfilit},
		{"Mbushja:", p.Mbushja},
		{"Hapja roletneteve:", p.HapjaRoletneteve},
		{"Ngjyra roletneteve:", p.NgjyraRoletneteve},
		{"Fletëzate roletneteve:", p.FletezateRoletneteve},
		{"Mekanizmat:", p.Mekanizmat},
		{"Dorzat:", p.Dorzat},
		{"Llavjet e braves:", p.LlavjetBraves},
		{"Mekanizmat e braves:", p.MekanizmatBraves},
		{"Qelsat:", p.Qelsat},
		{"Bagjlamat:", p.Bagjlamat},
	}
}

// productPage lays out one product's spec sheet: header strip, image
// column, specification column with the pricing box pinned at its
// bottom, and the page-number footer. index is zero-based; product
// pages are numbered starting at 2.
func (r *renderer) productPage(index int, p models.Product) {
	r.doc.SetFont("Helvetica", "B", 11)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(margin, r.cur.y, strconv.Itoa(index+1))

	r.doc.SetFillColor(235, 235, 235)
	r.doc.Rect(margin, r.cur.y+5, contentWidth, 18, "F")
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(margin, r.cur.y+5, contentWidth, 18, "D")

	category := r.tr(models.CategoryLabel(p.Category))
	r.doc.SetFont("Helvetica", "B", 11)
	r.doc.SetTextColor(50, 50, 50)
	r.doc.Text(margin+8, r.cur.y+16, category)

	if p.ProductType != "" {
		r.doc.SetFont("Helvetica", "", 10)
		r.doc.SetTextColor(80, 80, 80)
		r.doc.Text(margin+8+r.doc.GetStringWidth(category)+5, r.cur.y+16, r.tr(" - "+p.ProductType))
	}

	r.doc.SetTextColor(0, 0, 0)
	r.cur.Advance(28)

	imageX := margin
	specX := margin + productImageW + specColumnGap
	specW := contentWidth - productImageW - specColumnGap

	r.productImage(p, imageX)
	r.specColumn(p, specX, specW)
	r.pricingBox(p, specX, specW)

	r.cur.Advance(productImageH + 15)

	r.doc.SetFont("Helvetica", "", 8)
	r.doc.SetTextColor(100, 100, 100)
	r.doc.Text(pageWidth-margin-20, pageHeight-10, strconv.Itoa(index+2))
	r.doc.SetTextColor(0, 0, 0)
}

// productImage draws the primary image in a bordered box with a 2mm
// inset, or the placeholder when the product has no usable image.
func (r *renderer) productImage(p models.Product, x float64) {
	if uri, ok := p.PrimaryImage(); ok {
		if res := decodeDataURI(uri); res.ok {
			r.doc.SetLineWidth(0.5)
			r.doc.Rect(x, r.cur.y, productImageW, productImageH, "D")
			r.placeImage(res.asset, x+2, r.cur.y+2, productImageW-4, productImageH-4)
			return
		}
	}

	r.doc.SetFillColor(245, 245, 245)
	r.doc.Rect(x, r.cur.y, productImageW, productImageH, "F")
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(x, r.cur.y, productImageW, productImageH, "D")

	r.doc.SetFont("Helvetica", "", 10)
	r.doc.SetTextColor(120, 120, 120)
	r.doc.Text(x+20, r.cur.y+productImageH/2, r.tr("Imazh i produktit"))
	r.doc.SetTextColor(0, 0, 0)
}

// specColumn lists the attribute rows. Blank attributes are skipped
// entirely; long values wrap to the column width; a row that would
// cross into the reserved pricing band is dropped rather than allowed
// to overflow the column.
func (r *renderer) specColumn(p models.Product, specX, specW float64) {
	r.doc.SetFillColor(252, 252, 252)
	r.doc.Rect(specX, r.cur.y, specW, productImageH, "F")
	r.doc.SetLineWidth(0.3)
	r.doc.Rect(specX, r.cur.y, specW, productImageH, "D")

	specY := r.cur.y + 6
	limitY := r.cur.y + productImageH - specBottomBand

	for _, row := range specRows(p) {
		if strings.TrimSpace(row.value) == "" {
			continue
		}
		if specY+specLineHeight > limitY {
			continue // column full; row dropped
		}

		r.doc.SetFont("Helvetica", "B", 9)
		r.doc.SetTextColor(40, 40, 40)
		r.doc.Text(specX+3, specY, r.tr(row.label))

		r.doc.SetFont("Helvetica", "", 9)
		r.doc.SetTextColor(0, 0, 0)
		lines := r.doc.SplitText(r.tr(row.value), specW-specLabelWidth-8)
		for li, line := range lines {
			ly := specY + float64(li)*specWrapLine
			if ly <= limitY {
				r.doc.Text(specX+specLabelWidth, ly, line)
			}
		}

		adv := float64(len(lines)) * specWrapLine
		if adv < specLineHeight {
			adv = specLineHeight
		}
		specY += adv
	}
}

// pricingBox draws the quantity/unit-price/total lines pinned to the
// bottom of the specification column, each label in its accent color.
func (r *renderer) pricingBox(p models.Product, specX, specW float64) {
	pricingY := r.cur.y + productImageH - 30

	r.doc.SetFillColor(240, 248, 255)
	r.doc.Rect(specX+2, pricingY, specW-4, 25, "F")
	r.doc.SetLineWidth(0.3)
	r.doc.Rect(specX+2, pricingY, specW-4, 25, "D")

	r.doc.SetFont("Helvetica", "B", 10)
	r.doc.SetTextColor(0, 80, 140)
	r.doc.Text(specX+6, pricingY+8, "Sasia:")
	r.doc.SetFont("Helvetica", "", 10)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(specX+25, pricingY+8, strconv.Itoa(p.Quantity))

	r.doc.SetFont("Helvetica", "B", 10)
	r.doc.SetTextColor(220, 50, 50)
	r.doc.Text(specX+6, pricingY+15, "Qmimi:")
	r.doc.SetFont("Helvetica", "", 10)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(specX+30, pricingY+15, r.tr(euroPrefixed(p.Qmimi)))

	// The reference draws the total's label and value both in the bold
	// green face.
	r.doc.SetFont("Helvetica", "B", 10)
	r.doc.SetTextColor(0, 120, 0)
	r.doc.Text(specX+6, pricingY+22, "Totali:")
	r.doc.Text(specX+30, pricingY+22, r.tr(euroPrefixed(p.TotalPrice)))
	r.doc.SetTextColor(0, 0, 0)
}

// summaryTitle opens the summary page.
func (r *renderer) summaryTitle() {
	r.doc.SetFont("Helvetica", "B", 16)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(margin, r.cur.y, r.tr("Përmbledhje e Ofertës"))
	r.cur.Advance(20)
}

// summaryTable draws the per-product recap table. Only rendered when
// the offer has more than one product; with a single product the flow
// proceeds directly to the grand total.
func (r *renderer) summaryTable(products []models.Product) {
	r.doc.SetFillColor(230, 230, 230)
	r.doc.Rect(margin, r.cur.y, contentWidth, 12, "F")
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(margin, r.cur.y, contentWidth, 12, "D")

	r.doc.SetFont("Helvetica", "B", 10)
	hy := r.cur.y + 8
	r.doc.Text(margin+5, hy, "Nr.")
	r.doc.Text(margin+20, hy, "Produkti")
	r.doc.Text(margin+100, hy, "Sasia")
	r.doc.Text(margin+125, hy, r.tr("Qmimi/njësi"))
	r.doc.Text(margin+155, hy, "Totali")
	r.cur.Advance(12)

	const rowHeight = 10.0
	for i, p := range products {
		// The reference stripes rows by alternating only the red
		// channel of the fill.
		if i%2 == 0 {
			r.doc.SetFillColor(248, 248, 248)
		} else {
			r.doc.SetFillColor(255, 248, 248)
		}
		r.doc.Rect(margin, r.cur.y, contentWidth, rowHeight, "F")
		r.doc.SetLineWidth(0.2)
		r.doc.Rect(margin, r.cur.y, contentWidth, rowHeight, "D")

		r.doc.SetFont("Helvetica", "", 9)
		ry := r.cur.y + 7
		r.doc.Text(margin+5, ry, strconv.Itoa(i+1))
		r.doc.Text(margin+20, ry, r.tr(models.CategoryLabel(p.Category)))
		r.doc.Text(margin+105, ry, strconv.Itoa(p.Quantity))
		r.doc.Text(margin+130, ry, r.tr(euroPrefixed(p.Qmimi)))

		r.doc.SetFont("Helvetica", "B", 9)
		r.doc.SetTextColor(0, 120, 0)
		r.doc.Text(margin+160, ry, r.tr(euroPrefixed(p.TotalPrice)))
		r.doc.SetTextColor(0, 0, 0)

		r.cur.Advance(rowHeight)
	}

	r.cur.Advance(10)
}

// grandTotal draws the bordered total box with the offer amount
// right-aligned in the large green face.
func (r *renderer) grandTotal(total float64) {
	r.doc.SetFillColor(245, 245, 245)
	r.doc.Rect(margin, r.cur.y, contentWidth, 25, "F")
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(margin, r.cur.y, contentWidth, 25, "D")

	r.doc.SetFont("Helvetica", "B", 14)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(margin+15, r.cur.y+16, "Cmimi total:")

	r.doc.SetFont("Helvetica", "B", 18)
	r.doc.SetTextColor(0, 120, 0)
	r.doc.Text(pageWidth-margin-50, r.cur.y+16, r.tr(euroSuffixed(total)))
	r.doc.SetTextColor(0, 0, 0)

	r.cur.Advance(35)
}

// terms draws the fixed warranty lines. The text is literal, not
// derived from data.
func (r *renderer) terms() {
	r.doc.SetFont("Helvetica", "B", 11)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(margin, r.cur.y, r.tr("Kushtet e garancisë:"))
	r.cur.Advance(8)

	r.doc.SetFont("Helvetica", "", 10)
	for i, term := range warrantyTerms {
		r.doc.Text(margin+5, r.cur.y+float64(i)*6, r.tr(term))
	}
	r.cur.Advance(40)
}

// signatures draws the two signature slots, each label centered over
// its own fixed-length rule.
func (r *renderer) signatures() {
	r.cur.Advance(10)

	const sigLineWidth = 70.0
	leftX := margin + 15.0
	rightX := pageWidth - margin - sigLineWidth - 15

	r.doc.SetFont("Helvetica", "B", 11)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.SetLineWidth(0.5)

	buyer := r.tr("Blerësi")
	r.doc.Text(leftX+(sigLineWidth-r.doc.GetStringWidth(buyer))/2, r.cur.y, buyer)
	r.doc.Line(leftX, r.cur.y+5, leftX+sigLineWidth, r.cur.y+5)

	signer := r.tr(companySigner)
	r.doc.Text(rightX+(sigLineWidth-r.doc.GetStringWidth(signer))/2, r.cur.y, signer)
	r.doc.Line(rightX, r.cur.y+5, rightX+sigLineWidth, r.cur.y+5)

	r.cur.Advance(20)
}

// notes draws the free-text notes block, wrapped to the content width
// with a page-break check before every line. Skipped entirely when the
// trimmed notes are empty.
func (r *renderer) notes(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	r.cur.Advance(25)
	r.doc.SetFont("Helvetica", "B", 11)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.Text(margin, r.cur.y, r.tr("Shënime:"))
	r.cur.Advance(8)

	r.doc.SetFont("Helvetica", "", 10)
	for _, line := range r.doc.SplitText(r.tr(text), contentWidth-10) {
		r.cur.EnsureSpace(6)
		r.doc.Text(margin+5, r.cur.y, line)
		r.cur.Advance(6)
	}
}
