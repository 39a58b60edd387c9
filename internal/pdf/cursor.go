package pdf

import "github.com/jung-kurt/gofpdf"

// Page geometry of the offer document: A4 portrait in millimetres
// with a 15mm outer margin.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 15.0
	contentWidth = pageWidth - 2*margin

	// bottomGuard is the reserved band at the page bottom; a block that
	// would cross into it triggers a page break.
	bottomGuard = 30.0
	// breakResetY is where the cursor lands after a break.
	breakResetY = 15.0
)

// cursor tracks the vertical write position on the current page and
// owns the page-break decision. Layout is a single greedy pass: there
// is no look-ahead beyond the immediate next block and pages are never
// revisited.
type cursor struct {
	doc *gofpdf.Fpdf
	y   float64
}

func newCursor(doc *gofpdf.Fpdf, startY float64) *cursor {
	return &cursor{doc: doc, y: startY}
}

// EnsureSpace starts a new page when the next block of the given
// height would cross into the bottom guard band. Reports whether a
// break happened. Call it before writing any variable-height block
// whose space is not pre-reserved.
func (c *cursor) EnsureSpace(needed float64) bool {
	if c.y+needed > pageHeight-bottomGuard {
		c.doc.AddPage()
		c.y = breakResetY
		return true
	}
	return false
}

// Advance moves the cursor down by dy on the current page.
func (c *cursor) Advance(dy float64) { c.y += dy }

// MoveTo places the cursor at an absolute vertical position.
func (c *cursor) MoveTo(y float64) { c.y = y }
