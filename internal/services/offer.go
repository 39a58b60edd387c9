package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nuradoo/go-oferta/internal/models"
)

// ValidityDays is the default offer validity window, matching the
// fixed notice printed on the document.
const ValidityDays = 20

// OfferService encapsulates offer-level business logic. Persistence
// stays in the storage layer.
type OfferService struct{}

func NewOfferService() *OfferService { return &OfferService{} }

// RecomputeTotals re-derives every product's total price and the
// offer's total amount. It must be called after any mutation of a
// quantity or unit price, before the offer is persisted or rendered;
// the document generator itself only reads the stored values.
func (s *OfferService) RecomputeTotals(o *models.Offer) {
	if o == nil {
		return
	}
	var sum float64
	for i := range o.Products {
		p := &o.Products[i]
		p.TotalPrice = p.Qmimi * float64(p.Quantity)
		sum += p.TotalPrice
	}
	o.TotalAmount = sum
}

// NewOfferNumber generates a display offer number.
// Format: OFF-<year>-<last six digits of the unix millisecond clock>.
func (s *OfferService) NewOfferNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("OFF-%d-%s", now.Year(), ms[len(ms)-6:])
}

// DefaultValidUntil returns the ISO valid-until date for an offer
// issued at the given time.
func (s *OfferService) DefaultValidUntil(issued time.Time) string {
	return issued.AddDate(0, 0, ValidityDays).Format("2006-01-02")
}
