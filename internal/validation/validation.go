package validation

import (
	"strings"

	"github.com/nuradoo/go-oferta/internal/models"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

// Domain validators

// KnownCategory rejects category codes outside the closed set. The
// document generator tolerates unknown codes, but the editing surface
// must not produce them.
func KnownCategory(field string, c models.Category, v Violations) {
	if !models.ValidCategory(c) {
		v[field] = "unknown_category"
	}
}

// ImageCount enforces the per-product image bound.
func ImageCount(field string, count int, v Violations) {
	if count > models.MaxProductImages {
		v[field] = "too_many_images"
	}
}
