package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category identifies one of the door families an offer product can
// belong to. The codes are stable identifiers persisted with each
// product; display names live in CategoryLabel.
type Category string

const (
	CategoryInteriorDoor    Category = "dera-mbrendshme"
	CategoryEntranceDoor    Category = "dera-hyrjes"
	CategoryGarageDoor      Category = "dera-garazhes"
	CategoryInteriorDoorMDF Category = "dera-mbrendshme-mdf"
)

// Categories lists the closed category set in display order.
var Categories = []Category{
	CategoryInteriorDoor,
	CategoryEntranceDoor,
	CategoryGarageDoor,
	CategoryInteriorDoorMDF,
}

var categoryLabels = map[Category]string{
	CategoryInteriorDoor:    "Derë e mbrendshme",
	CategoryEntranceDoor:    "Derë e Hyrjes",
	CategoryGarageDoor:      "Derë e Garazhës",
	CategoryInteriorDoorMDF: "Derë e mbrendshme MDF",
}

// CategoryLabel returns the display name for a category code. Unknown
// codes fall back to the raw code so a document can always be rendered.
func CategoryLabel(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ValidCategory reports whether c is one of the known category codes.
func ValidCategory(c Category) bool {
	_, ok := categoryLabels[c]
	return ok
}

// MaxProductImages bounds the image list carried by a single product.
// The first image is the one shown on the product's document page.
const MaxProductImages = 3

// Product is one configurable door in an offer. The specification
// attributes are free-form strings; multi-select fields store their
// chosen options as a ", "-joined list (see JoinSelections).
type Product struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	OfferID  string `gorm:"index;size:64" json:"-"`
	Position int    `gorm:"default:0" json:"-"`

	Category    Category `gorm:"size:40;not null" json:"category"`
	ProductType string   `gorm:"size:255" json:"productType"`

	HapjaRoletneteve     string `gorm:"size:255" json:"hapjaRoletneteve"`
	NgjyraRoletneteve    string `gorm:"size:255" json:"ngjyraRoletneteve"`
	FletezateRoletneteve string `gorm:"size:255" json:"fletezateRoletneteve"`
	Profili              string `gorm:"size:255" json:"profili"`
	NgjyraProfilit       string `gorm:"size:255" json:"ngjyraProfilit"`
	Mekanizmat           string `gorm:"size:255" json:"mekanizmat"`
	Dorzat               string `gorm:"size:255" json:"dorzat"`
	Mbushja              string `gorm:"size:255" json:"mbushja"`
	LlavjetBraves        string `gorm:"size:255" json:"llavjetBraves"`
	MekanizmatBraves     string `gorm:"size:255" json:"mekanizmatBraves"`
	Qelsat               string `gorm:"size:255" json:"qelsat"`
	Bagjlamat            string `gorm:"size:255" json:"bagjlamat"`

	Quantity int     `gorm:"not null;default:1" json:"quantity"`
	Qmimi    float64 `gorm:"type:decimal(10,2);not null;default:0" json:"qmimi"`

	// TotalPrice is derived (Qmimi × Quantity) and recomputed on every
	// save; it is never edited independently.
	TotalPrice float64 `gorm:"type:decimal(12,2);not null;default:0" json:"totalPrice"`

	// Images holds base64 data URIs in display order.
	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PrimaryImage returns the first image payload, if any.
func (p *Product) PrimaryImage() (string, bool) {
	if len(p.Images) == 0 {
		return "", false
	}
	return p.Images[0], true
}

// DefaultProduct returns a blank product with the default category,
// quantity 1 and zero pricing, matching what the editing surface
// starts a new row with.
func DefaultProduct() Product {
	return Product{
		Category: CategoryInteriorDoor,
		Quantity: 1,
		Images:   datatypes.JSONSlice[string]{},
	}
}

// Offer is a client-facing quote: client info, a dated validity
// window, and an ordered list of products. Product order is document
// order.
type Offer struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	ClientName  string `gorm:"size:255" json:"clientName"`
	ClientEmail string `gorm:"size:255" json:"clientEmail"`
	OfferNumber string `gorm:"size:50;index" json:"offerNumber"`

	// Date and ValidUntil are ISO dates (2006-01-02).
	Date       string `gorm:"size:10" json:"date"`
	ValidUntil string `gorm:"size:10" json:"validUntil"`

	Products []Product `gorm:"foreignKey:OfferID;references:ID" json:"products"`

	// TotalAmount is derived (sum of product totals) and recomputed on
	// every save.
	TotalAmount float64 `gorm:"type:decimal(12,2);not null;default:0" json:"totalAmount"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
