// Package storage persists offers. Offers are stored as one row plus
// their product rows, keyed by opaque string ids, and listed most
// recently updated first.
package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nuradoo/go-oferta/internal/models"
)

// ErrNotFound is returned when no offer exists for the given id.
var ErrNotFound = errors.New("offer not found")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func productOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC")
}

// List returns all offers with their products, ordered by most
// recently updated first.
func (s *Store) List() ([]models.Offer, error) {
	var offers []models.Offer
	err := s.db.
		Preload("Products", productOrder).
		Order("updated_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

// Get loads one offer by id.
func (s *Store) Get(id string) (*models.Offer, error) {
	var offer models.Offer
	err := s.db.
		Preload("Products", productOrder).
		Where("id = ?", id).
		First(&offer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get offer %s: %w", id, err)
	}
	return &offer, nil
}

// Save upserts an offer and replaces its product rows. A new offer
// gets both timestamps; an existing one keeps CreatedAt and gets a
// fresh UpdatedAt. Product positions are rewritten from slice order,
// which is document order.
func (s *Store) Save(offer *models.Offer) error {
	if offer.ID == "" {
		return errors.New("save offer: missing id")
	}

	now := time.Now().UTC()
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Offer
		err := tx.Select("created_at").Where("id = ?", offer.ID).First(&existing).Error
		switch {
		case err == nil:
			offer.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			offer.CreatedAt = now
		default:
			return fmt.Errorf("save offer %s: %w", offer.ID, err)
		}
		offer.UpdatedAt = now

		for i := range offer.Products {
			offer.Products[i].OfferID = offer.ID
			offer.Products[i].Position = i
		}

		// Replace product rows wholesale; reconciling row-by-row buys
		// nothing for a handful of products per offer.
		if err := tx.Where("offer_id = ?", offer.ID).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("save offer %s: clear products: %w", offer.ID, err)
		}
		if err := tx.Omit(clause.Associations).Save(offer).Error; err != nil {
			return fmt.Errorf("save offer %s: %w", offer.ID, err)
		}
		if len(offer.Products) > 0 {
			if err := tx.Create(&offer.Products).Error; err != nil {
				return fmt.Errorf("save offer %s: products: %w", offer.ID, err)
			}
		}
		return nil
	})
}

// Delete removes an offer and its products. Other offers are not
// affected.
func (s *Store) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("delete offer %s: products: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Offer{})
		if res.Error != nil {
			return fmt.Errorf("delete offer %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
