package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nuradoo/go-oferta/internal/httpx"
	"github.com/nuradoo/go-oferta/internal/models"
	"github.com/nuradoo/go-oferta/internal/pdf"
	"github.com/nuradoo/go-oferta/internal/services"
	"github.com/nuradoo/go-oferta/internal/storage"
	"github.com/nuradoo/go-oferta/internal/validation"
)

// OfferHandler exposes offer CRUD and the document download.
type OfferHandler struct {
	store *storage.Store
	svc   *services.OfferService
	gen   *pdf.Generator
}

func NewOfferHandler(store *storage.Store, svc *services.OfferService, gen *pdf.Generator) *OfferHandler {
	return &OfferHandler{store: store, svc: svc, gen: gen}
}

func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	offers, err := h.store.List()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	offer, err := h.store.Get(r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "get_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	now := time.Now()
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}
	if offer.OfferNumber == "" {
		offer.OfferNumber = h.svc.NewOfferNumber(now)
	}
	if offer.Date == "" {
		offer.Date = now.Format("2006-01-02")
	}
	if offer.ValidUntil == "" {
		offer.ValidUntil = h.svc.DefaultValidUntil(now)
	}

	if v := h.normalize(&offer); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	h.svc.RecomputeTotals(&offer)
	if err := h.store.Save(&offer); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.store.Get(id); errors.Is(err, storage.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	} else if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "get_failed", nil)
		return
	}

	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	offer.ID = id

	if v := h.normalize(&offer); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	h.svc.RecomputeTotals(&offer)
	if err := h.store.Save(&offer); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PDF streams the generated offer document as an attachment.
func (h *OfferHandler) PDF(w http.ResponseWriter, r *http.Request) {
	offer, err := h.store.Get(r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "get_failed", nil)
		return
	}

	out, err := h.gen.Generate(*offer)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "generation_failed", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", pdf.Filename(offer.OfferNumber)))
	w.Write(out)
}

// Catalog exposes the closed category set, the dropdown option
// catalog, and the predefined product templates to the editing
// surface.
func (h *OfferHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	categories := make([]map[string]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, map[string]string{
			"code":  string(c),
			"label": models.CategoryLabel(c),
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"categories":   categories,
		"productTypes": models.ProductTypeOptions,
		"options":      models.AttributeOptions,
		"templates":    models.ProductTemplates(),
	})
}

// normalize fills product defaults and validates the parts of an
// incoming offer the storage and generator layers rely on.
func (h *OfferHandler) normalize(offer *models.Offer) validation.Violations {
	v := make(validation.Violations)
	for i := range offer.Products {
		p := &offer.Products[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Quantity == 0 {
			p.Quantity = 1
		}
		field := fmt.Sprintf("products[%d]", i)
		validation.KnownCategory(field+".category", p.Category, v)
		validation.PositiveInt(field+".quantity", p.Quantity, v)
		validation.NonNegativeFloat(field+".qmimi", p.Qmimi, v)
		validation.ImageCount(field+".images", len(p.Images), v)
	}
	return v
}
