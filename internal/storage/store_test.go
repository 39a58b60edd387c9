package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nuradoo/go-oferta/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Offer{}, &models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleOffer(id string) *models.Offer {
	p := models.DefaultProduct()
	p.ID = id + "-p1"
	p.Profili = "Alumin"
	p.Qmimi = 350
	p.TotalPrice = 350
	p.Images = datatypes.JSONSlice[string]{"data:image/png;base64,AAAA"}

	return &models.Offer{
		ID:          id,
		ClientName:  "Arben Krasniqi",
		ClientEmail: "arben@example.com",
		OfferNumber: "OFF-2025-000001",
		Date:        "2025-06-05",
		ValidUntil:  "2025-06-25",
		Products:    []models.Product{p},
		TotalAmount: 350,
		Notes:       "Montimi i përfshirë",
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := NewStore(setupTestDB(t))
	offer := sampleOffer("o1")

	if err := store.Save(offer); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get("o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClientName != offer.ClientName ||
		got.ClientEmail != offer.ClientEmail ||
		got.OfferNumber != offer.OfferNumber ||
		got.Date != offer.Date ||
		got.ValidUntil != offer.ValidUntil ||
		got.TotalAmount != offer.TotalAmount ||
		got.Notes != offer.Notes {
		t.Errorf("round-trip mismatch: got %+v", got)
	}
	if len(got.Products) != 1 {
		t.Fatalf("products = %d, want 1", len(got.Products))
	}
	p := got.Products[0]
	if p.ID != "o1-p1" || p.Profili != "Alumin" || p.Qmimi != 350 || p.TotalPrice != 350 {
		t.Errorf("product round-trip mismatch: %+v", p)
	}
	if len(p.Images) != 1 || p.Images[0] != "data:image/png;base64,AAAA" {
		t.Errorf("images round-trip mismatch: %v", p.Images)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set on first save")
	}
}

func TestSaveRefreshesUpdatedAtKeepsCreatedAt(t *testing.T) {
	store := NewStore(setupTestDB(t))
	offer := sampleOffer("o1")
	if err := store.Save(offer); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := store.Get("o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	offer.ClientName = "Blerta Hoxha"
	if err := store.Save(offer); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, err := store.Get("o1")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}

	if second.ClientName != "Blerta Hoxha" {
		t.Errorf("update not persisted: %q", second.ClientName)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: %v -> %v", first.UpdatedAt, second.UpdatedAt)
	}
}

func TestSaveReplacesProducts(t *testing.T) {
	store := NewStore(setupTestDB(t))
	offer := sampleOffer("o1")
	if err := store.Save(offer); err != nil {
		t.Fatalf("save: %v", err)
	}

	p2 := models.DefaultProduct()
	p2.ID = "o1-p2"
	p2.Category = models.CategoryGarageDoor
	offer.Products = []models.Product{p2}
	if err := store.Save(offer); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Get("o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].ID != "o1-p2" {
		t.Errorf("products not replaced: %+v", got.Products)
	}
}

func TestListOrderedByUpdatedAtDesc(t *testing.T) {
	store := NewStore(setupTestDB(t))

	for _, id := range []string{"o1", "o2", "o3"} {
		if err := store.Save(sampleOffer(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	// touching o1 moves it to the front
	o1 := sampleOffer("o1")
	if err := store.Save(o1); err != nil {
		t.Fatalf("resave: %v", err)
	}

	offers, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(offers) != 3 {
		t.Fatalf("list len = %d, want 3", len(offers))
	}
	if offers[0].ID != "o1" {
		t.Errorf("most recently updated first: got %q", offers[0].ID)
	}
}

func TestProductOrderPreserved(t *testing.T) {
	store := NewStore(setupTestDB(t))
	offer := sampleOffer("o1")
	var products []models.Product
	for i := 0; i < 4; i++ {
		p := models.DefaultProduct()
		p.ID = fmt.Sprintf("o1-p%d", i)
		products = append(products, p)
	}
	offer.Products = products
	if err := store.Save(offer); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get("o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	for i, p := range got.Products {
		if want := fmt.Sprintf("o1-p%d", i); p.ID != want {
			t.Errorf("product %d = %q, want %q", i, p.ID, want)
		}
	}
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	store := NewStore(setupTestDB(t))
	if err := store.Save(sampleOffer("o1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(sampleOffer("o2")); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete("o1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get("o1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted offer still readable: %v", err)
	}
	offers, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(offers) != 1 || offers[0].ID != "o2" {
		t.Errorf("unexpected survivors: %+v", offers)
	}

	// product rows of the deleted offer are gone too
	var count int64
	store.db.Model(&models.Product{}).Where("offer_id = ?", "o1").Count(&count)
	if count != 0 {
		t.Errorf("orphan product rows: %d", count)
	}
}

func TestDeleteMissing(t *testing.T) {
	store := NewStore(setupTestDB(t))
	if err := store.Delete("nuk-ka"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing = %v, want ErrNotFound", err)
	}
}

func TestGetMissing(t *testing.T) {
	store := NewStore(setupTestDB(t))
	if _, err := store.Get("nuk-ka"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}
}

func TestSaveWithoutID(t *testing.T) {
	store := NewStore(setupTestDB(t))
	offer := sampleOffer("")
	offer.ID = ""
	if err := store.Save(offer); err == nil {
		t.Error("save without id should fail")
	}
}
