package repository

import (
	"testing"
	"time"

	"catering/internal/app/ds"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo, err := NewWithDB(db)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return repo
}

func seedClient(t *testing.T, r *Repository, docNumber string) *ds.Client {
	t.Helper()
	client := ds.Client{
		Name:      "Juan",
		Surname:   "Pérez",
		DocType:   ds.DocTypeDNI,
		DocNumber: docNumber,
		Email:     "juan@example.com",
	}
	if err := r.CreateClient(&client, "", ""); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return &client
}

func seedResponsible(t *testing.T, r *Repository) *ds.Responsible {
	t.Helper()
	resp, err := r.CreateResponsible("María González", "1155000000", "maria@example.com", nil)
	if err != nil {
		t.Fatalf("seed responsible: %v", err)
	}
	return resp
}

func seedProduct(t *testing.T, r *Repository, typeDesc, productDesc string, price float64) (*ds.ProductType, *ds.Product) {
	t.Helper()
	productType, err := r.CreateProductType(typeDesc)
	if err != nil {
		t.Fatalf("seed product type: %v", err)
	}
	product, err := r.CreateProduct(productType.ID, productDesc, price, true)
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return productType, product
}

func seedEvent(t *testing.T, r *Repository, clientID, responsibleID uint, date time.Time) *ds.Event {
	t.Helper()
	event := ds.Event{
		ClientID:      clientID,
		ResponsibleID: responsibleID,
		EventType:     ds.EventTypeBirthday,
		Date:          date,
		Time:          "20:00",
		Location:      "Salón Central",
		Headcount:     20,
	}
	if err := r.CreateEvent(&event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return &event
}
