package repository

import (
	"math"
	"testing"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestAddProductMergesQuantity(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "31000001")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	productType, product := seedProduct(t, repo, "Entrada", "Empanadas criollas", 50)

	if _, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 3); err != nil {
		t.Fatalf("first add: %v", err)
	}
	line, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if line.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", line.Quantity)
	}
	if !almostEqual(line.LineTotal, 250) {
		t.Fatalf("expected line total 250, got %v", line.LineTotal)
	}

	lines, err := repo.GetMenu(event.ID)
	if err != nil {
		t.Fatalf("get menu: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
}

func TestAddProductValidations(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "31000002")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC))
	productType, product := seedProduct(t, repo, "Postre", "Flan casero", 40)
	otherType, _ := seedProduct(t, repo, "Bebida", "Agua mineral", 10)

	if _, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 0); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}

	// Продукт не принадлежит указанному типу
	if _, err := repo.AddProductToMenu(event.ID, otherType.ID, product.ID, 1); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error for type mismatch, got %v", err)
	}

	// Недоступный продукт нельзя добавить
	unavailable, err := repo.CreateProduct(productType.ID, "Torta helada", 80, false)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := repo.AddProductToMenu(event.ID, productType.ID, unavailable.ID, 1); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error for unavailable product, got %v", err)
	}
}

func TestInvoiceRecalculation(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "31000003")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC))
	mainType, mainDish := seedProduct(t, repo, "Plato principal", "Asado completo", 100)
	drinkType, drink := seedProduct(t, repo, "Bebida", "Vino tinto", 50)

	// 10 * 100 + 10 * 50 = 1500 продуктов, сервис 1500 * 1.3 = 1950
	if _, err := repo.AddProductToMenu(event.ID, mainType.ID, mainDish.ID, 10); err != nil {
		t.Fatalf("add main: %v", err)
	}
	if _, err := repo.AddProductToMenu(event.ID, drinkType.ID, drink.ID, 10); err != nil {
		t.Fatalf("add drink: %v", err)
	}

	loaded, err := repo.GetEventByID(event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if !almostEqual(loaded.Invoice.TotalProducts, 1500) {
		t.Fatalf("expected total products 1500, got %v", loaded.Invoice.TotalProducts)
	}
	if !almostEqual(loaded.Invoice.TotalService, 1950) {
		t.Fatalf("expected total service 1950, got %v", loaded.Invoice.TotalService)
	}
	// 1950 / 20 персон
	if !almostEqual(loaded.Invoice.PricePerPerson, 97.5) {
		t.Fatalf("expected price per person 97.5, got %v", loaded.Invoice.PricePerPerson)
	}
	// Кэшированные поля события совпадают с компробанте
	if !almostEqual(loaded.TotalPrice, 1950) || !almostEqual(loaded.PricePerPerson, 97.5) {
		t.Fatalf("expected cached event totals to match invoice, got %v / %v", loaded.TotalPrice, loaded.PricePerPerson)
	}
}

func TestRecalculationOnQuantityAndRemoval(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "31000004")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC))
	productType, product := seedProduct(t, repo, "Entrada", "Tabla de fiambres", 200)

	line, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.UpdateMenuLineQuantity(event.ID, line.ID, 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	loaded, _ := repo.GetEventByID(event.ID)
	if !almostEqual(loaded.Invoice.TotalProducts, 1000) {
		t.Fatalf("expected 1000 after quantity change, got %v", loaded.Invoice.TotalProducts)
	}

	if err := repo.RemoveMenuLine(event.ID, line.ID); err != nil {
		t.Fatalf("remove line: %v", err)
	}
	loaded, _ = repo.GetEventByID(event.ID)
	if !almostEqual(loaded.Invoice.TotalProducts, 0) || !almostEqual(loaded.Invoice.TotalService, 0) {
		t.Fatalf("expected empty menu to zero the invoice, got %v / %v", loaded.Invoice.TotalProducts, loaded.Invoice.TotalService)
	}
	if !almostEqual(loaded.Invoice.PricePerPerson, 0) {
		t.Fatalf("expected zero price per person, got %v", loaded.Invoice.PricePerPerson)
	}
}

func TestUnitPriceFrozenAtAddTime(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "31000005")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC))
	productType, product := seedProduct(t, repo, "Bebida", "Champagne", 300)

	line, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Изменение цены продукта не трогает уже добавленные строки
	newPrice := 500.0
	if err := repo.UpdateProduct(product.ID, nil, nil, &newPrice, nil); err != nil {
		t.Fatalf("update product: %v", err)
	}

	var reloaded ds.MenuLine
	if err := repo.db.First(&reloaded, line.ID).Error; err != nil {
		t.Fatalf("reload line: %v", err)
	}
	if !almostEqual(reloaded.UnitPrice, 300) {
		t.Fatalf("expected frozen unit price 300, got %v", reloaded.UnitPrice)
	}
}

func TestHeadcountChangeRecalculates(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "31000006")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC))
	productType, product := seedProduct(t, repo, "Plato principal", "Paella", 130)

	if _, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 10); err != nil {
		t.Fatalf("add: %v", err)
	}

	// 1300 * 1.3 = 1690; на 10 персон выходит 169
	newHeadcount := 10
	if err := repo.UpdateEvent(event.ID, EventChanges{Headcount: &newHeadcount}); err != nil {
		t.Fatalf("update headcount: %v", err)
	}

	loaded, _ := repo.GetEventByID(event.ID)
	if !almostEqual(loaded.Invoice.PricePerPerson, 169) {
		t.Fatalf("expected price per person 169, got %v", loaded.Invoice.PricePerPerson)
	}
}
