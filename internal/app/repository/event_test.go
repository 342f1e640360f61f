package repository

import (
	"testing"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
)

func TestCreateEventCreatesInvoice(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111222")
	responsible := seedResponsible(t, repo)

	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	event := seedEvent(t, repo, client.ID, responsible.ID, date)

	if event.Status != ds.EventStatusRequested {
		t.Fatalf("expected status %s, got %s", ds.EventStatusRequested, event.Status)
	}
	if event.InvoiceID == 0 {
		t.Fatalf("expected invoice to be created with event")
	}

	loaded, err := repo.GetEventByID(event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	wantValid := dateOnly(loaded.Invoice.OrderDate).AddDate(0, 0, ds.InvoiceValidityDays)
	if !dateOnly(loaded.Invoice.ValidUntil).Equal(wantValid) {
		t.Fatalf("expected valid_until %v, got %v", wantValid, loaded.Invoice.ValidUntil)
	}
}

func TestCreateEventRejectsZeroHeadcount(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111223")
	responsible := seedResponsible(t, repo)

	event := ds.Event{
		ClientID:      client.ID,
		ResponsibleID: responsible.ID,
		EventType:     ds.EventTypeWedding,
		Date:          time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		Time:          "21:00",
		Location:      "Quinta Los Álamos",
		Headcount:     0,
	}
	err := repo.CreateEvent(&event)
	if !apperr.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDateCapacity(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111224")
	responsible := seedResponsible(t, repo)

	date := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < ds.DayCapacity; i++ {
		seedEvent(t, repo, client.ID, responsible.ID, date)
	}

	availability, err := repo.CheckDateAvailability(date, 0)
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if availability.Available {
		t.Fatalf("expected date to be full at %d events", ds.DayCapacity)
	}
	if availability.Count != ds.DayCapacity {
		t.Fatalf("expected count %d, got %d", ds.DayCapacity, availability.Count)
	}

	// Одиннадцатое событие на ту же дату должно быть отклонено
	event := ds.Event{
		ClientID:      client.ID,
		ResponsibleID: responsible.ID,
		EventType:     ds.EventTypeOther,
		Date:          date,
		Time:          "12:00",
		Location:      "Terraza Norte",
		Headcount:     10,
	}
	err = repo.CreateEvent(&event)
	if !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCancelledEventFreesDate(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111225")
	responsible := seedResponsible(t, repo)

	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	var lastID uint
	for i := 0; i < ds.DayCapacity; i++ {
		lastID = seedEvent(t, repo, client.ID, responsible.ID, date).ID
	}

	if err := repo.UpdateEventStatus(lastID, ds.EventStatusCancelled); err != nil {
		t.Fatalf("cancel event: %v", err)
	}

	availability, err := repo.CheckDateAvailability(date, 0)
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if !availability.Available {
		t.Fatalf("expected cancelled event to free the date")
	}
}

func TestUpdateEventDateChecksAvailability(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111226")
	responsible := seedResponsible(t, repo)

	fullDate := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < ds.DayCapacity; i++ {
		seedEvent(t, repo, client.ID, responsible.ID, fullDate)
	}

	otherDate := time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC)
	event := seedEvent(t, repo, client.ID, responsible.ID, otherDate)

	err := repo.UpdateEvent(event.ID, EventChanges{Date: &fullDate})
	if !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("expected conflict moving event to full date, got %v", err)
	}

	// Перенос на ту же дату не должен блокироваться самим событием
	sameDate := otherDate
	if err := repo.UpdateEvent(event.ID, EventChanges{Date: &sameDate}); err != nil {
		t.Fatalf("expected reschedule to own date to succeed, got %v", err)
	}
}

func TestDeleteEventBlockedByStaff(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111227")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC))

	staff, err := repo.CreateStaff(ds.StaffKindWaiter, "Carlos Díaz", "1144000000", "carlos@example.com")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	if _, err := repo.AssignStaffToEvent(event.ID, staff.ID, 1); err != nil {
		t.Fatalf("assign staff: %v", err)
	}

	err = repo.DeleteEvent(event.ID)
	if !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("expected conflict deleting event with staff, got %v", err)
	}
}

func TestDeleteEventRemovesMenuAndInvoice(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111228")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 11, 6, 0, 0, 0, 0, time.UTC))
	productType, product := seedProduct(t, repo, "Plato principal", "Lomo al horno", 150)

	if _, err := repo.AddProductToMenu(event.ID, productType.ID, product.ID, 2); err != nil {
		t.Fatalf("add to menu: %v", err)
	}

	invoiceID := event.InvoiceID
	if err := repo.DeleteEvent(event.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	if _, err := repo.GetEventByID(event.ID); !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected event to be gone, got %v", err)
	}

	var count int64
	repo.db.Model(&ds.MenuLine{}).Where("event_id = ?", event.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected menu lines to be deleted, got %d", count)
	}
	repo.db.Model(&ds.Invoice{}).Where("id = ?", invoiceID).Count(&count)
	if count != 0 {
		t.Fatalf("expected invoice to be deleted")
	}
}

func TestGetEventsFilters(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "30111229")
	other := seedClient(t, repo, "30111230")
	responsible := seedResponsible(t, repo)

	seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
	seedEvent(t, repo, other.ID, responsible.ID, time.Date(2026, 12, 2, 0, 0, 0, 0, time.UTC))

	events, err := repo.GetEvents(EventFilter{ClientID: &client.ID})
	if err != nil {
		t.Fatalf("get events: %v", err)
	}
	if len(events) != 1 || events[0].ClientID != client.ID {
		t.Fatalf("expected one event of client %d, got %d events", client.ID, len(events))
	}

	from := time.Date(2026, 12, 2, 0, 0, 0, 0, time.UTC)
	events, err = repo.GetEvents(EventFilter{DateFrom: &from})
	if err != nil {
		t.Fatalf("get events by date: %v", err)
	}
	if len(events) != 1 || events[0].ClientID != other.ID {
		t.Fatalf("expected one event from %v, got %d", from, len(events))
	}
}
