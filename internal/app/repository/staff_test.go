package repository

import (
	"testing"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
)

func TestAssignStaffToEvent(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "34000001")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC))

	staff, err := repo.CreateStaff(ds.StaffKindCook, "Roberto Gómez", "1133000000", "roberto@example.com")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}

	service, err := repo.AssignStaffToEvent(event.ID, staff.ID, 0)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if service.Status != ds.ServiceStatusAssigned {
		t.Fatalf("expected status %s, got %s", ds.ServiceStatusAssigned, service.Status)
	}
	if service.PeopleCount != 1 {
		t.Fatalf("expected default people count 1, got %d", service.PeopleCount)
	}

	// Повторное назначение той же пары запрещено
	_, err = repo.AssignStaffToEvent(event.ID, staff.ID, 2)
	if !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("expected conflict on duplicate assignment, got %v", err)
	}
}

func TestAssignInactiveStaffRejected(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "34000002")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC))

	staff, err := repo.CreateStaff(ds.StaffKindWaiter, "Silvia Ruiz", "", "")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	vacation := ds.StaffStatusVacation
	if err := repo.UpdateStaff(staff.ID, nil, nil, nil, nil, &vacation); err != nil {
		t.Fatalf("update staff: %v", err)
	}

	_, err = repo.AssignStaffToEvent(event.ID, staff.ID, 1)
	if !apperr.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error for inactive staff, got %v", err)
	}
}

func TestDeleteStaffBlockedByServices(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "34000003")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC))

	staff, err := repo.CreateStaff(ds.StaffKindSupervisor, "Héctor Blanco", "", "")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	service, err := repo.AssignStaffToEvent(event.ID, staff.ID, 3)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := repo.DeleteStaff(staff.ID); !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("expected conflict deleting assigned staff, got %v", err)
	}

	// После снятия назначения удаление проходит
	if err := repo.RemoveService(service.ID); err != nil {
		t.Fatalf("remove service: %v", err)
	}
	if err := repo.DeleteStaff(staff.ID); err != nil {
		t.Fatalf("expected delete to succeed after unassignment, got %v", err)
	}
}

func TestServiceStatusAndQueries(t *testing.T) {
	repo := newTestRepo(t)
	client := seedClient(t, repo, "34000004")
	responsible := seedResponsible(t, repo)
	event := seedEvent(t, repo, client.ID, responsible.ID, time.Date(2026, 12, 27, 0, 0, 0, 0, time.UTC))

	staff, err := repo.CreateStaff(ds.StaffKindAssistant, "Paula Vega", "", "")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	service, err := repo.AssignStaffToEvent(event.ID, staff.ID, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := repo.UpdateServiceStatus(service.ID, ds.ServiceStatusInService); err != nil {
		t.Fatalf("update status: %v", err)
	}

	byEvent, err := repo.GetServicesByEvent(event.ID)
	if err != nil || len(byEvent) != 1 {
		t.Fatalf("expected one service for event, got %d (%v)", len(byEvent), err)
	}
	if byEvent[0].Status != ds.ServiceStatusInService {
		t.Fatalf("expected status %s, got %s", ds.ServiceStatusInService, byEvent[0].Status)
	}

	byStaff, err := repo.GetServicesByStaff(staff.ID)
	if err != nil || len(byStaff) != 1 {
		t.Fatalf("expected one service for staff, got %d (%v)", len(byStaff), err)
	}
}

func TestGetAllStaffFilters(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.CreateStaff(ds.StaffKindWaiter, "Mozo Uno", "", ""); err != nil {
		t.Fatalf("create staff: %v", err)
	}
	cook, err := repo.CreateStaff(ds.StaffKindCook, "Cocinero Uno", "", "")
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	inactive := ds.StaffStatusInactive
	if err := repo.UpdateStaff(cook.ID, nil, nil, nil, nil, &inactive); err != nil {
		t.Fatalf("update staff: %v", err)
	}

	waiters, err := repo.GetAllStaff(ds.StaffKindWaiter, "")
	if err != nil || len(waiters) != 1 {
		t.Fatalf("expected one waiter, got %d (%v)", len(waiters), err)
	}

	active, err := repo.GetAllStaff("", ds.StaffStatusActive)
	if err != nil || len(active) != 1 {
		t.Fatalf("expected one active staff member, got %d (%v)", len(active), err)
	}
}
