package repository

import (
	"testing"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
	"catering/internal/app/role"
)

func TestCreateUserWithProfile(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.CreateUser("empleado1", "hash", "Pedro Sánchez", "pedro@example.com", role.ProfileEmployee)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	profile, err := repo.GetProfileByUserID(user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.ProfileType != role.ProfileEmployee || profile.Status != ds.ProfileStatusActive {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestResolveRole(t *testing.T) {
	repo := newTestRepo(t)

	cases := []struct {
		profileType string
		want        role.Role
	}{
		{role.ProfileAdmin, role.Admin},
		{role.ProfileEmployee, role.Employee},
		{role.ProfileResponsible, role.Responsible},
		{role.ProfileClient, role.Client},
	}
	for _, tc := range cases {
		user, err := repo.CreateUser("user_"+tc.profileType, "hash", "Test", "", tc.profileType)
		if err != nil {
			t.Fatalf("create user %s: %v", tc.profileType, err)
		}
		got, err := repo.ResolveRole(user.ID)
		if err != nil {
			t.Fatalf("resolve %s: %v", tc.profileType, err)
		}
		if got != tc.want {
			t.Fatalf("profile %s: expected role %v, got %v", tc.profileType, tc.want, got)
		}
	}
}

func TestResolveRoleSuperuserWithoutProfile(t *testing.T) {
	repo := newTestRepo(t)

	super := ds.User{Login: "root", Password: "hash", IsSuperuser: true}
	if err := repo.db.Create(&super).Error; err != nil {
		t.Fatalf("create superuser: %v", err)
	}

	got, err := repo.ResolveRole(super.ID)
	if err != nil {
		t.Fatalf("resolve superuser: %v", err)
	}
	if got != role.Admin {
		t.Fatalf("expected admin role for superuser, got %v", got)
	}
}

func TestResolveRoleRejectsNoProfile(t *testing.T) {
	repo := newTestRepo(t)

	plain := ds.User{Login: "orphan", Password: "hash"}
	if err := repo.db.Create(&plain).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := repo.ResolveRole(plain.ID)
	if !apperr.Is(err, apperr.Authorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}

func TestResolveRoleRejectsInactiveProfile(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.CreateUser("suspendido", "hash", "Ana", "", role.ProfileEmployee)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	err = repo.db.Model(&ds.Profile{}).Where("user_id = ?", user.ID).
		Update("status", ds.ProfileStatusSuspended).Error
	if err != nil {
		t.Fatalf("suspend profile: %v", err)
	}

	_, err = repo.ResolveRole(user.ID)
	if !apperr.Is(err, apperr.Authorization) {
		t.Fatalf("expected authorization error for suspended profile, got %v", err)
	}
}
