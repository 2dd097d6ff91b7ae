// ABOUTME: Tests for admin account persistence
// ABOUTME: Covers creation, uniqueness on mobile and email, and contact lookup

package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testAdmin() *AdminAccount {
	return &AdminAccount{
		ID:           "admin-1",
		Name:         "A",
		Mobile:       "111",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateAdmin_AndLookupByEmail(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	admin := testAdmin()
	if err := store.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	got, err := store.GetAdminByContact(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetAdminByContact failed: %v", err)
	}

	if got.ID != admin.ID {
		t.Errorf("ID = %q, want %q", got.ID, admin.ID)
	}
	if got.Name != admin.Name {
		t.Errorf("Name = %q, want %q", got.Name, admin.Name)
	}
	if got.Mobile != admin.Mobile {
		t.Errorf("Mobile = %q, want %q", got.Mobile, admin.Mobile)
	}
	if got.PasswordHash != admin.PasswordHash {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, admin.PasswordHash)
	}
	if !got.CreatedAt.Equal(admin.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, admin.CreatedAt)
	}
}

func TestGetAdminByContact_MatchesMobile(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.CreateAdmin(ctx, testAdmin()); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	got, err := store.GetAdminByContact(ctx, "111")
	if err != nil {
		t.Fatalf("GetAdminByContact by mobile failed: %v", err)
	}
	if got.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", got.Email, "a@x.com")
	}
}

func TestGetAdminByContact_NotFound(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	_, err := store.GetAdminByContact(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("GetAdminByContact error = %v, want ErrAdminNotFound", err)
	}
}

func TestCreateAdmin_DuplicateMobile(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.CreateAdmin(ctx, testAdmin()); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	dup := testAdmin()
	dup.ID = "admin-2"
	dup.Email = "b@x.com" // same mobile, different email

	err := store.CreateAdmin(ctx, dup)
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("CreateAdmin error = %v, want ErrAccountExists", err)
	}
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.CreateAdmin(ctx, testAdmin()); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	dup := testAdmin()
	dup.ID = "admin-2"
	dup.Mobile = "222" // same email, different mobile

	err := store.CreateAdmin(ctx, dup)
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("CreateAdmin error = %v, want ErrAccountExists", err)
	}
}

func TestCountAdmins(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	count, err := store.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("CountAdmins failed: %v", err)
	}
	if count != 0 {
		t.Errorf("CountAdmins = %d, want 0", count)
	}

	if err := store.CreateAdmin(ctx, testAdmin()); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	count, err = store.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("CountAdmins failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountAdmins = %d, want 1", count)
	}
}
