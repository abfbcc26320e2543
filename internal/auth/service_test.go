package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stationhq/station/backend-go/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "station.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st, "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)

	reg, err := svc.Register("kim@example.com", "hunter2secret", "Kim")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Token == "" {
		t.Error("register returned no token")
	}
	if reg.User.Email != "kim@example.com" || reg.User.DisplayName != "Kim" {
		t.Errorf("user = %+v", reg.User)
	}

	login, err := svc.Login("kim@example.com", "hunter2secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user ID = %q, want %q", login.User.ID, reg.User.ID)
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register("kim@example.com", "hunter2secret", "Kim"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register("kim@example.com", "otherpassword", "Imposter")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	svc.Register("kim@example.com", "hunter2secret", "Kim")

	_, err := svc.Login("kim@example.com", "wrongpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login("nobody@example.com", "hunter2secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateToken(t *testing.T) {
	svc := newTestService(t)
	reg, err := svc.Register("kim@example.com", "hunter2secret", "Kim")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	userID, err := svc.ValidateToken(reg.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("subject = %q, want %q", userID, reg.User.ID)
	}

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token validated")
	}

	// Tokens signed with a different secret are rejected.
	otherStore, err := store.Open(filepath.Join(t.TempDir(), "other.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer otherStore.Close()
	other := NewService(otherStore, "different-secret")
	foreign, _ := other.Register("eve@example.com", "hunter2secret", "Eve")
	if _, err := svc.ValidateToken(foreign.Token); err == nil {
		t.Error("token from a different secret validated")
	}
}
