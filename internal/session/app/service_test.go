package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/uaifood/client-go/internal/session/domain"
	"github.com/uaifood/client-go/pkg/localstore"
)

type fakeAuth struct {
	loginToken string
	loginErr   error
	meUser     domain.User
	meErr      error
	meCalls    int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeAuth) Me(_ context.Context) (domain.User, error) {
	f.meCalls++
	return f.meUser, f.meErr
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadWithoutCredential(t *testing.T) {
	h := NewHolder(&fakeAuth{}, localstore.NewMemory(), discard())

	if h.State() != StateLoading {
		t.Fatalf("initial state = %s, want loading", h.State())
	}
	if err := h.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if h.State() != StateAnonymous {
		t.Fatalf("state = %s, want anonymous", h.State())
	}
}

func TestLoadWithValidCredential(t *testing.T) {
	ctx := context.Background()
	storage := localstore.NewMemory()
	if err := storage.Set(ctx, TokenKey, "tok-1"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	auth := &fakeAuth{meUser: domain.User{ID: "u1", Name: "Ana", Type: domain.RoleClient}}
	h := NewHolder(auth, storage, discard())

	if err := h.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !h.IsAuthenticated() {
		t.Fatal("expected authenticated state")
	}
	if h.Token() != "tok-1" {
		t.Fatalf("token = %q", h.Token())
	}
	user, ok := h.CurrentUser()
	if !ok || user.ID != "u1" {
		t.Fatalf("user = %+v, ok = %v", user, ok)
	}
}

func TestLoadWithRejectedCredential(t *testing.T) {
	ctx := context.Background()
	storage := localstore.NewMemory()
	if err := storage.Set(ctx, TokenKey, "stale"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	auth := &fakeAuth{meErr: errors.New("401")}
	h := NewHolder(auth, storage, discard())

	if err := h.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if h.State() != StateAnonymous {
		t.Fatalf("state = %s, want anonymous", h.State())
	}
	if _, err := storage.Get(ctx, TokenKey); !errors.Is(err, localstore.ErrNotFound) {
		t.Fatalf("rejected token should be erased, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores token and resolves user", func(t *testing.T) {
		storage := localstore.NewMemory()
		auth := &fakeAuth{
			loginToken: "tok-2",
			meUser:     domain.User{ID: "u2", Type: domain.RoleAdmin},
		}
		h := NewHolder(auth, storage, discard())

		user, err := h.Login(ctx, "admin@uaifood.test", "pw")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if !user.IsAdmin() {
			t.Fatalf("expected admin, got %+v", user)
		}
		stored, err := storage.Get(ctx, TokenKey)
		if err != nil || stored != "tok-2" {
			t.Fatalf("stored token = (%q, %v)", stored, err)
		}
		if !h.IsAuthenticated() {
			t.Fatal("expected authenticated state")
		}
	})

	t.Run("bad credentials -> ErrLoginFailed, anonymous", func(t *testing.T) {
		storage := localstore.NewMemory()
		auth := &fakeAuth{loginErr: errors.New("401")}
		h := NewHolder(auth, storage, discard())

		_, err := h.Login(ctx, "ana@uaifood.test", "wrong")
		if !errors.Is(err, ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}
		if h.State() != StateAnonymous {
			t.Fatalf("state = %s, want anonymous", h.State())
		}
	})

	t.Run("profile fetch failure -> ErrLoginFailed, token erased", func(t *testing.T) {
		storage := localstore.NewMemory()
		auth := &fakeAuth{loginToken: "tok-3", meErr: errors.New("boom")}
		h := NewHolder(auth, storage, discard())

		_, err := h.Login(ctx, "ana@uaifood.test", "pw")
		if !errors.Is(err, ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}
		if _, err := storage.Get(ctx, TokenKey); !errors.Is(err, localstore.ErrNotFound) {
			t.Fatalf("token should be erased, got %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	storage := localstore.NewMemory()
	auth := &fakeAuth{loginToken: "tok-4", meUser: domain.User{ID: "u4"}}
	h := NewHolder(auth, storage, discard())

	if _, err := h.Login(ctx, "ana@uaifood.test", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := h.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if h.IsAuthenticated() {
		t.Fatal("still authenticated after logout")
	}
	if h.Token() != "" {
		t.Fatalf("token = %q after logout", h.Token())
	}
	if _, err := storage.Get(ctx, TokenKey); !errors.Is(err, localstore.ErrNotFound) {
		t.Fatalf("token should be erased, got %v", err)
	}
}
