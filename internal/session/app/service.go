package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/uaifood/client-go/internal/session/domain"
	"github.com/uaifood/client-go/pkg/localstore"
)

// TokenKey is where the opaque credential lives, shared with the hosted
// client.
const TokenKey = "@UaiFood:token"

// State is the holder's lifecycle phase.
type State string

const (
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// ErrLoginFailed wraps any credential exchange or validation failure during
// Login; the holder is reset to anonymous before it is returned.
var ErrLoginFailed = errors.New("session: login failed")

// Holder tracks the authenticated user and token. Checkout is gated on it
// and the API client pulls its bearer token through Token.
type Holder struct {
	mu    sync.RWMutex
	state State
	user  domain.User
	token string

	auth    Authenticator
	storage Storage
	log     *slog.Logger
}

func NewHolder(auth Authenticator, storage Storage, log *slog.Logger) *Holder {
	return &Holder{
		state:   StateLoading,
		auth:    auth,
		storage: storage,
		log:     log,
	}
}

// Load validates any stored credential against the backend. A missing or
// rejected token lands the holder in the anonymous state without error; the
// rejected token is erased so it is not retried on the next start.
func (h *Holder) Load(ctx context.Context) error {
	token, err := h.storage.Get(ctx, TokenKey)
	if errors.Is(err, localstore.ErrNotFound) {
		h.setAnonymous()
		return nil
	}
	if err != nil {
		h.log.Warn("stored credential unreadable", slog.Any("err", err))
		h.setAnonymous()
		return nil
	}

	h.setToken(token)
	user, err := h.auth.Me(ctx)
	if err != nil {
		h.log.Warn("stored credential rejected", slog.Any("err", err))
		if delErr := h.storage.Delete(ctx, TokenKey); delErr != nil {
			h.log.Warn("erase stored credential failed", slog.Any("err", delErr))
		}
		h.setAnonymous()
		return nil
	}

	h.setAuthenticated(user, token)
	return nil
}

// Login exchanges credentials for a validated profile. The token is stored
// durably before validation, matching the hosted client; any failure resets
// the holder to anonymous and erases the stored credential.
func (h *Holder) Login(ctx context.Context, email, password string) (domain.User, error) {
	token, err := h.auth.Login(ctx, email, password)
	if err != nil {
		h.reset(ctx)
		return domain.User{}, errors.Join(ErrLoginFailed, err)
	}

	if err := h.storage.Set(ctx, TokenKey, token); err != nil {
		h.reset(ctx)
		return domain.User{}, errors.Join(ErrLoginFailed, err)
	}

	h.setToken(token)
	user, err := h.auth.Me(ctx)
	if err != nil {
		h.reset(ctx)
		return domain.User{}, errors.Join(ErrLoginFailed, err)
	}

	h.setAuthenticated(user, token)
	return user, nil
}

// Logout clears the in-memory identity and erases the stored credential.
// Subsequent checkout attempts fail closed as anonymous.
func (h *Holder) Logout(ctx context.Context) error {
	h.setAnonymous()
	if err := h.storage.Delete(ctx, TokenKey); err != nil {
		return err
	}
	return nil
}

func (h *Holder) reset(ctx context.Context) {
	h.setAnonymous()
	if err := h.storage.Delete(ctx, TokenKey); err != nil {
		h.log.Warn("erase stored credential failed", slog.Any("err", err))
	}
}

func (h *Holder) setToken(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

func (h *Holder) setAuthenticated(user domain.User, token string) {
	h.mu.Lock()
	h.state = StateAuthenticated
	h.user = user
	h.token = token
	h.mu.Unlock()
}

func (h *Holder) setAnonymous() {
	h.mu.Lock()
	h.state = StateAnonymous
	h.user = domain.User{}
	h.token = ""
	h.mu.Unlock()
}

// Token returns the current bearer token, empty when anonymous.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state == StateAuthenticated
}

// CurrentUser returns the signed-in profile, if any.
func (h *Holder) CurrentUser() (domain.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user, h.state == StateAuthenticated
}
