package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"jf-travels-be/internal/pkg/logger"
	"jf-travels-be/pkg/exchange"
	"jf-travels-be/pkg/identity"
)

var ErrUnknownDisplayCurrency = errors.New("display currency not in rate table")

// SessionSnapshot is a point-in-time read of the session flags. Render logic
// only ever sees snapshots, never the mutable state.
type SessionSnapshot struct {
	IsAuthenticated  bool
	IsAdmin          bool
	UserEmail        string
	SelectedCurrency string
}

// RoleLookup is the admin-lookup collaborator; failures degrade to non-admin.
type RoleLookup interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type ISessionService interface {
	Start() error
	Stop()
	OnAuthChange(user *identity.UserRecord)
	SelectCurrency(code string) error
	Logout(ctx context.Context)
	Snapshot() SessionSnapshot
}

// homeForcer is the slice of navigation the session layer needs for logout.
type homeForcer interface {
	ForceHome()
}

type sessionService struct {
	mu               sync.Mutex
	isAuthenticated  bool
	isAdmin          bool
	userEmail        string
	selectedCurrency string

	// generation invalidates in-flight role lookups: a completion whose
	// captured generation no longer matches is stale and discarded.
	generation uint64

	provider    identity.Provider
	roles       RoleLookup
	converter   *exchange.Converter
	nav         homeForcer
	logger      logger.ILogger
	unsubscribe func()
}

func NewSessionService(
	provider identity.Provider,
	roles RoleLookup,
	converter *exchange.Converter,
	defaultCurrency string,
	sysLogger logger.ILogger,
) *sessionService {
	return &sessionService{
		provider:         provider,
		roles:            roles,
		converter:        converter,
		selectedCurrency: defaultCurrency,
		logger:           sysLogger,
	}
}

// BindNavigator wires the navigation side after construction; the two
// services reference each other and the container breaks the loop here.
func (s *sessionService) BindNavigator(nav homeForcer) {
	s.nav = nav
}

// Start subscribes to the identity provider. Stop must be called on
// teardown to release the subscription.
func (s *sessionService) Start() error {
	unsubscribe, err := s.provider.Subscribe(s.OnAuthChange)
	if err != nil {
		return err
	}
	s.unsubscribe = unsubscribe
	return nil
}

func (s *sessionService) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// OnAuthChange is the identity subscription callback and, together with
// SelectCurrency and Logout, one of the only mutation paths into the session.
func (s *sessionService) OnAuthChange(user *identity.UserRecord) {
	if user == nil {
		s.clear()
		return
	}

	s.mu.Lock()
	s.isAuthenticated = true
	s.userEmail = user.Email
	s.isAdmin = false
	s.generation++
	gen := s.generation
	email := user.Email
	s.mu.Unlock()

	// Fire-and-forget: navigation never waits on the role lookup.
	go s.resolveRole(gen, email)
}

func (s *sessionService) resolveRole(gen uint64, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	isAdmin, err := s.roles.IsAdmin(ctx, email)
	if err != nil {
		s.logger.Warn("Session", "Admin lookup failed, defaulting to non-admin", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		isAdmin = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.logger.Info("Session", "Discarding stale admin lookup result", map[string]interface{}{
			"email": email,
		})
		return
	}
	s.isAdmin = isAdmin
}

func (s *sessionService) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAuthenticated = false
	s.isAdmin = false
	s.userEmail = ""
	s.generation++
}

// Logout asks the provider to sign out, swallowing any failure: the local
// session must always be clearable even when the remote call is not. The
// current view is forced back to home.
func (s *sessionService) Logout(ctx context.Context) {
	if err := s.provider.SignOut(ctx); err != nil {
		s.logger.Warn("Session", "Sign-out call failed, clearing local session anyway", map[string]interface{}{
			"error": err.Error(),
		})
	}
	s.clear()
	if s.nav != nil {
		s.nav.ForceHome()
	}
}

func (s *sessionService) SelectCurrency(code string) error {
	if !s.converter.Has(code) {
		return ErrUnknownDisplayCurrency
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCurrency = code
	return nil
}

func (s *sessionService) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{
		IsAuthenticated:  s.isAuthenticated,
		IsAdmin:          s.isAdmin,
		UserEmail:        s.userEmail,
		SelectedCurrency: s.selectedCurrency,
	}
}
