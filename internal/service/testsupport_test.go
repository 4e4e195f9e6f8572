package service

import (
	"context"
	"sync"

	"jf-travels-be/internal/repository/memory"
	"jf-travels-be/pkg/exchange"
	"jf-travels-be/pkg/identity"
)

// nopLogger keeps test output clean.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func testConverter() *exchange.Converter {
	return exchange.NewConverter(memory.DefaultRates())
}

// fakeProvider is an in-memory identity.Provider. SignIn and expire deliver
// notifications synchronously so tests control ordering.
type fakeProvider struct {
	mu         sync.Mutex
	onChange   func(user *identity.UserRecord)
	signOutErr error
	signOuts   int
}

func (p *fakeProvider) Subscribe(onChange func(user *identity.UserRecord)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = onChange
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.onChange = nil
	}, nil
}

func (p *fakeProvider) SignIn(user *identity.UserRecord) error {
	p.mu.Lock()
	onChange := p.onChange
	p.mu.Unlock()
	if onChange != nil {
		onChange(user)
	}
	return nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.signOuts++
	err := p.signOutErr
	onChange := p.onChange
	p.mu.Unlock()
	if err != nil {
		return err
	}
	if onChange != nil {
		onChange(nil)
	}
	return nil
}

// gatedRoleLookup blocks each IsAdmin call until release is invoked for that
// email, so tests can interleave lookup completions deterministically.
type gatedRoleLookup struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	results map[string]bool
	err     error
}

func newGatedRoleLookup() *gatedRoleLookup {
	return &gatedRoleLookup{
		gates:   make(map[string]chan struct{}),
		results: make(map[string]bool),
	}
}

func (l *gatedRoleLookup) set(email string, isAdmin bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results[email] = isAdmin
	l.gates[email] = make(chan struct{})
}

func (l *gatedRoleLookup) release(email string) {
	l.mu.Lock()
	gate := l.gates[email]
	l.mu.Unlock()
	close(gate)
}

func (l *gatedRoleLookup) IsAdmin(ctx context.Context, email string) (bool, error) {
	l.mu.Lock()
	gate := l.gates[email]
	err := l.err
	result := l.results[email]
	l.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if err != nil {
		return false, err
	}
	return result, nil
}

// instantRoleLookup answers immediately.
type instantRoleLookup struct {
	admins map[string]bool
	err    error
}

func (l *instantRoleLookup) IsAdmin(ctx context.Context, email string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	return l.admins[email], nil
}

// trackingNavigator records ForceHome calls.
type trackingNavigator struct {
	mu        sync.Mutex
	homeCalls int
}

func (n *trackingNavigator) ForceHome() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.homeCalls++
}

func (n *trackingNavigator) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.homeCalls
}
