package service

import (
	"sync"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
	"jf-travels-be/internal/pkg/logger"
)

// depositView appears in the gating table below but is absent from the
// declared view enumeration: an authenticated request for it falls through
// to the home fallback because no page exists for it.
const depositView entity.View = "deposit"

type INavigationService interface {
	Navigate(view string, payload *entity.PagePayload) dto.RenderInstruction
	Resolve() dto.RenderInstruction
	ForceHome()
	Current() (string, entity.PagePayload)
}

// renderBroadcaster pushes a fresh instruction to the view layer.
type renderBroadcaster interface {
	BroadcastRender(instruction dto.RenderInstruction)
}

// sessionReader is the read-only slice of session state render policy needs.
type sessionReader interface {
	Snapshot() SessionSnapshot
}

// navigationService owns the raw navigation state: the current view
// identifier and its payload. Access control is applied when the render
// target is resolved, never when a transition is requested, so CurrentView
// can legitimately hold "dashboard" while the resolved render is "login".
type navigationService struct {
	mu          sync.Mutex
	currentView string
	payload     entity.PagePayload

	session sessionReader
	hub     renderBroadcaster
	logger  logger.ILogger
}

func NewNavigationService(session sessionReader, hub renderBroadcaster, sysLogger logger.ILogger) *navigationService {
	return &navigationService{
		currentView: string(entity.ViewHome),
		session:     session,
		hub:         hub,
		logger:      sysLogger,
	}
}

// Navigate commits the transition unconditionally: the view is stored as
// requested and the payload is REPLACED, never merged, so stale routed data
// cannot leak into the next view. The returned instruction flags
// scroll-to-top for the presentation layer.
func (s *navigationService) Navigate(view string, payload *entity.PagePayload) dto.RenderInstruction {
	s.mu.Lock()
	s.currentView = view
	if payload != nil {
		s.payload = *payload
	} else {
		s.payload = entity.PagePayload{}
	}
	s.mu.Unlock()

	instruction := s.resolve(true)
	s.logger.Debug("Navigation", "Transition committed", map[string]interface{}{
		"requested": instruction.RequestedView,
		"rendered":  instruction.View,
	})
	if s.hub != nil {
		s.hub.BroadcastRender(instruction)
	}
	return instruction
}

// Resolve recomputes the render decision for the current state, as a refresh
// or back operation would. It never mutates state, so a gated view keeps
// resolving to its login prompt until the session changes.
func (s *navigationService) Resolve() dto.RenderInstruction {
	return s.resolve(false)
}

func (s *navigationService) ForceHome() {
	s.Navigate(string(entity.ViewHome), nil)
}

func (s *navigationService) Current() (string, entity.PagePayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView, s.payload
}

func (s *navigationService) resolve(scrollToTop bool) dto.RenderInstruction {
	s.mu.Lock()
	requested := entity.View(s.currentView)
	payload := s.payload
	s.mu.Unlock()

	snap := s.session.Snapshot()

	// Gating rules, first match wins; the recognition fallback runs last.
	target := requested
	switch {
	case requiresTourId(requested) && payload.TourId == "":
		target = entity.ViewHome
	case requested == entity.ViewDashboard && !snap.IsAuthenticated:
		target = entity.ViewLogin
	case requested == depositView && !snap.IsAuthenticated:
		target = entity.ViewLogin
	case !requested.IsDeclared():
		target = entity.ViewHome
	}

	return dto.RenderInstruction{
		View:             string(target),
		RequestedView:    string(requested),
		Payload:          payload,
		SelectedCurrency: snap.SelectedCurrency,
		ShowChrome:       showChrome(requested),
		ScrollToTop:      scrollToTop,
		IsAuthenticated:  snap.IsAuthenticated,
		IsAdmin:          snap.IsAdmin,
		UserEmail:        snap.UserEmail,
	}
}

func requiresTourId(v entity.View) bool {
	return v == entity.ViewTourDetails || v == entity.ViewBooking
}

// showChrome is a pure function of the requested view: login and register
// run full-page, everything else keeps the shared navbar and footer.
func showChrome(v entity.View) bool {
	return v != entity.ViewLogin && v != entity.ViewRegister
}
