package dto

import "jf-travels-be/internal/entity"

type NavigateRequest struct {
	View    string              `json:"view" validate:"required"`
	Payload *entity.PagePayload `json:"payload"`
}

// RenderInstruction is what the view layer consumes after every transition.
// RequestedView is the raw navigation intent; View is the policy-resolved
// target actually rendered. The two legitimately diverge for gated views:
// state says "dashboard", rendering says "login".
type RenderInstruction struct {
	View             string             `json:"view"`
	RequestedView    string             `json:"requested_view"`
	Payload          entity.PagePayload `json:"payload"`
	SelectedCurrency string             `json:"selected_currency"`
	ShowChrome       bool               `json:"show_chrome"`
	ScrollToTop      bool               `json:"scroll_to_top"`
	IsAuthenticated  bool               `json:"is_authenticated"`
	IsAdmin          bool               `json:"is_admin"`
	UserEmail        string             `json:"user_email,omitempty"`
}
