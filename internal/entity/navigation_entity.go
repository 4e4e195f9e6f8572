package entity

// View identifies one screen of the travel site. The set below is the closed
// enumeration of declared views; anything else falls back to home at render
// time.
type View string

const (
	ViewHome         View = "home"
	ViewAbout        View = "about"
	ViewDestinations View = "destinations"
	ViewTours        View = "tours"
	ViewTourDetails  View = "tour-details"
	ViewBooking      View = "booking"
	ViewCurrency     View = "currency"
	ViewLogin        View = "login"
	ViewRegister     View = "register"
	ViewDashboard    View = "dashboard"
	ViewAdmin        View = "admin"
)

var declaredViews = map[View]struct{}{
	ViewHome:         {},
	ViewAbout:        {},
	ViewDestinations: {},
	ViewTours:        {},
	ViewTourDetails:  {},
	ViewBooking:      {},
	ViewCurrency:     {},
	ViewLogin:        {},
	ViewRegister:     {},
	ViewDashboard:    {},
	ViewAdmin:        {},
}

// IsDeclared reports whether v belongs to the view enumeration.
func (v View) IsDeclared() bool {
	_, ok := declaredViews[v]
	return ok
}

// PagePayload is the routed data a view may consume. It is replaced wholesale
// on every transition; fields a view does not care about are ignored by
// convention.
type PagePayload struct {
	TourId        string `json:"tour_id,omitempty"`
	FilterCountry string `json:"filter_country,omitempty"`
}
