package identity

import "context"

// UserRecord is the payload delivered on a "user present" notification.
type UserRecord struct {
	Identity string `json:"identity"`
	Email    string `json:"email"`
}

// Provider is the identity collaborator contract. Subscribers receive the
// current user on login and nil on logout or expiry. The returned unsubscribe
// must be called on session teardown.
type Provider interface {
	Subscribe(onChange func(user *UserRecord)) (unsubscribe func(), err error)
	SignIn(user *UserRecord) error
	SignOut(ctx context.Context) error
}
