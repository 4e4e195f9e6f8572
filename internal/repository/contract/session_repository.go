package contract

import "jf-travels-be/pkg/store"

type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	Delete(sessionID string)
}
