package services

import (
	"encoding/json"
	"log"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/storage"
)

// SessionService tracks the single currently-authenticated user on this
// installation. The session is a durable record: it survives restarts and
// only an explicit logout clears it.
type SessionService struct {
	store storage.Store
}

// NewSessionService creates a SessionService on top of store.
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// Save persists user as the current session. Called only after the user
// store has confirmed a credential match.
func (s *SessionService) Save(user models.UserRecord) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(keyCurrentUser, string(data))
}

// Current returns the logged-in user, or nil when nobody is logged in or the
// stored record cannot be read.
func (s *SessionService) Current() *models.UserRecord {
	raw, ok, err := s.store.Get(keyCurrentUser)
	if err != nil {
		log.Printf("session: read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var user models.UserRecord
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("session: corrupt record: %v", err)
		return nil
	}
	return &user
}

// Clear removes the session. Clearing an absent session is a no-op.
func (s *SessionService) Clear() error {
	return s.store.Remove(keyCurrentUser)
}
