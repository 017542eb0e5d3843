package utils

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewUserID generates a 16-character user id.
func NewUserID() string {
	id, err := gonanoid.Generate(idAlphabet, 16)
	if err != nil {
		// Crypto randomness failing is effectively fatal; a timestamp id
		// keeps registration working.
		return NewTimeID()
	}
	return id
}

var (
	timeIDMu   sync.Mutex
	lastTimeID int64
)

// NewTimeID generates a millisecond-timestamp id. Consecutive calls within
// the same millisecond are bumped forward so ids stay unique and sortable.
func NewTimeID() string {
	now := time.Now().UnixMilli()
	timeIDMu.Lock()
	if now <= lastTimeID {
		now = lastTimeID + 1
	}
	lastTimeID = now
	timeIDMu.Unlock()
	return strconv.FormatInt(now, 10)
}

// NewVisitID generates a visit record id.
func NewVisitID() string {
	return uuid.NewString()
}
