package services

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/storage"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

var (
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	aadharPattern  = regexp.MustCompile(`^[0-9]{12}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UserService is the record store for registered users. It owns the users
// collection and keeps the session mirror consistent on profile updates.
type UserService struct {
	store   storage.Store
	session *SessionService
	mu      sync.Mutex
}

// NewUserService creates a UserService. The session service is needed for
// the one cross-store rule: updating the logged-in user refreshes the
// session copy.
func NewUserService(store storage.Store, session *SessionService) *UserService {
	return &UserService{store: store, session: session}
}

// ListUsers returns all registered users. Storage or parse failures degrade
// to an empty list; readers never see an error.
func (s *UserService) ListUsers() []models.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers()
}

// loadUsers reads and parses the users collection. Callers must hold s.mu.
func (s *UserService) loadUsers() []models.UserRecord {
	raw, ok, err := s.store.Get(keyUsers)
	if err != nil {
		log.Printf("users: read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var users []models.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Printf("users: corrupt collection: %v", err)
		return nil
	}
	return users
}

// saveUsers persists the whole users collection. Callers must hold s.mu.
func (s *UserService) saveUsers(users []models.UserRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.store.Set(keyUsers, string(data))
}

// validateRegistration checks the sign-up fields and returns a user-facing
// message for the first problem found.
func validateRegistration(in models.Registration) string {
	switch {
	case strings.TrimSpace(in.FullName) == "":
		return "Please enter your full name"
	case !mobilePattern.MatchString(in.MobileNumber):
		return "Please enter a valid 10-digit mobile number"
	case !emailPattern.MatchString(in.Email):
		return "Please enter a valid email address"
	case len(in.Password) < 6:
		return "Password must be at least 6 characters"
	case !aadharPattern.MatchString(in.AadharNumber):
		return "Please enter a valid 12-digit Aadhar number"
	case !pincodePattern.MatchString(in.Pincode):
		return "Please enter a valid 6-digit pincode"
	case !in.Role.Valid():
		return "Please select a valid role"
	}
	return ""
}

// Register creates a new user. Collision checks run in order: mobile number
// first, then email (case-insensitive).
func (s *UserService) Register(in models.Registration) models.UserResult {
	if msg := validateRegistration(in); msg != "" {
		return models.UserResult{Result: models.Fail(msg)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	for _, u := range users {
		if u.MobileNumber == in.MobileNumber {
			return models.UserResult{Result: models.Fail("Mobile number already registered")}
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, in.Email) {
			return models.UserResult{Result: models.Fail("Email already registered")}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("users: hashing failed: %v", err)
		return models.UserResult{Result: models.Fail("Registration failed. Please try again.")}
	}

	user := models.UserRecord{
		ID:           utils.NewUserID(),
		FullName:     in.FullName,
		MobileNumber: in.MobileNumber,
		Email:        in.Email,
		PasswordHash: string(hash),
		AadharNumber: in.AadharNumber,
		Address:      in.Address,
		Pincode:      in.Pincode,
		State:        in.State,
		District:     in.District,
		Role:         in.Role,
		RegisteredAt: time.Now().UTC(),
		IsActive:     true,
	}

	if err := s.saveUsers(append(users, user)); err != nil {
		log.Printf("users: write failed: %v", err)
		return models.UserResult{Result: models.Fail("Registration failed. Please try again.")}
	}
	return models.UserResult{Result: models.OK("Registration successful"), User: &user}
}

// Login matches mobile number, password, role and the active flag against a
// single record. Every mismatch yields the same generic message so the
// response does not reveal which factor was wrong.
func (s *UserService) Login(mobileNumber, password string, role models.Role) models.UserResult {
	s.mu.Lock()
	users := s.loadUsers()
	s.mu.Unlock()

	for i := range users {
		u := users[i]
		if u.MobileNumber != mobileNumber || u.Role != role || !u.IsActive {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			continue
		}
		return models.UserResult{Result: models.OK("Login successful"), User: &u}
	}
	return models.UserResult{Result: models.Fail("Invalid credentials or role mismatch")}
}

// Update merges upd over the user with the given id, stamps updatedAt and,
// when that user is the current session, refreshes the session copy so both
// stores agree.
func (s *UserService) Update(userID string, upd models.UserUpdate) models.UserResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.UserResult{Result: models.Fail("User not found")}
	}

	u := &users[idx]
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		if len(*upd.Password) < 6 {
			return models.UserResult{Result: models.Fail("Password must be at least 6 characters")}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("users: hashing failed: %v", err)
			return models.UserResult{Result: models.Fail("Update failed")}
		}
		u.PasswordHash = string(hash)
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	if upd.Pincode != nil {
		u.Pincode = *upd.Pincode
	}
	if upd.State != nil {
		u.State = *upd.State
	}
	if upd.District != nil {
		u.District = *upd.District
	}
	now := time.Now().UTC()
	u.UpdatedAt = &now

	if err := s.saveUsers(users); err != nil {
		log.Printf("users: write failed: %v", err)
		return models.UserResult{Result: models.Fail("Update failed")}
	}

	// Session mirror: the two writes are not a transaction, a crash in
	// between leaves them briefly inconsistent until the next update.
	if current := s.session.Current(); current != nil && current.ID == userID {
		if err := s.session.Save(*u); err != nil {
			log.Printf("users: session mirror failed: %v", err)
		}
	}

	updated := *u
	return models.UserResult{Result: models.OK("Profile updated successfully"), User: &updated}
}

// FindByMobile returns the user with the given mobile number, or nil.
func (s *UserService) FindByMobile(mobileNumber string) *models.UserRecord {
	s.mu.Lock()
	users := s.loadUsers()
	s.mu.Unlock()

	for i := range users {
		if users[i].MobileNumber == mobileNumber {
			return &users[i]
		}
	}
	return nil
}

// FindByID returns the user with the given id, or nil.
func (s *UserService) FindByID(userID string) *models.UserRecord {
	s.mu.Lock()
	users := s.loadUsers()
	s.mu.Unlock()

	for i := range users {
		if users[i].ID == userID {
			return &users[i]
		}
	}
	return nil
}

// CountByState groups registered users by state for the admin overview.
func (s *UserService) CountByState() map[string]int {
	counts := make(map[string]int)
	for _, u := range s.ListUsers() {
		counts[u.State]++
	}
	return counts
}

// CountByRole groups registered users by role for the admin overview.
func (s *UserService) CountByRole() map[models.Role]int {
	counts := make(map[models.Role]int)
	for _, u := range s.ListUsers() {
		counts[u.Role]++
	}
	return counts
}

// ClearAll wipes the users collection and the session. Development helper.
func (s *UserService) ClearAll() models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.RemoveMany([]string{keyUsers, keyCurrentUser}); err != nil {
		log.Printf("users: clear failed: %v", err)
		return models.Fail("Failed to clear data")
	}
	return models.OK("All data cleared")
}
