package models

import "time"

// Role is the account type fixed at registration and matched at login.
type Role string

const (
	RoleFarmer  Role = "farmer"
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleOfficer, RoleAdmin:
		return true
	}
	return false
}

// UserRecord is a registered account. The password is stored as a bcrypt
// hash; the hash is part of the persisted record but must be stripped
// before a record leaves the API (see Redacted).
type UserRecord struct {
	ID           string     `json:"id"`
	FullName     string     `json:"fullName"`
	MobileNumber string     `json:"mobileNumber"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	AadharNumber string     `json:"aadharNumber"`
	Address      string     `json:"address"`
	Pincode      string     `json:"pincode"`
	State        string     `json:"state"`
	District     string     `json:"district"`
	Role         Role       `json:"role"`
	RegisteredAt time.Time  `json:"registeredAt"`
	IsActive     bool       `json:"isActive"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Redacted returns a copy of the record without the password hash.
func (u UserRecord) Redacted() UserRecord {
	u.PasswordHash = ""
	return u
}

// Registration carries the fields a new user submits at sign-up.
type Registration struct {
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	AadharNumber string `json:"aadharNumber"`
	Address      string `json:"address"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
	District     string `json:"district"`
	Role         Role   `json:"role"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched;
// mobile number, aadhar and role are fixed at registration.
type UserUpdate struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Address  *string `json:"address"`
	Pincode  *string `json:"pincode"`
	State    *string `json:"state"`
	District *string `json:"district"`
}
