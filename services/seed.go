package services

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// demo accounts for first-time setup, one per role. All use the password
// "pass123".
var demoUsers = []models.Registration{
	{
		FullName:     "System Admin",
		MobileNumber: "9876543212",
		Email:        "admin@farmersupport.com",
		Password:     "pass123",
		AadharNumber: "123456789012",
		Address:      "Admin Office",
		Pincode:      "560001",
		State:        "Karnataka",
		District:     "Bangalore",
		Role:         models.RoleAdmin,
	},
	{
		FullName:     "Agriculture Officer",
		MobileNumber: "9876543211",
		Email:        "officer@farmersupport.com",
		Password:     "pass123",
		AadharNumber: "123456789011",
		Address:      "Agriculture Dept",
		Pincode:      "560002",
		State:        "Karnataka",
		District:     "Bangalore",
		Role:         models.RoleOfficer,
	},
	{
		FullName:     "Demo Farmer",
		MobileNumber: "9876543210",
		Email:        "farmer@farmersupport.com",
		Password:     "pass123",
		AadharNumber: "123456789010",
		Address:      "Village Farm",
		Pincode:      "560003",
		State:        "Karnataka",
		District:     "Bangalore",
		Role:         models.RoleFarmer,
	},
}

// SeedDemoUsers creates the demo accounts when no users exist yet.
func (s *UserService) SeedDemoUsers() models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.loadUsers()) > 0 {
		return models.OK("Users already exist")
	}

	users := make([]models.UserRecord, 0, len(demoUsers))
	for _, in := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("seed: hashing failed: %v", err)
			return models.Fail("Failed to seed users")
		}
		users = append(users, models.UserRecord{
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
		})
	}

	if err := s.saveUsers(users); err != nil {
		log.Printf("seed: write failed: %v", err)
		return models.Fail("Failed to seed users")
	}
	return models.OK("Initial users created")
}

// demoVisitSeries mirrors the sample frequency chart: nine days of synthetic
// visit counts.
var demoVisitSeries = []models.VisitRecord{
	{Date: "2/27", Count: 30},
	{Date: "2/28", Count: 45},
	{Date: "3/1", Count: 35},
	{Date: "3/2", Count: 50},
	{Date: "3/3", Count: 40},
	{Date: "3/4", Count: 55},
	{Date: "3/5", Count: 48},
	{Date: "3/6", Count: 38},
	{Date: "3/7", Count: 42},
}

// SeedDemoVisits loads the synthetic visit series when the collection is
// empty.
func (s *VisitService) SeedDemoVisits() models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.loadVisits()) > 0 {
		return models.OK("Visits already exist")
	}

	visits := make([]models.VisitRecord, 0, len(demoVisitSeries))
	for _, v := range demoVisitSeries {
		v.ID = utils.NewVisitID()
		visits = append(visits, v)
	}

	if err := s.saveVisits(visits); err != nil {
		log.Printf("seed: write failed: %v", err)
		return models.Fail("Failed to seed visits")
	}
	return models.OK("Initial visits created")
}
