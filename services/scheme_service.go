package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/storage"
)

// schemeCatalogue is the fixed set of programmes a farmer can apply to.
var schemeCatalogue = []models.Scheme{
	{
		ID:          "pm-kisan",
		Name:        "PM-KISAN",
		Icon:        "💰",
		Benefit:     "₹6,000 per year in three installments",
		Description: "Income support for all landholding farmer families to supplement financial needs for agriculture and allied activities.",
	},
	{
		ID:          "pmfby",
		Name:        "Pradhan Mantri Fasal Bima Yojana",
		Icon:        "🛡️",
		Benefit:     "Crop insurance at 2% premium for Kharif crops",
		Description: "Insurance cover against crop loss due to natural calamities, pests and diseases.",
	},
	{
		ID:          "kcc",
		Name:        "Kisan Credit Card",
		Icon:        "💳",
		Benefit:     "Credit up to ₹3 lakh at 4% interest",
		Description: "Short-term credit for cultivation expenses, post-harvest costs and farm asset maintenance.",
	},
	{
		ID:          "soil-health",
		Name:        "Soil Health Card Scheme",
		Icon:        "🧪",
		Benefit:     "Free soil testing every 2 years",
		Description: "Soil nutrient status report with fertilizer recommendations for improving productivity.",
	},
	{
		ID:          "pm-kusum",
		Name:        "PM-KUSUM",
		Icon:        "☀️",
		Benefit:     "60% subsidy on solar pumps",
		Description: "Subsidised standalone solar pumps and solarisation of existing grid-connected agricultural pumps.",
	},
}

// SchemeService is the per-user single-slot enrollment store. Applying
// overwrites whatever was there; the one-active-scheme policy is the slot
// itself.
type SchemeService struct {
	store storage.Store
}

// NewSchemeService creates a SchemeService on top of store.
func NewSchemeService(store storage.Store) *SchemeService {
	return &SchemeService{store: store}
}

// Catalogue returns the available schemes.
func (s *SchemeService) Catalogue() []models.Scheme {
	return schemeCatalogue
}

// SchemeByID looks a scheme up in the catalogue.
func (s *SchemeService) SchemeByID(id string) *models.Scheme {
	for i := range schemeCatalogue {
		if schemeCatalogue[i].ID == id {
			return &schemeCatalogue[i]
		}
	}
	return nil
}

func schemeKey(userID string) string {
	return keySchemePrefix + userID
}

// Apply enrolls the user in scheme, unconditionally replacing any previous
// enrollment.
func (s *SchemeService) Apply(userID string, scheme models.Scheme) models.Result {
	enrollment := models.SchemeEnrollment{Scheme: scheme, AppliedAt: time.Now().UTC()}
	data, err := json.Marshal(enrollment)
	if err != nil {
		return models.Fail("Failed to apply for scheme")
	}
	if err := s.store.Set(schemeKey(userID), string(data)); err != nil {
		log.Printf("schemes: write failed: %v", err)
		return models.Fail("Failed to apply for scheme")
	}
	return models.OK("Scheme applied successfully")
}

// Get returns the user's current enrollment, or nil.
func (s *SchemeService) Get(userID string) *models.SchemeEnrollment {
	raw, ok, err := s.store.Get(schemeKey(userID))
	if err != nil {
		log.Printf("schemes: read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var enrollment models.SchemeEnrollment
	if err := json.Unmarshal([]byte(raw), &enrollment); err != nil {
		log.Printf("schemes: corrupt record: %v", err)
		return nil
	}
	return &enrollment
}

// Withdraw removes the user's enrollment. Idempotent: withdrawing twice is
// a no-op.
func (s *SchemeService) Withdraw(userID string) models.Result {
	if err := s.store.Remove(schemeKey(userID)); err != nil {
		log.Printf("schemes: remove failed: %v", err)
		return models.Fail("Failed to withdraw from scheme")
	}
	return models.OK("Scheme withdrawn")
}
