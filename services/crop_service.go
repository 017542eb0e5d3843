package services

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/storage"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// CropService is the record store for cultivated crops. The collection is
// installation-global, one JSON array under a single key.
type CropService struct {
	store storage.Store
	mu    sync.Mutex
}

// NewCropService creates a CropService on top of store.
func NewCropService(store storage.Store) *CropService {
	return &CropService{store: store}
}

// List returns all crop records, empty on absence or parse failure.
func (s *CropService) List() []models.CropRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCrops()
}

func (s *CropService) loadCrops() []models.CropRecord {
	raw, ok, err := s.store.Get(keyFarmerCrops)
	if err != nil {
		log.Printf("crops: read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var crops []models.CropRecord
	if err := json.Unmarshal([]byte(raw), &crops); err != nil {
		log.Printf("crops: corrupt collection: %v", err)
		return nil
	}
	return crops
}

func (s *CropService) saveCrops(crops []models.CropRecord) error {
	data, err := json.Marshal(crops)
	if err != nil {
		return err
	}
	return s.store.Set(keyFarmerCrops, string(data))
}

// CropInput carries the fields for a new crop record.
type CropInput struct {
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	SowingDate string  `json:"sowingDate"`
	Status     string  `json:"status"`
}

// Add appends a new crop record with a generated id and an icon derived
// from the crop name.
func (s *CropService) Add(in CropInput) models.CropResult {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return models.CropResult{Result: models.Fail("Please enter a crop name")}
	case in.Area <= 0:
		return models.CropResult{Result: models.Fail("Please enter a valid area in acres")}
	case strings.TrimSpace(in.SowingDate) == "":
		return models.CropResult{Result: models.Fail("Please enter a sowing date")}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.CropRecord{
		ID:         utils.NewTimeID(),
		Name:       in.Name,
		Icon:       models.CropIcon(in.Name),
		Area:       in.Area,
		SowingDate: in.SowingDate,
		Status:     in.Status,
	}

	crops := append(s.loadCrops(), record)
	if err := s.saveCrops(crops); err != nil {
		log.Printf("crops: write failed: %v", err)
		return models.CropResult{Result: models.Fail("Failed to save crop")}
	}
	return models.CropResult{Result: models.OK("Crop added"), Record: &record}
}

// Update merges upd over the crop with the given id. A missing id is an
// explicit not-found failure.
func (s *CropService) Update(id string, upd models.CropUpdate) models.CropResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	crops := s.loadCrops()
	idx := -1
	for i := range crops {
		if crops[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.CropResult{Result: models.Fail("Crop record not found")}
	}

	c := &crops[idx]
	if upd.Name != nil {
		c.Name = *upd.Name
		c.Icon = models.CropIcon(*upd.Name)
	}
	if upd.Area != nil {
		c.Area = *upd.Area
	}
	if upd.SowingDate != nil {
		c.SowingDate = *upd.SowingDate
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}

	if err := s.saveCrops(crops); err != nil {
		log.Printf("crops: write failed: %v", err)
		return models.CropResult{Result: models.Fail("Failed to save crop")}
	}
	updated := *c
	return models.CropResult{Result: models.OK("Crop updated"), Record: &updated}
}

// Remove deletes the crop with the given id. A missing id is an explicit
// not-found failure.
func (s *CropService) Remove(id string) models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	crops := s.loadCrops()
	remaining := crops[:0]
	found := false
	for _, c := range crops {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return models.Fail("Crop record not found")
	}
	if err := s.saveCrops(remaining); err != nil {
		log.Printf("crops: write failed: %v", err)
		return models.Fail("Failed to save crop")
	}
	return models.OK("Crop deleted")
}

// Analytics computes the area distribution over all crops. A zero total
// yields zero shares, never NaN.
func (s *CropService) Analytics() models.CropAnalytics {
	crops := s.List()

	var total float64
	for _, c := range crops {
		total += c.Area
	}

	shares := make([]models.CropShare, 0, len(crops))
	for _, c := range crops {
		percent := 0.0
		if total > 0 {
			percent = c.Area / total * 100
		}
		shares = append(shares, models.CropShare{
			ID:      c.ID,
			Name:    c.Name,
			Icon:    c.Icon,
			Area:    c.Area,
			Percent: percent,
		})
	}
	return models.CropAnalytics{TotalArea: total, Shares: shares}
}
