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

// VisitService is the record store for field visits. Synthetic daily rows
// and manually recorded visits share the collection.
type VisitService struct {
	store storage.Store
	mu    sync.Mutex
}

// NewVisitService creates a VisitService on top of store.
func NewVisitService(store storage.Store) *VisitService {
	return &VisitService{store: store}
}

// List returns all visit records, empty on absence or parse failure.
func (s *VisitService) List() []models.VisitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadVisits()
}

func (s *VisitService) loadVisits() []models.VisitRecord {
	raw, ok, err := s.store.Get(keyFieldVisits)
	if err != nil {
		log.Printf("visits: read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var visits []models.VisitRecord
	if err := json.Unmarshal([]byte(raw), &visits); err != nil {
		log.Printf("visits: corrupt collection: %v", err)
		return nil
	}
	return visits
}

func (s *VisitService) saveVisits(visits []models.VisitRecord) error {
	data, err := json.Marshal(visits)
	if err != nil {
		return err
	}
	return s.store.Set(keyFieldVisits, string(data))
}

// VisitInput carries the fields for a manually recorded visit.
type VisitInput struct {
	Date       string `json:"date"`
	FarmerName string `json:"farmerName"`
	Location   string `json:"location"`
	Purpose    string `json:"purpose"`
}

// Add appends a manually recorded visit with a generated id.
func (s *VisitService) Add(in VisitInput) models.VisitResult {
	switch {
	case strings.TrimSpace(in.Date) == "":
		return models.VisitResult{Result: models.Fail("Please enter a visit date")}
	case strings.TrimSpace(in.FarmerName) == "":
		return models.VisitResult{Result: models.Fail("Please enter the farmer's name")}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.VisitRecord{
		ID:         utils.NewVisitID(),
		Date:       in.Date,
		FarmerName: in.FarmerName,
		Location:   in.Location,
		Purpose:    in.Purpose,
	}

	visits := append(s.loadVisits(), record)
	if err := s.saveVisits(visits); err != nil {
		log.Printf("visits: write failed: %v", err)
		return models.VisitResult{Result: models.Fail("Failed to save visit")}
	}
	return models.VisitResult{Result: models.OK("Visit recorded"), Record: &record}
}

// Update merges upd over the visit with the given id. A missing id is an
// explicit not-found failure.
func (s *VisitService) Update(id string, upd models.VisitUpdate) models.VisitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	visits := s.loadVisits()
	idx := -1
	for i := range visits {
		if visits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.VisitResult{Result: models.Fail("Visit record not found")}
	}

	v := &visits[idx]
	if upd.Date != nil {
		v.Date = *upd.Date
	}
	if upd.Count != nil {
		v.Count = *upd.Count
	}
	if upd.FarmerName != nil {
		v.FarmerName = *upd.FarmerName
	}
	if upd.Location != nil {
		v.Location = *upd.Location
	}
	if upd.Purpose != nil {
		v.Purpose = *upd.Purpose
	}

	if err := s.saveVisits(visits); err != nil {
		log.Printf("visits: write failed: %v", err)
		return models.VisitResult{Result: models.Fail("Failed to save visit")}
	}
	updated := *v
	return models.VisitResult{Result: models.OK("Visit updated"), Record: &updated}
}

// Remove deletes the visit with the given id. A missing id is an explicit
// not-found failure.
func (s *VisitService) Remove(id string) models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	visits := s.loadVisits()
	remaining := visits[:0]
	found := false
	for _, v := range visits {
		if v.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, v)
	}
	if !found {
		return models.Fail("Visit record not found")
	}
	if err := s.saveVisits(remaining); err != nil {
		log.Printf("visits: write failed: %v", err)
		return models.Fail("Failed to save visit")
	}
	return models.OK("Visit deleted")
}

// Frequency groups visits by date, in first-seen order, for the frequency
// chart.
func (s *VisitService) Frequency() models.VisitFrequency {
	visits := s.List()

	freq := models.VisitFrequency{Labels: []string{}, Data: []int{}}
	index := make(map[string]int)
	for _, v := range visits {
		n := v.Visits()
		freq.Total += n
		if i, ok := index[v.Date]; ok {
			freq.Data[i] += n
			continue
		}
		index[v.Date] = len(freq.Labels)
		freq.Labels = append(freq.Labels, v.Date)
		freq.Data = append(freq.Data, n)
	}
	return freq
}
