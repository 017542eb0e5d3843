package services

import (
	"testing"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/storage"
)

func TestVisitAddAndFrequency(t *testing.T) {
	visits := NewVisitService(storage.NewMemStore())

	res := visits.Add(VisitInput{Date: "3/8", FarmerName: "Asha", Location: "Mysore", Purpose: "Soil check"})
	if !res.Success {
		t.Fatalf("add failed: %s", res.Message)
	}
	if res.Record.ID == "" {
		t.Fatal("add did not assign an id")
	}

	// second manual visit on the same day
	if res := visits.Add(VisitInput{Date: "3/8", FarmerName: "Ravi"}); !res.Success {
		t.Fatalf("second add failed: %s", res.Message)
	}

	freq := visits.Frequency()
	if freq.Total != 2 {
		t.Fatalf("Total = %d, want 2", freq.Total)
	}
	if len(freq.Labels) != 1 || freq.Labels[0] != "3/8" || freq.Data[0] != 2 {
		t.Fatalf("frequency = %+v", freq)
	}
}

func TestVisitAddValidation(t *testing.T) {
	visits := NewVisitService(storage.NewMemStore())
	if res := visits.Add(VisitInput{FarmerName: "Asha"}); res.Success {
		t.Fatal("visit without a date accepted")
	}
	if res := visits.Add(VisitInput{Date: "3/8"}); res.Success {
		t.Fatal("visit without a farmer name accepted")
	}
}

func TestVisitUpdateAndRemove(t *testing.T) {
	visits := NewVisitService(storage.NewMemStore())
	res := visits.Add(VisitInput{Date: "3/8", FarmerName: "Asha"})

	purpose := "Pest inspection"
	upd := visits.Update(res.Record.ID, models.VisitUpdate{Purpose: &purpose})
	if !upd.Success || upd.Record.Purpose != purpose {
		t.Fatalf("update = %+v (%s)", upd.Record, upd.Message)
	}

	if miss := visits.Update("missing", models.VisitUpdate{Purpose: &purpose}); miss.Success || miss.Message != "Visit record not found" {
		t.Fatalf("missing id update: success=%v message=%q", miss.Success, miss.Message)
	}

	if del := visits.Remove(res.Record.ID); !del.Success {
		t.Fatalf("remove failed: %s", del.Message)
	}
	if miss := visits.Remove(res.Record.ID); miss.Success || miss.Message != "Visit record not found" {
		t.Fatalf("second remove: success=%v message=%q", miss.Success, miss.Message)
	}
}

func TestSeedDemoVisits(t *testing.T) {
	visits := NewVisitService(storage.NewMemStore())

	if res := visits.SeedDemoVisits(); !res.Success {
		t.Fatalf("seed failed: %s", res.Message)
	}

	freq := visits.Frequency()
	if len(freq.Labels) != 9 {
		t.Fatalf("seeded %d days, want 9", len(freq.Labels))
	}
	if freq.Total != 383 {
		t.Fatalf("seed total = %d, want 383", freq.Total)
	}
	if freq.Labels[0] != "2/27" || freq.Data[0] != 30 {
		t.Fatalf("first seeded day = %s/%d", freq.Labels[0], freq.Data[0])
	}

	// idempotent on a populated store
	if res := visits.SeedDemoVisits(); !res.Success || res.Message != "Visits already exist" {
		t.Fatalf("second seed: success=%v message=%q", res.Success, res.Message)
	}
	if got := len(visits.List()); got != 9 {
		t.Fatalf("second seed changed the collection: %d records", got)
	}
}

func TestVisitsCountAndManualShapesMix(t *testing.T) {
	visits := NewVisitService(storage.NewMemStore())
	visits.SeedDemoVisits()
	visits.Add(VisitInput{Date: "2/27", FarmerName: "Asha"})

	freq := visits.Frequency()
	if freq.Total != 384 {
		t.Fatalf("Total = %d, want 384", freq.Total)
	}
	// the manual visit folds into the existing 2/27 bucket
	if freq.Labels[0] != "2/27" || freq.Data[0] != 31 {
		t.Fatalf("2/27 bucket = %d, want 31", freq.Data[0])
	}
}
