package services

import (
	"encoding/json"
	"testing"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/storage"
)

func TestCropAddAndDelete(t *testing.T) {
	crops := NewCropService(storage.NewMemStore())

	res := crops.Add(CropInput{Name: "Wheat", Area: 4.0, SowingDate: "2025-01-01"})
	if !res.Success {
		t.Fatalf("add failed: %s", res.Message)
	}
	if res.Record.ID == "" {
		t.Fatal("add did not assign an id")
	}
	if res.Record.Icon != "🌾" {
		t.Fatalf("Wheat icon = %q, want 🌾", res.Record.Icon)
	}

	list := crops.List()
	if len(list) != 1 || list[0].ID != res.Record.ID {
		t.Fatalf("List = %+v", list)
	}

	if del := crops.Remove(res.Record.ID); !del.Success {
		t.Fatalf("remove failed: %s", del.Message)
	}
	if got := crops.List(); len(got) != 0 {
		t.Fatalf("record survived delete: %+v", got)
	}
}

func TestCropAddValidation(t *testing.T) {
	crops := NewCropService(storage.NewMemStore())

	tests := []struct {
		name string
		in   CropInput
	}{
		{"missing name", CropInput{Area: 2, SowingDate: "2025-01-01"}},
		{"zero area", CropInput{Name: "Onion", SowingDate: "2025-01-01"}},
		{"missing date", CropInput{Name: "Onion", Area: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := crops.Add(tt.in); res.Success {
				t.Fatal("invalid input accepted")
			}
		})
	}
}

func TestCropUnknownIcon(t *testing.T) {
	crops := NewCropService(storage.NewMemStore())
	res := crops.Add(CropInput{Name: "Dragonfruit", Area: 1, SowingDate: "2025-02-02"})
	if !res.Success || res.Record.Icon != "🌱" {
		t.Fatalf("fallback icon = %q, want 🌱", res.Record.Icon)
	}
}

func TestCropUpdate(t *testing.T) {
	crops := NewCropService(storage.NewMemStore())
	res := crops.Add(CropInput{Name: "Onion", Area: 2, SowingDate: "2025-01-01"})

	name := "Tomato"
	area := 3.5
	upd := crops.Update(res.Record.ID, models.CropUpdate{Name: &name, Area: &area})
	if !upd.Success {
		t.Fatalf("update failed: %s", upd.Message)
	}
	if upd.Record.Name != "Tomato" || upd.Record.Icon != "🍅" || upd.Record.Area != 3.5 {
		t.Fatalf("update result = %+v", upd.Record)
	}
	// sowing date untouched by a partial update
	if upd.Record.SowingDate != "2025-01-01" {
		t.Fatalf("sowingDate changed: %q", upd.Record.SowingDate)
	}

	if miss := crops.Update("missing", models.CropUpdate{Name: &name}); miss.Success || miss.Message != "Crop record not found" {
		t.Fatalf("missing id: success=%v message=%q", miss.Success, miss.Message)
	}
	if miss := crops.Remove("missing"); miss.Success || miss.Message != "Crop record not found" {
		t.Fatalf("missing id remove: success=%v message=%q", miss.Success, miss.Message)
	}
}

func TestCropAnalytics(t *testing.T) {
	store := storage.NewMemStore()
	crops := NewCropService(store)

	seeded := []models.CropRecord{
		{ID: "1", Name: "Grapes", Icon: "🍇", Area: 2.5, SowingDate: "2025-01-01"},
		{ID: "2", Name: "Onion", Icon: "🧅", Area: 1.5, SowingDate: "2025-01-02"},
		{ID: "3", Name: "Tomato", Icon: "🍅", Area: 0, SowingDate: "2025-01-03"},
	}
	data, err := json.Marshal(seeded)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	if err := store.Set("farmer_crops", string(data)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	// round-trip: the collection reads back with ids, values and order intact
	list := crops.List()
	if len(list) != 3 || list[0].ID != "1" || list[2].Name != "Tomato" {
		t.Fatalf("round-trip List = %+v", list)
	}

	a := crops.Analytics()
	if a.TotalArea != 4.0 {
		t.Fatalf("TotalArea = %v, want 4.0", a.TotalArea)
	}
	want := []float64{62.5, 37.5, 0}
	for i, share := range a.Shares {
		if share.Percent != want[i] {
			t.Fatalf("share %d = %v%%, want %v%%", i, share.Percent, want[i])
		}
	}
}

func TestCropAnalyticsEmpty(t *testing.T) {
	crops := NewCropService(storage.NewMemStore())
	a := crops.Analytics()
	if a.TotalArea != 0 || len(a.Shares) != 0 {
		t.Fatalf("empty analytics = %+v", a)
	}
}

func TestCropCorruptCollectionDegrades(t *testing.T) {
	store := storage.NewMemStore()
	crops := NewCropService(store)
	store.Set("farmer_crops", "[broken")
	if got := crops.List(); len(got) != 0 {
		t.Fatalf("corrupt collection read as %d records", len(got))
	}
}
