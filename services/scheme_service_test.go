package services

import (
	"testing"

	"github.com/khavyaindhu/farmersupportapp/storage"
)

func TestSchemeApplyOverwrites(t *testing.T) {
	schemes := NewSchemeService(storage.NewMemStore())

	catalogue := schemes.Catalogue()
	if len(catalogue) == 0 {
		t.Fatal("empty catalogue")
	}

	if schemes.Get("u1") != nil {
		t.Fatal("fresh user should have no enrollment")
	}

	if res := schemes.Apply("u1", catalogue[0]); !res.Success {
		t.Fatalf("apply failed: %s", res.Message)
	}
	first := schemes.Get("u1")
	if first == nil || first.ID != catalogue[0].ID {
		t.Fatalf("Get after apply = %+v", first)
	}
	if first.AppliedAt.IsZero() {
		t.Fatal("apply did not stamp appliedAt")
	}

	// a second apply replaces the slot, no already-applied guard
	if res := schemes.Apply("u1", catalogue[1]); !res.Success {
		t.Fatalf("re-apply failed: %s", res.Message)
	}
	if got := schemes.Get("u1"); got == nil || got.ID != catalogue[1].ID {
		t.Fatalf("slot not overwritten: %+v", got)
	}
}

func TestSchemeSlotsArePerUser(t *testing.T) {
	schemes := NewSchemeService(storage.NewMemStore())
	catalogue := schemes.Catalogue()

	schemes.Apply("u1", catalogue[0])
	schemes.Apply("u2", catalogue[1])

	if got := schemes.Get("u1"); got == nil || got.ID != catalogue[0].ID {
		t.Fatalf("u1 slot = %+v", got)
	}
	if got := schemes.Get("u2"); got == nil || got.ID != catalogue[1].ID {
		t.Fatalf("u2 slot = %+v", got)
	}
}

func TestSchemeWithdrawIdempotent(t *testing.T) {
	schemes := NewSchemeService(storage.NewMemStore())
	schemes.Apply("u1", schemes.Catalogue()[0])

	if res := schemes.Withdraw("u1"); !res.Success {
		t.Fatalf("withdraw failed: %s", res.Message)
	}
	if schemes.Get("u1") != nil {
		t.Fatal("enrollment survived withdraw")
	}
	if res := schemes.Withdraw("u1"); !res.Success {
		t.Fatalf("second withdraw errored: %s", res.Message)
	}
	if schemes.Get("u1") != nil {
		t.Fatal("enrollment reappeared")
	}
}

func TestSchemeByID(t *testing.T) {
	schemes := NewSchemeService(storage.NewMemStore())
	if s := schemes.SchemeByID("pm-kisan"); s == nil || s.Name != "PM-KISAN" {
		t.Fatalf("SchemeByID(pm-kisan) = %+v", s)
	}
	if s := schemes.SchemeByID("no-such-scheme"); s != nil {
		t.Fatalf("unknown id returned %+v", s)
	}
}
