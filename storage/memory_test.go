package storage

import "testing"

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("Get(k) = %q ok=%v err=%v, want v2", v, ok, err)
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key still present after Remove")
	}
	// removing again is a no-op
	if err := s.Remove("k"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestMemStoreRemoveMany(t *testing.T) {
	s := NewMemStore()
	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(k, k); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	if err := s.RemoveMany([]string{"a", "c", "nope"}); err != nil {
		t.Fatalf("RemoveMany: %v", err)
	}

	if _, ok, _ := s.Get("a"); ok {
		t.Fatal("a survived RemoveMany")
	}
	if v, ok, _ := s.Get("b"); !ok || v != "b" {
		t.Fatal("b should have survived RemoveMany")
	}
}
