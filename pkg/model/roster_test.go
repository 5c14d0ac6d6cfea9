package model

import (
	"math/rand"
	"testing"
)

func TestRosterAddRemoveCount(t *testing.T) {
	r := NewRoster()
	e1 := &Employee{ID: 10000001, Name: "alice"}
	e2 := &Employee{ID: 10000002, Name: "bob"}

	if err := r.Add(e1); err != nil {
		t.Fatalf("Add(e1): %v", err)
	}
	if err := r.Add(e2); err != nil {
		t.Fatalf("Add(e2): %v", err)
	}
	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}

	if got, ok := r.Get(10000001); !ok || got != e1 {
		t.Errorf("Get(10000001) = (%v,%v), want (e1,true)", got, ok)
	}

	r.Remove(10000001)
	if r.Count() != 1 {
		t.Fatalf("Count() after remove = %d, want 1", r.Count())
	}
	if _, ok := r.Get(10000001); ok {
		t.Error("Get(10000001) should fail after Remove")
	}
}

func TestRosterAddRejectsDuplicateID(t *testing.T) {
	r := NewRoster()
	e1 := &Employee{ID: 10000001}
	e2 := &Employee{ID: 10000001}

	if err := r.Add(e1); err != nil {
		t.Fatalf("Add(e1): %v", err)
	}
	if err := r.Add(e2); err == nil {
		t.Error("Add(e2) with duplicate id should fail")
	}
}

func TestGenerateEmployeeIDAvoidsExisting(t *testing.T) {
	r := NewRoster()
	rng := rand.New(rand.NewSource(42))

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		id, err := r.GenerateEmployeeID(rng)
		if err != nil {
			t.Fatalf("GenerateEmployeeID: %v", err)
		}
		if id < idLowerBound || id >= idUpperBound {
			t.Fatalf("generated id %d out of range [%d,%d)", id, idLowerBound, idUpperBound)
		}
		if seen[id] {
			t.Fatalf("generated duplicate id %d", id)
		}
		seen[id] = true
		r.Add(&Employee{ID: id})
	}
}

func TestGenerateEmployeeIDSkipsTakenID(t *testing.T) {
	r := NewRoster()
	rng := rand.New(rand.NewSource(1))

	taken := idLowerBound
	r.Add(&Employee{ID: taken})

	id, err := r.GenerateEmployeeID(rng)
	if err != nil {
		t.Fatalf("GenerateEmployeeID: %v", err)
	}
	if id == taken {
		t.Errorf("GenerateEmployeeID returned an id already in the roster: %d", id)
	}
}
