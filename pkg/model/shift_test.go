package model

import "testing"

func TestShiftContainsAndLen(t *testing.T) {
	s := Shift{Start: 4, End: 12}
	if s.Len() != 8 {
		t.Errorf("Len() = %d, want 8", s.Len())
	}
	if !s.Contains(4) || !s.Contains(11) {
		t.Error("Contains should be inclusive of Start and exclusive of End")
	}
	if s.Contains(3) || s.Contains(12) {
		t.Error("Contains should reject periods outside [Start,End)")
	}
}

func TestDemandMatrixValidate(t *testing.T) {
	tests := []struct {
		name    string
		demand  DemandMatrix
		wantErr bool
	}{
		{
			name:    "valid one week",
			demand:  DemandMatrix{{1, 2}, {1, 2}, {1, 2}, {1, 2}, {1, 2}, {1, 2}, {1, 2}},
			wantErr: false,
		},
		{
			name:    "day count not a multiple of 7",
			demand:  DemandMatrix{{1}, {1}, {1}},
			wantErr: true,
		},
		{
			name:    "negative demand",
			demand:  DemandMatrix{{-1}, {0}, {0}, {0}, {0}, {0}, {0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.demand.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDemandMatrixPeriodsOn(t *testing.T) {
	d := DemandMatrix{{1, 2, 3}, {4, 5}}
	if d.PeriodsOn(0) != 3 {
		t.Errorf("PeriodsOn(0) = %d, want 3", d.PeriodsOn(0))
	}
	if d.PeriodsOn(5) != 0 {
		t.Errorf("PeriodsOn(5) = %d, want 0 for out-of-range day", d.PeriodsOn(5))
	}
}
