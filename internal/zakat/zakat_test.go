package zakat

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		assets    float64
		goldPrice float64
		eligible  bool
		amount    float64
	}{
		{"above nisab", 10000, 65, true, 250},
		{"below nisab", 5000, 65, false, 0},
		{"exactly at nisab", 87.48 * 65, 65, true, 87.48 * 65 * 0.025},
		{"zero assets", 0, 65, false, 0},
		{"zero gold price", 100, 0, true, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.assets, tt.goldPrice)
			if got.Eligible != tt.eligible {
				t.Fatalf("eligible: got %v, want %v", got.Eligible, tt.eligible)
			}
			if math.Abs(got.Amount-tt.amount) > 1e-9 {
				t.Fatalf("amount: got %v, want %v", got.Amount, tt.amount)
			}
			wantNisab := NisabGoldGrams * tt.goldPrice
			if math.Abs(got.Nisab-wantNisab) > 1e-9 {
				t.Fatalf("nisab: got %v, want %v", got.Nisab, wantNisab)
			}
		})
	}
}
