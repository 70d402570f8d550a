package services

import "testing"

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		actual    float64
		want      Verdict
		wantMag   float64
	}{
		{"fair small gap above", 50000, 51000, VerdictFair, 1000},
		{"fair small gap below", 50000, 48001, VerdictFair, 1999},
		{"fair exact match", 50000, 50000, VerdictFair, 0},
		{"overpriced", 48000, 70000, VerdictOverpriced, 22000},
		{"underpriced", 70000, 48000, VerdictUnderpriced, 22000},
		{"boundary overpriced at threshold", 48000, 50000, VerdictOverpriced, 2000},
		{"boundary underpriced at threshold", 52000, 50000, VerdictUnderpriced, 2000},
		{"just under threshold above", 50000, 51999, VerdictFair, 1999},
		{"just under threshold below", 51999, 50000, VerdictFair, 1999},
	}

	for _, tt := range tests {
		got, mag := Classify(tt.predicted, tt.actual)
		if got != tt.want {
			t.Errorf("%s: Classify(%.0f, %.0f) = %q; want %q",
				tt.name, tt.predicted, tt.actual, got, tt.want)
		}
		if mag != tt.wantMag {
			t.Errorf("%s: magnitude = %.0f; want %.0f", tt.name, mag, tt.wantMag)
		}
	}
}

func TestClassifyOverpricedMagnitudeExact(t *testing.T) {
	predicted := 48321.5
	actual := 70000.0
	got, mag := Classify(predicted, actual)
	if got != VerdictOverpriced {
		t.Fatalf("verdict: got %q, want %q", got, VerdictOverpriced)
	}
	if mag != actual-predicted {
		t.Errorf("magnitude: got %f, want %f", mag, actual-predicted)
	}
}
