package chart

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		fc, p  []float64
		fcT    float64
		pT     float64
		expect []Significance
	}{
		{
			name:   "basic",
			fc:     []float64{2, -2, 0.5, 2},
			p:      []float64{0.01, 0.01, 0.01, 0.5},
			fcT:    1,
			pT:     0.05,
			expect: []Significance{Upregulated, Downregulated, NonSignificant, NonSignificant},
		},
		{
			name:   "closed bounds",
			fc:     []float64{1, -1, 1},
			p:      []float64{0.05, 0.05, 0.0500001},
			fcT:    1,
			pT:     0.05,
			expect: []Significance{Upregulated, Downregulated, NonSignificant},
		},
		{
			name:   "zero threshold, down overwrites up",
			fc:     []float64{0, 0.1, -0.1},
			p:      []float64{0.01, 0.01, 0.01},
			fcT:    0,
			pT:     0.05,
			expect: []Significance{Downregulated, Upregulated, Downregulated},
		},
		{
			name:   "missing values",
			fc:     []float64{nan, 3},
			p:      []float64{0.001, nan},
			fcT:    1,
			pT:     0.05,
			expect: []Significance{NonSignificant, NonSignificant},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.fc, tt.p, tt.fcT, tt.pT)
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("row %d: got %s, want %s", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestClassifyExhaustive(t *testing.T) {
	f := MockData(KindVolcano, MockSeed)
	fc, _ := f.Float64s(ColLog2FC)
	p, _ := f.Float64s(ColPValue)
	for i, c := range Classify(fc, p, 1, 0.05) {
		up := fc[i] >= 1 && p[i] <= 0.05
		down := fc[i] <= -1 && p[i] <= 0.05
		want := NonSignificant
		if up {
			want = Upregulated
		}
		if down {
			want = Downregulated
		}
		if c != want {
			t.Fatalf("row %d (fc=%g p=%g): got %s, want %s", i, fc[i], p[i], c, want)
		}
	}
}

func TestNegLog10(t *testing.T) {
	got := negLog10([]float64{1, 0.01, 0})
	if got[0] != 0 || math.Abs(got[1]-2) > 1e-12 || !math.IsInf(got[2], 1) {
		t.Errorf("negLog10 = %v", got)
	}
}
