package chart

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matzehuels/bioplot/pkg/frame"
)

// MockSeed is the seed used for generated data.
const MockSeed = 42

// Mock data sizes.
const (
	mockGenes       = 2000
	mockCells       = 1000
	mockHeatmapRows = 50
	mockHeatmapCols = 20
	mockPoints      = 500
)

// MockData generates a deterministic demonstration dataset shaped for kind.
// The same seed always yields the same frame.
func MockData(kind Kind, seed uint64) *frame.Frame {
	src := rand.NewPCG(seed, seed)
	rnd := rand.New(src)

	var f *frame.Frame
	var err error
	switch kind {
	case KindVolcano:
		fc := sample(distuv.Normal{Mu: 0, Sigma: 2, Src: src}, mockGenes)
		pv := sample(distuv.Beta{Alpha: 0.5, Beta: 5, Src: src}, mockGenes)
		f, err = frame.New(
			frame.NumericColumn(ColLog2FC, fc),
			frame.NumericColumn(ColPValue, pv),
			frame.TextColumn(ColGeneName, names("Gene", mockGenes)),
		)
	case KindUMAP:
		normal := distuv.Normal{Mu: 0, Sigma: 5, Src: src}
		u1 := sample(normal, mockCells)
		u2 := sample(normal, mockCells)
		clusters := make([]string, mockCells)
		for i := range clusters {
			clusters[i] = fmt.Sprintf("Cluster_%d", rnd.IntN(4)+1)
		}
		f, err = frame.New(
			frame.NumericColumn(ColUMAP1, u1),
			frame.NumericColumn(ColUMAP2, u2),
			frame.TextColumn(ColCluster, clusters),
			frame.TextColumn(ColCellName, names("Cell", mockCells)),
		)
	case KindHeatmap:
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		cols := make([]*frame.Column, mockHeatmapCols)
		values := sample(normal, mockHeatmapRows*mockHeatmapCols)
		for j := range cols {
			col := make([]float64, mockHeatmapRows)
			for i := range col {
				col[i] = values[i*mockHeatmapCols+j]
			}
			cols[j] = frame.NumericColumn(fmt.Sprintf("Sample_%d", j+1), col)
		}
		f, err = frame.New(cols...)
		if err == nil {
			f, err = f.WithRowLabels(names("Gene", mockHeatmapRows))
		}
	default:
		normal := distuv.Normal{Mu: 50, Sigma: 15, Src: src}
		x := sample(normal, mockPoints)
		y := sample(normal, mockPoints)
		groups := make([]string, mockPoints)
		for i := range groups {
			groups[i] = []string{"A", "B", "C"}[rnd.IntN(3)]
		}
		f, err = frame.New(
			frame.NumericColumn(ColX, x),
			frame.NumericColumn(ColY, y),
			frame.TextColumn(ColGroup, groups),
		)
	}
	if err != nil {
		panic(fmt.Sprintf("chart: mock data for %s: %v", kind, err))
	}
	return f
}

type sampler interface{ Rand() float64 }

func sample(d sampler, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

func names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s_%d", prefix, i+1)
	}
	return out
}
