package chart

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

func TestMockDataShapes(t *testing.T) {
	tests := []struct {
		kind    Kind
		rows    int
		columns []string
	}{
		{KindVolcano, 2000, []string{ColLog2FC, ColPValue, ColGeneName}},
		{KindUMAP, 1000, []string{ColUMAP1, ColUMAP2, ColCluster, ColCellName}},
		{KindHeatmap, 50, nil},
		{KindScatter, 500, []string{ColX, ColY, ColGroup}},
		{KindBox, 500, []string{ColX, ColY, ColGroup}},
		{KindBar, 500, []string{ColX, ColY, ColGroup}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := MockData(tt.kind, MockSeed)
			if f.Len() != tt.rows {
				t.Errorf("rows = %d, want %d", f.Len(), tt.rows)
			}
			if tt.columns != nil && !reflect.DeepEqual(f.Names(), tt.columns) {
				t.Errorf("columns = %v, want %v", f.Names(), tt.columns)
			}
		})
	}
}

func TestMockDataDeterministic(t *testing.T) {
	for _, k := range Kinds() {
		a := MockData(k, MockSeed)
		b := MockData(k, MockSeed)
		for j := range a.Width() {
			ca, _ := a.ColumnAt(j)
			cb, _ := b.ColumnAt(j)
			if !reflect.DeepEqual(ca.Strings(), cb.Strings()) {
				t.Fatalf("%s column %q differs between runs", k, ca.Name)
			}
		}
	}
	a, _ := MockData(KindScatter, 1).Float64s(ColX)
	b, _ := MockData(KindScatter, 2).Float64s(ColX)
	if a[0] == b[0] {
		t.Error("different seeds gave the same first value")
	}
}

func TestMockVolcanoRanges(t *testing.T) {
	f := MockData(KindVolcano, MockSeed)
	p, _ := f.Float64s(ColPValue)
	for i, v := range p {
		if v < 0 || v > 1 {
			t.Fatalf("pvalue[%d] = %g outside [0, 1]", i, v)
		}
	}
}

func TestMockHeatmap(t *testing.T) {
	f := MockData(KindHeatmap, MockSeed)
	m, rows, cols, err := HeatmapMatrix(f)
	if err != nil {
		t.Fatal(err)
	}
	r, c := m.Dims()
	if r != 50 || c != 20 {
		t.Errorf("dims = %dx%d", r, c)
	}
	if rows[0] != "Gene_1" || rows[49] != "Gene_50" || cols[0] != "Sample_1" || cols[19] != "Sample_20" {
		t.Errorf("labels = %s..%s, %s..%s", rows[0], rows[49], cols[0], cols[19])
	}
}

func TestHeatmapMatrixTextRowLabels(t *testing.T) {
	f, _ := frame.FromRecords([][]string{
		{"gene", "S1", "S2"},
		{"BRCA1", "1", "2"},
		{"TP53", "3", "4"},
	})
	m, rows, cols, err := HeatmapMatrix(f)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rows, []string{"BRCA1", "TP53"}) || !reflect.DeepEqual(cols, []string{"S1", "S2"}) {
		t.Errorf("rows = %v, cols = %v", rows, cols)
	}
	if m.At(1, 0) != 3 {
		t.Errorf("m[1,0] = %g", m.At(1, 0))
	}
	g := matrixGrid{m}
	if g.Z(0, 1) != 1 {
		t.Errorf("top-left cell = %g, want first row first column", g.Z(0, 1))
	}
}

func TestFiniteRange(t *testing.T) {
	f, _ := frame.New(frame.NumericColumn("a", []float64{3, 3, math.NaN()}))
	m, _, _ := f.Matrix()
	lo, hi, ok := finiteRange(m)
	if !ok || lo >= hi {
		t.Errorf("constant matrix range = %g..%g, %v", lo, hi, ok)
	}

	f, _ = frame.New(frame.NumericColumn("a", []float64{math.NaN()}))
	m, _, _ = f.Matrix()
	if _, _, ok := finiteRange(m); ok {
		t.Error("all-NaN matrix reported a range")
	}
}

func TestBoxGroups(t *testing.T) {
	grouped, _ := frame.New(
		frame.TextColumn(ColGroup, []string{"b", "a", "b", "c"}),
		frame.NumericColumn(ColValue, []float64{1, 2, 3, math.NaN()}),
	)
	got, err := BoxGroups(grouped)
	if err != nil {
		t.Fatal(err)
	}
	want := []BoxGroup{{"b", []float64{1, 3}}, {"a", []float64{2}}, {"c", nil}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("grouped = %+v, want %+v", got, want)
	}

	wide, _ := frame.New(
		frame.TextColumn("id", []string{"r1", "r2"}),
		frame.NumericColumn("ctrl", []float64{1, math.NaN()}),
		frame.NumericColumn("treat", []float64{4, 5}),
	)
	got, err = BoxGroups(wide)
	if err != nil {
		t.Fatal(err)
	}
	want = []BoxGroup{{"ctrl", []float64{1}}, {"treat", []float64{4, 5}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback = %+v, want %+v", got, want)
	}

	text, _ := frame.New(frame.TextColumn("id", []string{"x"}))
	if _, err := BoxGroups(text); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("text-only err = %v", err)
	}
}

func TestBarData(t *testing.T) {
	named, _ := frame.New(
		frame.NumericColumn("rank", []float64{1, 2}),
		frame.TextColumn(ColCategory, []string{"A", "B"}),
		frame.NumericColumn(ColValue, []float64{10, math.NaN()}),
	)
	labels, values, err := BarData(named)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(labels, []string{"A", "B"}) || !reflect.DeepEqual(values, []float64{10, 0}) {
		t.Errorf("named = %v %v", labels, values)
	}

	positional, _ := frame.New(
		frame.TextColumn("tissue", []string{"liver", "brain"}),
		frame.NumericColumn("reads", []float64{7, 9}),
	)
	labels, values, err = BarData(positional)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(labels, []string{"liver", "brain"}) || !reflect.DeepEqual(values, []float64{7, 9}) {
		t.Errorf("positional = %v %v", labels, values)
	}

	narrow, _ := frame.New(frame.NumericColumn("only", []float64{1}))
	if _, _, err := BarData(narrow); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("one column err = %v", err)
	}
	textual, _ := frame.New(
		frame.TextColumn("a", []string{"x"}),
		frame.TextColumn("b", []string{"y"}),
	)
	if _, _, err := BarData(textual); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("text values err = %v", err)
	}
}

func TestBarLayers(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		values []float64
		cats   []string
		layers [][]float64
	}{
		{
			name:   "unique",
			labels: []string{"A", "B"},
			values: []float64{1, 2},
			cats:   []string{"A", "B"},
			layers: [][]float64{{1, 2}},
		},
		{
			name:   "repeated",
			labels: []string{"A", "B", "A", "C", "A"},
			values: []float64{1, 2, 3, 4, 5},
			cats:   []string{"A", "B", "C"},
			layers: [][]float64{{1, 2, 4}, {3, 0, 0}, {5, 0, 0}},
		},
		{
			name:   "repeat of a later slot",
			labels: []string{"A", "B", "B", "A"},
			values: []float64{1, 2, 3, 4},
			cats:   []string{"A", "B"},
			layers: [][]float64{{1, 2}, {4, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cats, layers := BarLayers(tt.labels, tt.values)
			if !reflect.DeepEqual(cats, tt.cats) || !reflect.DeepEqual(layers, tt.layers) {
				t.Errorf("BarLayers = %v %v, want %v %v", cats, layers, tt.cats, tt.layers)
			}
		})
	}
}
