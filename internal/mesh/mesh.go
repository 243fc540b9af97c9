package mesh

import (
	"fmt"
	"math"
)

// Matrix is a dense, row-major rectangular grid of float64 samples.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

func (m *Matrix) Shape() (rows, cols int) {
	return m.Rows, m.Cols
}

func (m *Matrix) SameShape(other *Matrix) bool {
	return other != nil && m.Rows == other.Rows && m.Cols == other.Cols
}

func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.Rows, m.Cols)
	copy(c.Data, m.Data)
	return c
}

// FiniteRange returns the minimum and maximum over the finite samples.
// ok is false when the matrix holds no finite value at all.
func (m *Matrix) FiniteRange() (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range m.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

func (m *Matrix) String() string {
	return fmt.Sprintf("mesh.Matrix(%dx%d)", m.Rows, m.Cols)
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Guard against accumulated rounding on the last sample.
	out[n-1] = stop
	return out
}

// Meshgrid expands the axis vectors into coordinate matrices:
// X[i,j] = xs[j] and Y[i,j] = ys[i], so every (i,j) pair names one
// Cartesian sample point.
func Meshgrid(xs, ys []float64) (X, Y *Matrix) {
	X = NewMatrix(len(ys), len(xs))
	Y = NewMatrix(len(ys), len(xs))
	for i, y := range ys {
		for j, x := range xs {
			X.Set(i, j, x)
			Y.Set(i, j, y)
		}
	}
	return X, Y
}
