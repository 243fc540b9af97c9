package store

import (
	"encoding/json"
	"io"
	"math"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
)

type ExportData struct {
	ID            string      `json:"id"`
	M1            float64     `json:"m1"`
	M2            float64     `json:"m2"`
	OrbitalRadius float64     `json:"orbital_radius"`
	Extent        float64     `json:"extent"`
	Rows          int         `json:"rows"`
	Cols          int         `json:"cols"`
	Field         [][]float64 `json:"field"`
}

// ExportJSON writes a run as a single JSON document with the field as
// nested row arrays. JSON has no representation for ±Inf, so singular
// samples are clamped to the finite range of the field; the CSV is
// the lossless format.
func ExportJSON(w io.Writer, meta *RunMetadata, z *mesh.Matrix) error {
	min, max, ok := z.FiniteRange()
	if !ok {
		min, max = 0, 0
	}

	data := ExportData{
		ID:            meta.ID,
		M1:            meta.M1,
		M2:            meta.M2,
		OrbitalRadius: meta.OrbitalRadius,
		Extent:        meta.Extent,
		Rows:          meta.Rows,
		Cols:          meta.Cols,
		Field:         make([][]float64, z.Rows),
	}
	for i := 0; i < z.Rows; i++ {
		row := make([]float64, z.Cols)
		for j := 0; j < z.Cols; j++ {
			v := z.At(i, j)
			switch {
			case math.IsInf(v, -1) || math.IsNaN(v):
				v = min
			case math.IsInf(v, 1):
				v = max
			}
			row[j] = v
		}
		data.Field[i] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
