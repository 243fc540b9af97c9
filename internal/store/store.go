// Package store persists computed potential fields as one directory
// per run: metadata.json next to field.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	M1            float64   `json:"m1"`
	M2            float64   `json:"m2"`
	OrbitalRadius float64   `json:"orbital_radius"`
	Extent        float64   `json:"extent"`
	Rows          int       `json:"rows"`
	Cols          int       `json:"cols"`
	Workers       int       `json:"workers"`
	ElapsedMS     float64   `json:"elapsed_ms"`
	FieldMin      float64   `json:"field_min"`
	FieldMax      float64   `json:"field_max"`
}

// Save writes a run directory and returns its id. The field CSV holds
// one x,y,phi row per grid sample in row-major order; singular values
// serialize as ±Inf and survive a round trip.
func (s *Store) Save(cfg potential.Config, extent float64, xg, yg, z *mesh.Matrix, stats potential.Stats) (string, error) {
	runID := fmt.Sprintf("field_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	min, max, _ := z.FiniteRange()
	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		M1:            cfg.M1,
		M2:            cfg.M2,
		OrbitalRadius: cfg.OrbitalRadius,
		Extent:        extent,
		Rows:          z.Rows,
		Cols:          z.Cols,
		Workers:       stats.Workers,
		ElapsedMS:     float64(stats.Elapsed.Microseconds()) / 1000,
		FieldMin:      min,
		FieldMax:      max,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "phi"}); err != nil {
		return "", err
	}
	for i := range z.Data {
		row := []string{
			strconv.FormatFloat(xg.Data[i], 'g', -1, 64),
			strconv.FormatFloat(yg.Data[i], 'g', -1, 64),
			strconv.FormatFloat(z.Data[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()

	return runID, w.Error()
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadField reconstructs the coordinate grids and the field from a
// run's CSV, using the shape recorded in its metadata.
func (s *Store) LoadField(runID string) (xg, yg, z *mesh.Matrix, err error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	want := meta.Rows * meta.Cols
	if len(records) != want+1 {
		return nil, nil, nil, fmt.Errorf("store: run %s has %d samples, metadata says %d", runID, len(records)-1, want)
	}

	xg = mesh.NewMatrix(meta.Rows, meta.Cols)
	yg = mesh.NewMatrix(meta.Rows, meta.Cols)
	z = mesh.NewMatrix(meta.Rows, meta.Cols)

	for i, rec := range records[1:] {
		if xg.Data[i], err = strconv.ParseFloat(rec[0], 64); err != nil {
			return nil, nil, nil, err
		}
		if yg.Data[i], err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, nil, nil, err
		}
		if z.Data[i], err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, nil, nil, err
		}
	}
	return xg, yg, z, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}
