// Package store persists a scenario run's metadata, per-frame particle
// snapshots, and per-frame scalar metrics to disk, and loads them back
// for `particlesim list`/`preview`.
//
// Grounded on internal/storage/store.go (the JSON-metadata +
// CSV-per-row pattern, Init/Save/List/Load shape) merged with
// internal/store/export.go's ExportData idea (no separate whole-run
// JSON export is written here), re-targeted from ODE state vectors to
// particle-frame snapshots: frames.csv holds frame index, time,
// particle count, then one "x,y,z" triple per particle; metrics.csv holds the matching per-frame
// internal/metrics.Snapshot series so `preview`'s sparkline has a real
// series to plot instead of a single end-of-run summary. Run IDs use a
// uuid (github.com/google/uuid) rather than the teacher's
// "model_unixtime" string, since concurrent runs of the same scenario
// would otherwise collide.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/particlesim/internal/metrics"
	"github.com/san-kum/particlesim/internal/vecmath"
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

// RunMetadata is the run-level record persisted as metadata.json.
type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	FrameRate  float64            `json:"frame_rate"`
	FrameCount int                `json:"frame_count"`
	Metrics    map[string]float64 `json:"metrics"`
}

// FrameSnapshot is one row of the run's frames.csv.
type FrameSnapshot struct {
	Frame     uint32
	Time      float64
	Positions []vecmath.Vector3
}

// Save writes metadata.json, frames.csv, and metrics.csv under
// baseDir/<runID>/ and returns the minted run ID. metadata.json's
// summary Metrics map is the final frame's metrics.Snapshot, for a
// quick glance from `list`; the full per-frame series lives in
// metrics.csv for `preview`'s sparkline.
func (s *Store) Save(scenario string, seed int64, frameRate float64, series []metrics.Snapshot, frames []FrameSnapshot) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Seed:       seed,
		FrameRate:  frameRate,
		FrameCount: len(frames),
		Metrics:    summarize(series),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeFramesCSV(runDir, frames); err != nil {
		return "", err
	}

	if err := s.writeMetricsCSV(runDir, series); err != nil {
		return "", err
	}

	return runID, nil
}

func summarize(series []metrics.Snapshot) map[string]float64 {
	if len(series) == 0 {
		return map[string]float64{}
	}
	last := series[len(series)-1]
	return map[string]float64{
		"mean_height":      last.MeanHeight,
		"kinetic_energy":   last.KineticEnergy,
		"potential_energy": last.PotentialEnergy,
	}
}

func (s *Store) writeFramesCSV(runDir string, frames []FrameSnapshot) error {
	csvPath := filepath.Join(runDir, "frames.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(frames) == 0 {
		return nil
	}

	maxParticles := 0
	for _, f := range frames {
		if len(f.Positions) > maxParticles {
			maxParticles = len(f.Positions)
		}
	}

	header := []string{"frame", "time", "count"}
	for i := 0; i < maxParticles; i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i), fmt.Sprintf("z%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{
			strconv.FormatUint(uint64(f.Frame), 10),
			strconv.FormatFloat(f.Time, 'f', 6, 64),
			strconv.Itoa(len(f.Positions)),
		}
		for _, p := range f.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeMetricsCSV(runDir string, series []metrics.Snapshot) error {
	csvPath := filepath.Join(runDir, "metrics.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"frame", "time", "count", "mean_height", "kinetic_energy", "potential_energy"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, snap := range series {
		row := []string{
			strconv.FormatUint(uint64(snap.Frame), 10),
			strconv.FormatFloat(snap.Time, 'f', 6, 64),
			strconv.Itoa(snap.ParticleCount),
			strconv.FormatFloat(snap.MeanHeight, 'f', 6, 64),
			strconv.FormatFloat(snap.KineticEnergy, 'f', 6, 64),
			strconv.FormatFloat(snap.PotentialEnergy, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]FrameSnapshot, error) {
	csvPath := filepath.Join(s.baseDir, runID, "frames.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameSnapshot{}, nil
	}

	frames := make([]FrameSnapshot, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		frameIdx, _ := strconv.ParseUint(record[0], 10, 32)
		t, _ := strconv.ParseFloat(record[1], 64)
		count, _ := strconv.Atoi(record[2])

		positions := make([]vecmath.Vector3, 0, count)
		for i := 0; i < count; i++ {
			base := 3 + i*3
			if base+2 >= len(record) {
				break
			}
			x, _ := strconv.ParseFloat(record[base], 64)
			y, _ := strconv.ParseFloat(record[base+1], 64)
			z, _ := strconv.ParseFloat(record[base+2], 64)
			positions = append(positions, vecmath.Vector3{X: x, Y: y, Z: z})
		}
		frames = append(frames, FrameSnapshot{Frame: uint32(frameIdx), Time: t, Positions: positions})
	}
	return frames, nil
}

// LoadMetrics reads back a run's metrics.csv as the same
// metrics.Snapshot series Save was given.
func (s *Store) LoadMetrics(runID string) ([]metrics.Snapshot, error) {
	csvPath := filepath.Join(s.baseDir, runID, "metrics.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []metrics.Snapshot{}, nil
	}

	series := make([]metrics.Snapshot, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}
		frame, _ := strconv.ParseUint(record[0], 10, 32)
		t, _ := strconv.ParseFloat(record[1], 64)
		count, _ := strconv.Atoi(record[2])
		meanHeight, _ := strconv.ParseFloat(record[3], 64)
		kinetic, _ := strconv.ParseFloat(record[4], 64)
		potential, _ := strconv.ParseFloat(record[5], 64)
		series = append(series, metrics.Snapshot{
			Frame: uint32(frame), Time: t, ParticleCount: count,
			MeanHeight: meanHeight, KineticEnergy: kinetic, PotentialEnergy: potential,
		})
	}
	return series, nil
}
