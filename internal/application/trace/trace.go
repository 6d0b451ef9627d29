// Package trace writes per-tick simulation state as CSV and summarizes runs.
package trace

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/younwookim/coinhop/internal/application/system"
)

// Record is one tick of simulation state
type Record struct {
	Frame         int     `csv:"frame"`
	PlayerX       float64 `csv:"player_x"`
	PlayerY       float64 `csv:"player_y"`
	PlayerVX      float64 `csv:"player_vx"`
	PlayerVY      float64 `csv:"player_vy"`
	Grounded      bool    `csv:"grounded"`
	Invulnerable  bool    `csv:"invulnerable"`
	Lives         int     `csv:"lives"`
	Score         int     `csv:"score"`
	CoinsLeft     int     `csv:"coins_left"`
	EnemiesActive int     `csv:"enemies_active"`
}

// Capture snapshots the world after a tick
func Capture(w *system.World) Record {
	p := w.Player

	active := 0
	for _, e := range w.Level.Enemies {
		if e.Active {
			active++
		}
	}

	return Record{
		Frame:         w.Frame,
		PlayerX:       p.X,
		PlayerY:       p.Y,
		PlayerVX:      p.VX,
		PlayerVY:      p.VY,
		Grounded:      p.Grounded,
		Invulnerable:  p.Invulnerable,
		Lives:         p.Lives,
		Score:         p.Score,
		CoinsLeft:     w.Level.RemainingCoins(),
		EnemiesActive: active,
	}
}

// Writer streams records to CSV. The header is written with the first batch.
type Writer struct {
	out           io.Writer
	pending       []Record
	batch         int
	headerWritten bool
}

// NewWriter creates a writer that flushes every batch records.
// batch <= 0 buffers until Flush.
func NewWriter(out io.Writer, batch int) *Writer {
	return &Writer{out: out, batch: batch}
}

// Write buffers a record and flushes when the batch is full
func (w *Writer) Write(rec Record) error {
	w.pending = append(w.pending, rec)
	if w.batch > 0 && len(w.pending) >= w.batch {
		return w.Flush()
	}
	return nil
}

// Flush writes buffered records
func (w *Writer) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}

	if !w.headerWritten {
		if err := gocsv.Marshal(w.pending, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		w.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(w.pending, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	w.pending = w.pending[:0]
	return nil
}

// Read parses a trace written by Writer
func Read(in io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}
