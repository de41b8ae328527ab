// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// VectorStats summarizes one per-event vector.
type VectorStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s VectorStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("min", s.Min)
	enc.AddFloat64("max", s.Max)
	enc.AddFloat64("mean", s.Mean)

	return nil
}

// Summary is a compact diagnostic view of a Dataset.
type Summary struct {
	Events      int
	RingMeans   []float64 // len == RingCount
	RingStdDevs []float64 // sample standard deviation per ring
	Target      VectorStats
	Evaluation  VectorStats
}

// Summarize computes per-ring means and spreads plus target/evaluation ranges.
func Summarize(d *Dataset) (Summary, error) {
	if d == nil {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrNotPopulated)
	}
	stds, means, err := matrix.ColumnStdDevs(d.features)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	return Summary{
		Events:      d.Events(),
		RingMeans:   means,
		RingStdDevs: stds,
		Target:      vectorStats(d.target),
		Evaluation:  vectorStats(d.Evaluation()),
	}, nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("events", s.Events)
	if err := enc.AddArray("ring_means", floats(s.RingMeans)); err != nil {
		return err
	}
	if err := enc.AddArray("ring_std_devs", floats(s.RingStdDevs)); err != nil {
		return err
	}
	if err := enc.AddObject("target", s.Target); err != nil {
		return err
	}

	return enc.AddObject("evaluation", s.Evaluation)
}

type floats []float64

func (f floats) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range f {
		enc.AppendFloat64(v)
	}

	return nil
}

// vectorStats assumes len(v) > 0, which ingestion guarantees.
func vectorStats(v []float64) VectorStats {
	s := VectorStats{Min: v[0], Max: v[0]}
	sum := 0.0
	for _, x := range v {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		sum += x
	}
	s.Mean = sum / float64(len(v))

	return s
}
