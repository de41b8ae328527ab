// SPDX-License-Identifier: MIT

package centrality

import (
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// Dataset is the populated, immutable result of an ingestion.
//
// Every accessor returns copies, so a consumer can never mutate what another
// stage reads. For real data the evaluation vector is not stored: it is the
// target, exposed through Evaluation as an exact copy.
type Dataset struct {
	runID      uuid.UUID
	provenance Provenance
	source     string
	features   *matrix.Dense // events × RingCount, event-major
	target     []float64     // len == events
	evaluation []float64     // len == events when simulated; nil when derived from target
}

var _ zapcore.ObjectMarshaler = (*Dataset)(nil)

// RunID identifies the analysis run that produced the Dataset.
func (d *Dataset) RunID() uuid.UUID { return d.runID }

// Provenance reports whether the data is simulated or real.
func (d *Dataset) Provenance() Provenance { return d.provenance }

// Simulated is shorthand for Provenance() == Simulated.
func (d *Dataset) Simulated() bool { return d.provenance == Simulated }

// Source is the identifier the Dataset was ingested from.
func (d *Dataset) Source() string { return d.source }

// Events is the number of events (rows of the feature matrix).
func (d *Dataset) Events() int { return d.features.Rows() }

// Rings is the number of feature columns; always RingCount.
func (d *Dataset) Rings() int { return d.features.Cols() }

// Features returns a copy of the events × 16 feature matrix.
func (d *Dataset) Features() *matrix.Dense { return d.features.CloneDense() }

// Feature returns the ring sum of one ring in one event.
func (d *Dataset) Feature(event, ring int) (float64, error) {
	return d.features.At(event, ring)
}

// FeatureRow returns a copy of the 16 ring sums of one event.
func (d *Dataset) FeatureRow(event int) ([]float64, error) {
	return d.features.Row(event)
}

// Target returns a copy of the per-event regression target: impact
// parameter when simulated, TPC multiplicity when real.
func (d *Dataset) Target() []float64 { return cloneVec(d.target) }

// Evaluation returns a copy of the per-event evaluation vector: TPC
// multiplicity when simulated, the target itself when real.
func (d *Dataset) Evaluation() []float64 {
	if d.evaluation == nil {
		return cloneVec(d.target)
	}

	return cloneVec(d.evaluation)
}

// EvaluationAliasesTarget reports whether Evaluation is derived from Target
// (real data) rather than read from its own table.
func (d *Dataset) EvaluationAliasesTarget() bool { return d.evaluation == nil }

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (d *Dataset) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("run_id", d.runID.String())
	enc.AddString("provenance", d.provenance.String())
	enc.AddString("source", d.source)
	enc.AddInt("events", d.Events())
	enc.AddInt("rings", d.Rings())
	enc.AddBool("evaluation_aliases_target", d.EvaluationAliasesTarget())

	return nil
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
