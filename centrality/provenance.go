// SPDX-License-Identifier: MIT

package centrality

// RingCount is the number of EPD rings, and so the number of feature columns.
const RingCount = 16

// Table names inside a source container.
const (
	TableRingSums        = "ring_sums"
	TableImpactParameter = "impact_parameter"
	TableTPCMultiplicity = "tpc_multiplicity"
)

// Provenance tells whether a run ingests simulated or real detector data.
type Provenance uint8

const (
	// Real is recorded detector data: the target is the TPC multiplicity.
	Real Provenance = iota
	// Simulated is simulation output: the target is the impact parameter.
	Simulated
)

// ProvenanceOf maps the simulated_data flag to a Provenance.
func ProvenanceOf(simulated bool) Provenance {
	if simulated {
		return Simulated
	}

	return Real
}

// String implements fmt.Stringer.
func (p Provenance) String() string {
	if p == Simulated {
		return "simulated"
	}

	return "real"
}

// TargetTable is the table supplying the regression target.
func (p Provenance) TargetTable() string {
	if p == Simulated {
		return TableImpactParameter
	}

	return TableTPCMultiplicity
}

// EvaluationTable is the table supplying the evaluation vector, or "" when
// the evaluation vector is derived from the target (real data).
func (p Provenance) EvaluationTable() string {
	if p == Simulated {
		return TableTPCMultiplicity
	}

	return ""
}

// State is the population state of a Model.
type State uint8

const (
	// Unpopulated is the state before a successful Ingest (and after a failed one).
	Unpopulated State = iota
	// Populated means the Model holds a validated Dataset.
	Populated
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Populated {
		return "populated"
	}

	return "unpopulated"
}
