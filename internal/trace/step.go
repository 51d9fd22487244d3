package trace

import (
	"encoding/json"
	"fmt"

	"github.com/hullscope/hullscope/internal/geom"
)

// Algorithm identifies which hull algorithm produced a trace.
type Algorithm string

const (
	Jarvis Algorithm = "jarvis"
	Graham Algorithm = "graham"
)

// DisplayName is the human-facing name used in result payloads.
func (a Algorithm) DisplayName() string {
	switch a {
	case Jarvis:
		return "Jarvis March"
	case Graham:
		return "Graham Scan"
	default:
		return string(a)
	}
}

// Kind tags a step variant.
type Kind string

const (
	// KindCandidate records a gift-wrapping probe of one point against the
	// current best successor.
	KindCandidate Kind = "candidate"
	// KindChosen records the successor the gift-wrap selected.
	KindChosen Kind = "chosen"
	// KindPush records a point appended to a scan chain.
	KindPush Kind = "push"
	// KindPop records a point removed from a scan chain for making a
	// non-left turn.
	KindPop Kind = "pop"
	// KindFinal carries the completed hull.
	KindFinal Kind = "final"
)

// Half names the scan chain a stack snapshot belongs to.
type Half string

const (
	HalfLower    Half = "lower"
	HalfUpper    Half = "upper"
	HalfCombined Half = "combined" // final steps only
)

// Step is one recorded moment of an algorithm run. Kind selects which of
// the optional payload fields are meaningful; the rest stay zero.
type Step struct {
	Kind        Kind
	Description string

	// Gift-wrapping payloads.
	HullSoFar []geom.Point // hull vertices accepted so far
	From      *geom.Point  // anchor of the highlighted edge
	To        *geom.Point  // probe or selected successor
	Best      *geom.Point  // best successor before this probe

	// Sort-and-scan payloads.
	Part    Half
	Added   *geom.Point
	Removed *geom.Point
	Probe   *geom.Point // point under test when a pop happens
	Stack   []geom.Point

	// Final payload.
	FinalHull []geom.Point
}

// stepWire is the JSON shape steps travel in. Field names match the
// compute service responses.
type stepWire struct {
	Type        string       `json:"type"`
	Description string       `json:"step_description"`
	HullSoFar   []geom.Point `json:"hull_so_far,omitempty"`
	FromPoint   *geom.Point  `json:"from_point,omitempty"`
	ToPoint     *geom.Point  `json:"to_point,omitempty"`
	CurrentBest *geom.Point  `json:"current_best,omitempty"`
	HullPart    string       `json:"hull_part,omitempty"`
	AddedPoint  *geom.Point  `json:"added_point,omitempty"`
	RemovedPt   *geom.Point  `json:"removed_point,omitempty"`
	Stack       []geom.Point `json:"stack,omitempty"`
	CurrentPt   *geom.Point  `json:"current_point,omitempty"`
	FinalHull   []geom.Point `json:"final_hull,omitempty"`
}

func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepWire{
		Type:        string(s.Kind),
		Description: s.Description,
		HullSoFar:   s.HullSoFar,
		FromPoint:   s.From,
		ToPoint:     s.To,
		CurrentBest: s.Best,
		HullPart:    string(s.Part),
		AddedPoint:  s.Added,
		RemovedPt:   s.Removed,
		Stack:       s.Stack,
		CurrentPt:   s.Probe,
		FinalHull:   s.FinalHull,
	})
}

func (s *Step) UnmarshalJSON(data []byte) error {
	var w stepWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind := Kind(w.Type)
	switch kind {
	case KindCandidate, KindChosen, KindPush, KindPop, KindFinal:
	default:
		return fmt.Errorf("trace: unknown step type %q", w.Type)
	}
	switch Half(w.HullPart) {
	case HalfLower, HalfUpper, HalfCombined, "":
	default:
		return fmt.Errorf("trace: unknown hull part %q", w.HullPart)
	}
	*s = Step{
		Kind:        kind,
		Description: w.Description,
		HullSoFar:   w.HullSoFar,
		From:        w.FromPoint,
		To:          w.ToPoint,
		Best:        w.CurrentBest,
		Part:        Half(w.HullPart),
		Added:       w.AddedPoint,
		Removed:     w.RemovedPt,
		Probe:       w.CurrentPt,
		Stack:       w.Stack,
		FinalHull:   w.FinalHull,
	}
	return nil
}
