package trace

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/hullscope/hullscope/internal/geom"
)

func TestStepDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Step
	}{
		{
			name: "candidate",
			in: `{"type":"candidate","step_description":"Checking point (3, 4) against current best (5, 6)",
				"from_point":[1,2],"to_point":[3,4],"current_best":[5,6],"hull_so_far":[[1,2]]}`,
			want: Step{
				Kind:        KindCandidate,
				Description: "Checking point (3, 4) against current best (5, 6)",
				From:        &geom.Point{X: 1, Y: 2},
				To:          &geom.Point{X: 3, Y: 4},
				Best:        &geom.Point{X: 5, Y: 6},
				HullSoFar:   []geom.Point{{X: 1, Y: 2}},
			},
		},
		{
			name: "push",
			in: `{"type":"push","step_description":"Added (7, 8) to lower hull",
				"hull_part":"lower","added_point":[7,8],"stack":[[1,2],[7,8]]}`,
			want: Step{
				Kind:        KindPush,
				Description: "Added (7, 8) to lower hull",
				Part:        HalfLower,
				Added:       &geom.Point{X: 7, Y: 8},
				Stack:       []geom.Point{{X: 1, Y: 2}, {X: 7, Y: 8}},
			},
		},
		{
			name: "pop",
			in: `{"type":"pop","step_description":"Removed (7, 8) from upper hull (makes right turn)",
				"hull_part":"upper","removed_point":[7,8],"current_point":[9,1],"stack":[[1,2]]}`,
			want: Step{
				Kind:        KindPop,
				Description: "Removed (7, 8) from upper hull (makes right turn)",
				Part:        HalfUpper,
				Removed:     &geom.Point{X: 7, Y: 8},
				Probe:       &geom.Point{X: 9, Y: 1},
				Stack:       []geom.Point{{X: 1, Y: 2}},
			},
		},
		{
			name: "final with combined part",
			in:   `{"type":"final","step_description":"done","hull_part":"combined","final_hull":[[0,0],[4,0],[4,4]]}`,
			want: Step{
				Kind:        KindFinal,
				Description: "done",
				Part:        HalfCombined,
				FinalHull:   []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Step
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStepDecodeRejectsUnknownKind(t *testing.T) {
	var s Step
	err := json.Unmarshal([]byte(`{"type":"teleport","step_description":"x"}`), &s)
	if err == nil || !strings.Contains(err.Error(), "unknown step type") {
		t.Fatalf("err = %v, want unknown step type", err)
	}

	err = json.Unmarshal([]byte(`{"type":"push","step_description":"x","hull_part":"sideways"}`), &s)
	if err == nil || !strings.Contains(err.Error(), "unknown hull part") {
		t.Fatalf("err = %v, want unknown hull part", err)
	}
}

func TestStepRoundTrip(t *testing.T) {
	orig := Step{
		Kind:        KindChosen,
		Description: "Selected (4, 0) as next hull point",
		From:        &geom.Point{X: 0, Y: 0},
		To:          &geom.Point{X: 4, Y: 0},
		HullSoFar:   []geom.Point{{X: 0, Y: 0}},
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Step
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(orig, back) {
		t.Errorf("round trip: got %+v, want %+v", back, orig)
	}
}

func TestTrace(t *testing.T) {
	steps := []Step{
		{Kind: KindPush, Part: HalfLower},
		{Kind: KindFinal, FinalHull: []geom.Point{{X: 0, Y: 0}}},
	}
	tr := New(Graham, steps)

	if tr.Len() != 2 || tr.Empty() {
		t.Fatalf("Len = %d, Empty = %v", tr.Len(), tr.Empty())
	}
	if tr.Algo() != Graham {
		t.Errorf("Algo = %q", tr.Algo())
	}
	if fin, ok := tr.Final(); !ok || len(fin.FinalHull) != 1 {
		t.Errorf("Final = %+v, %v", fin, ok)
	}

	// Mutating the source slice must not leak into the trace.
	steps[0].Part = HalfUpper
	if tr.At(0).Part != HalfLower {
		t.Error("trace shares backing array with caller slice")
	}

	var zero Trace
	if !zero.Empty() {
		t.Error("zero trace should be empty")
	}
	if _, ok := zero.Final(); ok {
		t.Error("zero trace has no final step")
	}
}

func TestAlgorithmDisplayName(t *testing.T) {
	if Jarvis.DisplayName() != "Jarvis March" || Graham.DisplayName() != "Graham Scan" {
		t.Errorf("display names: %q, %q", Jarvis.DisplayName(), Graham.DisplayName())
	}
}
