package geom

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOrientation(t *testing.T) {
	tests := []struct {
		name    string
		p, q, r Point
		want    int
	}{
		{"counterclockwise", Point{0, 0}, Point{1, 0}, Point{1, 1}, CounterClockwise},
		{"clockwise", Point{0, 0}, Point{1, 1}, Point{1, 0}, Clockwise},
		{"collinear", Point{0, 0}, Point{1, 1}, Point{2, 2}, Collinear},
		{"collinear vertical", Point{3, 0}, Point{3, 5}, Point{3, 9}, Collinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.p, tt.q, tt.r); got != tt.want {
				t.Errorf("Orientation(%v, %v, %v) = %d, want %d", tt.p, tt.q, tt.r, got, tt.want)
			}
		})
	}
}

func TestCrossSign(t *testing.T) {
	o, a, b := Point{0, 0}, Point{1, 0}, Point{0, 1}
	if c := Cross(o, a, b); c <= 0 {
		t.Errorf("Cross(%v, %v, %v) = %g, want > 0", o, a, b, c)
	}
	if c := Cross(o, b, a); c >= 0 {
		t.Errorf("Cross(%v, %v, %v) = %g, want < 0", o, b, a, c)
	}
}

func TestDistSq(t *testing.T) {
	if d := DistSq(Point{1, 2}, Point{4, 6}); d != 25 {
		t.Errorf("DistSq = %g, want 25", d)
	}
}

func TestPointJSON(t *testing.T) {
	data, err := json.Marshal(Point{12, 47})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[12,47]" {
		t.Errorf("marshal = %s, want [12,47]", data)
	}

	var p Point
	if err := json.Unmarshal([]byte("[3.5,-2]"), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p != (Point{3.5, -2}) {
		t.Errorf("unmarshal = %v, want (3.5, -2)", p)
	}

	if err := json.Unmarshal([]byte("[1,2,3]"), &p); err == nil {
		t.Error("expected error for 3-element pair")
	}
	if err := json.Unmarshal([]byte(`{"x":1,"y":2}`), &p); err == nil {
		t.Error("expected error for object form")
	}
}

func TestDedupe(t *testing.T) {
	in := []Point{{1, 1}, {2, 2}, {1, 1}, {3, 3}, {2, 2}}
	want := []Point{{1, 1}, {2, 2}, {3, 3}}
	if got := Dedupe(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe = %v, want %v", got, want)
	}
}
