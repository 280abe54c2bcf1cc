package bounds

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGuardCheck(t *testing.T) {
	cases := []struct {
		name  string
		guard Guard
		value float64
		want  Result
	}{
		{name: "in range", guard: New(200000, 1000), value: 5000, want: Result{Accepted: true}},
		{name: "equal to max", guard: New(200000, 1000), value: 200000, want: Result{Accepted: true}},
		{name: "above max", guard: New(200000, 1000), value: 999000, want: Result{MaxFlag: true}},
		{name: "below min", guard: New(200000, 1000), value: 500, want: Result{Accepted: true, MinFlag: true}},
		{name: "equal to min", guard: New(200000, 1000), value: 1000, want: Result{Accepted: true}},
		{name: "unbounded", guard: New(math.Inf(1), 0), value: 1e15, want: Result{Accepted: true}},
		{name: "zero value guard", guard: Guard{}, value: 42, want: Result{Accepted: true}},
		{name: "misconfigured", guard: New(10, 10), value: 50, want: Result{Accepted: true}},
		{name: "inverted", guard: New(10, 100), value: 5, want: Result{Accepted: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.guard.Check(tc.value)); diff != "" {
				t.Fatalf("check mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGuardCheckBlurResetsMaxFlag(t *testing.T) {
	g := New(100, 0)
	stale := Result{Accepted: true, MaxFlag: true}

	got := g.CheckBlur(80, stale)
	if got.MaxFlag {
		t.Fatalf("expected max flag cleared on blur, got %+v", got)
	}

	got = g.CheckBlur(120, Result{Accepted: true})
	if !got.MaxFlag {
		t.Fatalf("expected max flag raised for out of range value, got %+v", got)
	}
}

func TestGuardClamp(t *testing.T) {
	g := New(100, 10)
	if got := g.Clamp(3); got != 10 {
		t.Fatalf("Clamp(3) = %v, want 10", got)
	}
	if got := g.Clamp(50); got != 50 {
		t.Fatalf("Clamp(50) = %v, want 50", got)
	}
	if got := New(1, 5).Clamp(3); got != 3 {
		t.Fatalf("misconfigured guard must not clamp, got %v", got)
	}
}

func TestGuardValid(t *testing.T) {
	if !(Guard{}).Valid() {
		t.Fatalf("zero guard should be valid")
	}
	if New(0, 0).Valid() {
		t.Fatalf("max == min should be invalid")
	}
}
