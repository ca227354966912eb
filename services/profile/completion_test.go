package profile

import (
	"math"
	"testing"
)

func TestScoreBounds(t *testing.T) {
	if got := DefaultChecklist.Score(map[string]any{}); got != 0 {
		t.Errorf("empty profile scored %d, want 0", got)
	}

	full := map[string]any{}
	for _, f := range DefaultChecklist.Fields {
		full[f] = "set"
	}
	if got := DefaultChecklist.Score(full); got != 100 {
		t.Errorf("full profile scored %d, want 100", got)
	}
}

func TestScoreRounding(t *testing.T) {
	doc := map[string]any{}
	total := len(DefaultChecklist.Fields)
	for i, f := range DefaultChecklist.Fields {
		if i >= total/2 {
			break
		}
		doc[f] = "set"
	}
	want := int(math.Round(float64(total/2) / float64(total) * 100))
	if got := DefaultChecklist.Score(doc); got != want {
		t.Errorf("half-filled profile scored %d, want %d", got, want)
	}
}

func TestScoreMonotonic(t *testing.T) {
	doc := map[string]any{}
	prev := 0
	for _, f := range DefaultChecklist.Fields {
		doc[f] = "set"
		got := DefaultChecklist.Score(doc)
		if got < prev {
			t.Fatalf("score dropped from %d to %d after filling %q", prev, got, f)
		}
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of range after filling %q", got, f)
		}
		prev = got
	}
}

func TestScoreFilledSemantics(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		filled bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"blank string", "   ", false},
		{"text", "Jaipur", true},
		{"empty slice", []string{}, false},
		{"slice", []string{"a@b.com"}, true},
		{"empty any slice", []any{}, false},
		{"zero int", 0, true},
		{"bool false", false, true},
	}
	checklist := Checklist{Version: "test", Fields: []string{"field"}}
	for _, c := range cases {
		got := checklist.Score(map[string]any{"field": c.value})
		want := 0
		if c.filled {
			want = 100
		}
		if got != want {
			t.Errorf("%s: scored %d, want %d", c.name, got, want)
		}
	}
}

func TestDefaultChecklistExcludesSystemFields(t *testing.T) {
	for _, f := range DefaultChecklist.Fields {
		switch f {
		case "id", "firebaseUid", "roles", "profileCompletion", "createdAt", "updatedAt":
			t.Errorf("system field %q must not be scored", f)
		}
	}
}
