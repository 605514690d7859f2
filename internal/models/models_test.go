package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIntFromNumber(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`5`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Int() != 5 {
		t.Fatalf("got %d, want 5", f.Int())
	}
}

func TestFlexIntFromString(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`"12"`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Int() != 12 {
		t.Fatalf("got %d, want 12", f.Int())
	}
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`"abc"`, `"1.5"`, `1.5`, `true`, `{}`} {
		var f FlexInt
		if err := json.Unmarshal([]byte(raw), &f); err == nil {
			t.Errorf("expected error for %s", raw)
		}
	}
}

func TestFlexIntNegativeParses(t *testing.T) {
	// range checking happens in validation, not decoding
	var f FlexInt
	if err := json.Unmarshal([]byte(`-1`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Int() != -1 {
		t.Fatalf("got %d, want -1", f.Int())
	}
}
