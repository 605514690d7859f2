package lifecycle

import "testing"

func TestInitialStatus(t *testing.T) {
	for _, kind := range []Kind{KindRequest, KindApplication, KindQuote} {
		if got := InitialStatus(kind); got != StatusPending {
			t.Fatalf("initial status for %s: got %q", kind, got)
		}
	}
}

func TestValidStatus(t *testing.T) {
	cases := []struct {
		kind   Kind
		status string
		want   bool
	}{
		{KindRequest, "pending", true},
		{KindRequest, "in_progress", true},
		{KindRequest, "completed", true},
		{KindRequest, "cancelled", true},
		{KindRequest, "unknown", false},
		{KindRequest, "reviewing", false},
		{KindRequest, "", false},
		{KindApplication, "reviewing", true},
		{KindApplication, "accepted", true},
		{KindApplication, "rejected", true},
		{KindApplication, "in_progress", false},
		{KindQuote, "accepted", true},
		{KindQuote, "completed", false},
	}
	for _, tc := range cases {
		if got := ValidStatus(tc.kind, tc.status); got != tc.want {
			t.Errorf("ValidStatus(%s, %q) = %v, want %v", tc.kind, tc.status, got, tc.want)
		}
	}
}

func TestCanTransitionIgnoresCurrentStatus(t *testing.T) {
	// the graph is fully connected: every member reaches every member,
	// including itself
	statuses := Statuses(KindRequest)
	for _, from := range statuses {
		for _, to := range statuses {
			if !CanTransition(KindRequest, from, to) {
				t.Errorf("expected %q -> %q to be allowed", from, to)
			}
		}
	}
	if CanTransition(KindRequest, "completed", "unknown") {
		t.Error("expected transition to non-member status to be rejected")
	}
}

func TestQuoteActionStatus(t *testing.T) {
	if s, ok := QuoteActionStatus("accept"); !ok || s != QuoteAccepted {
		t.Fatalf("accept: got %q, %v", s, ok)
	}
	if s, ok := QuoteActionStatus("reject"); !ok || s != QuoteRejected {
		t.Fatalf("reject: got %q, %v", s, ok)
	}
	if _, ok := QuoteActionStatus("approve"); ok {
		t.Fatal("expected unknown action to be rejected")
	}
}
