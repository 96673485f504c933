package callbacks

import "testing"

func TestStatusOrdinals(t *testing.T) {
	t.Parallel()

	// Ordinal values are fixed by the external standard and must not be
	// renumbered.
	tt := []struct {
		status Status
		want   int32
	}{
		{StatusOK, 0},
		{StatusWarning, 1},
		{StatusDiscard, 2},
		{StatusError, 3},
		{StatusFatal, 4},
		{StatusPending, 5},
	}

	for _, tc := range tt {
		if int32(tc.status) != tc.want {
			t.Fatalf("ordinal mismatch for %s: want %d, got %d", tc.status, tc.want, int32(tc.status))
		}
	}
}

func TestStatusLabels(t *testing.T) {
	t.Parallel()

	known := []Status{StatusOK, StatusWarning, StatusDiscard, StatusError, StatusFatal, StatusPending}

	seen := make(map[string]Status, len(known))
	for _, s := range known {
		label := s.String()
		if label == "" {
			t.Fatalf("empty label for ordinal %d", s)
		}
		if label == "Unknown" {
			t.Fatalf("known ordinal %d maps to the out-of-range label", s)
		}
		if prev, dup := seen[label]; dup {
			t.Fatalf("label %q shared by ordinals %d and %d", label, prev, s)
		}
		seen[label] = s
	}

	for _, s := range []Status{Status(-1), Status(6), Status(1000)} {
		if got := s.String(); got != "Unknown" {
			t.Fatalf("out-of-range ordinal %d: want %q, got %q", s, "Unknown", got)
		}
	}
}
