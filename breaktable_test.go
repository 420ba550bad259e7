package nuspell

import "testing"

func TestNewBreakTablePartitions(t *testing.T) {
	bt := newBreakTable([]string{"-", "^-", "-$", "/"})
	if len(bt.Middle) != 2 {
		t.Fatalf("expected 2 middle patterns, got %v", bt.Middle)
	}
	if len(bt.Start) != 1 || bt.Start[0] != "-" {
		t.Fatalf("expected start pattern %q, got %v", "-", bt.Start)
	}
	if len(bt.End) != 1 || bt.End[0] != "-" {
		t.Fatalf("expected end pattern %q, got %v", "-", bt.End)
	}
}

func TestBreakTableBothAnchoredBecomesMiddle(t *testing.T) {
	bt := newBreakTable([]string{"^-$"})
	if len(bt.Start) != 0 || len(bt.End) != 0 {
		t.Fatalf("expected no start/end patterns, got start=%v end=%v", bt.Start, bt.End)
	}
	if len(bt.Middle) != 1 || bt.Middle[0] != "-" {
		t.Fatalf("expected one middle pattern %q, got %v", "-", bt.Middle)
	}
}

func TestTryBreaksStart(t *testing.T) {
	bt := newBreakTable([]string{"^co-"})
	spell := func(w string) bool { return w == "worker" }
	if !bt.TryBreaks("co-worker", spell) {
		t.Fatalf("expected start-pattern break to succeed")
	}
}

func TestTryBreaksMiddleLeftmostOnly(t *testing.T) {
	bt := newBreakTable([]string{"-"})
	var tried []string
	spell := func(w string) bool {
		tried = append(tried, w)
		return w == "co" || w == "op-worker"
	}
	if !bt.TryBreaks("co-op-worker", spell) {
		t.Fatalf("expected a middle break to succeed")
	}
	if tried[0] != "co" {
		t.Fatalf("expected the leftmost split to be tried first, got %v", tried)
	}
}

func TestTryBreaksNoMatch(t *testing.T) {
	bt := newBreakTable(DefaultBreaks)
	if bt.TryBreaks("plainword", func(string) bool { return false }) {
		t.Fatalf("expected no break to succeed")
	}
}
