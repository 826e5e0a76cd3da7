package importer

import "testing"

func TestParseBeamRow(t *testing.T) {
	in, err := parseBeamRow([]string{"6", "12", "0.10", "0.20"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.SpanM != 6 || in.UDLKNM != 12 || in.WidthM != 0.10 || in.HeightM != 0.20 {
		t.Errorf("wrong input parsed: %+v", in)
	}
}

func TestParseBeamRowShort(t *testing.T) {
	if _, err := parseBeamRow([]string{"6", "12"}); err == nil {
		t.Error("expected error for short row")
	}
}

func TestParseBeamRowBadNumber(t *testing.T) {
	if _, err := parseBeamRow([]string{"six", "12", "0.10", "0.20"}); err == nil {
		t.Error("expected error for non-numeric cell")
	}
}
