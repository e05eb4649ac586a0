package scoring

import (
	"testing"

	"faithai-profile/internal/domain"
)

func TestAgeBracket(t *testing.T) {
	tests := []struct {
		age  float64
		want string
	}{
		{12, ""},
		{18, "18-24"},
		{24.9, "18-24"},
		{25, "25-34"},
		{49, "35-49"},
		{50, "50-64"},
		{65, "65+"},
		{90, "65+"},
	}
	for _, tt := range tests {
		if got := AgeBracket(tt.age); got != tt.want {
			t.Fatalf("AgeBracket(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestDefaultSegmentKeys(t *testing.T) {
	got := DefaultSegmentKeys(domain.Answers{
		KeyRole:         "Responsable laïc",
		KeyDenomination: "Évangélique",
		KeyAge:          "35-49",
	})
	if got[SegmentRole] != "responsable_laic" || got[SegmentDenomination] != "evangelique" || got[SegmentAge] != "35-49" {
		t.Fatalf("unexpected segment keys: %v", got)
	}
	if got := DefaultSegmentKeys(domain.Answers{KeyAge: "vieux"}); got[SegmentAge] != "" {
		t.Fatalf("unknown age label must be dropped, got %q", got[SegmentAge])
	}
}

func TestSelectSegments(t *testing.T) {
	fn := SelectSegments(DefaultSegmentKeys, SegmentAge)
	got := fn(domain.Answers{KeyRole: "pasteur", KeyAge: 30})
	if len(got) != 1 || got[SegmentAge] != "25-34" {
		t.Fatalf("expected only the age segment, got %v", got)
	}
	if SelectSegments(nil, SegmentAge) != nil {
		t.Fatalf("nil function must stay nil")
	}
}
