package pipeline

import (
	"testing"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"
)

func TestApplyMergesOnlySetFields(t *testing.T) {
	s := NewState("cozy winter vibes")

	s = s.Apply(Update{
		AnalystThoughts: "user wants warmth",
		RefinedKeywords: []string{"cozy", "winter", "fleece"},
	})

	if s.UserQuery != "cozy winter vibes" {
		t.Errorf("UserQuery changed: %q", s.UserQuery)
	}
	if s.AnalystThoughts != "user wants warmth" {
		t.Errorf("AnalystThoughts = %q", s.AnalystThoughts)
	}
	if s.StylistPitch != "" || s.Error != "" {
		t.Error("unset fields must stay zero")
	}

	// A later update must not wipe earlier fields
	s = s.Apply(Update{StylistPitch: "here is your look"})
	if s.AnalystThoughts != "user wants warmth" {
		t.Error("earlier stage output was clobbered by an unrelated update")
	}
	if s.StylistPitch != "here is your look" {
		t.Errorf("StylistPitch = %q", s.StylistPitch)
	}
}

func TestApplyEmptySliceCountsAsSet(t *testing.T) {
	s := NewState("q")
	s = s.Apply(Update{RetrievedProducts: []entity.ProductMatch{{Id: "p1"}}})
	s = s.Apply(Update{RetrievedProducts: []entity.ProductMatch{}})

	if s.RetrievedProducts == nil {
		t.Fatal("empty retrieval result should overwrite, not be ignored")
	}
	if len(s.RetrievedProducts) != 0 {
		t.Errorf("len = %d, want 0", len(s.RetrievedProducts))
	}
}

func TestApplyNilSliceLeavesPrevious(t *testing.T) {
	s := NewState("q")
	s = s.Apply(Update{RefinedKeywords: []string{"a", "b"}})
	s = s.Apply(Update{StylistPitch: "pitch"})

	if len(s.RefinedKeywords) != 2 {
		t.Errorf("keywords lost across updates: %v", s.RefinedKeywords)
	}
}

func TestApplyValueSemantics(t *testing.T) {
	original := NewState("q").Apply(Update{AnalystThoughts: "first"})
	derived := original.Apply(Update{AnalystThoughts: "second"})

	if original.AnalystThoughts != "first" {
		t.Error("Apply mutated its receiver")
	}
	if derived.AnalystThoughts != "second" {
		t.Errorf("derived.AnalystThoughts = %q", derived.AnalystThoughts)
	}
}
