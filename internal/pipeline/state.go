package pipeline

import "github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"

// State is the request-scoped record threaded through the pipeline. One
// instance exists per run; stages never see another run's state. It is
// extended once per stage via Apply and discarded when the stream closes.
type State struct {
	UserQuery         string                `json:"user_query"`
	AnalystThoughts   string                `json:"analyst_thoughts,omitempty"`
	RefinedKeywords   []string              `json:"refined_keywords,omitempty"`
	RetrievedProducts []entity.ProductMatch `json:"retrieved_products,omitempty"`
	StylistPitch      string                `json:"stylist_pitch,omitempty"`
	Error             string                `json:"error,omitempty"`
}

// NewState builds the initial state with only the user query populated.
func NewState(query string) State {
	return State{UserQuery: query}
}

// Update is a partial state produced by one stage. Zero-valued fields are
// "not set"; a non-nil (possibly empty) slice counts as set, so a stage can
// record an empty retrieval result.
type Update struct {
	AnalystThoughts   string
	RefinedKeywords   []string
	RetrievedProducts []entity.ProductMatch
	StylistPitch      string
	Error             string
}

// Apply merges an update into the state, field by field. Set fields
// overwrite; everything else is carried forward untouched. State is passed
// and returned by value, so a stage can never mutate an earlier stage's
// output in place.
func (s State) Apply(u Update) State {
	if u.AnalystThoughts != "" {
		s.AnalystThoughts = u.AnalystThoughts
	}
	if u.RefinedKeywords != nil {
		s.RefinedKeywords = u.RefinedKeywords
	}
	if u.RetrievedProducts != nil {
		s.RetrievedProducts = u.RetrievedProducts
	}
	if u.StylistPitch != "" {
		s.StylistPitch = u.StylistPitch
	}
	if u.Error != "" {
		s.Error = u.Error
	}
	return s
}
