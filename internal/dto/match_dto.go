package dto

// MatchRequest is the single input of the streaming match endpoint.
type MatchRequest struct {
	Query string `json:"query" validate:"required"`
}
