package tools

import (
	models "pitchdeck/internal/domain/models/deck"
)

// DeckResult is what every deck tool returns: the whole deck after the
// operation, and the output mode the caller should render it in.
type DeckResult struct {
	Tool string       `json:"tool"`
	Mode string       `json:"mode"`
	Deck *models.Deck `json:"deck"`
}
