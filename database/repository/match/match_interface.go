package matchRepo

import (
	"urbpaddle/models"
)

// MatchRepository defines methods for match data access.
type MatchRepository interface {
	// GetByID retrieves a match by its unique ID. Returns an error wrapping
	// mongo.ErrNoDocuments when the match does not exist.
	GetByID(id string) (*models.Match, error)
	// Create inserts a new match record.
	Create(match *models.Match) error
}
