package profileRepo

import (
	"urbpaddle/models"
)

// ProfileRepository defines methods for player profile data access. It doubles
// as the recipient directory for push routing: device tokens, community
// membership and display names are all answered from profile documents.
type ProfileRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.Profile, error)
	// Create inserts a new profile record.
	Create(profile *models.Profile) error
	// UpsertDevice registers or refreshes a device (and its push token) on a profile.
	UpsertDevice(profileID string, device models.Device) error
	// PushTokensFor returns every registered push token of one profile.
	// A profile with no devices yields an empty slice, not an error.
	PushTokensFor(id string) ([]string, error)
	// MembersOf returns the profile ids of every resident of a community.
	MembersOf(communityID string) ([]string, error)
	// DisplayName returns the presentation name for a profile.
	DisplayName(id string) (string, error)
}
