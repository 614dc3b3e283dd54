package models

import "time"

// Device is one registered installation of the app for a profile. A profile
// may hold several devices; every device with a push token gets its own copy
// of each notification.
type Device struct {
	DeviceID  string    `bson:"deviceId" json:"deviceId"`
	PushToken string    `bson:"pushToken" json:"pushToken"`
	Platform  string    `bson:"platform" json:"platform"`
	LastSeen  time.Time `bson:"lastSeen" json:"lastSeen"`
}

// Profile is a player account. ResidentCommunityID links the player to the
// residential community whose courts they book.
type Profile struct {
	ID                  string    `bson:"id" json:"id"`
	FullName            string    `bson:"fullName" json:"fullName"`
	Username            string    `bson:"username" json:"username"`
	ResidentCommunityID string    `bson:"residentCommunityId" json:"residentCommunityId"`
	Devices             []Device  `bson:"devices" json:"devices"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PushTokens returns the delivery tokens of every device that has one.
func (p *Profile) PushTokens() []string {
	var tokens []string
	for _, d := range p.Devices {
		if d.PushToken != "" {
			tokens = append(tokens, d.PushToken)
		}
	}
	return tokens
}
