package models

import "time"

// Match is a recorded padel match. The four player slots are nullable: open
// matches can have fewer than four confirmed players.
type Match struct {
	ID          string     `bson:"id" json:"id"`
	CommunityID string     `bson:"communityId" json:"communityId"`
	Player1ID   *string    `bson:"player1Id" json:"player1Id"`
	Player2ID   *string    `bson:"player2Id" json:"player2Id"`
	Player3ID   *string    `bson:"player3Id" json:"player3Id"`
	Player4ID   *string    `bson:"player4Id" json:"player4Id"`
	CourtNumber string     `bson:"courtNumber" json:"courtNumber"`
	StartTime   *time.Time `bson:"startTime" json:"startTime"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// PlayerIDs returns the confirmed player ids, skipping empty slots.
func (m *Match) PlayerIDs() []string {
	var ids []string
	for _, p := range []*string{m.Player1ID, m.Player2ID, m.Player3ID, m.Player4ID} {
		if p != nil && *p != "" {
			ids = append(ids, *p)
		}
	}
	return ids
}
