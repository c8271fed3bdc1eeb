package domain

import "time"

// GuardianRelation allows GuardianID (a BEWINDVOERDER) to act on the resources
// of ClientID.
type GuardianRelation struct {
	ClientID   string
	GuardianID string
	CreatedAt  time.Time
}

// ClientOverview is what a guardian sees per client on the dashboard.
type ClientOverview struct {
	Client               User
	PendingDecisions     int
	PendingMoneyRequests int
	LastActivity         *time.Time
}
