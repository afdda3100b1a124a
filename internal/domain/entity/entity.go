package entity

import "time"

// Scope is one isolated community context (a Slack channel) with its own
// availability map and critical mass threshold.
type Scope struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	Threshold        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// User identity is the Slack user id; the display name is presentation
// only and may be refreshed lazily.
type User struct {
	SlackUserID string
	UserName    string
	DisplayName string
}

// AvailabilityRow is one persisted (scope, date, user) membership.
type AvailabilityRow struct {
	ScopeID     int64
	Date        Date
	SlackUserID string
	UserName    string
}

// PollMessage records one posted poll message so a later poll can replace
// it.
type PollMessage struct {
	ScopeID   int64
	ChannelTS string
}

// DateRoster pairs a date with the display names of everyone available on
// it. Rosters for empty dates are never produced.
type DateRoster struct {
	Date  Date
	Names []string
}

// Alert is a critical mass latch transition. Dates is the ascending list
// of qualifying dates and is only set on a false->true transition.
type Alert struct {
	Reached   bool
	Threshold int
	Dates     []Date
}

// MutationResult reports the outcome of one availability mutation batch.
// SaveErr carries a write-through persistence failure as a warning; the
// in-memory mutation stands regardless.
type MutationResult struct {
	Dates   []Date
	Alert   *Alert
	SaveErr error
}

// ScopeStatus is the externally visible state of a scope.
type ScopeStatus struct {
	Threshold int
	Reached   bool
}

// PollBlock is one poll message worth of consecutive dates (five per
// block), each paired with its rendered button label.
type PollBlock struct {
	Anchor Date
	Dates  []Date
	Labels []string
}
