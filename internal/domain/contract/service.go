package contract

import (
	"context"

	"github.com/critmass/availability-bot/internal/domain/entity"
)

// AvailabilityService is the engine's library-level API. Every mutating
// operation is serialized per scope, followed by a synchronous
// write-through save and a critical mass re-evaluation before it
// returns.
type AvailabilityService interface {
	// LoadScope restores (or, on first contact, creates) a scope's
	// state before any operation is accepted for it. Idempotent.
	LoadScope(ctx context.Context, slackChannelID, slackChannelName string) error

	// RestoreScopes loads every persisted scope, called once at
	// startup before the transport starts accepting events.
	RestoreScopes(ctx context.Context) error

	// ResolveUser resolves a Slack user id to a handle through the
	// shared cache.
	ResolveUser(userID string) (entity.User, error)

	// UnloadScope drops a scope from memory. With purge it also deletes
	// the persisted snapshot, for permanent removal.
	UnloadScope(ctx context.Context, slackChannelID string, purge bool) error

	// ResolveDateRange turns command tokens into an ordered sequence of
	// dates. Failures wrap domain.ErrDateParse.
	ResolveDateRange(today entity.Date, tokens []string) ([]entity.Date, error)

	// AddAvailability marks user available on dates. Idempotent per
	// date.
	AddAvailability(ctx context.Context, slackChannelID string, user entity.User, dates []entity.Date) (*entity.MutationResult, error)

	// RemoveAvailability marks user unavailable on dates; nil dates
	// means every date the user currently appears on, resolved at call
	// time. Removing an absent user is a no-op.
	RemoveAvailability(ctx context.Context, slackChannelID string, user entity.User, dates []entity.Date) (*entity.MutationResult, error)

	// ToggleAvailability flips the user's membership on one date.
	ToggleAvailability(ctx context.Context, slackChannelID string, user entity.User, date entity.Date) (*entity.MutationResult, error)

	// QueryAvailability returns rosters for the given dates, or for all
	// upcoming dates when dates is nil. Empty dates are omitted.
	QueryAvailability(slackChannelID string, dates []entity.Date) ([]entity.DateRoster, error)

	// SetThreshold sets the scope's critical mass and re-evaluates
	// immediately; the returned result may carry a transition alert.
	SetThreshold(ctx context.Context, slackChannelID string, threshold int) (*entity.MutationResult, error)

	// ScopeStatus reports the scope's threshold and latch value.
	ScopeStatus(slackChannelID string) (*entity.ScopeStatus, error)

	// CreatePoll replaces any prior poll in the scope with a new one
	// covering at least days dates, and returns the posted blocks.
	CreatePoll(ctx context.Context, slackChannelID string, days int) ([]entity.PollBlock, error)

	// RenderPollBlock re-renders the labels of the poll block anchored
	// at anchor, reflecting current availability.
	RenderPollBlock(slackChannelID string, anchor entity.Date) (*entity.PollBlock, error)
}
