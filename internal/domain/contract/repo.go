package contract

import (
	"context"

	"github.com/critmass/availability-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Scope() ScopeRepo
	Availability() AvailabilityRepo
	PollMessage() PollMessageRepo
}

// ScopeRepo defines the contract for the scope repository
type ScopeRepo interface {
	Create(scope *entity.Scope) error
	GetByChannelID(slackChannelID string) (*entity.Scope, error)
	GetAll() ([]*entity.Scope, error)
	UpdateThreshold(scopeID int64, threshold int) error
	Delete(scopeID int64) error
}

// AvailabilityRepo defines the contract for the availability snapshot
// repository. A scope's snapshot is replaced wholesale on every
// write-through, so the only mutations are delete-all and insert.
type AvailabilityRepo interface {
	Insert(row *entity.AvailabilityRow) error
	GetByScope(scopeID int64) ([]*entity.AvailabilityRow, error)
	DeleteByScope(scopeID int64) error
}

// PollMessageRepo defines the contract for poll message bookkeeping
type PollMessageRepo interface {
	Add(msg *entity.PollMessage) error
	GetByScope(scopeID int64) ([]*entity.PollMessage, error)
	DeleteByScope(scopeID int64) error
}
