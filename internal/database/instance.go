package database

import (
	"context"
	"fmt"

	"github.com/critmass/availability-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	scopeRepo       contract.ScopeRepo
	availRepo       contract.AvailabilityRepo
	pollMessageRepo contract.PollMessageRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.scopeRepo = newScopeRepo(i.db.conn)
	i.availRepo = newAvailabilityRepo(i.db.conn)
	i.pollMessageRepo = newPollMessageRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		scopeRepo:       newScopeRepo(db),
		availRepo:       newAvailabilityRepo(db),
		pollMessageRepo: newPollMessageRepo(db),
	}
}

// Scope returns the scope repository
func (i *instance) Scope() contract.ScopeRepo {
	return i.scopeRepo
}

// Availability returns the availability repository
func (i *instance) Availability() contract.AvailabilityRepo {
	return i.availRepo
}

// PollMessage returns the poll message repository
func (i *instance) PollMessage() contract.PollMessageRepo {
	return i.pollMessageRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
