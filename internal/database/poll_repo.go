package database

import (
	"fmt"

	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/entity"
)

type pollMessageRepo struct {
	db dbConn
}

func newPollMessageRepo(db dbConn) contract.PollMessageRepo {
	return &pollMessageRepo{db: db}
}

func (r *pollMessageRepo) Add(msg *entity.PollMessage) error {
	query := `
		INSERT INTO poll_messages (scope_id, channel_ts)
		VALUES (?, ?)
	`

	_, err := r.db.Exec(query, msg.ScopeID, msg.ChannelTS)
	if err != nil {
		return fmt.Errorf("failed to add poll message: %w", err)
	}

	return nil
}

func (r *pollMessageRepo) GetByScope(scopeID int64) ([]*entity.PollMessage, error) {
	query := `
		SELECT scope_id, channel_ts
		FROM poll_messages
		WHERE scope_id = ?
		ORDER BY channel_ts ASC
	`

	rows, err := r.db.Query(query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll messages: %w", err)
	}
	defer rows.Close()

	var msgs []*entity.PollMessage
	for rows.Next() {
		msg := &entity.PollMessage{}
		if err := rows.Scan(&msg.ScopeID, &msg.ChannelTS); err != nil {
			return nil, fmt.Errorf("failed to scan poll message: %w", err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (r *pollMessageRepo) DeleteByScope(scopeID int64) error {
	query := `DELETE FROM poll_messages WHERE scope_id = ?`

	_, err := r.db.Exec(query, scopeID)
	if err != nil {
		return fmt.Errorf("failed to delete poll messages: %w", err)
	}

	return nil
}
