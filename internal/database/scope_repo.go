package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/entity"
)

type scopeRepo struct {
	db dbConn
}

func newScopeRepo(db dbConn) contract.ScopeRepo {
	return &scopeRepo{db: db}
}

func (r *scopeRepo) Create(scope *entity.Scope) error {
	query := `
		INSERT INTO scopes (slack_channel_id, slack_channel_name, threshold)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		scope.SlackChannelID,
		scope.SlackChannelName,
		scope.Threshold,
	)
	if err != nil {
		return fmt.Errorf("failed to create scope: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	scope.ID = id
	return nil
}

func (r *scopeRepo) GetByChannelID(slackChannelID string) (*entity.Scope, error) {
	scope := &entity.Scope{}
	query := `
		SELECT id, slack_channel_id, slack_channel_name, threshold, created_at, updated_at
		FROM scopes
		WHERE slack_channel_id = ?
	`

	err := r.db.QueryRow(query, slackChannelID).Scan(
		&scope.ID,
		&scope.SlackChannelID,
		&scope.SlackChannelName,
		&scope.Threshold,
		&scope.CreatedAt,
		&scope.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scope: %w", err)
	}

	return scope, nil
}

func (r *scopeRepo) GetAll() ([]*entity.Scope, error) {
	query := `
		SELECT id, slack_channel_id, slack_channel_name, threshold, created_at, updated_at
		FROM scopes
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scopes: %w", err)
	}
	defer rows.Close()

	var scopes []*entity.Scope
	for rows.Next() {
		scope := &entity.Scope{}
		err := rows.Scan(
			&scope.ID,
			&scope.SlackChannelID,
			&scope.SlackChannelName,
			&scope.Threshold,
			&scope.CreatedAt,
			&scope.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scope: %w", err)
		}
		scopes = append(scopes, scope)
	}

	return scopes, nil
}

func (r *scopeRepo) UpdateThreshold(scopeID int64, threshold int) error {
	query := `UPDATE scopes SET threshold = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, threshold, time.Now(), scopeID)
	if err != nil {
		return fmt.Errorf("failed to update threshold: %w", err)
	}

	return nil
}

func (r *scopeRepo) Delete(scopeID int64) error {
	query := `DELETE FROM scopes WHERE id = ?`

	_, err := r.db.Exec(query, scopeID)
	if err != nil {
		return fmt.Errorf("failed to delete scope: %w", err)
	}

	return nil
}
