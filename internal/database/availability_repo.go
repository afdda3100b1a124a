package database

import (
	"fmt"

	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/entity"
)

type availabilityRepo struct {
	db dbConn
}

func newAvailabilityRepo(db dbConn) contract.AvailabilityRepo {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Insert(row *entity.AvailabilityRow) error {
	query := `
		INSERT INTO availability (scope_id, date, slack_user_id, user_name)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		row.ScopeID,
		row.Date.String(),
		row.SlackUserID,
		row.UserName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert availability row: %w", err)
	}

	return nil
}

func (r *availabilityRepo) GetByScope(scopeID int64) ([]*entity.AvailabilityRow, error) {
	query := `
		SELECT scope_id, date, slack_user_id, user_name
		FROM availability
		WHERE scope_id = ?
		ORDER BY date ASC, slack_user_id ASC
	`

	rows, err := r.db.Query(query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	defer rows.Close()

	var result []*entity.AvailabilityRow
	for rows.Next() {
		row := &entity.AvailabilityRow{}
		var date string
		err := rows.Scan(
			&row.ScopeID,
			&date,
			&row.SlackUserID,
			&row.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}
		if row.Date, err = entity.ParseDate(date); err != nil {
			return nil, fmt.Errorf("failed to parse stored date: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *availabilityRepo) DeleteByScope(scopeID int64) error {
	query := `DELETE FROM availability WHERE scope_id = ?`

	_, err := r.db.Exec(query, scopeID)
	if err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}

	return nil
}
