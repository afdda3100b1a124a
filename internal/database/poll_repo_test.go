package database

import (
	"testing"

	"github.com/critmass/availability-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollMessageRepository_AddAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	scope := createTestScope(t, db, "C123456789")
	repo := newPollMessageRepo(db.conn)

	require.NoError(t, repo.Add(&entity.PollMessage{ScopeID: scope.ID, ChannelTS: "1700000000.000100"}))
	require.NoError(t, repo.Add(&entity.PollMessage{ScopeID: scope.ID, ChannelTS: "1700000000.000200"}))

	msgs, err := repo.GetByScope(scope.ID)
	require.NoError(t, err, "Failed to get poll messages")
	require.Len(t, msgs, 2)
	assert.Equal(t, "1700000000.000100", msgs[0].ChannelTS)
}

func TestPollMessageRepository_DeleteByScope(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	scope := createTestScope(t, db, "C123456789")
	repo := newPollMessageRepo(db.conn)

	require.NoError(t, repo.Add(&entity.PollMessage{ScopeID: scope.ID, ChannelTS: "1700000000.000100"}))
	require.NoError(t, repo.DeleteByScope(scope.ID), "Failed to delete poll messages")

	msgs, err := repo.GetByScope(scope.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
