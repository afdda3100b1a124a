package service

import (
	"context"
	"testing"

	"github.com/critmass/availability-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreatePoll_BlockLayout(t *testing.T) {
	svc, slackClient, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	// 12 days round up to three messages of five dates each.
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "1.1", nil)
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "1.2", nil)
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "1.3", nil)

	blocks, err := svc.CreatePoll(ctx, testChannel, 12)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	today := entity.Today()
	for i, block := range blocks {
		assert.Equal(t, today.AddDays(5*i), block.Anchor, "block %d anchor", i)
		require.Len(t, block.Dates, 5)
		require.Len(t, block.Labels, 5)
		for j, date := range block.Dates {
			assert.Equal(t, block.Anchor.AddDays(j), date)
		}
	}
}

func TestCreatePoll_LabelsShowAvailableUsers(t *testing.T) {
	svc, slackClient, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	today := entity.Today()
	_, err := svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{today.AddDays(1)})
	require.NoError(t, err)
	_, err = svc.AddAvailability(ctx, testChannel, testUser("U2", "bob"), []entity.Date{today.AddDays(1)})
	require.NoError(t, err)

	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "1.1", nil)

	blocks, err := svc.CreatePoll(ctx, testChannel, 5)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, today.Display(), blocks[0].Labels[0])
	assert.Equal(t, today.AddDays(1).Display()+" : alice, bob", blocks[0].Labels[1])
}

func TestCreatePoll_ReplacesPriorPoll(t *testing.T) {
	svc, slackClient, dm := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "1.1", nil)
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "1.2", nil)

	_, err := svc.CreatePoll(ctx, testChannel, 10)
	require.NoError(t, err)

	// The second poll deletes the first one's messages.
	slackClient.EXPECT().DeleteMessage(testChannel, "1.1").Return(testChannel, "1.1", nil)
	slackClient.EXPECT().DeleteMessage(testChannel, "1.2").Return(testChannel, "1.2", nil)
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any(), gomock.Any()).Return(testChannel, "2.1", nil)

	_, err = svc.CreatePoll(ctx, testChannel, 5)
	require.NoError(t, err)

	st, ok := svc.registry.get(testChannel)
	require.True(t, ok)
	msgs, err := dm.PollMessage().GetByScope(st.id)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "2.1", msgs[0].ChannelTS)
}

func TestRenderPollBlock_ReflectsToggles(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	anchor := entity.Today()
	date := anchor.AddDays(2)

	_, err := svc.ToggleAvailability(ctx, testChannel, testUser("U1", "alice"), date)
	require.NoError(t, err)

	block, err := svc.RenderPollBlock(testChannel, anchor)
	require.NoError(t, err)
	assert.Equal(t, date.Display()+" : alice", block.Labels[2])

	_, err = svc.ToggleAvailability(ctx, testChannel, testUser("U1", "alice"), date)
	require.NoError(t, err)

	block, err = svc.RenderPollBlock(testChannel, anchor)
	require.NoError(t, err)
	assert.Equal(t, date.Display(), block.Labels[2], "label reverts once nobody is available")
}
