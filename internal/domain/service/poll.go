package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/entity"
	slackmsg "github.com/critmass/availability-bot/internal/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// CreatePoll posts a fresh set of poll messages covering at least days
// dates from today, five buttons per message, replacing any prior poll
// in the scope. Poll sessions are ephemeral: their truth is always read
// back from the availability store, never cached.
func (s *availabilityService) CreatePoll(ctx context.Context, slackChannelID string, days int) ([]entity.PollBlock, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = domain.DefaultPollDays
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	s.removePriorPoll(st)

	today := entity.Today()
	n := (days-1)/domain.PollBlockSize + 1

	blocks := make([]entity.PollBlock, 0, n)
	for i := 0; i < n; i++ {
		block := renderPollBlock(st, today.AddDays(domain.PollBlockSize*i))

		// The first message carries the poll title; continuations get a
		// zero width space so Slack accepts the empty text.
		title := "Poll:"
		if i > 0 {
			title = "​"
		}

		_, ts, err := s.slackClient.PostMessage(st.channelID,
			slack.MsgOptionText(title, false),
			slack.MsgOptionBlocks(slackmsg.PollMessageBlocks(st.channelID, block)...),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to post poll message: %w", err)
		}

		if err := s.dm.PollMessage().Add(&entity.PollMessage{ScopeID: st.id, ChannelTS: ts}); err != nil {
			s.log.Warn("failed to record poll message",
				zap.String("channel", st.channelID), zap.Error(err))
		}

		blocks = append(blocks, *block)
	}
	return blocks, nil
}

// removePriorPoll deletes the previous poll's messages so only one poll
// is live per scope. Caller holds st.mu.
func (s *availabilityService) removePriorPoll(st *scopeState) {
	msgs, err := s.dm.PollMessage().GetByScope(st.id)
	if err != nil {
		s.log.Warn("failed to list prior poll messages",
			zap.String("channel", st.channelID), zap.Error(err))
		return
	}
	for _, m := range msgs {
		if _, _, err := s.slackClient.DeleteMessage(st.channelID, m.ChannelTS); err != nil {
			s.log.Warn("failed to delete prior poll message",
				zap.String("channel", st.channelID),
				zap.String("ts", m.ChannelTS), zap.Error(err))
		}
	}
	if err := s.dm.PollMessage().DeleteByScope(st.id); err != nil {
		s.log.Warn("failed to clear poll message records",
			zap.String("channel", st.channelID), zap.Error(err))
	}
}

// RenderPollBlock re-renders the block anchored at anchor from current
// availability, for refreshing a message after a button press.
func (s *availabilityService) RenderPollBlock(slackChannelID string, anchor entity.Date) (*entity.PollBlock, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return renderPollBlock(st, anchor), nil
}

// renderPollBlock builds the five consecutive dates from anchor with
// their button labels. Caller holds st.mu.
func renderPollBlock(st *scopeState, anchor entity.Date) *entity.PollBlock {
	block := &entity.PollBlock{
		Anchor: anchor,
		Dates:  make([]entity.Date, 0, domain.PollBlockSize),
		Labels: make([]string, 0, domain.PollBlockSize),
	}
	for i := 0; i < domain.PollBlockSize; i++ {
		date := anchor.AddDays(i)
		block.Dates = append(block.Dates, date)
		block.Labels = append(block.Labels, pollLabel(st, date))
	}
	return block
}

// pollLabel is the date plus, when anyone is available, their names.
// Caller holds st.mu.
func pollLabel(st *scopeState, date entity.Date) string {
	label := date.Display()
	users := st.avail[date]
	if len(users) == 0 {
		return label
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.DisplayName)
	}
	sort.Strings(names)
	return label + " : " + strings.Join(names, ", ")
}
