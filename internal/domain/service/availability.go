package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/dates"
	"github.com/critmass/availability-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type availabilityService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	resolver    *dates.Resolver
	registry    *registry
	users       *userCache
	log         *zap.Logger
}

func newAvailability(dm contract.DataManager, slackClient contract.SlackClient, parser contract.DateParser, log *zap.Logger) *availabilityService {
	return &availabilityService{
		dm:          dm,
		slackClient: slackClient,
		resolver:    dates.NewResolver(parser),
		registry:    newRegistry(),
		users:       newUserCache(slackClient),
		log:         log,
	}
}

func (s *availabilityService) ResolveDateRange(today entity.Date, tokens []string) ([]entity.Date, error) {
	return s.resolver.Resolve(today, tokens)
}

func (s *availabilityService) ResolveUser(userID string) (entity.User, error) {
	return s.users.resolve(userID)
}

// LoadScope restores a scope from its persisted snapshot, or creates it
// on first contact. Missing or unreadable snapshots degrade to an empty
// store with the default threshold: this is treated as a first run,
// never as fatal.
func (s *availabilityService) LoadScope(ctx context.Context, slackChannelID, slackChannelName string) error {
	if _, ok := s.registry.get(slackChannelID); ok {
		return nil
	}

	scope, err := s.dm.Scope().GetByChannelID(slackChannelID)
	if err != nil {
		s.log.Warn("failed to read scope, starting empty",
			zap.String("channel", slackChannelID), zap.Error(err))
		scope = nil
	}

	if scope == nil {
		scope = &entity.Scope{
			SlackChannelID:   slackChannelID,
			SlackChannelName: slackChannelName,
			Threshold:        domain.DefaultThreshold,
		}
		if err := s.dm.Scope().Create(scope); err != nil {
			// Keep running in memory; the next write-through will fail
			// and warn too.
			s.log.Error("failed to create scope record",
				zap.String("channel", slackChannelID), zap.Error(err))
		}
	}

	st := newScopeState(scope.ID, slackChannelID, scope.SlackChannelName, scope.Threshold)
	s.restoreAvailability(st)
	st.reached, _ = evaluateCriticalMass(st.avail, st.threshold)

	s.registry.putIfAbsent(st)
	return nil
}

// restoreAvailability fills st.avail from the persisted snapshot,
// dropping past dates and any user that cannot be resolved to a handle.
func (s *availabilityService) restoreAvailability(st *scopeState) {
	rows, err := s.dm.Availability().GetByScope(st.id)
	if err != nil {
		s.log.Warn("failed to read availability snapshot, starting empty",
			zap.String("channel", st.channelID), zap.Error(err))
		return
	}

	today := entity.Today()
	for _, row := range rows {
		if row.Date.Before(today) || row.SlackUserID == "" {
			continue
		}

		user := entity.User{
			SlackUserID: row.SlackUserID,
			UserName:    row.UserName,
			DisplayName: row.UserName,
		}
		if user.DisplayName == "" {
			resolved, err := s.users.resolve(row.SlackUserID)
			if err != nil {
				// Drop just this user, not the whole snapshot.
				s.log.Warn("dropping unresolvable user from snapshot",
					zap.String("channel", st.channelID),
					zap.String("user", row.SlackUserID), zap.Error(err))
				continue
			}
			user = resolved
		}

		set := st.avail[row.Date]
		if set == nil {
			set = make(map[string]entity.User)
			st.avail[row.Date] = set
		}
		set[user.SlackUserID] = user
	}
}

// RestoreScopes reloads every persisted scope at startup.
func (s *availabilityService) RestoreScopes(ctx context.Context) error {
	scopes, err := s.dm.Scope().GetAll()
	if err != nil {
		return fmt.Errorf("failed to list scopes: %w", err)
	}
	for _, scope := range scopes {
		if err := s.LoadScope(ctx, scope.SlackChannelID, scope.SlackChannelName); err != nil {
			return err
		}
	}
	s.log.Info("restored scopes", zap.Int("count", len(scopes)))
	return nil
}

func (s *availabilityService) UnloadScope(ctx context.Context, slackChannelID string, purge bool) error {
	st, ok := s.registry.remove(slackChannelID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownScope, slackChannelID)
	}
	if !purge {
		return nil
	}
	if err := s.dm.Scope().Delete(st.id); err != nil {
		return fmt.Errorf("%w: deleting scope %s: %v", domain.ErrPersistence, slackChannelID, err)
	}
	return nil
}

func (s *availabilityService) scope(slackChannelID string) (*scopeState, error) {
	st, ok := s.registry.get(slackChannelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownScope, slackChannelID)
	}
	return st, nil
}

func (s *availabilityService) AddAvailability(ctx context.Context, slackChannelID string, user entity.User, dateList []entity.Date) (*entity.MutationResult, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	for _, d := range dateList {
		set := st.avail[d]
		if set == nil {
			set = make(map[string]entity.User)
			st.avail[d] = set
		}
		set[user.SlackUserID] = user
	}

	return s.finishMutation(ctx, st, dateList), nil
}

func (s *availabilityService) RemoveAvailability(ctx context.Context, slackChannelID string, user entity.User, dateList []entity.Date) (*entity.MutationResult, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if dateList == nil {
		// "all" sentinel: every date the user currently appears on,
		// resolved now, under the same lock as the removal.
		for d, set := range st.avail {
			if _, ok := set[user.SlackUserID]; ok {
				dateList = append(dateList, d)
			}
		}
		entity.SortDates(dateList)
	}

	for _, d := range dateList {
		set, ok := st.avail[d]
		if !ok {
			continue
		}
		delete(set, user.SlackUserID)
		if len(set) == 0 {
			delete(st.avail, d)
		}
	}

	return s.finishMutation(ctx, st, dateList), nil
}

func (s *availabilityService) ToggleAvailability(ctx context.Context, slackChannelID string, user entity.User, date entity.Date) (*entity.MutationResult, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	set, ok := st.avail[date]
	if !ok {
		st.avail[date] = map[string]entity.User{user.SlackUserID: user}
	} else if _, member := set[user.SlackUserID]; member {
		delete(set, user.SlackUserID)
		if len(set) == 0 {
			delete(st.avail, date)
		}
	} else {
		set[user.SlackUserID] = user
	}

	return s.finishMutation(ctx, st, []entity.Date{date}), nil
}

func (s *availabilityService) QueryAvailability(slackChannelID string, dateList []entity.Date) ([]entity.DateRoster, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if dateList == nil {
		today := entity.Today()
		for d := range st.avail {
			if !d.Before(today) {
				dateList = append(dateList, d)
			}
		}
	}
	dateList = entity.SortDates(append([]entity.Date(nil), dateList...))

	var rosters []entity.DateRoster
	for _, d := range dateList {
		set := st.avail[d]
		if len(set) == 0 {
			continue
		}
		names := make([]string, 0, len(set))
		for _, u := range set {
			names = append(names, u.DisplayName)
		}
		sort.Strings(names)
		rosters = append(rosters, entity.DateRoster{Date: d, Names: names})
	}
	return rosters, nil
}

func (s *availabilityService) SetThreshold(ctx context.Context, slackChannelID string, threshold int) (*entity.MutationResult, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidThreshold, threshold)
	}

	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.threshold = threshold

	res := &entity.MutationResult{}
	if err := s.dm.Scope().UpdateThreshold(st.id, threshold); err != nil {
		s.log.Warn("failed to persist threshold",
			zap.String("channel", st.channelID), zap.Error(err))
		res.SaveErr = fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if res.Alert = s.updateLatch(st); res.Alert != nil {
		s.announce(st, res.Alert)
	}
	return res, nil
}

func (s *availabilityService) ScopeStatus(slackChannelID string) (*entity.ScopeStatus, error) {
	st, err := s.scope(slackChannelID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return &entity.ScopeStatus{Threshold: st.threshold, Reached: st.reached}, nil
}

// finishMutation runs the write-through save and the critical mass
// re-evaluation that must follow every mutation batch. Caller holds
// st.mu, so nothing interleaves between the batch and its evaluation.
func (s *availabilityService) finishMutation(ctx context.Context, st *scopeState, touched []entity.Date) *entity.MutationResult {
	res := &entity.MutationResult{
		Dates: entity.SortDates(append([]entity.Date(nil), touched...)),
	}

	res.SaveErr = s.persist(ctx, st)

	if res.Alert = s.updateLatch(st); res.Alert != nil {
		s.announce(st, res.Alert)
	}
	return res
}

// persist replaces the scope's snapshot in one transaction. A failure
// is surfaced as a warning; the in-memory mutation stands either way.
func (s *availabilityService) persist(ctx context.Context, st *scopeState) error {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Availability().DeleteByScope(st.id); err != nil {
			return err
		}
		for date, users := range st.avail {
			for _, u := range users {
				row := &entity.AvailabilityRow{
					ScopeID:     st.id,
					Date:        date,
					SlackUserID: u.SlackUserID,
					UserName:    u.DisplayName,
				}
				if err := tx.Availability().Insert(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn("availability snapshot write failed",
			zap.String("channel", st.channelID), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// announce posts a latch transition to the scope's channel. Delivery is
// best-effort once per transition.
func (s *availabilityService) announce(st *scopeState, alert *entity.Alert) {
	text := alertText(st, alert)
	if _, _, err := s.slackClient.PostMessage(st.channelID, slack.MsgOptionText(text, false)); err != nil {
		s.log.Error("failed to post critical mass alert",
			zap.String("channel", st.channelID), zap.Error(err))
	}
}
