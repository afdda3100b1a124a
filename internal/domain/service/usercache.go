package service

import (
	"fmt"
	"sync"

	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/entity"
)

// userCache memoizes Slack user lookups. It is shared across scopes and
// safe for concurrent use; entries are never evicted (display names may
// go stale until the process restarts, identity is always the id).
type userCache struct {
	mu          sync.RWMutex
	slackClient contract.SlackClient
	users       map[string]entity.User
}

func newUserCache(slackClient contract.SlackClient) *userCache {
	return &userCache{
		slackClient: slackClient,
		users:       make(map[string]entity.User),
	}
}

func (c *userCache) resolve(userID string) (entity.User, error) {
	c.mu.RLock()
	user, ok := c.users[userID]
	c.mu.RUnlock()
	if ok {
		return user, nil
	}

	info, err := c.slackClient.GetUserInfo(userID)
	if err != nil {
		return entity.User{}, fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	displayName := info.Profile.RealName
	if displayName == "" {
		displayName = info.Profile.DisplayName
	}
	if displayName == "" {
		displayName = info.Name
	}

	user = entity.User{
		SlackUserID: userID,
		UserName:    info.Name,
		DisplayName: displayName,
	}

	c.mu.Lock()
	c.users[userID] = user
	c.mu.Unlock()

	return user, nil
}
