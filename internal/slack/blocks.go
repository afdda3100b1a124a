package slack

import (
	"fmt"
	"strings"

	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/entity"
	api "github.com/slack-go/slack"
)

// Slack caps button text at 75 characters.
const maxButtonLabel = 75

// PollMessageBlocks builds the Block Kit actions block for one poll
// message. Each button carries an immutable scope|date|anchor value
// fixed at render time, so a press is interpreted from the value alone.
func PollMessageBlocks(scopeChannelID string, block *entity.PollBlock) []api.Block {
	elements := make([]api.BlockElement, 0, len(block.Dates))
	for i, date := range block.Dates {
		label := block.Labels[i]
		if r := []rune(label); len(r) > maxButtonLabel {
			label = string(r[:maxButtonLabel-1]) + "…"
		}
		btn := api.NewButtonBlockElement(
			fmt.Sprintf("%s:%s", domain.ToggleActionID, date),
			EncodeToggleValue(scopeChannelID, date, block.Anchor),
			api.NewTextBlockObject(api.PlainTextType, label, true, false),
		)
		btn.Style = api.StylePrimary
		elements = append(elements, btn)
	}
	return []api.Block{api.NewActionBlock("poll_"+block.Anchor.String(), elements...)}
}

// EncodeToggleValue packs the (scope, date) pair a button stands for,
// plus the block anchor needed to re-render its message.
func EncodeToggleValue(scopeChannelID string, date, anchor entity.Date) string {
	return fmt.Sprintf("%s|%s|%s", scopeChannelID, date, anchor)
}

// DecodeToggleValue is the inverse of EncodeToggleValue.
func DecodeToggleValue(value string) (scopeChannelID string, date, anchor entity.Date, err error) {
	parts := strings.Split(value, "|")
	if len(parts) != 3 || parts[0] == "" {
		return "", entity.Date{}, entity.Date{}, fmt.Errorf("malformed toggle value %q", value)
	}
	date, err = entity.ParseDate(parts[1])
	if err != nil {
		return "", entity.Date{}, entity.Date{}, err
	}
	anchor, err = entity.ParseDate(parts[2])
	if err != nil {
		return "", entity.Date{}, entity.Date{}, err
	}
	return parts[0], date, anchor, nil
}

// IsToggleAction reports whether an interaction action id belongs to a
// poll date button.
func IsToggleAction(actionID string) bool {
	return strings.HasPrefix(actionID, domain.ToggleActionID)
}
