package contract

import "github.com/critmass/availability-bot/internal/domain/entity"

// DateParser resolves one piece of free text to a calendar date. It is a
// pure function of the text and today's date, preferring future dates
// when the text is ambiguous ("friday" means the upcoming Friday).
type DateParser interface {
	Parse(text string, today entity.Date) (entity.Date, error)
}
