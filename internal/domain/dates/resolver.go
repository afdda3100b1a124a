package dates

import (
	"fmt"
	"strings"

	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/entity"
)

// fillerTokens are dropped wherever they occur as standalone tokens, so
// "from friday to the monday" reads the same as "friday to monday".
var fillerTokens = map[string]bool{
	"from":     true,
	"starting": true,
	"the":      true,
}

const (
	rangeSeparator = " to "
	nextPrefix     = "next "
)

// Resolver turns command tokens into an ordered sequence of calendar
// dates. It understands a single date, a "<start> to <end>" range, and
// the "next <weekday>" form.
type Resolver struct {
	parser contract.DateParser
}

func NewResolver(parser contract.DateParser) *Resolver {
	return &Resolver{parser: parser}
}

// Resolve parses tokens relative to today. A two-date range expands to
// every date from first to second inclusive, ascending. Any parse
// failure rejects the whole input; there are no partial results.
func (r *Resolver) Resolve(today entity.Date, tokens []string) ([]entity.Date, error) {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !fillerTokens[tok] {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no date given", domain.ErrDateParse)
	}

	segments := strings.Split(strings.Join(kept, " "), rangeSeparator)

	parsed := make([]entity.Date, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			return nil, fmt.Errorf("%w: empty date text", domain.ErrDateParse)
		}

		if strings.HasPrefix(seg, nextPrefix) {
			d, err := r.parser.Parse(strings.TrimPrefix(seg, nextPrefix), today)
			if err != nil {
				return nil, err
			}
			// "next monday" means the monday of next week: whenever the
			// bare parse lands in the current ISO week, advance a week,
			// even if that parse is already in the future.
			if sameISOWeek(d, today) {
				d = d.AddDays(7)
			}
			parsed = append(parsed, d)
			continue
		}

		d, err := r.parser.Parse(seg, today)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, d)
	}

	if len(parsed) != 2 {
		return dedupe(parsed), nil
	}

	first, second := parsed[0], parsed[1]
	if second.Before(first) {
		// Weekday names resolved out of order ("friday to monday"
		// lands monday before friday); push the end forward whole
		// weeks until it follows the start.
		weeks := 1 + first.DaysSince(second)/7
		second = second.AddDays(7 * weeks)
	}

	out := make([]entity.Date, 0, second.DaysSince(first)+1)
	for d := first; !d.After(second); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out, nil
}

func sameISOWeek(a, b entity.Date) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

func dedupe(dates []entity.Date) []entity.Date {
	seen := make(map[entity.Date]bool, len(dates))
	out := dates[:0]
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
