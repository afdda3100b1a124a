package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/critmass/availability-bot/internal/domain/entity"
)

// evaluateCriticalMass reports whether any date has at least threshold
// users, and which dates qualify (ascending).
func evaluateCriticalMass(avail map[entity.Date]map[string]entity.User, threshold int) (reached bool, crossing []entity.Date) {
	for date, users := range avail {
		if len(users) >= threshold {
			crossing = append(crossing, date)
		}
	}
	entity.SortDates(crossing)
	return len(crossing) > 0, crossing
}

// updateLatch recomputes the critical mass state of st and returns an
// alert only on a latch transition. Exactly one alert per crossing
// batch, no matter how many dates crossed at once. Caller holds st.mu.
func (s *availabilityService) updateLatch(st *scopeState) *entity.Alert {
	reached, crossing := evaluateCriticalMass(st.avail, st.threshold)
	if reached == st.reached {
		return nil
	}
	st.reached = reached

	alert := &entity.Alert{Reached: reached, Threshold: st.threshold}
	if reached {
		alert.Dates = crossing
	}
	return alert
}

// alertText renders a latch transition for the channel. Caller holds
// st.mu.
func alertText(st *scopeState, alert *entity.Alert) string {
	if !alert.Reached {
		return "We have fallen below critical mass."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "critical mass of %d reached:\n", alert.Threshold)
	b.WriteString(strings.Join(rosterLines(st, alert.Dates), "\n"))
	return b.String()
}

// rosterLines formats one "date : names" line per non-empty date.
// Caller holds st.mu.
func rosterLines(st *scopeState, dates []entity.Date) []string {
	var lines []string
	for _, date := range dates {
		users := st.avail[date]
		if len(users) == 0 {
			continue
		}
		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.DisplayName)
		}
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("%s\t:\t%s", date.Display(), strings.Join(names, ", ")))
	}
	return lines
}
