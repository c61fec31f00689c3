package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dukerupert/aisle/internal/model"
)

// FormatQuantity renders "2 pcs" or "1.5 l": integral amounts bare, fractional
// ones with up to two decimals and trailing zeros trimmed.
func FormatQuantity(q model.ProductQuantity) string {
	var amount string
	if q.Amount == math.Trunc(q.Amount) {
		amount = strconv.FormatFloat(q.Amount, 'f', 0, 64)
	} else {
		amount = strconv.FormatFloat(q.Amount, 'f', 2, 64)
		amount = strings.TrimRight(amount, "0")
		amount = strings.TrimRight(amount, ".")
	}
	return amount + " " + q.Unit
}

// FormatRelativeTime buckets a past timestamp against now: "just now" under a
// minute, then minutes, hours and days, and a plain date at a week or more.
func FormatRelativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	default:
		return t.Format("1/2/2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
