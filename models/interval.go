package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Interval is a cool-down duration configurable as text like "2 days 3 hours".
type Interval time.Duration

// ParseInterval parses a textual interval made of value/unit pairs, e.g.
// "2 days 3 hours" or "10 minutes". A bare "0" is the zero interval.
func ParseInterval(s string) (Interval, error) {
	parts := strings.Fields(s)
	if len(parts) == 1 && parts[0] == "0" {
		return 0, nil
	}
	if len(parts) == 0 || len(parts)%2 != 0 {
		return 0, fmt.Errorf("invalid interval %q: expected value/unit pairs", s)
	}

	var d time.Duration
	for i := 0; i < len(parts); i += 2 {
		value, err := strconv.ParseInt(parts[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid interval value %q: %w", parts[i], err)
		}
		switch strings.ToLower(parts[i+1]) {
		case "day", "days":
			d += time.Duration(value) * 24 * time.Hour
		case "hour", "hours":
			d += time.Duration(value) * time.Hour
		case "minute", "minutes":
			d += time.Duration(value) * time.Minute
		case "second", "seconds":
			d += time.Duration(value) * time.Second
		default:
			return 0, fmt.Errorf("unsupported interval unit %q", parts[i+1])
		}
	}

	return Interval(d), nil
}

// IntervalFromPg converts a scanned Postgres interval to an Interval.
// Months are treated as 30 days, matching Postgres' own justify_days behavior
// closely enough for cool-down purposes.
func IntervalFromPg(iv pgtype.Interval) Interval {
	d := time.Duration(iv.Microseconds) * time.Microsecond
	d += time.Duration(iv.Days) * 24 * time.Hour
	d += time.Duration(iv.Months) * 30 * 24 * time.Hour
	return Interval(d)
}

// Duration returns the interval as a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}

func (i Interval) String() string {
	return time.Duration(i).String()
}
