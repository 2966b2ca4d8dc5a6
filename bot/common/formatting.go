package common

import (
	"fmt"
	"strings"
	"time"
)

// maxDogTrail caps the celebratory emoji run so embeds stay under Discord's
// description limit.
const maxDogTrail = 396

// FormatBalance formats a paw count with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// PawWord returns the correctly pluralized noun for a paw count
func PawWord(count int64) string {
	if count == 1 {
		return "paw"
	}
	return "paws"
}

// DogTrail returns one dog emoji per held paw, capped at maxDogTrail
func DogTrail(count int64) string {
	if count < 0 {
		count = 0
	}
	if count > maxDogTrail {
		count = maxDogTrail
	}
	return strings.Repeat("🐶", int(count))
}

// FormatTimeLeft renders a remaining wait as its single largest unit,
// e.g. "2 days", "5 hours", "1 minute", "30 seconds".
func FormatTimeLeft(d time.Duration) string {
	switch {
	case d > 24*time.Hour:
		days := int64(d.Hours() / 24)
		return fmt.Sprintf("%d %s", days, pluralize(days, "day"))
	case d > time.Hour:
		hours := int64(d.Hours())
		return fmt.Sprintf("%d %s", hours, pluralize(hours, "hour"))
	case d > time.Minute:
		minutes := int64(d.Minutes())
		return fmt.Sprintf("%d %s", minutes, pluralize(minutes, "minute"))
	default:
		seconds := int64(d.Seconds())
		if seconds < 0 {
			seconds = 0
		}
		return fmt.Sprintf("%d %s", seconds, pluralize(seconds, "second"))
	}
}

func pluralize(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Mention formats a user ID as a Discord mention
func Mention(userID int64) string {
	return fmt.Sprintf("<@%d>", userID)
}
