package models

import (
	"time"
)

// ActionKind identifies a rate-limited action
type ActionKind string

const (
	ActionDaily  ActionKind = "daily"
	ActionSteal  ActionKind = "steal"
	ActionGamble ActionKind = "gamble"
)

// NeverPerformed is the timestamp reported for an action that has no recorded
// "last performed" time, far enough in the past that any cool-down has elapsed.
var NeverPerformed = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
