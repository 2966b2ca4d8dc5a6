package service

import (
	"math/rand"
)

// randResolver draws outcomes from math/rand. Casual-game odds only; nothing
// here needs cryptographic strength.
type randResolver struct{}

// NewOutcomeResolver creates the default outcome resolver
func NewOutcomeResolver() OutcomeResolver {
	return randResolver{}
}

// Resolve performs a fresh weighted draw with P(true) = successPercent/100
func (randResolver) Resolve(successPercent int) bool {
	if successPercent <= 0 {
		return false
	}
	if successPercent >= 100 {
		return true
	}
	return rand.Intn(100) < successPercent
}
