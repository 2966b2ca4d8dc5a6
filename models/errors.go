package models

import (
	"errors"
)

// ErrInsufficientBalance is returned when a delta would drive a paw count
// below zero. The ledger row is left unchanged.
var ErrInsufficientBalance = errors.New("insufficient paw balance")
