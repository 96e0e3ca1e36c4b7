// Package common defines shared sentinel errors used across recoverpeer
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// record store errors
	ErrNotFound = errors.New("not found")

	// account lifecycle errors
	ErrPseudonymTaken = errors.New("pseudonym taken")

	// session cache errors
	ErrNoSession = errors.New("no active session")
)
