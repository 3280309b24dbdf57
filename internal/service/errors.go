package service

import "errors"

// Sentinel errors for every validation decision point. Callers can branch on
// these with errors.Is instead of losing the cause behind a bare boolean.
var (
	ErrAlreadyExists     = errors.New("entity already exists")
	ErrDeveloperNotFound = errors.New("developer does not exist")
	ErrGameNotFound      = errors.New("game does not exist")
	ErrPlayerNotFound    = errors.New("player does not exist")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 10")
)
