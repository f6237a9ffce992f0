package conversation

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or destroyed sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionBusy is returned when a turn is already pending. Callers treat it as a no-op.
	ErrSessionBusy = errors.New("session is composing a reply")
	// ErrInvalidCategory wraps catalog.ErrUnknownKey when a trigger names a bad category.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrEmptyCandidates is returned by selectors given nothing to pick from.
	ErrEmptyCandidates = errors.New("no candidate responses")
	// ErrEmptyMessage is returned for blank user input.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrScenarioRequired is returned when a scenario session is created without a valid scenario.
	ErrScenarioRequired = errors.New("scenario is required")
)
