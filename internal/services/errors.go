// Package services defines the business logic for matchmaking, conversations,
// messages, settings, feedback, and reports. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrPetNotFound indicates that the requested pet does not exist.
	ErrPetNotFound = errors.New("pet not found")

	// ErrPetIncomplete is returned when the source pet of a compatibility
	// query lacks the breed, age, or temperament needed for scoring.
	ErrPetIncomplete = errors.New("pet data is incomplete")

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrConversationNotFound indicates that the referenced conversation
	// does not exist; message sends against it are rolled back.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrInvalidMessage is returned when a message payload fails validation
	// (missing ids or empty content).
	ErrInvalidMessage = errors.New("invalid message payload")

	// ErrInvalidFeedback is returned when a feedback submission is missing
	// the name, email, or message field.
	ErrInvalidFeedback = errors.New("name, email and message are required")
)
