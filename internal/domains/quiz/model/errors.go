package model

import "errors"

var (
	// ErrResourceNotFound means neither the localized nor the default question file exists
	ErrResourceNotFound = errors.New("question resource not found")

	// ErrResourceUnreadable means the question file exists but could not be read or parsed
	ErrResourceUnreadable = errors.New("question resource unreadable")

	ErrUnknownAnswerPolicy = errors.New("unknown answer policy")
)
