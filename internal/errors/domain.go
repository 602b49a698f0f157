// internal/errors/domain.go
package errors

import "errors"

// Domain sentinels shared by repositories and services. The gRPC status code
// each maps to lives in Map; repositories return these untranslated.
var (
	ErrSelfInterest         = errors.New("cannot express interest in yourself")
	ErrInvalidKind          = errors.New("interest kind must be like or super_like")
	ErrDuplicateInterest    = errors.New("interest already recorded for this pair")
	ErrMatchNotFound        = errors.New("match not found")
	ErrNotAParticipant      = errors.New("sender is not a participant of this match")
	ErrEmptyContent         = errors.New("message content is empty")
	ErrInvalidMessageKind   = errors.New("message kind must be text, voice or image")
	ErrContentRejected      = errors.New("content rejected by moderation")
	ErrMessageNotFound      = errors.New("message not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrCompletionRegression = errors.New("profile completion cannot decrease")
)
