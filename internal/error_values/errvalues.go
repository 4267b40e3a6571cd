package errorvalues

import "errors"

var (
	ErrUserNotFound      = errors.New("user doesn't exists")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidServiceKey = errors.New("invalid service key")
)

var (
	ErrUnknownEventType  = errors.New("unknown event type")
	ErrScopeRequiresUser = errors.New("friends scope requires a user")
	ErrInvalidQuery      = errors.New("invalid query parameters")
)

var (
	ErrNotRecurring     = errors.New("due-date item is not recurring")
	ErrNotCompleted     = errors.New("due-date item is not completed")
	ErrNextDueNotLater  = errors.New("next due date must be after the current one")
	ErrInvalidRuleTable = errors.New("invalid rule table")
)
