package errorvalues

import "errors"

var (
	ErrInvalidInterval = errors.New("interval end must be after start")
	ErrEmptyActivity   = errors.New("activity name is empty")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrPersistence     = errors.New("persistence error")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrWrongPassword   = errors.New("wrong password")
	ErrInvalidToken    = errors.New("invalid session token")
)
