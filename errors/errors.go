package errors

import "fmt"

var (
	ErrEmptyChat         = fmt.Errorf("no messages have been parsed")
	ErrNoCalls           = fmt.Errorf("no call records have been found")
	ErrNoEmojis          = fmt.Errorf("no emojis have been found")
	ErrSeriesTooShort    = fmt.Errorf("daily series too short for model fitting")
	ErrOrderSearchFailed = fmt.Errorf("order search did not converge")
)
