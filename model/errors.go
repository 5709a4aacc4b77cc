package model

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalTransition     = errors.New("illegal conversation transition")
	ErrRenderingPrecondition = errors.New("record does not satisfy rendering precondition")
	ErrMissingToken          = errors.New("telegram token not set")
)

// ValidationError is returned when user input fails the validator of the current step.
// It carries the message that must be sent back to the user.
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for step %s", e.Step)
}

// IllegalTransitionError signals a programming error in the conversation engine:
// an undefined step or an index that does not point into its collection.
type IllegalTransitionError struct {
	Step   Step
	Index  int
	Reason string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%v: step %s index %d: %s", ErrIllegalTransition, e.Step, e.Index, e.Reason)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
