package timetable

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFragment matches every *MalformedFragmentError.
	ErrMalformedFragment = errors.New("malformed lesson fragment")
	// ErrUnknownDay matches every *UnknownDayError.
	ErrUnknownDay = errors.New("unknown day")
)

// MalformedFragmentError reports a lesson slot that does not follow the page conventions.
// Day and Slot are filled in once the assembler knows them.
type MalformedFragmentError struct {
	Day         string
	Slot        int
	ContainerID string
	Reason      string
}

func (e *MalformedFragmentError) Error() string {
	msg := ErrMalformedFragment.Error()
	if e.Day != "" {
		msg += fmt.Sprintf(" on %q", e.Day)
	}
	if e.Slot > 0 {
		msg += fmt.Sprintf(" slot %d", e.Slot)
	}
	if e.ContainerID != "" {
		msg += fmt.Sprintf(" (container %q)", e.ContainerID)
	}
	return msg + ": " + e.Reason
}

func (e *MalformedFragmentError) Is(target error) bool {
	return target == ErrMalformedFragment
}

// UnknownDayError reports a day heading outside the day vocabulary.
type UnknownDayError struct {
	Name string
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownDay, e.Name)
}

func (e *UnknownDayError) Is(target error) bool {
	return target == ErrUnknownDay
}

func malformed(containerID, format string, args ...any) *MalformedFragmentError {
	return &MalformedFragmentError{ContainerID: containerID, Reason: fmt.Sprintf(format, args...)}
}
