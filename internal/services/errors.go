package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserIDRequired     = errors.New("user_id is required")
	ErrCourseIDRequired   = errors.New("course_id is required")
	ErrCourseIDNotInteger = errors.New("course_id must be an integer")
	ErrInterestsInvalid   = errors.New("interests must be a list")
)

// CourseNotFoundError reports a course id absent from the loaded catalog.
type CourseNotFoundError struct {
	ID int
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("Course ID %d not found", e.ID)
}

// IsValidationError reports whether err is a client input error (HTTP 400).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUserIDRequired) ||
		errors.Is(err, ErrCourseIDRequired) ||
		errors.Is(err, ErrCourseIDNotInteger) ||
		errors.Is(err, ErrInterestsInvalid)
}
