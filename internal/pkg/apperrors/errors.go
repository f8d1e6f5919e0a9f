package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student and context errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrNoStudentContext = errors.New("no student context: a permanent code is required for this operation")
)

// Enrollment errors. Per-course rule failures travel as result data, not
// errors; these cover the storage-level cases.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this course for this term")
	ErrEnrollmentNotFound = errors.New("no matching active enrollment")
)

// Dispatch and collaborator errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrCollaborator  = errors.New("collaborator failure")
)
