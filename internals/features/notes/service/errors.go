package service

import "errors"

// Stable sentinels so the controller can branch per failure class.
var (
	// ValidationFailed class: the request is rejected, never retried.
	ErrDuplicateNote      = errors.New("student already has a note for this capacity")
	ErrStudentNotEnrolled = errors.New("student does not belong to the classroom")
	ErrInvalidCompetence  = errors.New("competence or capacity is not valid for the didactic unit")

	// NotFound class.
	ErrNoteNotFound = errors.New("note not found")
	ErrNoNotes      = errors.New("no notes found for the student")

	// DeliveryFailed class: always surfaced, never swallowed.
	ErrEmailDelivery = errors.New("email delivery failed")
)
