package progress

import "errors"

var (
	// ErrUnknownLesson is returned for lesson IDs not in the curriculum.
	ErrUnknownLesson = errors.New("unknown lesson")

	// ErrUnknownStep is returned for step IDs not in the lesson.
	ErrUnknownStep = errors.New("unknown step")

	// ErrLessonLocked is returned for operations on a locked lesson.
	ErrLessonLocked = errors.New("lesson is locked")

	// ErrInvalidArgument is returned for out-of-range scores and amounts.
	ErrInvalidArgument = errors.New("invalid argument")
)
