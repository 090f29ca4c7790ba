package util

import "errors"

var (
	ErrInvalidDivision  = errors.New("invalid division")
	ErrUnassignedTask   = errors.New("task not assigned")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 10")
	ErrAttacheeNotFound = errors.New("attachee not found")
)
