package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInvalidMode    = errors.New("invalid session mode")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrNoQueries      = errors.New("no queries given")
	ErrInvalidQueries = errors.New("some queries are invalid")

	ErrFileNotFormatted = errors.New("file is not formatted")
)
