package domain

import "errors"

var (
	// ErrDuplicateGUID is returned by story stores when another story of the
	// same medium already owns the GUID.
	ErrDuplicateGUID = errors.New("story with this guid already exists")

	ErrMediumNotFound = errors.New("medium not found")
)
