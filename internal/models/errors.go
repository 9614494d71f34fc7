package models

import "errors"

// ErrUniqueViolation is returned by repositories when an insert hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")
