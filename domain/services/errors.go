package services

import "errors"

var (
	// ErrTaskNotFound maps to a 404 at the API boundary.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAssigneeNotFound is a validation failure: the request named a user
	// id that does not exist.
	ErrAssigneeNotFound = errors.New("assigned user does not exist")
)
