package services

import "errors"

// Errors shared by the services and mapped onto GraphQL error codes.
var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrInvalidMember        = errors.New("member data rejected by the database")
	ErrMemberCreationFailed = errors.New("failed to create member")
	ErrStorageUnavailable   = errors.New("storage is unavailable")
)
