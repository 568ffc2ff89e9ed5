package graph

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/roster-graphql/lib/logger/sl"
	"github.com/Dosada05/roster-graphql/services"
)

// Values of extensions.code in GraphQL error entries.
const (
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeInvalidMember      = "INVALID_MEMBER"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeCanceled           = "CANCELED"
	CodeInternal           = "INTERNAL"
)

const internalErrorMessage = "the server encountered a problem and could not process your request"

// Error is a resolver error carrying a machine-readable code in the
// extensions of the GraphQL error entry.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func (r *Resolver) resolverError(ctx context.Context, op string, err error) error {
	log := r.log.With(slog.String("op", op))

	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		return &Error{Code: CodeTeamNotFound, Message: err.Error(), cause: err}
	case errors.Is(err, services.ErrInvalidMember):
		return &Error{Code: CodeInvalidMember, Message: err.Error(), cause: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), ctx.Err() != nil:
		// lib/pq reports a cancelled statement as SQLSTATE 57014, not as ctx.Err()
		log.WarnContext(ctx, "request canceled", sl.Err(err))
		return &Error{Code: CodeCanceled, Message: "request canceled", cause: err}
	case errors.Is(err, services.ErrStorageUnavailable):
		log.ErrorContext(ctx, "storage unavailable", sl.Err(err))
		return &Error{Code: CodeStorageUnavailable, Message: services.ErrStorageUnavailable.Error(), cause: err}
	default:
		log.ErrorContext(ctx, "resolver failed", sl.Err(err))
		return &Error{Code: CodeInternal, Message: internalErrorMessage, cause: err}
	}
}
