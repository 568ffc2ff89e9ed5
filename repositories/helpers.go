package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE codes the repositories translate into sentinel errors.
const (
	pqNotNullViolation     pq.ErrorCode = "23502"
	pqForeignKeyViolation  pq.ErrorCode = "23503"
	pqCheckViolation       pq.ErrorCode = "23514"
	pqStringTooLong        pq.ErrorCode = "22001"
	pqNumericOutOfRange    pq.ErrorCode = "22003"
	pqInvalidTextRepresent pq.ErrorCode = "22P02"
)

func asPQError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

func emptyIfNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
