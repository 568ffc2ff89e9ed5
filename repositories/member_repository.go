package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Dosada05/roster-graphql/db"
	"github.com/Dosada05/roster-graphql/models"
)

var (
	ErrMemberTeamInvalid = errors.New("member team conflict or invalid")
	ErrMemberInvalid     = errors.New("member row violates a table constraint")
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	List(ctx context.Context, limit int) ([]models.Member, error)
	ListByTeamID(ctx context.Context, teamID int32, limit int) ([]models.Member, error)
}

type postgresMemberRepository struct {
	provider db.Provider
}

func NewPostgresMemberRepository(provider db.Provider) MemberRepository {
	return &postgresMemberRepository{provider: provider}
}

// Create inserts member and fills in the id assigned by the database.
func (r *postgresMemberRepository) Create(ctx context.Context, member *models.Member) error {
	err := r.provider.Session(ctx, func(tx *gorm.DB) error {
		return tx.Create(member).Error
	})
	if err != nil {
		if pqErr, ok := asPQError(err); ok {
			switch pqErr.Code {
			case pqForeignKeyViolation:
				return fmt.Errorf("%w: %s", ErrMemberTeamInvalid, pqErr.Constraint)
			case pqNotNullViolation, pqCheckViolation, pqStringTooLong, pqNumericOutOfRange, pqInvalidTextRepresent:
				return fmt.Errorf("%w: %s", ErrMemberInvalid, pqErr.Message)
			}
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func (r *postgresMemberRepository) List(ctx context.Context, limit int) ([]models.Member, error) {
	var members []models.Member

	err := r.provider.Session(ctx, func(tx *gorm.DB) error {
		return tx.Order(models.ColumnID).Limit(limit).Find(&members).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return emptyIfNil(members), nil
}

func (r *postgresMemberRepository) ListByTeamID(ctx context.Context, teamID int32, limit int) ([]models.Member, error) {
	var members []models.Member

	err := r.provider.Session(ctx, func(tx *gorm.DB) error {
		return tx.Where(models.ColumnTeamID+" = ?", teamID).
			Order(models.ColumnID).
			Limit(limit).
			Find(&members).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list members of team %d: %w", teamID, err)
	}

	return emptyIfNil(members), nil
}
