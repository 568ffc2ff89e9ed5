package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Dosada05/roster-graphql/db"
	"github.com/Dosada05/roster-graphql/models"
)

type TeamRepository interface {
	List(ctx context.Context, limit int) ([]models.Team, error)
}

type postgresTeamRepository struct {
	provider db.Provider
}

func NewPostgresTeamRepository(provider db.Provider) TeamRepository {
	return &postgresTeamRepository{provider: provider}
}

func (r *postgresTeamRepository) List(ctx context.Context, limit int) ([]models.Team, error) {
	var teams []models.Team

	err := r.provider.Session(ctx, func(tx *gorm.DB) error {
		return tx.Order(models.ColumnID).Limit(limit).Find(&teams).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return emptyIfNil(teams), nil
}
