package services

import (
	"context"

	"github.com/Dosada05/roster-graphql/models"
	"github.com/Dosada05/roster-graphql/repositories"
)

const TeamsLimit = 10

type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx, TeamsLimit)
	if err != nil {
		return nil, storageError("failed to list teams", err)
	}
	return teams, nil
}
