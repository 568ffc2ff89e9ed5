package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/roster-graphql/db"
	"github.com/Dosada05/roster-graphql/lib/logger/sl"
	"github.com/Dosada05/roster-graphql/models"
	"github.com/Dosada05/roster-graphql/repositories"
)

const (
	MembersLimit     = 100
	TeamMembersLimit = 100
)

type MemberService interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	ListTeamMembers(ctx context.Context, teamID int32) ([]models.Member, error)
	CreateMember(ctx context.Context, input CreateMemberInput) (*models.Member, error)
}

type CreateMemberInput struct {
	Name      string
	Knockouts int32
	TeamID    int32
}

type memberService struct {
	log        *slog.Logger
	memberRepo repositories.MemberRepository
}

func NewMemberService(log *slog.Logger, memberRepo repositories.MemberRepository) MemberService {
	return &memberService{
		log:        log,
		memberRepo: memberRepo,
	}
}

func (s *memberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	members, err := s.memberRepo.List(ctx, MembersLimit)
	if err != nil {
		return nil, storageError("failed to list members", err)
	}
	return members, nil
}

// ListTeamMembers runs one query per call; callers resolving many teams issue
// one query per team.
func (s *memberService) ListTeamMembers(ctx context.Context, teamID int32) ([]models.Member, error) {
	members, err := s.memberRepo.ListByTeamID(ctx, teamID, TeamMembersLimit)
	if err != nil {
		return nil, storageError(fmt.Sprintf("failed to list members of team %d", teamID), err)
	}
	return members, nil
}

// CreateMember stores input as a new row. The team reference is checked only
// by the database.
func (s *memberService) CreateMember(ctx context.Context, input CreateMemberInput) (*models.Member, error) {
	const op = "services.member.CreateMember"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("team_id", int(input.TeamID)),
	)

	member := &models.Member{
		Name:      input.Name,
		Knockouts: input.Knockouts,
		TeamID:    input.TeamID,
	}

	err := s.memberRepo.Create(ctx, member)
	if err != nil {
		log.Warn("member was not created", sl.Err(err))

		switch {
		case errors.Is(err, repositories.ErrMemberTeamInvalid):
			return nil, fmt.Errorf("%w: id %d", ErrTeamNotFound, input.TeamID)
		case errors.Is(err, repositories.ErrMemberInvalid):
			return nil, fmt.Errorf("%w: %w", ErrInvalidMember, err)
		default:
			return nil, storageError(ErrMemberCreationFailed.Error(), err)
		}
	}

	log.Info("member created", slog.Int("member_id", int(member.ID)))

	return member, nil
}

func storageError(msg string, err error) error {
	if errors.Is(err, db.ErrConnectionUnavailable) {
		return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
