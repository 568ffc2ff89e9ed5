package graph

import (
	"context"
	"log/slog"

	"github.com/Dosada05/roster-graphql/services"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	log           *slog.Logger
	memberService services.MemberService
	teamService   services.TeamService
}

func NewResolver(log *slog.Logger, memberService services.MemberService, teamService services.TeamService) *Resolver {
	return &Resolver{
		log:           log,
		memberService: memberService,
		teamService:   teamService,
	}
}

func (r *Resolver) Members(ctx context.Context) ([]*memberResolver, error) {
	members, err := r.memberService.ListMembers(ctx)
	if err != nil {
		return nil, r.resolverError(ctx, "graph.Query.members", err)
	}
	return newMemberResolvers(members), nil
}

func (r *Resolver) Teams(ctx context.Context) ([]*teamResolver, error) {
	teams, err := r.teamService.ListTeams(ctx)
	if err != nil {
		return nil, r.resolverError(ctx, "graph.Query.teams", err)
	}

	resolvers := make([]*teamResolver, len(teams))
	for i := range teams {
		resolvers[i] = &teamResolver{root: r, team: teams[i]}
	}
	return resolvers, nil
}

type NewMemberInput struct {
	Name      string
	Knockouts int32
	TeamID    int32
}

func (r *Resolver) CreateMember(ctx context.Context, args struct{ Data NewMemberInput }) (*memberResolver, error) {
	member, err := r.memberService.CreateMember(ctx, services.CreateMemberInput{
		Name:      args.Data.Name,
		Knockouts: args.Data.Knockouts,
		TeamID:    args.Data.TeamID,
	})
	if err != nil {
		return nil, r.resolverError(ctx, "graph.Mutation.createMember", err)
	}
	return &memberResolver{member: *member}, nil
}
