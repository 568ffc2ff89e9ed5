package graph

import (
	"context"

	"github.com/Dosada05/roster-graphql/models"
)

type teamResolver struct {
	root *Resolver
	team models.Team
}

func (t *teamResolver) ID() int32 {
	return t.team.ID
}

func (t *teamResolver) Name() string {
	return t.team.Name
}

// Members issues its own query for every team in the result.
func (t *teamResolver) Members(ctx context.Context) ([]*memberResolver, error) {
	members, err := t.root.memberService.ListTeamMembers(ctx, t.team.ID)
	if err != nil {
		return nil, t.root.resolverError(ctx, "graph.Team.members", err)
	}
	return newMemberResolvers(members), nil
}
