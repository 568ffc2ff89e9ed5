package graph

import "github.com/Dosada05/roster-graphql/models"

type memberResolver struct {
	member models.Member
}

func newMemberResolvers(members []models.Member) []*memberResolver {
	resolvers := make([]*memberResolver, len(members))
	for i := range members {
		resolvers[i] = &memberResolver{member: members[i]}
	}
	return resolvers
}

func (m *memberResolver) ID() int32 {
	return m.member.ID
}

func (m *memberResolver) Name() string {
	return m.member.Name
}

func (m *memberResolver) Knockouts() int32 {
	return m.member.Knockouts
}

func (m *memberResolver) TeamID() int32 {
	return m.member.TeamID
}
