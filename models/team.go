package models

// Team is a row of the teams table. Teams are read-only for this service.
type Team struct {
	ID   int32  `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"name" gorm:"column:name;type:varchar;not null"`

	// Members describes the members.team_id -> teams.id join. It is never
	// loaded implicitly; Team.members is resolved by its own query.
	Members []Member `json:"-" gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Team) TableName() string {
	return TeamsTable
}
