package models

// Table names of the relations exposed through the API.
const (
	MembersTable = "members"
	TeamsTable   = "teams"
)

// Column names shared by queries.
const (
	ColumnID     = "id"
	ColumnTeamID = "team_id"
)

// Member is a row of the members table.
type Member struct {
	ID        int32  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"column:name;type:varchar;not null"`
	Knockouts int32  `json:"knockouts" gorm:"column:knockouts;not null"`
	TeamID    int32  `json:"team_id" gorm:"column:team_id;not null;index"`
}

func (Member) TableName() string {
	return MembersTable
}
