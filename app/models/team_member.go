package models

import (
	"strings"
)

// Role is the enumerated position of a team member.
type Role string

const (
	RoleLeader    Role = "leader"
	RoleDeveloper Role = "developer"
	RoleArtist    Role = "artist"
	RoleWriter    Role = "writer"
	RoleTester    Role = "tester"
	RoleOther     Role = "other"
)

// Roles lists every role in the order the admin form offers them.
var Roles = []Role{RoleLeader, RoleDeveloper, RoleArtist, RoleWriter, RoleTester, RoleOther}

var roleLabels = map[Role]string{
	RoleLeader:    "Руководитель",
	RoleDeveloper: "Разработчик",
	RoleArtist:    "Художник",
	RoleWriter:    "Сценарист",
	RoleTester:    "Тестировщик",
	RoleOther:     "Другое",
}

// Label returns the human-readable name of the role. Unknown values are shown as-is.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// ParseRole maps form input onto a role, falling back to RoleOther.
func ParseRole(s string) Role {
	r := Role(strings.TrimSpace(s))
	if r.IsValid() {
		return r
	}
	return RoleOther
}

// TeamMember is one entry of the team roster.
type TeamMember struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Role       Role   `gorm:"type:varchar(20);not null;default:'other'" json:"role" validate:"required,oneof=leader developer artist writer tester other"`
	CustomRole string `gorm:"type:varchar(100)" json:"custom_role" validate:"max=100"`
	Avatar     string `gorm:"type:varchar(255)" json:"avatar,omitempty" validate:"max=255"`
	Bio        string `gorm:"type:text" json:"bio"`
	VKURL      string `gorm:"column:vk_url;type:varchar(200)" json:"vk_url" validate:"omitempty,url,max=200"`
	Discord    string `gorm:"type:varchar(100)" json:"discord" validate:"max=100"`
	GithubURL  string `gorm:"column:github_url;type:varchar(200)" json:"github_url" validate:"omitempty,url,max=200"`
	Order      uint   `gorm:"column:sort_order;not null;default:0;index" json:"order"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) String() string {
	return m.Name
}

// DisplayRole is the custom role when one is set, otherwise the role label.
func (m *TeamMember) DisplayRole() string {
	if custom := strings.TrimSpace(m.CustomRole); custom != "" {
		return custom
	}
	return m.Role.Label()
}

func (m *TeamMember) Validate() error {
	return validate.Struct(m)
}

// TeamMemberOrder is the default roster ordering.
const TeamMemberOrder = "sort_order ASC, name ASC"
