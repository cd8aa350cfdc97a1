package models

// DefaultTeamName is used for a fresh about page.
const DefaultTeamName = "Mod Team"

// AboutPage holds the site-wide team description. The table is expected to hold a
// single row; the one with the lowest id wins if there are more.
type AboutPage struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TeamName      string `gorm:"type:varchar(200);not null" json:"team_name" validate:"required,max=200"`
	Tagline       string `gorm:"type:varchar(300)" json:"tagline" validate:"max=300"`
	Description   string `gorm:"type:text;not null" json:"description" validate:"required"`
	Logo          string `gorm:"type:varchar(255)" json:"logo,omitempty" validate:"max=255"`
	FoundedYear   *uint  `json:"founded_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	ModsCount     uint   `gorm:"not null;default:0" json:"mods_count"`
	MembersCount  uint   `gorm:"not null;default:0" json:"members_count"`
	VKGroup       string `gorm:"column:vk_group;type:varchar(200)" json:"vk_group" validate:"omitempty,url,max=200"`
	DiscordServer string `gorm:"type:varchar(200)" json:"discord_server" validate:"omitempty,url,max=200"`
	GithubOrg     string `gorm:"column:github_org;type:varchar(200)" json:"github_org" validate:"omitempty,url,max=200"`
}

func (AboutPage) TableName() string {
	return "about_pages"
}

func NewAboutPage() *AboutPage {
	return &AboutPage{TeamName: DefaultTeamName}
}

func (a *AboutPage) String() string {
	return a.TeamName
}

func (a *AboutPage) Validate() error {
	return validate.Struct(a)
}
