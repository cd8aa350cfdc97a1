package apiv1

import "time"

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// NewsSummary is a post as listed on the news pages.
type NewsSummary struct {
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	URL        string    `json:"url"`
	CoverImage string    `json:"cover_image,omitempty"`
	Excerpt    string    `json:"excerpt"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewsImage is a gallery image of a post.
type NewsImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// NewsLink is an external link of a post.
type NewsLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NewsDetail is a full post.
type NewsDetail struct {
	NewsSummary
	Content string      `json:"content"`
	Images  []NewsImage `json:"images"`
	Links   []NewsLink  `json:"links"`
}

// NewsPage is one page of the published posts.
type NewsPage struct {
	Items       []NewsSummary `json:"items"`
	Page        int           `json:"page"`
	NumPages    int           `json:"num_pages"`
	Count       int64         `json:"count"`
	PerPage     int           `json:"per_page"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// TeamMember is a roster entry.
type TeamMember struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	RoleLabel string `json:"role_label"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	VKURL     string `json:"vk_url,omitempty"`
	Discord   string `json:"discord,omitempty"`
	GithubURL string `json:"github_url,omitempty"`
}

// About is the team description.
type About struct {
	TeamName      string `json:"team_name"`
	Tagline       string `json:"tagline,omitempty"`
	Description   string `json:"description"`
	Logo          string `json:"logo,omitempty"`
	FoundedYear   *uint  `json:"founded_year,omitempty"`
	ModsCount     uint   `json:"mods_count"`
	MembersCount  uint   `json:"members_count"`
	VKGroup       string `json:"vk_group,omitempty"`
	DiscordServer string `json:"discord_server,omitempty"`
	GithubOrg     string `json:"github_org,omitempty"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error"`
}
