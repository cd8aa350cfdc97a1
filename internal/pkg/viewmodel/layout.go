package viewmodel

// OpenGraph carries the social preview tags of a public page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
}
