package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck  = "" // check
	IconInfo   = "" // info
	IconConfig = "" // config
	IconFile   = "" // file

	IconPane = "" // columns
	IconTree = "" // tree
)
