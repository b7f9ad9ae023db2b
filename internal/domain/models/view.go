package models

// NavigationView is the closed set of workspace panels. Rendering code
// switches exhaustively over these variants; unknown strings never fall
// through to a default panel.
type NavigationView string

const (
	ViewChannels NavigationView = "channels"
	ViewChat     NavigationView = "chat"
	ViewPosts    NavigationView = "posts"
	ViewFiles    NavigationView = "files"
	ViewMembers  NavigationView = "members"
	ViewCalls    NavigationView = "calls"
)

// Valid reports whether the view is one of the known panels.
func (v NavigationView) Valid() bool {
	switch v {
	case ViewChannels, ViewChat, ViewPosts, ViewFiles, ViewMembers, ViewCalls:
		return true
	}
	return false
}
