package config

const (
	// MaxTeamNameLength is the maximum length for team names.
	// Kept short for reasonable UX (names should be short and descriptive).
	MaxTeamNameLength = 255

	// MaxChannelNameLength is the maximum length for channel names.
	MaxChannelNameLength = 255

	// MaxFileNameLength is the maximum length for file and folder names.
	MaxFileNameLength = 255

	// MaxConversationNameLength is the maximum length for group
	// conversation display names. Direct conversations derive their name
	// from participants and ignore this.
	MaxConversationNameLength = 255

	// MaxMessageLength is the maximum length for a chat message body.
	MaxMessageLength = 4000

	// MaxPostLength is the maximum length for a post or comment body.
	MaxPostLength = 8000

	// MaxFilePathLength is the maximum length for a file's owning path
	// ("/"-joined segments). Longer paths indicate overly deep
	// hierarchies (anti-pattern).
	MaxFilePathLength = 500
)
