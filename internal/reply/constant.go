package reply

// Emojis decorating formatted replies, shared by all three languages.
const (
	EmojiSuccess    = "✅"
	EmojiError      = "❌"
	EmojiWarning    = "⚠️"
	EmojiInfo       = "ℹ️"
	EmojiTask       = "📝"
	EmojiComplete   = "✅"
	EmojiIncomplete = "⏳"
	EmojiAdd        = "➕"
	EmojiDelete     = "🗑️"
	EmojiUpdate     = "✏️"
	EmojiList       = "📋"
	EmojiRecurring  = "🔄"
)

// maxListedTasks caps how many tasks a multi-task reply spells out before
// collapsing the remainder into an "... and N more" suffix.
const maxListedTasks = 5
