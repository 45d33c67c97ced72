package styles

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"

	DocumentIcon string = "📄"
	FolderIcon   string = "📁"
	ChartIcon    string = "📊"
	TrophyIcon   string = "🏆"
	ClockIcon    string = "🕒"
	LockIcon     string = "🔒"

	CursorIcon string = "▶"
	BulletIcon string = "•"
)
