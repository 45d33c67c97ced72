package styles

// NewSkillrackTheme is the default theme: campus navy with a gold accent.
func NewSkillrackTheme() *Theme {
	return &Theme{
		Name:   "skillrack",
		IsDark: true,

		Primary:   ParseHex("#2563EB"), // Royal blue
		Secondary: ParseHex("#38BDF8"), // Sky
		Accent:    ParseHex("#FBBF24"), // Amber

		BgBase:      ParseHex("#0B1426"),
		BgSubtle:    ParseHex("#1E2A44"),
		BgHighlight: ParseHex("#2B3A5C"),

		FgBase:     ParseHex("#F1F5F9"),
		FgMuted:    ParseHex("#A5B4C8"),
		FgSubtle:   ParseHex("#6B7A90"),
		FgInverted: ParseHex("#0B1426"),

		Border:      ParseHex("#2B3A5C"),
		BorderFocus: ParseHex("#FBBF24"),

		Success: ParseHex("#22C55E"),
		Error:   ParseHex("#EF4444"),
		Warning: ParseHex("#F59E0B"),
		Info:    ParseHex("#38BDF8"),

		Gold:   ParseHex("#FFD700"),
		Silver: ParseHex("#C0C0C0"),
		Bronze: ParseHex("#CD7F32"),
	}
}

// NewDarkTheme creates a neutral slate theme.
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"),
		Secondary: ParseHex("#a78bfa"),
		Accent:    ParseHex("#34d399"),

		BgBase:      ParseHex("#0f172a"),
		BgSubtle:    ParseHex("#334155"),
		BgHighlight: ParseHex("#64748b"),

		FgBase:     ParseHex("#f8fafc"),
		FgMuted:    ParseHex("#cbd5e1"),
		FgSubtle:   ParseHex("#94a3b8"),
		FgInverted: ParseHex("#0f172a"),

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#60a5fa"),

		Success: ParseHex("#10b981"),
		Error:   ParseHex("#ef4444"),
		Warning: ParseHex("#f59e0b"),
		Info:    ParseHex("#3b82f6"),

		Gold:   ParseHex("#facc15"),
		Silver: ParseHex("#d1d5db"),
		Bronze: ParseHex("#d97706"),
	}
}

// NewLightTheme is for light terminal backgrounds.
func NewLightTheme() *Theme {
	return &Theme{
		Name:   "light",
		IsDark: false,

		Primary:   ParseHex("#1D4ED8"),
		Secondary: ParseHex("#0369A1"),
		Accent:    ParseHex("#B45309"),

		BgBase:      ParseHex("#FFFFFF"),
		BgSubtle:    ParseHex("#E2E8F0"),
		BgHighlight: ParseHex("#CBD5E1"),

		FgBase:     ParseHex("#0F172A"),
		FgMuted:    ParseHex("#475569"),
		FgSubtle:   ParseHex("#64748B"),
		FgInverted: ParseHex("#FFFFFF"),

		Border:      ParseHex("#CBD5E1"),
		BorderFocus: ParseHex("#1D4ED8"),

		Success: ParseHex("#15803D"),
		Error:   ParseHex("#B91C1C"),
		Warning: ParseHex("#B45309"),
		Info:    ParseHex("#0369A1"),

		Gold:   ParseHex("#A16207"),
		Silver: ParseHex("#6B7280"),
		Bronze: ParseHex("#9A3412"),
	}
}

// NewAuroraTheme creates a cool green and violet theme.
func NewAuroraTheme() *Theme {
	return &Theme{
		Name:   "aurora",
		IsDark: true,

		Primary:   ParseHex("#10b981"),
		Secondary: ParseHex("#8b5cf6"),
		Accent:    ParseHex("#06b6d4"),

		BgBase:      ParseHex("#0c0a1f"),
		BgSubtle:    ParseHex("#2a2550"),
		BgHighlight: ParseHex("#4a4278"),

		FgBase:     ParseHex("#f0fdf4"),
		FgMuted:    ParseHex("#a7f3d0"),
		FgSubtle:   ParseHex("#6ee7b7"),
		FgInverted: ParseHex("#0c0a1f"),

		Border:      ParseHex("#2a2550"),
		BorderFocus: ParseHex("#10b981"),

		Success: ParseHex("#10b981"),
		Error:   ParseHex("#f43f5e"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#06b6d4"),

		Gold:   ParseHex("#fde047"),
		Silver: ParseHex("#e2e8f0"),
		Bronze: ParseHex("#fb923c"),
	}
}

// NewFireTheme creates a red and orange theme.
func NewFireTheme() *Theme {
	return &Theme{
		Name:   "fire",
		IsDark: true,

		Primary:   ParseHex("#C0392B"),
		Secondary: ParseHex("#F4D03F"),
		Accent:    ParseHex("#F39C12"),

		BgBase:      ParseHex("#2C3E50"),
		BgSubtle:    ParseHex("#3D566E"),
		BgHighlight: ParseHex("#5D6D7E"),

		FgBase:     ParseHex("#f5f6fa"),
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),

		Gold:   ParseHex("#FFD700"),
		Silver: ParseHex("#BDC3C7"),
		Bronze: ParseHex("#E67E22"),
	}
}
