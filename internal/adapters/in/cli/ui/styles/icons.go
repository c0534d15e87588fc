package styles

// Nerd Font icons for terminal UI.
const (
	IconSuccess   = "" // nf-fa-check (U+F00C)
	IconError     = "" // nf-fa-times (U+F00D)
	IconWarning   = "" // nf-fa-exclamation_triangle (U+F071)
	IconInfo      = "" // nf-fa-info_circle (U+F05A)
	IconPending   = "" // nf-fa-clock_o (U+F017)
	IconContainer = "" // nf-oct-container (U+F489)
	IconImage     = "" // nf-fa-archive (U+F187)
	IconBullet    = "▸"
)
