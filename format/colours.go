package format

const (
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m" // Bright black, often appears as gray

	RedInverse    = "\033[7;31m"
	GreenInverse  = "\033[7;32m"
	YellowInverse = "\033[7;33m"
	BlueInverse   = "\033[7;34m"
	GrayInverse   = "\033[7;90m"

	ResetColor = "\033[0m"
)

var severityColours = map[string]string{
	"critical": Red,
	"warning":  Yellow,
	"info":     Blue,
}

var statusColours = map[string]string{
	"active":       RedInverse,
	"acknowledged": YellowInverse,
	"resolved":     GreenInverse,
	"pending":      YellowInverse,
	"in_progress":  BlueInverse,
	"completed":    GreenInverse,
	"cancelled":    GrayInverse,
	"blocked":      RedInverse,
}

// SeverityColour maps an alert severity to a terminal colour. Unknown severities are gray.
func SeverityColour(severity string) string {
	if c, ok := severityColours[severity]; ok {
		return c
	}
	return Gray
}

// StatusColour maps an alert or task status to an inverse-video badge colour.
func StatusColour(status string) string {
	if c, ok := statusColours[status]; ok {
		return c
	}
	return GrayInverse
}

// Colourize wraps s in colour. An empty colour returns s unchanged.
func Colourize(colour, s string) string {
	if colour == "" {
		return s
	}
	return colour + s + ResetColor
}
