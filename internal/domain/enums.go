package domain

import "strings"

// FunnelStage is where a campaign sits in the marketing funnel.
type FunnelStage string

const (
	FunnelAwareness     FunnelStage = "awareness"
	FunnelConsideration FunnelStage = "consideration"
	FunnelConversion    FunnelStage = "conversion"
	FunnelRetention     FunnelStage = "retention"
)

// PostFormat is the normalized form of a post's suggested format.
type PostFormat string

const (
	FormatCarousel PostFormat = "carousel"
	FormatReel     PostFormat = "reel"
	FormatStory    PostFormat = "story"
	FormatStatic   PostFormat = "static"
	FormatUnknown  PostFormat = "unknown"
)

// ParsePostFormat maps free-text format suggestions ("Carrossel", "Reels
// de 30s", "Imagem estática") to a PostFormat.
func ParsePostFormat(s string) PostFormat {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "carros"), strings.Contains(lower, "carous"):
		return FormatCarousel
	case strings.Contains(lower, "reel"), strings.Contains(lower, "vídeo"),
		strings.Contains(lower, "video"), strings.Contains(lower, "tiktok"):
		return FormatReel
	case strings.Contains(lower, "stor"):
		return FormatStory
	case strings.Contains(lower, "imag"), strings.Contains(lower, "foto"),
		strings.Contains(lower, "static"), strings.Contains(lower, "estátic"):
		return FormatStatic
	default:
		return FormatUnknown
	}
}
