package report

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	quickCaptionLimit     = 500
	quickVariationCutoff  = 300
	quickVariationsAdded  = 2
	quickHashtagLimit     = 8
	quickTruncationSuffix = "..."
)

// QuickCard is the copy-ready version of a post.
type QuickCard struct {
	Number   int
	Anchor   string
	Title    string
	Schedule string
	Format   string
	Caption  string
	Hashtags string
}

// BuildQuickView derives one card per post. Short captions are extended
// with up to two variations; the result is capped at 500 characters and
// stripped of markup.
func BuildQuickView(posts []PostSection) []QuickCard {
	cards := make([]QuickCard, 0, len(posts))
	for _, s := range posts {
		p := s.Post
		tags := p.Hashtags
		if len(tags) > quickHashtagLimit {
			tags = tags[:quickHashtagLimit]
		}
		cards = append(cards, QuickCard{
			Number:   s.Number,
			Anchor:   s.Anchor,
			Title:    p.Label(),
			Schedule: s.Schedule,
			Format:   strings.TrimSpace(p.FormatSuggestion),
			Caption:  QuickCaption(p.MainCaption, p.CaptionVariations),
			Hashtags: strings.Join(tags, " "),
		})
	}
	return cards
}

// QuickCaption builds the quick-view caption text.
func QuickCaption(caption string, variations []string) string {
	full := caption
	if len([]rune(caption)) < quickVariationCutoff && len(variations) > 0 {
		extra := variations
		if len(extra) > quickVariationsAdded {
			extra = extra[:quickVariationsAdded]
		}
		full = caption + "\n\n" + strings.Join(extra, "\n")
	}
	if r := []rune(full); len(r) > quickCaptionLimit {
		full = string(r[:quickCaptionLimit]) + quickTruncationSuffix
	}
	return StripHTML(full)
}

// StripHTML returns the text content of s with tags removed and entities
// decoded. <br> becomes a newline.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
