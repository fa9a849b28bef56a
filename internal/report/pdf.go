package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 6.0
	pdfBarMaxW    = 100.0
)

type rgb struct{ r, g, b int }

var (
	colorAccent = rgb{102, 126, 234}
	colorCover  = rgb{75, 63, 143}
	colorText   = rgb{51, 51, 51}
	colorMuted  = rgb{119, 119, 119}
	colorWhite  = rgb{255, 255, 255}
	colorStripe = rgb{240, 240, 240}
)

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	l   Labels
	w   float64
}

// WritePDF renders r as an A4 document.
func WritePDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+5)
	pageW, _ := pdf.GetPageSize()

	pw := &pdfWriter{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		l:   r.Labels,
		w:   pageW - 2*pdfMargin,
	}
	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(-pdfMargin)
		pw.font("I", 8, colorMuted)
		pdf.CellFormat(0, 10, pw.tr(fmt.Sprintf("%s - %s %d", r.ClientName, r.Labels.Page, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pw.cover(r)
	pw.summary(r)
	pw.calendar(r)
	pw.posts(r)
	pw.metrics(r)
	pw.checklist(r)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (p *pdfWriter) font(style string, size float64, c rgb) {
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *pdfWriter) heading(text string) {
	p.pdf.Ln(4)
	p.font("B", 16, colorCover)
	p.pdf.CellFormat(0, 10, p.tr(text), "B", 1, "L", false, 0, "")
	p.pdf.Ln(2)
}

func (p *pdfWriter) subheading(text string) {
	p.pdf.Ln(2)
	p.font("B", 12, colorAccent)
	p.pdf.CellFormat(0, 8, p.tr(text), "", 1, "L", false, 0, "")
}

func (p *pdfWriter) paragraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.font("", 10, colorText)
	p.pdf.MultiCell(0, pdfLineHeight, p.tr(text), "", "L", false)
}

func (p *pdfWriter) field(label, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.font("B", 10, colorText)
	p.pdf.MultiCell(0, pdfLineHeight, p.tr(label+":"), "", "L", false)
	p.paragraph(text)
}

func (p *pdfWriter) bullets(label string, items []string) {
	if len(items) == 0 {
		return
	}
	p.font("B", 10, colorText)
	p.pdf.MultiCell(0, pdfLineHeight, p.tr(label+":"), "", "L", false)
	for _, item := range items {
		p.paragraph("- " + item)
	}
}

func (p *pdfWriter) empty(text string) {
	p.font("I", 10, colorMuted)
	p.pdf.MultiCell(0, pdfLineHeight, p.tr(text), "", "L", false)
}

func (p *pdfWriter) cover(r Report) {
	pdf := p.pdf
	pdf.AddPage()
	_, pageH := pdf.GetPageSize()
	pdf.SetFillColor(colorCover.r, colorCover.g, colorCover.b)
	pdf.Rect(0, 0, p.w+2*pdfMargin, pageH, "F")

	pdf.SetY(70)
	p.font("B", 26, colorWhite)
	pdf.MultiCell(0, 12, p.tr(r.Title), "", "C", false)
	p.font("", 16, colorWhite)
	pdf.MultiCell(0, 10, p.tr(r.Labels.For+" "+r.ClientName), "", "C", false)
	if r.Period != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 8, p.tr(r.Labels.PeriodPrefix+" "+r.Period), "", "C", false)
	}
	if r.CompanyName != "" {
		pdf.Ln(12)
		pdf.MultiCell(0, 8, p.tr(r.CompanyName), "", "C", false)
	}
	if r.LogoPath != "" {
		if _, err := os.Stat(r.LogoPath); err == nil {
			const logoW = 60.0
			pdf.Ln(8)
			pdf.ImageOptions(r.LogoPath, pdfMargin+(p.w-logoW)/2, pdf.GetY(), logoW, 0, true,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}
	pdf.Ln(12)
	p.font("", 11, colorWhite)
	pdf.MultiCell(0, 8, p.tr(r.Labels.GeneratedOn+": "+r.GeneratedAt), "", "C", false)
}

func (p *pdfWriter) summary(r Report) {
	p.pdf.AddPage()
	p.heading(p.l.ExecutiveSummary)
	p.paragraph(orNA(r.StrategySummary))
	if r.FutureStrategy != "" {
		p.subheading(p.l.FutureStrategy)
		p.paragraph(r.FutureStrategy)
	}
	if len(r.MarketReferences) > 0 {
		p.subheading(p.l.MarketReferences)
		for _, ref := range r.MarketReferences {
			p.font("B", 10, colorText)
			p.pdf.MultiCell(0, pdfLineHeight, p.tr(orNA(ref.Name)), "", "L", false)
			p.field(p.l.Differentials, ref.Differentials)
			p.field(p.l.Opportunities, ref.Opportunities)
			p.field(p.l.Positioning, ref.ClientPositioning)
			p.pdf.Ln(2)
		}
	}
}

func (p *pdfWriter) tableHeader(widths []float64, titles ...string) {
	p.font("B", 10, colorWhite)
	p.pdf.SetFillColor(colorAccent.r, colorAccent.g, colorAccent.b)
	for i, t := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		p.pdf.CellFormat(widths[i], 8, p.tr(t), "1", ln, "L", true, 0, "")
	}
}

func (p *pdfWriter) tableRow(widths []float64, stripe bool, cells ...string) {
	p.font("", 9, colorText)
	p.pdf.SetFillColor(colorStripe.r, colorStripe.g, colorStripe.b)
	for i, c := range cells {
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		p.pdf.CellFormat(widths[i], 7, p.fit(p.tr(c), widths[i]), "1", ln, "L", stripe, 0, "")
	}
}

// fit truncates already-translated single-byte text to the cell width.
func (p *pdfWriter) fit(text string, width float64) string {
	limit := width - 2
	if p.pdf.GetStringWidth(text) <= limit {
		return text
	}
	for n := len(text) - 1; n > 0; n-- {
		cut := strings.TrimRight(text[:n], " ") + "..."
		if p.pdf.GetStringWidth(cut) <= limit {
			return cut
		}
	}
	return "..."
}

func (p *pdfWriter) calendar(r Report) {
	p.heading(p.l.Calendar)
	if len(r.Calendar) == 0 {
		p.empty(p.l.NoCalendar)
		return
	}
	widths := []float64{p.w * 0.3, p.w * 0.12, p.w * 0.1, p.w * 0.48}
	p.tableHeader(widths, p.l.Day, p.l.Time, p.l.Post, p.l.Content)
	for i, row := range r.Calendar {
		p.tableRow(widths, i%2 == 1, row.Day, row.Time, strconv.Itoa(row.PostNumber), row.Content)
	}

	if !r.VaryingCount {
		return
	}
	p.subheading(p.l.PostsPerDay)
	maxCount := 0
	for _, dc := range r.DayCounts {
		maxCount = max(maxCount, dc.Count)
	}
	labelW := p.w * 0.35
	for _, dc := range r.DayCounts {
		p.font("", 9, colorText)
		p.pdf.CellFormat(labelW, 7, p.tr(dc.Day), "", 0, "L", false, 0, "")
		barW := pdfBarMaxW * float64(dc.Count) / float64(maxCount)
		x, y := p.pdf.GetXY()
		p.pdf.SetFillColor(colorAccent.r, colorAccent.g, colorAccent.b)
		p.pdf.Rect(x, y+1.5, barW, 4, "F")
		p.pdf.SetX(x + barW + 2)
		p.pdf.CellFormat(10, 7, strconv.Itoa(dc.Count), "", 1, "L", false, 0, "")
	}
}

func (p *pdfWriter) posts(r Report) {
	for _, s := range r.Posts {
		post := s.Post
		p.pdf.AddPage()
		p.heading(fmt.Sprintf("%s %d: %s", p.l.Post, s.Number, post.Label()))
		p.font("I", 10, colorMuted)
		p.pdf.MultiCell(0, pdfLineHeight, p.tr(s.Schedule), "", "L", false)

		p.field(p.l.Theme, post.Theme)
		p.field(p.l.Format, post.FormatSuggestion)
		p.field(p.l.Caption, StripHTML(post.MainCaption))
		p.bullets(p.l.Variations, post.CaptionVariations)
		p.field(p.l.Hashtags, strings.Join(post.Hashtags, " "))
		p.field(p.l.Rationale, post.StrategyRationale)
		p.field(p.l.MicroBriefing, post.MicroBriefing)

		slides := make([]string, 0, len(post.CarouselSlides))
		for i, sl := range post.CarouselSlides {
			line := fmt.Sprintf("%d. %s: %s", i+1, sl.Title, sl.Text)
			if sl.VisualSuggestion != "" {
				line += " (" + sl.VisualSuggestion + ")"
			}
			slides = append(slides, line)
		}
		p.bullets(p.l.Slides, slides)

		scenes := make([]string, 0, len(post.MicroScript))
		for _, sc := range post.MicroScript {
			line := strings.TrimSpace(sc.Scene + ": " + sc.Description)
			if sc.Speech != "" {
				line += " \"" + sc.Speech + "\""
			}
			scenes = append(scenes, line)
		}
		p.bullets(p.l.Script, scenes)

		p.field(p.l.CTA, post.CTA)
		p.field(p.l.Interaction, post.Interaction)

		responses := make([]string, 0, 2*len(post.ResponseScript))
		for _, rs := range post.ResponseScript {
			if rs.GenericComment != "" || rs.SuggestedReply != "" {
				responses = append(responses, rs.GenericComment+" -> "+rs.SuggestedReply)
			}
			if rs.NegativeComment != "" || rs.NegativeReply != "" {
				responses = append(responses, rs.NegativeComment+" -> "+rs.NegativeReply)
			}
		}
		p.bullets(p.l.Responses, responses)

		p.field(p.l.Visual, post.VisualDescription)
		p.field(p.l.TextInImage, post.TextInImage)
		p.field(p.l.VisualPrompt, post.VisualPrompt)
		p.field(p.l.MainIndicator, post.MainIndicator)
		p.field(p.l.ABTests, post.ABTestSuggestions)
		p.field(p.l.Triggers, post.OptimizationTriggers)
	}
}

func (p *pdfWriter) metrics(r Report) {
	if !r.HasMetrics {
		return
	}
	p.pdf.AddPage()
	p.heading(p.l.Metrics)
	p.field(p.l.MainObjective, r.Metrics.MainObjective)
	p.bullets(p.l.KeyIndicators, r.Metrics.KeyIndicators)
	p.bullets(p.l.SecondaryMetrics, r.Metrics.SecondaryMetrics)
}

func (p *pdfWriter) checklist(r Report) {
	p.pdf.AddPage()
	p.heading(p.l.Checklist)
	if len(r.Checklist) == 0 {
		p.empty(p.l.NoChecklist)
		return
	}
	widths := []float64{p.w * 0.28, p.w * 0.27, p.w * 0.35, p.w * 0.1}
	p.tableHeader(widths, p.l.Day, p.l.Task, p.l.Post, p.l.Done)
	for i, row := range r.Checklist {
		p.tableRow(widths, i%2 == 1, row.Day, row.Task, fmt.Sprintf("%d: %s", row.PostNumber, row.Title), "[ ]")
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
