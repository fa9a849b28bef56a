package store

import (
	"path/filepath"
	"regexp"
	"strings"
)

// File names produced by the stages. provider is the display name
// ("Gemini"); ts comes from Timestamp.

func (l *Layout) PromptLogPath(provider, task, ts string) string {
	return filepath.Join(l.PromptLogDir(), provider+"_"+task+"_prompt_"+ts+".txt")
}

func (l *Layout) ResponsePath(provider, ts string) string {
	return filepath.Join(l.ResponseDir(provider), provider+"_response_"+ts+".json")
}

func (l *Layout) RawPath(provider, ts string) string {
	return filepath.Join(l.RawDir(provider), provider+"_raw_"+ts+".txt")
}

func (l *Layout) PostsPath(provider, ts string) string {
	return filepath.Join(l.PostsDir(provider), provider+"_posts_"+ts+".json")
}

func (l *Layout) SummaryPath(provider, ts string) string {
	return filepath.Join(l.SummaryDir(provider), provider+"_summary_"+ts+".json")
}

func (l *Layout) CombinedPath(ts string) string {
	return filepath.Join(l.CombinedDir(), "combined_summary_"+ts+".json")
}

func (l *Layout) ConsolidatedPath(provider, client, ts string) string {
	return filepath.Join(l.ConsolidatedDir(), provider+"_response_"+SafeName(client)+"_"+ts+".json")
}

// ReportPath returns the report file for ext ("html" or "pdf") under dir,
// or under ReportDir when dir is empty.
func (l *Layout) ReportPath(dir, client, ts, ext string) string {
	if dir == "" {
		dir = l.ReportDir()
	}
	return filepath.Join(dir, "Relatorio-de-Postagem_"+SafeName(client)+"_"+ts+"."+ext)
}

var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// SafeName turns a client name into a file-name fragment.
func SafeName(name string) string {
	s := unsafeChars.ReplaceAllString(strings.TrimSpace(name), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "cliente"
	}
	return s
}
