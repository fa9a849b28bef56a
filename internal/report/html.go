package report

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/report.html.tmpl"),
)

type htmlData struct {
	R       Report
	Lang    string
	LogoSrc template.URL
}

// WriteHTML renders r as a standalone HTML page. A readable logo is
// inlined as a data URL; an unreadable one is skipped.
func WriteHTML(w io.Writer, r Report) error {
	lang := "en"
	if r.Labels == labelsPTBR {
		lang = "pt-BR"
	}
	data := htmlData{R: r, Lang: lang, LogoSrc: logoDataURL(r.LogoPath)}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func logoDataURL(path string) template.URL {
	if path == "" {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return template.URL("data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw))
}
