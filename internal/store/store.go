// Package store owns the output directory tree the pipeline stages read
// from and write to.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// TimestampLayout is embedded in every generated file name.
	TimestampLayout = "20060102_150405"
)

var ErrNoFiles = errors.New("no matching files")

// Layout resolves the pipeline's directories under one root.
type Layout struct {
	root string
}

// New returns a Layout rooted at root (made absolute).
func New(root string) (*Layout, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	return &Layout{root: abs}, nil
}

func (l *Layout) Root() string { return l.root }

func (l *Layout) PromptLogDir() string { return filepath.Join(l.root, "logs_para_IA") }

func (l *Layout) ResponseDir(provider string) string {
	return filepath.Join(l.root, "respostas_IA", provider)
}

func (l *Layout) PostsDir(provider string) string {
	return filepath.Join(l.ResponseDir(provider), "Resumo")
}

func (l *Layout) SummaryDir(provider string) string {
	return filepath.Join(l.root, "Resumo", provider)
}

func (l *Layout) CombinedDir() string { return filepath.Join(l.root, "Resumo", "Enviar") }

func (l *Layout) ConsolidatedDir() string {
	return filepath.Join(l.root, "respostas_IA", "Consolidado")
}

func (l *Layout) ReportDir() string { return filepath.Join(l.root, "briefings", "Consolidado") }

func (l *Layout) RawDir(provider string) string {
	return filepath.Join(l.root, "raw_responses", provider)
}

// Ensure creates the fixed directories.
func (l *Layout) Ensure() error {
	for _, dir := range []string{l.PromptLogDir(), l.CombinedDir(), l.ConsolidatedDir(), l.ReportDir()} {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// Timestamp formats t for use in a file name.
func Timestamp(t time.Time) string { return t.Format(TimestampLayout) }

var timestampPattern = regexp.MustCompile(`\d{8}_\d{6}`)

// TimestampFromName returns the last timestamp embedded in a file name.
func TimestampFromName(name string) (string, bool) {
	matches := timestampPattern.FindAllString(filepath.Base(name), -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1], true
}

// SaveJSON writes v indented, without HTML escaping, creating parent dirs.
func SaveJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return writeFile(path, buf.Bytes())
}

// LoadJSON decodes the file at path into v.
func LoadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SaveText writes text as-is, creating parent dirs.
func SaveText(path, text string) error {
	return writeFile(path, []byte(text))
}

// SaveBytes writes data as-is, creating parent dirs.
func SaveBytes(path string, data []byte) error {
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Latest returns the newest regular file in dir whose name satisfies match
// (nil matches everything). Ties on mtime go to the lexically greatest name,
// which for timestamped names is also the newest.
func Latest(dir string, match func(name string) bool) (string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}
	if err != nil {
		return "", err
	}

	type candidate struct {
		name string
		mod  time.Time
	}
	var found []candidate
	for _, e := range entries {
		if !e.Type().IsRegular() || (match != nil && !match(e.Name())) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, candidate{e.Name(), info.ModTime()})
	}
	if len(found) == 0 {
		return "", fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}
	sort.Slice(found, func(i, j int) bool {
		if !found[i].mod.Equal(found[j].mod) {
			return found[i].mod.After(found[j].mod)
		}
		return found[i].name > found[j].name
	})
	return filepath.Join(dir, found[0].name), nil
}

// HasPrefixSuffix builds a Latest matcher.
func HasPrefixSuffix(prefix, suffix string) func(string) bool {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix)
	}
}

// Clear removes every file below the root and keeps the directories.
// It returns the number of files removed.
func (l *Layout) Clear() (int, error) {
	removed := 0
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == l.root {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
		return nil
	})
	return removed, err
}
