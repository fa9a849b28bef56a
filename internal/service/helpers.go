package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/importer"
	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/prompt"
	"github.com/alexanderramin/contentplan/internal/store"
)

var (
	ErrNoBriefing     = errors.New("briefing path not configured")
	ErrNoClients      = errors.New("no llm client factory configured")
	ErrNoSummaries    = errors.New("no provider had posts to summarize")
	ErrAllGenerations = errors.New("every generator failed")
)

func (d Deps) loadBriefing() (*domain.ClientBriefing, error) {
	if d.Settings.BriefingPath == "" {
		return nil, ErrNoBriefing
	}
	b, err := importer.LoadBriefing(d.Settings.BriefingPath)
	if err != nil {
		return nil, fmt.Errorf("loading briefing: %w", err)
	}
	return b, nil
}

// optionalBriefing is used by stages that only need the briefing for
// labels; a missing file is not an error.
func (d Deps) optionalBriefing() domain.ClientBriefing {
	if d.Settings.BriefingPath == "" {
		return domain.ClientBriefing{}
	}
	b, err := importer.LoadBriefing(d.Settings.BriefingPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.Logger.Warn("briefing unreadable", "path", d.Settings.BriefingPath, "error", err)
		}
		return domain.ClientBriefing{}
	}
	return *b
}

func (d Deps) client(provider llm.Provider) (llm.LLMClient, error) {
	if d.Clients == nil {
		return nil, ErrNoClients
	}
	c, err := d.Clients(provider)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", provider, err)
	}
	return c, nil
}

// ask logs the prompt, calls the model and extracts a JSON object holding
// the required keys. Unparseable replies are kept under raw_responses.
func (d Deps) ask(ctx context.Context, provider llm.Provider, task llm.TaskType, p prompt.Prompt, ts string,
	required ...string) (map[string]json.RawMessage, error) {
	name := provider.DisplayName()
	if err := store.SaveText(d.Layout.PromptLogPath(name, string(task), ts), p.Text()); err != nil {
		return nil, fmt.Errorf("saving prompt log: %w", err)
	}

	client, err := d.client(provider)
	if err != nil {
		return nil, err
	}
	resp, err := client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: p.System,
		UserPrompt:   p.User,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, task, err)
	}

	obj, err := llm.ExtractJSON(resp.Text, llm.RequireKeys(required...))
	if err != nil {
		rawPath := d.Layout.RawPath(name, ts)
		if saveErr := store.SaveText(rawPath, resp.Text); saveErr != nil {
			d.Logger.Warn("saving raw response failed", "provider", provider, "error", saveErr)
		} else {
			d.Logger.Warn("model reply was not valid JSON", "provider", provider, "raw", rawPath)
		}
		return nil, fmt.Errorf("%s %s: %w", name, task, err)
	}
	return obj, nil
}

func setIfMissing(obj map[string]json.RawMessage, key string, value any) {
	if _, ok := obj[key]; ok {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		obj[key] = data
	}
}

func countPosts(raw json.RawMessage) int {
	var posts []json.RawMessage
	if err := json.Unmarshal(raw, &posts); err != nil {
		return 0
	}
	return len(posts)
}

func logWarnings(d Deps, source string, warnings []error) {
	for _, w := range warnings {
		d.Logger.Warn("content warning", "source", source, "warning", w)
	}
}
