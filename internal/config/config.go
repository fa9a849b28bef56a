// Package config loads contentplan settings from a YAML file, a .env file
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/service"
)

const (
	DefaultOutputDir    = "output"
	DefaultBriefingPath = "briefing.json"
	DefaultLocale       = "pt-BR"
)

type SlotConfig struct {
	Weekday string `yaml:"weekday"`
	Time    string `yaml:"time"`
}

type ScheduleConfig struct {
	Slots           []SlotConfig `yaml:"slots,omitempty"`
	PrepareLeadDays int          `yaml:"prepare_lead_days,omitempty"`
	FollowUpDays    int          `yaml:"follow_up_days,omitempty"`
}

type PipelineConfig struct {
	Generators   []string `yaml:"generators,omitempty"`
	Consolidator string   `yaml:"consolidator,omitempty"`
}

type ProviderConfig struct {
	APIKey      string   `yaml:"api_key,omitempty"`
	BaseURL     string   `yaml:"base_url,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty"`
}

type LLMConfig struct {
	TimeoutMs  int                       `yaml:"timeout_ms,omitempty"`
	MaxRetries *int                      `yaml:"max_retries,omitempty"`
	LogCalls   bool                      `yaml:"log_calls,omitempty"`
	Providers  map[string]ProviderConfig `yaml:"providers,omitempty"`
}

// Config holds application configuration.
type Config struct {
	OutputDir    string         `yaml:"output_dir"`
	BriefingPath string         `yaml:"briefing_path"`
	CompanyName  string         `yaml:"company_name,omitempty"`
	LogoPath     string         `yaml:"logo_path,omitempty"`
	Locale       string         `yaml:"locale,omitempty"`
	Schedule     ScheduleConfig `yaml:"schedule,omitempty"`
	Pipeline     PipelineConfig `yaml:"pipeline,omitempty"`
	LLM          LLMConfig      `yaml:"llm,omitempty"`

	path string
}

func defaults() *Config {
	return &Config{
		OutputDir:    DefaultOutputDir,
		BriefingPath: DefaultBriefingPath,
		Locale:       DefaultLocale,
		Pipeline: PipelineConfig{
			Generators:   []string{string(llm.ProviderGemini), string(llm.ProviderCohere), string(llm.ProviderMistral)},
			Consolidator: string(llm.ProviderGemini),
		},
	}
}

// Load reads .env (when present), then the config file, then environment
// overrides. A missing config file yields defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return LoadFrom(Path())
}

// LoadFrom is Load without the .env step, reading the file at path.
func LoadFrom(path string) (*Config, error) {
	cfg := defaults()
	cfg.path = path
	if err := cfg.loadFromFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.loadFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	if path == "" {
		return os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("CONTENTPLAN_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("CONTENTPLAN_BRIEFING"); v != "" {
		c.BriefingPath = v
	}
	if v := os.Getenv("CONTENTPLAN_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("CONTENTPLAN_COMPANY_NAME"); v != "" {
		c.CompanyName = v
	}
	if v := os.Getenv("CONTENTPLAN_GENERATORS"); v != "" {
		c.Pipeline.Generators = splitList(v)
	}
	if v := os.Getenv("CONTENTPLAN_CONSOLIDATOR"); v != "" {
		c.Pipeline.Consolidator = v
	}
	if n, ok := envInt("CONTENTPLAN_PREPARE_LEAD_DAYS"); ok {
		c.Schedule.PrepareLeadDays = n
	}
	if n, ok := envInt("CONTENTPLAN_FOLLOW_UP_DAYS"); ok {
		c.Schedule.FollowUpDays = n
	}
}

// Validate checks provider names and the slot table.
func (c *Config) Validate() error {
	for _, name := range c.Pipeline.Generators {
		if _, err := llm.ParseProvider(name); err != nil {
			return fmt.Errorf("pipeline.generators: %w", err)
		}
	}
	if c.Pipeline.Consolidator != "" {
		if _, err := llm.ParseProvider(c.Pipeline.Consolidator); err != nil {
			return fmt.Errorf("pipeline.consolidator: %w", err)
		}
	}
	for name := range c.LLM.Providers {
		if _, err := llm.ParseProvider(name); err != nil {
			return fmt.Errorf("llm.providers: %w", err)
		}
	}
	if _, err := c.SlotTable(); err != nil {
		return fmt.Errorf("schedule.slots: %w", err)
	}
	return nil
}

// SlotTable converts the configured slots, or returns nil when none are
// configured so the scheduler default applies.
func (c *Config) SlotTable() (scheduler.SlotTable, error) {
	if len(c.Schedule.Slots) == 0 {
		return nil, nil
	}
	table := make(scheduler.SlotTable, 0, len(c.Schedule.Slots))
	for _, s := range c.Schedule.Slots {
		wd, err := scheduler.ParseWeekday(s.Weekday)
		if err != nil {
			return nil, err
		}
		if err := scheduler.ValidateTime(s.Time); err != nil {
			return nil, err
		}
		table = append(table, scheduler.Slot{Weekday: wd, Time: s.Time})
	}
	return table, nil
}

// Providers parses a list of provider names, skipping blanks.
func Providers(names []string) ([]llm.Provider, error) {
	out := make([]llm.Provider, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		p, err := llm.ParseProvider(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// LLMSettings layers the file's llm section over the defaults, then applies
// environment overrides so variables always win.
func (c *Config) LLMSettings() llm.LLMConfig {
	out := llm.DefaultConfig()
	if c.LLM.TimeoutMs > 0 {
		out.TimeoutMs = c.LLM.TimeoutMs
	}
	if c.LLM.MaxRetries != nil && *c.LLM.MaxRetries >= 0 {
		out.MaxRetries = *c.LLM.MaxRetries
	}
	out.LogCalls = c.LLM.LogCalls
	for name, pc := range c.LLM.Providers {
		p, err := llm.ParseProvider(name)
		if err != nil {
			continue
		}
		merged := out.Providers[p]
		if pc.APIKey != "" {
			merged.APIKey = pc.APIKey
		}
		if pc.BaseURL != "" {
			merged.BaseURL = pc.BaseURL
		}
		if pc.Model != "" {
			merged.Model = pc.Model
		}
		if pc.Temperature != nil {
			merged.Temperature = pc.Temperature
		}
		if pc.MaxTokens != nil {
			merged.MaxTokens = pc.MaxTokens
		}
		out.Providers[p] = merged
	}
	out.ApplyEnv()
	return out
}

// ServiceSettings is the view of the config the pipeline stages consume.
func (c *Config) ServiceSettings() (service.Settings, error) {
	slots, err := c.SlotTable()
	if err != nil {
		return service.Settings{}, err
	}
	generators, err := Providers(c.Pipeline.Generators)
	if err != nil {
		return service.Settings{}, err
	}
	var consolidator llm.Provider
	if c.Pipeline.Consolidator != "" {
		if consolidator, err = llm.ParseProvider(c.Pipeline.Consolidator); err != nil {
			return service.Settings{}, err
		}
	}
	return service.Settings{
		BriefingPath:    c.BriefingPath,
		CompanyName:     c.CompanyName,
		LogoPath:        c.LogoPath,
		Locale:          scheduler.LookupLocale(c.Locale),
		Slots:           slots,
		PrepareLeadDays: c.Schedule.PrepareLeadDays,
		FollowUpDays:    c.Schedule.FollowUpDays,
		Generators:      generators,
		Consolidator:    consolidator,
	}, nil
}

// File returns the path the config was loaded from.
func (c *Config) File() string { return c.path }

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Path returns the config file location.
// Priority: $CONTENTPLAN_CONFIG > ~/.config/contentplan/config.yaml
func Path() string {
	if p := os.Getenv("CONTENTPLAN_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "contentplan", "config.yaml")
}

// envInt reads a non-negative integer variable.
func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
