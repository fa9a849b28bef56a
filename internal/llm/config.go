package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Provider names an LLM backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderCohere    Provider = "cohere"
	ProviderMistral   Provider = "mistral"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// AllProviders lists every supported provider in display order.
var AllProviders = []Provider{
	ProviderGemini, ProviderCohere, ProviderMistral, ProviderOpenAI, ProviderAnthropic, ProviderOllama,
}

var displayNames = map[Provider]string{
	ProviderGemini:    "Gemini",
	ProviderCohere:    "Cohere",
	ProviderMistral:   "Mistral",
	ProviderOpenAI:    "OpenAI",
	ProviderAnthropic: "Anthropic",
	ProviderOllama:    "Ollama",
}

// ParseProvider accepts a provider name case-insensitively, or its first
// letter (G, C, M, O, A) as a shortcut. "o" resolves to OpenAI.
func ParseProvider(s string) (Provider, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "g":
		return ProviderGemini, nil
	case "c":
		return ProviderCohere, nil
	case "m":
		return ProviderMistral, nil
	case "o":
		return ProviderOpenAI, nil
	case "a":
		return ProviderAnthropic, nil
	}
	for _, p := range AllProviders {
		if string(p) == v {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
}

// DisplayName is the capitalized name used for output folders and reports.
func (p Provider) DisplayName() string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return string(p)
}

// EnvPrefix is the prefix of the provider's environment variables, e.g. "GEMINI".
func (p Provider) EnvPrefix() string {
	return strings.ToUpper(string(p))
}

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskGenerate    TaskType = "generate"
	TaskSummarize   TaskType = "summarize"
	TaskConsolidate TaskType = "consolidate"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// ProviderConfig holds credentials and model selection for one provider.
// Temperature and MaxTokens, when set, override the task defaults.
type ProviderConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature *float64
	MaxTokens   *int
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	LogCalls   bool
	TimeoutMs  int
	MaxRetries int
	Providers  map[Provider]ProviderConfig
	Tasks      map[TaskType]TaskConfig
}

func float64Ptr(f float64) *float64 { return &f }

// DefaultConfig returns an LLMConfig with every provider pointed at its
// public endpoint. API keys are left empty.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		LogCalls:   false,
		TimeoutMs:  300000,
		MaxRetries: 1,
		Providers: map[Provider]ProviderConfig{
			ProviderGemini: {
				BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
				Model:   "gemini-2.5-flash",
			},
			ProviderCohere: {
				BaseURL:     "https://api.cohere.ai/compatibility/v1/",
				Model:       "command-r-plus-08-2024",
				Temperature: float64Ptr(0.9),
			},
			ProviderMistral: {
				BaseURL: "https://api.mistral.ai/v1/",
				Model:   "mistral-medium-latest",
			},
			ProviderOpenAI: {
				Model: "gpt-4o-mini",
			},
			ProviderAnthropic: {
				Model: "claude-sonnet-4-5",
			},
			ProviderOllama: {
				BaseURL: "http://localhost:11434",
				Model:   "llama3.2",
			},
		},
		Tasks: map[TaskType]TaskConfig{
			TaskGenerate:    {Temperature: 0.9, MaxTokens: 8192, TimeoutMs: 600000},
			TaskSummarize:   {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 300000},
			TaskConsolidate: {Temperature: 0.7, MaxTokens: 8192, TimeoutMs: 300000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// keyAliases are extra variables checked for a provider's API key.
var keyAliases = map[Provider][]string{
	ProviderGemini: {"GOOGLE_API_KEY"},
	ProviderCohere: {"CO_API_KEY"},
}

// ApplyEnv overlays environment variables onto cfg. Unset or malformed
// values leave the existing setting untouched.
func (c *LLMConfig) ApplyEnv() {
	if v := os.Getenv("CONTENTPLAN_LLM_LOG_CALLS"); v != "" {
		c.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CONTENTPLAN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutMs = n
		}
	}
	if v := os.Getenv("CONTENTPLAN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(c, TaskGenerate, "CONTENTPLAN_LLM_GENERATE_TIMEOUT_MS")
	applyTaskTimeoutEnv(c, TaskSummarize, "CONTENTPLAN_LLM_SUMMARIZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(c, TaskConsolidate, "CONTENTPLAN_LLM_CONSOLIDATE_TIMEOUT_MS")

	if c.Providers == nil {
		c.Providers = map[Provider]ProviderConfig{}
	}
	for _, p := range AllProviders {
		pc := c.Providers[p]
		prefix := p.EnvPrefix()
		for _, name := range append([]string{prefix + "_API_KEY"}, keyAliases[p]...) {
			if v := os.Getenv(name); v != "" {
				pc.APIKey = v
				break
			}
		}
		if v := os.Getenv(prefix + "_MODEL"); v != "" {
			pc.Model = v
		}
		if v := os.Getenv(prefix + "_BASE_URL"); v != "" {
			pc.BaseURL = v
		}
		c.Providers[p] = pc
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// Provider returns the settings for p, or the zero value when unconfigured.
func (c LLMConfig) Provider(p Provider) ProviderConfig {
	return c.Providers[p]
}

// Configured reports whether p has what it needs to make calls: an API key
// for hosted providers, an endpoint for Ollama.
func (c LLMConfig) Configured(p Provider) bool {
	pc := c.Providers[p]
	if p == ProviderOllama {
		return pc.BaseURL != ""
	}
	return pc.APIKey != ""
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
