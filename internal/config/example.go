package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const exampleConfig = `# contentplan configuration
# Environment variables (and a .env file in the working directory) override
# these values: CONTENTPLAN_OUTPUT_DIR, CONTENTPLAN_BRIEFING, CONTENTPLAN_LOCALE,
# CONTENTPLAN_LLM_TIMEOUT_MS, CONTENTPLAN_LLM_MAX_RETRIES, <PROVIDER>_API_KEY, ...

output_dir: "output"
briefing_path: "briefing.json"
company_name: ""
logo_path: ""
# "pt-BR" or "en"
locale: "pt-BR"

schedule:
  # One entry per publication slot. Weekdays accept English or Portuguese names.
  slots:
    - {weekday: monday, time: "10:00"}
    - {weekday: tuesday, time: "10:00"}
    - {weekday: wednesday, time: "10:00"}
    - {weekday: thursday, time: "10:00"}
    - {weekday: friday, time: "10:00"}
  prepare_lead_days: 1
  follow_up_days: 1

pipeline:
  # gemini, cohere, mistral, openai, anthropic, ollama
  generators: [gemini, cohere, mistral]
  consolidator: gemini

llm:
  timeout_ms: 300000
  max_retries: 1
  log_calls: false
  providers:
    gemini:
      model: "gemini-2.5-flash"
    # mistral:
    #   api_key: ""
    #   model: "mistral-medium-latest"
    # ollama:
    #   base_url: "http://localhost:11434"
    #   model: "llama3.2"
`

// SaveExampleConfig writes an example config to path (or the default
// location) unless a file already exists there. It reports whether a file
// was written.
func SaveExampleConfig(path string) (string, bool, error) {
	if path == "" {
		path = Path()
	}
	if path == "" {
		return "", false, fmt.Errorf("cannot determine config path")
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o600); err != nil {
		return "", false, err
	}
	return path, true, nil
}
