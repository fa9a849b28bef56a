package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/service"
	"github.com/alexanderramin/contentplan/internal/store"
	"github.com/alexanderramin/contentplan/internal/testutil"
)

const testTS = "20240715_090000"

const generatedReply = `{
  "weekly_strategy_summary": "Semana do fermento.",
  "posts": [
    {"titulo": "Fermento", "legenda_principal": "Pão quente", "hashtags": ["#a", "#b"]},
    {"titulo": "Fornada", "hashtags": ["#x"]}
  ]
}`

const consolidatedReply = `{
  "weekly_strategy_summary": "Plano final.",
  "posts": [{"titulo": "Final 1"}, {"titulo": "Final 2"}]
}`

const planJSON = `{
  "nome_do_cliente": "Padaria Aurora",
  "start_date": "2024-07-15",
  "posts": [
    {"titulo": "Fermento natural", "legenda_principal": "Pão <b>quente</b> saindo agora", "hashtags": ["#pao", "#fermento"]},
    {"titulo": "Bastidores", "legenda_principal": "Curta", "variacoes_legenda": ["Variação A", "Variação B", "Variação C"]},
    {"titulo": "Promoção de sexta"}
  ]
}`

type testEnv struct {
	app     *App
	clients testutil.FakeClients
	root    string
}

// newTestEnv wires a full App over a temp output dir with fake providers.
func newTestEnv(t *testing.T, providers ...llm.Provider) *testEnv {
	t.Helper()
	root := t.TempDir()
	layout, err := store.New(filepath.Join(root, "out"))
	require.NoError(t, err)

	briefingPath := filepath.Join(root, "briefing.json")
	require.NoError(t, store.SaveJSON(briefingPath, testutil.NewTestBriefing()))

	clients := testutil.FakeClients{}
	for _, p := range providers {
		clients[p] = testutil.NewFakeLLMClient(p)
	}
	var consolidator llm.Provider
	if len(providers) > 0 {
		consolidator = providers[0]
	}

	llmCfg := llm.DefaultConfig()
	pc := llmCfg.Providers[llm.ProviderGemini]
	pc.APIKey = "test-key"
	llmCfg.Providers[llm.ProviderGemini] = pc

	app := NewApp(service.Deps{
		Layout: layout,
		Settings: service.Settings{
			BriefingPath: briefingPath,
			CompanyName:  "Agência Norte",
			Locale:       scheduler.LocalePTBR,
			Generators:   providers,
			Consolidator: consolidator,
		},
		Clients: clients.Factory(),
		Clock:   scheduler.FixedClock{T: time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)},
	}, llmCfg)
	app.ConfigPath = filepath.Join(root, "config.yaml")
	app.Clipboard = func(string) error { return errors.New("clipboard not stubbed") }
	app.Choose = func(string, []llm.Provider) (llm.Provider, error) {
		return "", errors.New("choose not stubbed")
	}
	app.Confirm = func(string) (bool, error) { return false, errors.New("confirm not stubbed") }
	return &testEnv{app: app, clients: clients, root: root}
}

func (e *testEnv) writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(e.root, "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(planJSON), 0o644))
	return path
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Pipeline ---

func TestRunCmd_FullPipeline(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini, llm.ProviderCohere)
	env.clients[llm.ProviderGemini].Reply(generatedReply).Reply(consolidatedReply)
	env.clients[llm.ProviderCohere].Reply(generatedReply)

	out, err := executeCmd(t, env.app, "run")
	require.NoError(t, err)

	assert.Contains(t, out, "PIPELINE RUN")
	assert.Contains(t, out, "Gemini")
	assert.Contains(t, out, "Cohere")
	assert.NotContains(t, out, "FAILED")
	assert.Contains(t, out, "consolidated by Gemini")
	assert.FileExists(t, env.app.Layout.ReportPath("", "Padaria Aurora", testTS, "pdf"))
}

func TestRunCmd_AllGeneratorsFail(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	env.clients[llm.ProviderGemini].Fail(llm.ErrTimeout)

	out, err := executeCmd(t, env.app, "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAllGenerations)
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "llm request timed out")
}

func TestGenerateCmd_RequiresProvider(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	_, err := executeCmd(t, env.app, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "provider" not set`)
}

func TestGenerateCmd_UnknownProvider(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	_, err := executeCmd(t, env.app, "generate", "--provider", "bard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestGenerateExtractSummarizeConsolidate(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	env.clients[llm.ProviderGemini].Reply(generatedReply).Reply(consolidatedReply)

	out, err := executeCmd(t, env.app, "generate", "-p", "g")
	require.NoError(t, err)
	assert.Contains(t, out, "Gemini generated 2 posts")
	assert.Contains(t, out, env.app.Layout.ResponsePath("Gemini", testTS))

	out, err = executeCmd(t, env.app, "extract", "--provider", "gemini")
	require.NoError(t, err)
	assert.Contains(t, out, "Gemini extracted 2 posts")
	assert.FileExists(t, env.app.Layout.PostsPath("Gemini", testTS))

	out, err = executeCmd(t, env.app, "summarize", "--provider", "gemini")
	require.NoError(t, err)
	assert.Contains(t, out, "Gemini summary")
	assert.Contains(t, out, env.app.Layout.CombinedPath(testTS))

	out, err = executeCmd(t, env.app, "consolidate")
	require.NoError(t, err)
	assert.Contains(t, out, "consolidated by Gemini")
	assert.Contains(t, out, "html:")
	assert.FileExists(t, env.app.Layout.ConsolidatedPath("gemini", "Padaria Aurora", testTS))
}

func TestSummarizeCmd_NothingToSummarize(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	_, err := executeCmd(t, env.app, "summarize")
	assert.ErrorIs(t, err, service.ErrNoSummaries)
}

func TestSummarizeCmd_NoProviders(t *testing.T) {
	env := newTestEnv(t)
	_, err := executeCmd(t, env.app, "summarize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no providers to summarize")
}

func TestConsolidator_Resolution(t *testing.T) {
	app := &App{}
	_, err := consolidator(app, "")
	assert.Error(t, err)

	app.Settings.Generators = []llm.Provider{llm.ProviderCohere}
	p, err := consolidator(app, "")
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderCohere, p)

	app.Settings.Consolidator = llm.ProviderMistral
	p, err = consolidator(app, "")
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderMistral, p)

	p, err = consolidator(app, llm.ProviderAnthropic)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, p)
}

func TestPickCmd_NeedsTerminal(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	_, err := executeCmd(t, env.app, "pick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestPickCmd_GeneratesWithChoice(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)
	env.clients[llm.ProviderGemini].Reply(generatedReply)
	env.app.IsInteractive = func() bool { return true }

	var offered []llm.Provider
	env.app.Choose = func(_ string, providers []llm.Provider) (llm.Provider, error) {
		offered = providers
		return llm.ProviderGemini, nil
	}

	out, err := executeCmd(t, env.app, "pick")
	require.NoError(t, err)
	assert.Contains(t, offered, llm.ProviderGemini)
	assert.NotContains(t, offered, llm.ProviderCohere)
	assert.Contains(t, out, "Gemini generated 2 posts")
	assert.Contains(t, out, "Gemini extracted 2 posts")
}

// --- Rendering ---

func TestRenderCmd_WritesReports(t *testing.T) {
	env := newTestEnv(t)
	plan := env.writePlan(t)
	outDir := filepath.Join(env.root, "reports")

	out, err := executeCmd(t, env.app, "render", plan, "--client", "Café X", "--start", "2024-07-15", "--out", outDir)
	require.NoError(t, err)

	htmlPath := env.app.Layout.ReportPath(outDir, "Café X", testTS, "html")
	assert.Contains(t, out, htmlPath)
	assert.FileExists(t, htmlPath)
	assert.FileExists(t, env.app.Layout.ReportPath(outDir, "Café X", testTS, "pdf"))

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Café X")
	assert.Contains(t, string(html), "15/07/24 a 17/07/24")
}

func TestRenderCmd_BadDate(t *testing.T) {
	env := newTestEnv(t)
	_, err := executeCmd(t, env.app, "render", env.writePlan(t), "--start", "15/07/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestCalendarCmd_SlotOverride(t *testing.T) {
	env := newTestEnv(t)
	out, err := executeCmd(t, env.app, "calendar", env.writePlan(t), "--slots", "mon@10:00,wed@18:30")
	require.NoError(t, err)

	assert.Contains(t, out, "Segunda-feira, 15/07")
	assert.Contains(t, out, "Quarta-feira, 17/07")
	assert.Contains(t, out, "18:30")
	assert.Contains(t, out, "Segunda-feira, 22/07")
	assert.Contains(t, out, "3 posts over 3 days")
	assert.Contains(t, out, "☐ Preparar")
}

func TestCalendarCmd_JSON(t *testing.T) {
	env := newTestEnv(t)
	out, err := executeCmd(t, env.app, "calendar", env.writePlan(t), "--json", "--start", "2024-07-19")
	require.NoError(t, err)

	var doc struct {
		Calendar  []scheduler.CalendarEntry     `json:"calendar"`
		Checklist []scheduler.ChecklistDayEntry `json:"checklist"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Calendar, 3)
	// Friday start, default table skips the weekend.
	assert.Equal(t, "Sexta-feira, 19/07", doc.Calendar[0].Day)
	assert.Equal(t, "Segunda-feira, 22/07", doc.Calendar[1].Day)
	assert.NotEmpty(t, doc.Checklist)
}

func TestCalendarCmd_InvalidSlots(t *testing.T) {
	env := newTestEnv(t)
	_, err := executeCmd(t, env.app, "calendar", env.writePlan(t), "--slots", "someday@10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weekday")
}

func TestCaptionCmd_Print(t *testing.T) {
	env := newTestEnv(t)
	plan := env.writePlan(t)

	out, err := executeCmd(t, env.app, "caption", plan, "1", "--print")
	require.NoError(t, err)
	assert.Equal(t, "Pão quente saindo agora\n\n#pao #fermento\n", out)

	out, err = executeCmd(t, env.app, "caption", plan, "2", "--print")
	require.NoError(t, err)
	assert.Equal(t, "Curta\n\nVariação A\nVariação B\n", out)
}

func TestCaptionCmd_Clipboard(t *testing.T) {
	env := newTestEnv(t)
	var copied string
	env.app.Clipboard = func(text string) error {
		copied = text
		return nil
	}

	out, err := executeCmd(t, env.app, "caption", env.writePlan(t), "1")
	require.NoError(t, err)
	assert.Equal(t, "Pão quente saindo agora\n\n#pao #fermento", copied)
	assert.Contains(t, out, "caption for post 1 copied")
}

func TestCaptionCmd_OutOfRange(t *testing.T) {
	env := newTestEnv(t)
	plan := env.writePlan(t)
	for _, n := range []string{"0", "4", "x"} {
		_, err := executeCmd(t, env.app, "caption", plan, n, "--print")
		require.Error(t, err, n)
		assert.Contains(t, err.Error(), "between 1 and 3")
	}
}

// --- Maintenance ---

func TestClearCmd(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.app.Layout.Ensure())
	require.NoError(t, store.SaveText(env.app.Layout.PromptLogPath("gemini", "generate", testTS), "x"))

	_, err := executeCmd(t, env.app, "clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	env.app.IsInteractive = func() bool { return true }
	env.app.Confirm = func(string) (bool, error) { return false, nil }
	out, err := executeCmd(t, env.app, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing deleted.")

	out, err = executeCmd(t, env.app, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 file under")
	assert.NoFileExists(t, env.app.Layout.PromptLogPath("gemini", "generate", testTS))
	assert.DirExists(t, env.app.Layout.PromptLogDir())
}

func TestConfigInitCmd(t *testing.T) {
	env := newTestEnv(t)

	out, err := executeCmd(t, env.app, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote example config to "+env.app.ConfigPath)
	assert.FileExists(t, env.app.ConfigPath)

	out, err = executeCmd(t, env.app, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already exists")
}

func TestProvidersCmd(t *testing.T) {
	env := newTestEnv(t, llm.ProviderGemini)

	out, err := executeCmd(t, env.app, "providers")
	require.NoError(t, err)
	assert.Contains(t, out, "gemini-2.5-flash")
	assert.Contains(t, out, "generator, consolidator")
	assert.Contains(t, out, "UNKNOWN")

	env.clients[llm.ProviderGemini].Down = true
	out, err = executeCmd(t, env.app, "providers", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "SKIPPED")
}

func TestRootCmd_VerboseRaisesLogLevel(t *testing.T) {
	env := newTestEnv(t)
	env.app.LogLevel = new(slog.LevelVar)

	_, err := executeCmd(t, env.app, "providers", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, env.app.LogLevel.Level())
}
