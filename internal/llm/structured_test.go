package llm

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Title string   `json:"titulo"`
	Tags  []string `json:"hashtags"`
	Score float64  `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"titulo":"Bastidores","hashtags":["#pao"],"score":0.95}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bastidores", result.Title)
	assert.Equal(t, 0.95, result.Score)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"titulo\":\"Receita\",\"score\":0.88}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Receita", result.Title)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Aqui está o plano:\n{\"titulo\":\"Promo\"}\nEspero que ajude!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Promo", result.Title)
}

func TestExtractJSON_NestedBracesAndBracesInStrings(t *testing.T) {
	type nested struct {
		Posts []map[string]string `json:"posts"`
	}
	raw := `{"posts":[{"titulo":"Use {chaves} à vontade","tema":"a \"quote\""}]} trailing }`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "Use {chaves} à vontade", result.Posts[0]["titulo"])
	assert.Equal(t, `a "quote"`, result.Posts[0]["tema"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("Desculpe, não consigo ajudar.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Comments(t *testing.T) {
	raw := `{
		// the title
		"titulo": "Com comentário", /* inline */
		"hashtags": ["#a//b"]
	}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Com comentário", result.Title)
	assert.Equal(t, []string{"#a//b"}, result.Tags)
}

func TestExtractJSON_LeadingDecimal(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"titulo": "x", "score": .8}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Score)
}

func TestExtractJSON_TrailingCommas(t *testing.T) {
	raw := `{"titulo": "a, b,", "hashtags": ["#x", "#y",],}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a, b,", result.Title)
	assert.Equal(t, []string{"#x", "#y"}, result.Tags)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Title == "" {
			return fmt.Errorf("titulo is required")
		}
		return nil
	}
	_, err := ExtractJSON[testPayload](`{"score": 1}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "titulo is required")
}

func TestExtractJSON_RequireKeys(t *testing.T) {
	obj, err := ExtractJSON(`{"posts": [], "future_strategy": "x"}`, RequireKeys("posts"))
	require.NoError(t, err)
	assert.Contains(t, obj, "future_strategy")

	_, err = ExtractJSON(`{"future_strategy": "x"}`, RequireKeys("posts", "weekly_strategy_summary"))
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "posts, weekly_strategy_summary")
}

func TestCleanJSON_ReturnsValidText(t *testing.T) {
	cleaned, err := CleanJSON("```json\n{\"a\": .5, // note\n \"b\": [1,2,],}\n```")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(cleaned)))

	_, err = CleanJSON(`{"a": tru}`)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
