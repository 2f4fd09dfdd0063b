package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFeedback = `{
  "overall_summary": "Solid performance with strong technical depth.",
  "strengths": ["clear explanations", "good use of examples"],
  "areas_for_improvement": ["reduce filler words"],
  "feedback_items": [
    {
      "category": "Communication Skills",
      "strength": "Structured answers",
      "weakness": "Occasional hedging",
      "suggestions": ["Practice concise summaries"]
    }
  ],
  "recommended_resources": ["System Design Primer"]
}`

func TestValidate_ValidFeedback(t *testing.T) {
	err := Validate(FeedbackSchema, []byte(validFeedback))
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	doc := `{
  "strengths": [],
  "areas_for_improvement": [],
  "feedback_items": [{"category": "Technical Knowledge"}]
}`
	err := Validate(FeedbackSchema, []byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_WrongType(t *testing.T) {
	doc := `{
  "overall_summary": "ok",
  "strengths": "not an array",
  "areas_for_improvement": [],
  "feedback_items": [{"category": "Delivery"}]
}`
	err := Validate(FeedbackSchema, []byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_EmptyFeedbackItems(t *testing.T) {
	doc := `{
  "overall_summary": "ok",
  "strengths": [],
  "areas_for_improvement": [],
  "feedback_items": []
}`
	err := Validate(FeedbackSchema, []byte(doc))
	require.Error(t, err)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing_schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "missing_schema.json", loadErr.Name)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(FeedbackSchema, []byte(`{not json`))
	require.Error(t, err)
}

func TestEmbeddedSchemaIsValidJSON(t *testing.T) {
	data, err := schemaFiles.ReadFile(FeedbackSchema)
	require.NoError(t, err)

	var v interface{}
	assert.NoError(t, json.Unmarshal(data, &v))
}
