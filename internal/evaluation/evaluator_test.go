package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/types"
)

func TestScoreAnswer_TechnicalAnswer(t *testing.T) {
	e := NewEvaluator(nil)

	text := "I think the algorithm has O(n log n) complexity because it uses a " +
		"divide and conquer approach with a well-structured recursive implementation."
	score, err := e.ScoreAnswer(text)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, score.Relevance, 6.5)
	assert.GreaterOrEqual(t, score.Clarity, 6.0)
}

func TestScoreAnswer_FillerHeavyAnswer(t *testing.T) {
	e := NewEvaluator(nil)

	text := "Um, I mean, like, I'm not really sure, you know, maybe it's " +
		"something like a loop or whatever."
	score, err := e.ScoreAnswer(text)
	require.NoError(t, err)

	assert.LessOrEqual(t, score.Clarity, 4.0)
	assert.LessOrEqual(t, score.Relevance, 3.0)
}

func TestScoreAnswer_EmptyInput(t *testing.T) {
	e := NewEvaluator(nil)

	_, err := e.ScoreAnswer("")
	require.Error(t, err)
	assert.IsType(t, &analysis.EmptyInputError{}, err)
}

func TestScoreAnswer_SingleWord(t *testing.T) {
	e := NewEvaluator(nil)

	score, err := e.ScoreAnswer("Recursion.")
	require.NoError(t, err)

	for _, v := range []float64{score.Clarity, score.Confidence, score.Relevance, score.Overall} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 10.0)
	}
}

func TestScoreAnswer_Deterministic(t *testing.T) {
	e := NewEvaluator(nil)

	text := "The cache sits in front of the database and absorbs most read traffic."
	first, err := e.ScoreAnswer(text)
	require.NoError(t, err)
	second, err := e.ScoreAnswer(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateAnswer_PackagesFeaturesAndSummary(t *testing.T) {
	e := NewEvaluator(nil)

	q := &types.Question{QuestionID: 3, QuestionText: "How would you scale this service?"}
	ev, err := e.EvaluateAnswer(q, "I would definitely shard the database and add a cache in front of it.")
	require.NoError(t, err)

	assert.Equal(t, 3, ev.QuestionID)
	assert.NotZero(t, ev.Features.WordCount)
	assert.NotEmpty(t, ev.Summary["length"])
	assert.False(t, ev.Timestamp.IsZero())

	want := round2(0.3*ev.Scores.Clarity + 0.3*ev.Scores.Confidence + 0.4*ev.Scores.Relevance)
	assert.InDelta(t, want, ev.Scores.Overall, 1e-6)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
