package evaluation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/types"
)

// batchConcurrency bounds the number of answers scored in parallel. Scoring
// is CPU-bound and each answer is independent, so a small pool is enough.
const batchConcurrency = 4

// ScoreBatch scores independent answers concurrently, preserving input order.
// The first extraction error (empty answer) aborts the batch.
func (e *Evaluator) ScoreBatch(ctx context.Context, answers []string) ([]*types.EvaluationScore, error) {
	scores := make([]*types.EvaluationScore, len(answers))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, answer := range answers {
		g.Go(func() error {
			score, err := e.ScoreAnswer(answer)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
