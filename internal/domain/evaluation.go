package domain

// Consistency verdicts reported by the evaluator
const (
	ConsistencyPass  = "Pass"
	ConsistencyFail  = "Fail"
	ConsistencyError = "Error"
)

// Score bounds requested from the evaluator. Scores are not clamped to them.
const (
	MinScore = 1
	MaxScore = 10
)

// EvaluationResult is the evaluator's judgment of a generated description
type EvaluationResult struct {
	Score            int    `json:"score" jsonschema:"title=score,description=Overall quality score from 1 to 10.,minimum=1,maximum=10"`
	ConsistencyCheck string `json:"consistency_check" jsonschema:"title=consistency_check,description=Pass if all input facts are present in the description otherwise Fail.,enum=Pass,enum=Fail"`
	ToneFeedback     string `json:"tone_feedback" jsonschema:"title=tone_feedback,description=Brief comment on the tone."`
}

// ErrorEvaluation synthesizes the judgment shown when evaluation could not complete
func ErrorEvaluation(detail string) *EvaluationResult {
	return &EvaluationResult{
		Score:            0,
		ConsistencyCheck: ConsistencyError,
		ToneFeedback:     detail,
	}
}

// Passed reports whether the evaluator found every input fact in the description
func (e *EvaluationResult) Passed() bool {
	return e.ConsistencyCheck == ConsistencyPass
}

// ScoreInRange reports whether the score lies within the requested 1-10 scale
func (e *EvaluationResult) ScoreInRange() bool {
	return e.Score >= MinScore && e.Score <= MaxScore
}

// Submission is the outcome of running one product record through
// description and evaluation
type Submission struct {
	Record         *ProductRecord
	Description    string
	DescriptionErr error
	Evaluation     *EvaluationResult
	EvaluationErr  error
}
