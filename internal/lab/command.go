package lab

import (
	"fmt"

	coinmath "github.com/drakos74/logit-lab/internal/math"
)

// Type identifies a command.
type Type string

const (
	// SetW1 sets the weight of the x feature.
	SetW1 Type = "set-w1"
	// SetW2 sets the weight of the y feature.
	SetW2 Type = "set-w2"
	// SetBias sets the bias term.
	SetBias Type = "set-bias"
	// RunOptimizer starts a gradient-descent playback.
	RunOptimizer Type = "run-optimizer"
	// ResetDataset regenerates the dataset, parameters are untouched.
	ResetDataset Type = "reset-dataset"
	// SetLevel switches the difficulty level.
	SetLevel Type = "set-level"
	// AnswerQuiz answers the current quiz question.
	AnswerQuiz Type = "answer-quiz"
)

// Command is one state mutation requested by the controls.
// All mutations go through commands, so that the session loop
// applies them one at a time.
type Command struct {
	Type   Type    `json:"type"`
	Value  float64 `json:"value,omitempty"`
	Level  int     `json:"level,omitempty"`
	Choice int     `json:"choice,omitempty"`
}

// Validate checks the command before it enters the session loop.
func (c Command) Validate() error {
	switch c.Type {
	case SetW1, SetW2, SetBias:
		if !coinmath.IsFinite(c.Value) {
			return fmt.Errorf("value must be finite for %s", c.Type)
		}
	case SetLevel:
		if c.Level < 1 || c.Level > 3 {
			return fmt.Errorf("level must be 1-3: %d", c.Level)
		}
	case RunOptimizer, ResetDataset, AnswerQuiz:
	default:
		return fmt.Errorf("unknown command: %s", c.Type)
	}
	return nil
}
