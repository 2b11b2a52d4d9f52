package quiz

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Question is one multiple-choice entry of the bank.
type Question struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer"`
}

// Bank holds the questions per difficulty level (1-3).
type Bank map[int][]Question

// Quiz is a simple state machine over the bank :
// one current question per level, advanced explicitly.
type Quiz struct {
	bank    Bank
	level   int
	index   int
	correct int
	asked   int
}

// New creates a quiz on level 1.
func New(bank Bank) *Quiz {
	return &Quiz{
		bank:  bank,
		level: 1,
	}
}

// Level returns the active difficulty level.
func (q *Quiz) Level() int {
	return q.level
}

// SetLevel switches the difficulty and restarts the quiz.
// Levels outside 1-3 are rejected.
func (q *Quiz) SetLevel(level int) error {
	if level < 1 || level > 3 {
		return fmt.Errorf("invalid level: %d", level)
	}
	q.level = level
	q.index = 0
	q.correct = 0
	q.asked = 0
	return nil
}

// Current returns the active question, or false when the level has none left.
func (q *Quiz) Current() (Question, bool) {
	questions := q.bank[q.level]
	if q.index >= len(questions) {
		return Question{}, false
	}
	return questions[q.index], true
}

// Answer checks the given choice against the current question
// and advances to the next one.
func (q *Quiz) Answer(choice int) (bool, error) {
	question, ok := q.Current()
	if !ok {
		return false, fmt.Errorf("no question left on level %d", q.level)
	}
	if choice < 0 || choice >= len(question.Choices) {
		return false, fmt.Errorf("invalid choice: %d", choice)
	}
	q.asked++
	q.index++
	if choice == question.Answer {
		q.correct++
		return true, nil
	}
	log.Debug().Int("level", q.level).Int("choice", choice).Msg("wrong answer")
	return false, nil
}

// Score returns the answered and correct counts for the active level.
func (q *Quiz) Score() (correct, asked int) {
	return q.correct, q.asked
}
