package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bank() Bank {
	return Bank{
		1: {
			{Prompt: "what does the bias do", Choices: []string{"shifts the boundary", "rotates the boundary"}, Answer: 0},
			{Prompt: "sigmoid of 0 is", Choices: []string{"0", "0.5", "1"}, Answer: 1},
		},
		2: {
			{Prompt: "the boundary is where probability equals", Choices: []string{"0", "0.5", "1"}, Answer: 1},
		},
	}
}

func TestQuizFlow(t *testing.T) {

	q := New(bank())
	assert.Equal(t, 1, q.Level())

	question, ok := q.Current()
	assert.True(t, ok)
	assert.Equal(t, "what does the bias do", question.Prompt)

	correct, err := q.Answer(0)
	assert.NoError(t, err)
	assert.True(t, correct)

	correct, err = q.Answer(0)
	assert.NoError(t, err)
	assert.False(t, correct)

	// bank exhausted
	_, ok = q.Current()
	assert.False(t, ok)
	_, err = q.Answer(0)
	assert.Error(t, err)

	c, asked := q.Score()
	assert.Equal(t, 1, c)
	assert.Equal(t, 2, asked)
}

func TestQuizLevels(t *testing.T) {

	q := New(bank())
	_, err := q.Answer(0)
	assert.NoError(t, err)

	// switching level resets progress
	assert.NoError(t, q.SetLevel(2))
	c, asked := q.Score()
	assert.Equal(t, 0, c)
	assert.Equal(t, 0, asked)

	question, ok := q.Current()
	assert.True(t, ok)
	assert.Equal(t, 3, len(question.Choices))

	// level 3 has no questions in this bank
	assert.NoError(t, q.SetLevel(3))
	_, ok = q.Current()
	assert.False(t, ok)

	assert.Error(t, q.SetLevel(0))
	assert.Error(t, q.SetLevel(4))
}

func TestQuizInvalidChoice(t *testing.T) {
	q := New(bank())
	_, err := q.Answer(-1)
	assert.Error(t, err)
	_, err = q.Answer(5)
	assert.Error(t, err)
	// invalid choices do not consume the question
	_, ok := q.Current()
	assert.True(t, ok)
}
