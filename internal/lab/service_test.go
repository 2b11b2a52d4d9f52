package lab

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandHandler(t *testing.T) {

	type test struct {
		body string
		code int
	}

	tests := map[string]test{
		"set-weight": {
			body: `{"type":"set-w1","value":2}`,
			code: 200,
		},
		"reset": {
			body: `{"type":"reset-dataset"}`,
			code: 200,
		},
		"unknown": {
			body: `{"type":"boost"}`,
			code: 400,
		},
		"bad-level": {
			body: `{"type":"set-level","level":9}`,
			code: 400,
		},
		"garbage": {
			body: `not json`,
			code: 400,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := New(testConfig(), testBank())
			handler := command(l)
			r := httptest.NewRequest("POST", "/api/command", strings.NewReader(tt.body))
			_, code, err := handler(r)
			assert.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}

}

func TestStateHandler(t *testing.T) {

	l := New(testConfig(), testBank())
	l.apply(Command{Type: SetW1, Value: 1})

	b, code, err := state(l)(httptest.NewRequest("GET", "/data/state", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, code)
	assert.Contains(t, string(b), `"equation":"z = 1.00 * x + 0.00 * y + 0.00"`)
	assert.Contains(t, string(b), `"accuracy"`)
}

func TestQuizHandlers(t *testing.T) {

	l := New(testConfig(), testBank())

	b, code, err := quizState(l)(httptest.NewRequest("GET", "/data/quiz", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, code)
	assert.Contains(t, string(b), "sigmoid of 0 is")
	// the answer key never leaves the server
	assert.NotContains(t, string(b), `"answer"`)

	b, code, err = answer(l)(httptest.NewRequest("POST", "/api/quiz", strings.NewReader(`{"choice":1}`)))
	assert.NoError(t, err)
	assert.Equal(t, 200, code)
	assert.Contains(t, string(b), `"correct":true`)
}
