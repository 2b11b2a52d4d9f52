package lab

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/logit-lab/internal/server"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Routes exposes the session over http :
// state and quiz reads, command writes and the frame stream.
func Routes(l *Lab) []server.Route {
	return []server.Route{
		server.Live(),
		{
			Action: server.Data,
			Path:   "state",
			Method: server.GET,
			Exec:   state(l),
		},
		{
			Action: server.Data,
			Path:   "quiz",
			Method: server.GET,
			Exec:   quizState(l),
		},
		{
			Action: server.Api,
			Path:   "command",
			Method: server.POST,
			Exec:   command(l),
		},
		{
			Action: server.Api,
			Path:   "quiz",
			Method: server.POST,
			Exec:   answer(l),
		},
		{
			Action: server.Data,
			Path:   "stream",
			Raw:    stream(l),
		},
	}
}

func state(l *Lab) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		b, err := json.Marshal(l.State())
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("could not marshal state: %w", err)
		}
		return b, http.StatusOK, nil
	}
}

func quizState(l *Lab) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		b, err := json.Marshal(l.Quiz())
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("could not marshal quiz: %w", err)
		}
		return b, http.StatusOK, nil
	}
}

func command(l *Lab) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("could not read body: %w", err)
		}
		var c Command
		if err := json.Unmarshal(body, &c); err != nil {
			return []byte(err.Error()), http.StatusBadRequest, nil
		}
		if err := l.Push(c); err != nil {
			return []byte(err.Error()), http.StatusBadRequest, nil
		}
		return []byte{}, http.StatusOK, nil
	}
}

func answer(l *Lab) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("could not read body: %w", err)
		}
		var request struct {
			Choice int `json:"choice"`
		}
		if err := json.Unmarshal(body, &request); err != nil {
			return []byte(err.Error()), http.StatusBadRequest, nil
		}
		correct, err := l.Answer(request.Choice)
		if err != nil {
			return []byte(err.Error()), http.StatusBadRequest, nil
		}
		b, err := json.Marshal(struct {
			Correct bool `json:"correct"`
		}{Correct: correct})
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("could not marshal answer: %w", err)
		}
		return b, http.StatusOK, nil
	}
}

// stream upgrades to a websocket and ships every rendered frame
// until the client goes away.
func stream(l *Lab) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error().Err(err).Msg("could not upgrade stream")
			return
		}
		id, frames := l.Subscribe()
		defer l.Unsubscribe(id)
		defer conn.Close()

		for frame := range frames {
			if err := conn.WriteJSON(frame); err != nil {
				log.Warn().Err(err).Str("subscriber", id).Msg("stream closed")
				return
			}
		}
	}
}
