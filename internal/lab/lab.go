package lab

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/logit-lab/internal/buffer"
	"github.com/drakos74/logit-lab/internal/classifier"
	"github.com/drakos74/logit-lab/internal/dataset"
	"github.com/drakos74/logit-lab/internal/metrics"
	"github.com/drakos74/logit-lab/internal/model"
	"github.com/drakos74/logit-lab/internal/optimizer"
	"github.com/drakos74/logit-lab/internal/quiz"
	"github.com/drakos74/logit-lab/internal/render"
)

// Config wires the session together.
type Config struct {
	Seed          uint64            `json:"seed"`
	FrameInterval time.Duration     `json:"frame_interval"`
	StepInterval  time.Duration     `json:"step_interval"`
	Render        render.Config     `json:"render"`
	Clusters      []dataset.Cluster `json:"clusters"`
	LearningRate  float64           `json:"learning_rate"`
	Epochs        int               `json:"epochs"`
}

// DefaultConfig returns the reference session setup :
// ~30 frames per second, one optimizer step every 20ms.
func DefaultConfig() Config {
	return Config{
		Seed:          uint64(time.Now().UnixNano()),
		FrameInterval: 33 * time.Millisecond,
		StepInterval:  20 * time.Millisecond,
		Render:        render.DefaultConfig(),
		Clusters:      dataset.Clusters(),
		LearningRate:  optimizer.DefaultLearningRate,
		Epochs:        optimizer.DefaultEpochs,
	}
}

// Frame is one rendered snapshot of the session, shipped to viewers.
type Frame struct {
	Params   model.Snapshot   `json:"params"`
	Equation string           `json:"equation"`
	Metrics  model.Metrics    `json:"metrics"`
	Level    int              `json:"level"`
	Running  bool             `json:"running"`
	Commands []render.Command `json:"commands"`
}

// State is the control-panel view of the session.
type State struct {
	Params   model.Snapshot `json:"params"`
	Equation string         `json:"equation"`
	Metrics  model.Metrics  `json:"metrics"`
	Level    int            `json:"level"`
	Running  bool           `json:"running"`
	Dataset  model.Dataset  `json:"dataset"`
}

// QuizState is the client view of the quiz, without the answer key.
type QuizState struct {
	Level   int      `json:"level"`
	Prompt  string   `json:"prompt,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Done    bool     `json:"done"`
	Correct int      `json:"correct"`
	Asked   int      `json:"asked"`
}

// Lab owns the full session state : parameters, dataset, quiz and the
// pending optimizer trace. All mutation is serialised through the command
// channel into the single session loop, last write wins.
type Lab struct {
	mutex       sync.RWMutex
	config      Config
	params      *model.Parameters
	classifier  *classifier.Linear
	generator   *dataset.Generator
	optimizer   optimizer.GradientDescent
	coordinator *render.Coordinator
	recorder    *render.Recorder
	quiz        *quiz.Quiz
	set         model.Dataset
	trace       []model.Snapshot
	runID       string
	history     *buffer.Stats
	commands    chan Command
	subscribers map[string]chan Frame
}

// New creates a session with a freshly generated dataset.
func New(config Config, bank quiz.Bank) *Lab {
	params := model.NewParameters()
	c := classifier.New(params)
	generator := dataset.New(config.Seed, config.Clusters...)
	return &Lab{
		config:     config,
		params:     params,
		classifier: c,
		generator:  generator,
		optimizer: optimizer.GradientDescent{
			LearningRate: config.LearningRate,
			Epochs:       config.Epochs,
		},
		coordinator: render.New(config.Render, c),
		recorder:    render.NewRecorder(),
		quiz:        quiz.New(bank),
		set:         generator.Generate(),
		commands:    make(chan Command, 10),
		subscribers: make(map[string]chan Frame),
	}
}

// Push queues a command for the session loop.
func (l *Lab) Push(command Command) error {
	if err := command.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	select {
	case l.commands <- command:
		return nil
	default:
		return fmt.Errorf("session is busy")
	}
}

// Run drives the session until the context is cancelled.
// Frames, optimizer steps and commands all interleave on this
// one goroutine, so no mutation ever races another.
func (l *Lab) Run(ctx context.Context) {
	frames := time.NewTicker(l.config.FrameInterval)
	defer frames.Stop()
	steps := time.NewTicker(l.config.StepInterval)
	defer steps.Stop()

	log.Info().
		Int("size", len(l.set)).
		Float64("lr", l.optimizer.LearningRate).
		Int("epochs", l.optimizer.Epochs).
		Msg("session started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("session stopped")
			return
		case command := <-l.commands:
			l.apply(command)
		case <-steps.C:
			l.step()
		case <-frames.C:
			l.frame()
		}
	}
}

// apply executes one command against the session state.
func (l *Lab) apply(command Command) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	metrics.Observer.IncrCommand(string(command.Type))

	switch command.Type {
	case SetW1:
		l.params.SetW1(command.Value)
		l.interrupt()
	case SetW2:
		l.params.SetW2(command.Value)
		l.interrupt()
	case SetBias:
		l.params.SetBias(command.Value)
		l.interrupt()
	case RunOptimizer:
		trace, err := l.optimizer.Run(l.set, l.params.Snapshot())
		if err != nil {
			log.Error().Err(err).Msg("could not run optimizer")
			return
		}
		l.trace = trace
		l.runID = uuid.New().String()
		l.history = buffer.NewStats()
		log.Info().Str("run", l.runID).Int("steps", len(trace)).Msg("optimizer playback started")
	case ResetDataset:
		l.set = l.generator.Generate()
		l.interrupt()
	case SetLevel:
		if err := l.quiz.SetLevel(command.Level); err != nil {
			log.Error().Err(err).Msg("could not set level")
		}
	case AnswerQuiz:
		if _, err := l.answer(command.Choice); err != nil {
			log.Error().Err(err).Msg("could not answer quiz")
		}
	}
}

// interrupt discards a pending playback, the manual edit wins.
func (l *Lab) interrupt() {
	if len(l.trace) == 0 {
		return
	}
	log.Info().Str("run", l.runID).Int("remaining", len(l.trace)).Msg("playback interrupted")
	l.trace = nil
}

// step applies the next snapshot of a pending optimizer trace.
func (l *Lab) step() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if len(l.trace) == 0 {
		return
	}
	l.params.Apply(l.trace[0])
	l.trace = l.trace[1:]

	if m, err := l.classifier.Evaluate(l.set); err == nil {
		l.history.Push(m.MSE)
	}

	if len(l.trace) == 0 {
		metrics.Observer.IncrRun()
		log.Info().
			Str("run", l.runID).
			Int("steps", l.history.Count()).
			Float64("mse", l.history.Min()).
			Float64("improvement", -l.history.Diff()).
			Msg("optimizer playback finished")
	}
}

// frame renders the current state and fans it out to the subscribers.
func (l *Lab) frame() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	snapshot := l.params.Snapshot()
	m, err := l.classifier.Evaluate(l.set)
	if err != nil {
		// dropped frame , nothing else to do
		log.Warn().Err(err).Msg("skipping frame")
		return
	}

	l.coordinator.Frame(l.recorder, l.set, snapshot)

	frame := Frame{
		Params:   snapshot,
		Equation: snapshot.Equation(),
		Metrics:  m,
		Level:    l.quiz.Level(),
		Running:  len(l.trace) > 0,
		Commands: l.recorder.Commands(),
	}

	metrics.Observer.IncrFrame()
	metrics.Observer.Track(m.Accuracy, m.MSE)

	for id, subscriber := range l.subscribers {
		select {
		case subscriber <- frame:
		default:
			// slow consumer , skip this frame for it
			log.Debug().Str("subscriber", id).Msg("dropping frame")
		}
	}
}

// State returns the control-panel view of the session.
func (l *Lab) State() State {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	snapshot := l.params.Snapshot()
	m, err := l.classifier.Evaluate(l.set)
	if err != nil {
		log.Warn().Err(err).Msg("no metrics for state")
	}
	return State{
		Params:   snapshot,
		Equation: snapshot.Equation(),
		Metrics:  m,
		Level:    l.quiz.Level(),
		Running:  len(l.trace) > 0,
		Dataset:  l.set,
	}
}

// Quiz returns the client view of the quiz.
func (l *Lab) Quiz() QuizState {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	correct, asked := l.quiz.Score()
	state := QuizState{
		Level:   l.quiz.Level(),
		Correct: correct,
		Asked:   asked,
	}
	question, ok := l.quiz.Current()
	if !ok {
		state.Done = true
		return state
	}
	state.Prompt = question.Prompt
	state.Choices = question.Choices
	return state
}

// Answer checks the given choice against the current quiz question.
func (l *Lab) Answer(choice int) (bool, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.answer(choice)
}

func (l *Lab) answer(choice int) (bool, error) {
	correct, err := l.quiz.Answer(choice)
	if err != nil {
		return false, err
	}
	log.Info().Int("level", l.quiz.Level()).Bool("correct", correct).Msg("quiz answered")
	return correct, nil
}

// Subscribe registers a frame consumer.
func (l *Lab) Subscribe() (string, <-chan Frame) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	id := uuid.New().String()
	frames := make(chan Frame, 1)
	l.subscribers[id] = frames
	log.Info().Str("subscriber", id).Msg("subscribed")
	return id, frames
}

// Unsubscribe removes a frame consumer.
func (l *Lab) Unsubscribe(id string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if frames, ok := l.subscribers[id]; ok {
		close(frames)
		delete(l.subscribers, id)
		log.Info().Str("subscriber", id).Msg("unsubscribed")
	}
}
