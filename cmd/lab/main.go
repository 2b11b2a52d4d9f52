package main

import (
	"context"
	"log"
	"time"

	"github.com/rs/zerolog"

	"github.com/drakos74/logit-lab/infra/config"
	"github.com/drakos74/logit-lab/internal/dataset"
	"github.com/drakos74/logit-lab/internal/lab"
	"github.com/drakos74/logit-lab/internal/quiz"
	"github.com/drakos74/logit-lab/internal/render"
	"github.com/drakos74/logit-lab/internal/server"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type labConfig struct {
	Port            int               `json:"port"`
	Seed            uint64            `json:"seed"`
	FrameIntervalMS int               `json:"frame_interval_ms"`
	StepIntervalMS  int               `json:"step_interval_ms"`
	LearningRate    float64           `json:"learning_rate"`
	Epochs          int               `json:"epochs"`
	Render          render.Config     `json:"render"`
	Clusters        []dataset.Cluster `json:"clusters"`
}

func main() {

	var cfg labConfig
	config.MustLoad("lab", &cfg)

	var bank quiz.Bank
	config.MustLoad("quiz", &bank)

	sessionConfig := lab.Config{
		Seed:          cfg.Seed,
		FrameInterval: time.Duration(cfg.FrameIntervalMS) * time.Millisecond,
		StepInterval:  time.Duration(cfg.StepIntervalMS) * time.Millisecond,
		Render:        cfg.Render,
		Clusters:      cfg.Clusters,
		LearningRate:  cfg.LearningRate,
		Epochs:        cfg.Epochs,
	}
	if cfg.Seed == 0 {
		sessionConfig.Seed = uint64(time.Now().UnixNano())
	}

	session := lab.New(sessionConfig, bank)
	go session.Run(context.Background())

	err := server.NewServer("lab", cfg.Port).
		Add(lab.Routes(session)...).
		Run()
	if err != nil {
		log.Fatalf("error running server: %s", err.Error())
	}
}
