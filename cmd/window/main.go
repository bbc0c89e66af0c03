package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/bulletdodge/internal/audio"
	"github.com/tomz197/bulletdodge/internal/config"
	"github.com/tomz197/bulletdodge/internal/store"
	"github.com/tomz197/bulletdodge/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "window"})

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	scores := store.Open(config.ScoreFile())
	synth := audio.NewSynth()
	defer synth.Close()

	logger.Info("starting", "scores", scores.Path())
	err := window.Run(window.Options{
		Store:  scores.Entry(store.DefaultKey),
		Tone:   synth,
		Muted:  !config.GetEnvBool(config.EnvSound, true),
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("window error", "err", err)
	}
}
