// Package config provides shared configuration utilities.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys shared by the commands.
const (
	EnvScoreFile = "DODGE_SCORE_FILE" // Path of the best score file
	EnvSound     = "DODGE_SOUND"      // Set to false to start with sound off
	EnvLogFile   = "DODGE_LOG_FILE"   // Log destination for the terminal game
)

// DefaultScoreFileName is the score file created under the user config dir.
const DefaultScoreFileName = "bullet-dodge.json"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool parses the variable as a boolean ("1", "true", "on", "yes", ...).
// Unset or unparsable values return fallback.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true
	case "off", "no":
		return false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

// LoadDotEnv loads variables from the given .env files (default ".env").
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ScoreFile returns the best score file path: DODGE_SCORE_FILE, else a file in the
// user config directory, else one in the working directory.
func ScoreFile() string {
	if path := GetEnv(EnvScoreFile, ""); path != "" {
		return path
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bullet-dodge", DefaultScoreFileName)
	}
	return DefaultScoreFileName
}
