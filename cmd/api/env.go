package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFileVar names the variable that points at an alternative dotenv file.
const envFileVar = "DCLAB_ENV_FILE"

// loadDotEnv loads DCLAB_* overrides from a dotenv file, .env by default.
// A missing default file is ignored; a missing file named explicitly is an
// error. Variables already set in the process environment win.
func loadDotEnv() error {
	path := os.Getenv(envFileVar)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return nil
	default:
		return fmt.Errorf("load %s: %w", path, err)
	}
}
