package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotenv loads files into the process environment without overriding
// variables that are already set. Missing files are skipped; the names that
// were loaded are returned.
func LoadDotenv(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var loaded []string
	for _, f := range files {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, err
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
