package project

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// initRepository creates a non-bare git repository in dir. It reports false
// without error when dir already holds a repository.
func initRepository(dir string) (bool, error) {
	_, err := git.PlainInit(dir, false)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, git.ErrRepositoryAlreadyExists):
		return false, nil
	default:
		return false, fmt.Errorf("%w: git init %s: %w", ErrIO, dir, err)
	}
}
