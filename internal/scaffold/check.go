package scaffold

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/scaffold/internal/format"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand, reporting whether every collection under
// the path is usable for code generation.
func (s Scaffold) Check(options CheckOptions) error {
	logger := s.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && filepath.Ext(path) == ".json" {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	logger.Debug("Checking collections given by path", slog.Int("number", len(paths)))

	group := errgroup.Group{}

	for _, path := range paths {
		group.Go(func() error {
			return checkFile(path)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(s.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile runs an import check on a single collection file.
func checkFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	// We don't actually care about the result, just that it imports
	if _, err := (format.PostmanImporter{}).Import(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
