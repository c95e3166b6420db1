package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/scaffold/internal/format"
)

// Input formats accepted by the generate subcommand.
const (
	InputPostman    = "postman"
	InputDescriptor = "descriptor"
)

// GenerateOptions are the options passed to the generate subcommand.
type GenerateOptions struct {
	// Language is the target language tag e.g. "Go", if empty the user is prompted.
	Language string

	// Output is the name of a file in which to save the generated code, if empty,
	// the code is printed to stdout.
	Output string

	// Input is the format of the input file, one of "postman" or "descriptor".
	Input string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the GenerateOptions is valid, returning a non-nil
// error if it's not.
func (g GenerateOptions) Validate() error {
	switch input := g.Input; input {
	case InputPostman, InputDescriptor:
		return nil
	default:
		return fmt.Errorf("invalid option for --input %q, allowed values are %q, %q", input, InputPostman, InputDescriptor)
	}
}

// Generate implements the generate subcommand.
func (s Scaffold) Generate(file string, options GenerateOptions) error {
	logger := s.logger.Prefixed("generate").With(slog.String("file", file))

	if err := options.Validate(); err != nil {
		return err
	}

	logger.Debug("Generate configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	language := options.Language
	if language == "" {
		var err error

		language, err = s.promptLanguage()
		if err != nil {
			return fmt.Errorf("--lang was not given and could not prompt for it: %w", err)
		}
	}

	if !s.generator.Supports(language) {
		logger.Warn("No template for language, output will be a placeholder", slog.String("language", language))
	}

	start := time.Now()

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	var importer format.Importer = format.PostmanImporter{}
	if options.Input == InputDescriptor {
		importer = format.JSONImporter{}
	}

	code, err := s.generator.GenerateFrom(importer, f, language)
	if err != nil {
		return err
	}

	logger.Debug(
		"Generated code",
		slog.String("language", language),
		slog.Int("bytes", len(code)),
		slog.Duration("took", time.Since(start)),
	)

	code = strings.TrimRight(code, "\n") + "\n"

	if options.Output == "" {
		fmt.Fprint(s.stdout, code)
		return nil
	}

	if err := os.WriteFile(options.Output, []byte(code), filePermissions); err != nil {
		return fmt.Errorf("could not write generated code: %w", err)
	}

	msg.Fsuccess(s.stdout, "%s code written to %s", language, options.Output)

	return nil
}

// Languages implements the languages subcommand.
func (s Scaffold) Languages() {
	for _, language := range s.generator.Languages() {
		fmt.Fprintln(s.stdout, language)
	}
}

// promptLanguage asks the user to pick one of the supported languages.
func (s Scaffold) promptLanguage() (string, error) {
	if !s.interactive() {
		return "", errNotInteractive
	}

	languages := s.generator.Languages()

	options := make([]huh.Option[string], 0, len(languages))
	for _, language := range languages {
		options = append(options, huh.NewOption(string(language), string(language)))
	}

	var language string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target language").
				Options(options...).
				Value(&language),
		),
	).WithInput(s.stdin).WithOutput(s.stderr)

	if err := form.Run(); err != nil {
		return "", err
	}

	return language, nil
}
