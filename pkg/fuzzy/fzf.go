package fuzzy

import (
	"fmt"
	"strings"

	fzf "github.com/junegunn/fzf/src"
)

const displaySeparator = "  │  "

// FzfRunner defines the interface for running fzf
type FzfRunner interface {
	Run(opts *fzf.Options) (int, error)
}

// DefaultFzfRunner implements the FzfRunner interface using the real fzf library
type DefaultFzfRunner struct{}

// Run executes fzf with the given options
func (r *DefaultFzfRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// Selector is implemented by both finders
type Selector interface {
	SetOptions(options []Option) error
	SetPrompt(prompt string)
	Select() (string, error)
}

// FzfFinder implements fuzzy finding using the fzf library. When fzf cannot
// start, selection is delegated to the fallback finder.
type FzfFinder struct {
	options  []Option
	prompt   string
	runner   FzfRunner
	fallback Selector
}

// NewFzf creates a new fzf-backed finder
func NewFzf(prompt string, fallback Selector) *FzfFinder {
	return NewFzfWithRunner(prompt, &DefaultFzfRunner{}, fallback)
}

// NewFzfWithRunner creates a new fzf-backed finder with a custom runner (for testing)
func NewFzfWithRunner(prompt string, runner FzfRunner, fallback Selector) *FzfFinder {
	return &FzfFinder{
		prompt:   prompt,
		options:  make([]Option, 0),
		runner:   runner,
		fallback: fallback,
	}
}

// SetOptions sets the available options for selection
func (f *FzfFinder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// SetPrompt sets the display prompt
func (f *FzfFinder) SetPrompt(prompt string) {
	f.prompt = prompt
}

// Select runs fzf over the options and returns the chosen value
func (f *FzfFinder) Select() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	args := []string{
		"--prompt=" + f.prompt + " ",
		"--height=40%",
		"--layout=reverse",
		"--no-multi",
		"--cycle",
		"--extended",
		"--algo=v2",
		"--tiebreak=index",
		"--no-mouse",
		"--border=rounded",
	}

	opts, err := fzf.ParseOptions(true, args)
	if err != nil {
		return "", fmt.Errorf("failed to parse fzf options: %w", err)
	}

	input := make(chan string, len(f.options))
	for _, option := range f.options {
		input <- displayText(option)
	}
	close(input)

	output := make(chan string, len(f.options))
	opts.Input = input
	opts.Output = output

	exitCode, err := f.runner.Run(opts)
	if err != nil {
		if f.fallback == nil {
			return "", fmt.Errorf("fzf failed: %w", err)
		}
		if err := f.fallback.SetOptions(f.options); err != nil {
			return "", err
		}
		f.fallback.SetPrompt(f.prompt)
		return f.fallback.Select()
	}

	switch exitCode {
	case fzf.ExitOk:
	case fzf.ExitInterrupt, fzf.ExitNoMatch:
		return "", ErrCancelled
	default:
		return "", fmt.Errorf("fzf exited with code %d", exitCode)
	}

	var selected string
	select {
	case selected = <-output:
	default:
	}

	if strings.TrimSpace(selected) == "" {
		return "", ErrCancelled
	}

	return f.valueOf(selected), nil
}

// valueOf maps a selected display line back to its option value
func (f *FzfFinder) valueOf(line string) string {
	value := strings.TrimSpace(strings.SplitN(line, displaySeparator, 2)[0])
	for _, option := range f.options {
		if option.Value == value {
			return option.Value
		}
	}
	return value
}

// displayText renders an option as a single fzf line
func displayText(option Option) string {
	description := strings.Join(strings.Fields(option.Description), " ")
	if description == "" {
		return option.Value
	}
	return option.Value + displaySeparator + description
}

// Ensure both finders implement the interface
var (
	_ Selector = (*FzfFinder)(nil)
	_ Selector = (*Finder)(nil)
)
