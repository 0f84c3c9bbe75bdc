package fuzzy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user leaves a finder without choosing
var ErrCancelled = errors.New("selection cancelled")

// Option represents a selectable option in the fuzzy finder
type Option struct {
	Value       string
	Description string
}

// Finder is the line-based finder used when fzf is unavailable. It reads
// filters and numeric choices from in and prints options to out.
type Finder struct {
	prompt  string
	options []Option
	in      *bufio.Reader
	out     io.Writer
}

// New creates a new line-based finder with the given prompt
func New(prompt string, in io.Reader, out io.Writer) *Finder {
	return &Finder{
		prompt:  prompt,
		options: make([]Option, 0),
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// SetOptions sets the available options for selection
func (f *Finder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// SetPrompt updates the prompt message
func (f *Finder) SetPrompt(prompt string) {
	f.prompt = prompt
}

// Select lists the options and reads either a number to choose or text to
// narrow the list. A single remaining match is chosen automatically; an empty
// line or end of input cancels.
func (f *Finder) Select() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	current := f.options
	for {
		fmt.Fprintln(f.out, f.prompt)
		fmt.Fprintln(f.out, strings.Repeat("-", len(f.prompt)))
		for i, option := range current {
			fmt.Fprintf(f.out, "%d. %s", i+1, option.Value)
			if option.Description != "" {
				fmt.Fprintf(f.out, " - %s", option.Description)
			}
			fmt.Fprintln(f.out)
		}
		fmt.Fprintf(f.out, "\nSelect option (1-%d) or type to filter: ", len(current))

		input, err := f.in.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			if err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", ErrCancelled
		}

		if selection, convErr := strconv.Atoi(input); convErr == nil {
			if selection >= 1 && selection <= len(current) {
				return current[selection-1].Value, nil
			}
			fmt.Fprintf(f.out, "Selection %d is out of range (1-%d)\n\n", selection, len(current))
		} else {
			filtered := filterOptions(f.options, input)
			switch len(filtered) {
			case 0:
				fmt.Fprintf(f.out, "No options match filter: %s\n\n", input)
			case 1:
				fmt.Fprintf(f.out, "Auto-selecting: %s\n", filtered[0].Value)
				return filtered[0].Value, nil
			default:
				current = filtered
				fmt.Fprintln(f.out)
			}
		}

		if err != nil {
			return "", ErrCancelled
		}
	}
}

// filterOptions keeps options whose value or description contains filter,
// ignoring case
func filterOptions(options []Option, filter string) []Option {
	filter = strings.ToLower(filter)
	var filtered []Option

	for _, option := range options {
		if strings.Contains(strings.ToLower(option.Value), filter) ||
			strings.Contains(strings.ToLower(option.Description), filter) {
			filtered = append(filtered, option)
		}
	}

	return filtered
}
