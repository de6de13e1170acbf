// Package prompt asks the user questions. Commands depend on the Prompter
// interface; the survey-backed implementation talks to the terminal and the
// Scripted implementation answers from a queue in tests.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl+C).
var ErrAborted = errors.New("cancelled")

// InputConfig configures a free-text question.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
}

// Option is one choice in a select prompt.
type Option struct {
	Value string
	Label string
	Hint  string
}

func (o Option) display() string {
	label := o.Label
	if label == "" {
		label = o.Value
	}
	if o.Hint != "" {
		return label + " - " + o.Hint
	}
	return label
}

// SelectConfig configures single and multi-select questions.
type SelectConfig struct {
	Message string
	Options []Option
	// Default holds the initially selected values.
	Default []string
}

// Prompter asks questions and returns the answers.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (string, error)
	MultiSelect(ctx context.Context, cfg SelectConfig) ([]string, error)
}
