package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey is the terminal Prompter.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a Prompter reading from the process's terminal.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

func (s *Survey) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}
	opts := s.opts
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(append([]survey.AskOpt(nil), opts...), survey.WithValidator(func(ans interface{}) error {
			str, _ := ans.(string)
			return validate(str)
		}))
	}
	if err := survey.AskOne(q, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (s *Survey) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	q := &survey.Confirm{Message: cfg.Message, Default: cfg.Default}
	if err := survey.AskOne(q, &out, s.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (s *Survey) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	labels := displays(cfg.Options)
	q := &survey.Select{Message: cfg.Message, Options: labels}
	if len(cfg.Default) > 0 {
		if i := indexOfValue(cfg.Options, cfg.Default[0]); i >= 0 {
			q.Default = labels[i]
		}
	}
	var out int
	if err := survey.AskOne(q, &out, s.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return cfg.Options[out].Value, nil
}

func (s *Survey) MultiSelect(ctx context.Context, cfg SelectConfig) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	labels := displays(cfg.Options)
	q := &survey.MultiSelect{Message: cfg.Message, Options: labels}
	var defaults []string
	for _, v := range cfg.Default {
		if i := indexOfValue(cfg.Options, v); i >= 0 {
			defaults = append(defaults, labels[i])
		}
	}
	if len(defaults) > 0 {
		q.Default = defaults
	}
	var out []int
	if err := survey.AskOne(q, &out, s.opts...); err != nil {
		return nil, translateSurveyErr(err)
	}
	values := make([]string, len(out))
	for i, idx := range out {
		values[i] = cfg.Options[idx].Value
	}
	return values, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func displays(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.display()
	}
	return out
}

func indexOfValue(options []Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}
