package prompt

import (
	"context"
	"fmt"
	"sync"
)

// Scripted is a Prompter that replays queued answers in order. Each answer
// is a string (Input, Select), a bool (Confirm), a []string (MultiSelect) or
// an error returned as-is. An exhausted queue fails the prompt.
type Scripted struct {
	mu      sync.Mutex
	answers []any
	// Asked records every prompt message in order.
	Asked []string
}

// NewScripted returns a Scripted prompter with the given answers.
func NewScripted(answers ...any) *Scripted {
	return &Scripted{answers: answers}
}

// Remaining reports how many answers were not consumed.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func (s *Scripted) next(message string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Asked = append(s.Asked, message)
	if len(s.answers) == 0 {
		return nil, fmt.Errorf("unexpected prompt %q", message)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if err, ok := a.(error); ok {
		return nil, err
	}
	return a, nil
}

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	a, err := s.next(cfg.Message)
	if err != nil {
		return "", err
	}
	str, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("prompt %q: scripted answer %v is not a string", cfg.Message, a)
	}
	if str == "" {
		str = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(str); err != nil {
			return "", err
		}
	}
	return str, nil
}

func (s *Scripted) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	a, err := s.next(cfg.Message)
	if err != nil {
		return false, err
	}
	b, ok := a.(bool)
	if !ok {
		return false, fmt.Errorf("prompt %q: scripted answer %v is not a bool", cfg.Message, a)
	}
	return b, nil
}

func (s *Scripted) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	a, err := s.next(cfg.Message)
	if err != nil {
		return "", err
	}
	str, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("prompt %q: scripted answer %v is not a string", cfg.Message, a)
	}
	if indexOfValue(cfg.Options, str) < 0 {
		return "", fmt.Errorf("prompt %q: %q is not an option", cfg.Message, str)
	}
	return str, nil
}

func (s *Scripted) MultiSelect(ctx context.Context, cfg SelectConfig) ([]string, error) {
	a, err := s.next(cfg.Message)
	if err != nil {
		return nil, err
	}
	values, ok := a.([]string)
	if !ok {
		return nil, fmt.Errorf("prompt %q: scripted answer %v is not a []string", cfg.Message, a)
	}
	for _, v := range values {
		if indexOfValue(cfg.Options, v) < 0 {
			return nil, fmt.Errorf("prompt %q: %q is not an option", cfg.Message, v)
		}
	}
	return values, nil
}
