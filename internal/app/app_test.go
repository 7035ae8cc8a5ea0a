package app_test

import (
	"context"
	"errors"
)

var errNoAnswer = errors.New("no scripted answer left")

// scriptedPrompter answers prompts from fixed queues
type scriptedPrompter struct {
	yes      []bool
	ints     []int
	strs     []string
	messages []string
}

func (s *scriptedPrompter) ShowMessage(message string) {
	s.messages = append(s.messages, message)
}

func (s *scriptedPrompter) AskYesNo(_ context.Context, _ string) (bool, error) {
	if len(s.yes) == 0 {
		return false, errNoAnswer
	}
	v := s.yes[0]
	s.yes = s.yes[1:]
	return v, nil
}

func (s *scriptedPrompter) AskInt(_ context.Context, _ string, _ int) (int, error) {
	if len(s.ints) == 0 {
		return 0, errNoAnswer
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v, nil
}

func (s *scriptedPrompter) AskString(_ context.Context, _, def string) (string, error) {
	if len(s.strs) == 0 {
		return "", errNoAnswer
	}
	v := s.strs[0]
	s.strs = s.strs[1:]
	if v == "" {
		return def, nil
	}
	return v, nil
}
