package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/masumi-network/schema-validator-componenet/pkg/fieldtypes"
	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
	"github.com/masumi-network/schema-validator-componenet/pkg/uischema"
)

// Session drives an interactive form walk over a validated field set.
type Session struct {
	driver PromptDriver
}

// Option configures a Session.
type Option func(*Session)

// WithDriver swaps the prompt driver, primarily for tests.
func WithDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// New constructs a Session backed by the survey driver unless overridden.
func New(options ...Option) *Session {
	s := &Session{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run prompts for every field in order and returns the collected values
// keyed by field id. Hidden fields are recorded without prompting; none
// fields only display their text.
func (s *Session) Run(ctx context.Context, fields []schema.FieldDescription) (map[string]any, error) {
	if ctx == nil {
		return nil, fmt.Errorf("tui: context is required")
	}
	values := make(map[string]any, len(fields))

	for _, fd := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, prompted, err := s.promptField(ctx, fd)
		if err != nil {
			return nil, err
		}
		if prompted {
			values[fd.ID] = value
		}
	}
	return values, nil
}

func (s *Session) promptField(ctx context.Context, fd schema.FieldDescription) (any, bool, error) {
	switch fd.Type {
	case schema.FieldTypeHidden:
		return fieldtypes.DeriveDefault(fd), true, nil
	case schema.FieldTypeNone:
		text := uischema.DisplayText(fd.Data.Description)
		if text == "" {
			text = fd.Name
		}
		return nil, false, s.driver.Info(ctx, text)
	case schema.FieldTypeBoolean, schema.FieldTypeCheckbox:
		value, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fd.Name,
			Default: boolDefault(fd),
			Help:    helpText(fd),
		})
		return value, err == nil, err
	case schema.FieldTypeOption:
		return s.promptOption(ctx, fd)
	case schema.FieldTypeRadio:
		index, err := s.driver.Select(ctx, SelectConfig{
			Message:      fd.Name,
			Options:      fd.Data.Values,
			DefaultIndex: radioDefault(fd),
			Help:         helpText(fd),
		})
		return index, err == nil, err
	case schema.FieldTypeNumber, schema.FieldTypeRange:
		return s.promptNumber(ctx, fd)
	case schema.FieldTypePassword:
		text, err := s.driver.Password(ctx, inputConfig(fd))
		return text, err == nil, err
	case schema.FieldTypeTextarea:
		text, err := s.driver.TextArea(ctx, inputConfig(fd))
		return text, err == nil, err
	}
	// remaining text-like, date-family, color, and file types
	text, err := s.driver.Input(ctx, inputConfig(fd))
	return text, err == nil, err
}

// promptOption re-prompts until the selection-count bounds hold; the count
// cannot be enforced inside a survey multi-select.
func (s *Session) promptOption(ctx context.Context, fd schema.FieldDescription) (any, bool, error) {
	check := fieldtypes.DeriveValidator(fd)
	cfg := SelectConfig{
		Message:  fd.Name,
		Options:  fd.Data.Values,
		Defaults: optionDefaults(fd),
		Help:     helpText(fd),
	}

	if fieldtypes.IsSingleOption(fd) {
		index, err := s.driver.Select(ctx, SelectConfig{
			Message:      cfg.Message,
			Options:      cfg.Options,
			DefaultIndex: firstIndex(cfg.Defaults),
			Help:         cfg.Help,
		})
		if err != nil {
			return nil, false, err
		}
		return []int{index}, true, nil
	}

	for {
		indices, err := s.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return nil, false, err
		}
		if err := check(indices); err == nil {
			return indices, true, nil
		} else if infoErr := s.driver.Info(ctx, err.Error()); infoErr != nil {
			return nil, false, infoErr
		}
	}
}

func (s *Session) promptNumber(ctx context.Context, fd schema.FieldDescription) (any, bool, error) {
	check := fieldtypes.DeriveValidator(fd)
	optional := fieldtypes.IsOptional(fd)

	cfg := inputConfig(fd)
	cfg.Validator = func(text string) error {
		if text == "" {
			if optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		return check(text)
	}

	text, err := s.driver.Input(ctx, cfg)
	if err != nil {
		return nil, false, err
	}
	if text == "" {
		return nil, true, nil
	}
	number, parseErr := strconv.ParseFloat(text, 64)
	if parseErr != nil {
		return text, true, nil
	}
	return number, true, nil
}

func inputConfig(fd schema.FieldDescription) InputConfig {
	check := fieldtypes.DeriveValidator(fd)
	optional := fieldtypes.IsOptional(fd)

	return InputConfig{
		Message: fd.Name,
		Default: stringDefault(fd),
		Help:    helpText(fd),
		Validator: func(text string) error {
			if text == "" {
				if optional {
					return nil
				}
				return fmt.Errorf("a value is required")
			}
			return check(text)
		},
	}
}

func helpText(fd schema.FieldDescription) string {
	help := uischema.DisplayText(fd.Data.Description)
	if help == "" {
		help = uischema.DisplayText(fd.Data.Placeholder)
	}
	return help
}

func stringDefault(fd schema.FieldDescription) string {
	switch value := fieldtypes.DeriveDefault(fd).(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return ""
}

func boolDefault(fd schema.FieldDescription) bool {
	value, _ := fieldtypes.DeriveDefault(fd).(bool)
	return value
}

func radioDefault(fd schema.FieldDescription) int {
	if value, ok := fieldtypes.DeriveDefault(fd).(int); ok {
		return value
	}
	return 0
}

func optionDefaults(fd schema.FieldDescription) []int {
	if value, ok := fieldtypes.DeriveDefault(fd).([]int); ok {
		return value
	}
	return nil
}

func firstIndex(indices []int) int {
	if len(indices) > 0 {
		return indices[0]
	}
	return 0
}
