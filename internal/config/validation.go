package config

import (
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
)

// ValidateConfig checks the fields every scenario depends on. A failure here
// is fatal at startup; no scenario runs against a partial configuration.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateRequired(); err != nil {
		return err
	}
	if err := cv.validateProjects(); err != nil {
		return err
	}
	return cv.validateOpen()
}

func (cv *configurationValidator) validateOpen() error {
	if cv.config.Open.RelativeTo == "" {
		return nil
	}
	if _, err := ParseOpenBase(string(cv.config.Open.RelativeTo)); err != nil {
		return ferrors.ConfigError("invalid open.relative_to").
			WithCause(err).
			WithContext("field", "open.relative_to").
			WithContext("value", string(cv.config.Open.RelativeTo)).
			Build()
	}
	return nil
}

func (cv *configurationValidator) validateRequired() error {
	required := []struct {
		key   string
		value string
	}{
		{"src", cv.config.SourceDir},
		{"out", cv.config.OutputDir},
		{"pdf", cv.config.Preprint},
	}
	for _, field := range required {
		if field.value == "" {
			return ferrors.ConfigError("missing required configuration field").
				WithContext("field", field.key).
				Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validateProjects() error {
	if len(cv.config.Projects) == 0 {
		return ferrors.ConfigError("Specify at least one project!").
			WithContext("field", "tex").
			Build()
	}
	first := cv.config.Projects[0]
	if first.Name == "" {
		return ferrors.ConfigError("Specify project name!").
			WithContext("field", "tex[0].name").
			Build()
	}
	if first.Main == "" {
		return ferrors.ConfigError("Specify main file!").
			WithContext("field", "tex[0].main").
			Build()
	}
	return nil
}
