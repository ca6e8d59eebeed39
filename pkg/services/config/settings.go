package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/spf13/viper"
)

const envPrefix = "LYTX"

type Settings struct {
	ReportDir     string `mapstructure:"report_dir"`
	AccidentsFile string `mapstructure:"accidents_file"`
	OutputDir     string `mapstructure:"output_dir"`
	ProfilesPath  string `mapstructure:"profiles_path"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
}

// LoadSettings reads settings from the optional file at path, then from
// LYTX_* environment variables. Unset keys keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("report_dir", "reports")
	v.SetDefault("accidents_file", domain.DefaultAccidentsFile)
	v.SetDefault("output_dir", ".")
	v.SetDefault("profiles_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Apply overlays the non-empty locations of profile.
func (s *Settings) Apply(profile domain.ReportProfile) {
	if profile.ReportDir != "" {
		s.ReportDir = profile.ReportDir
	}
	if profile.AccidentsFile != "" {
		s.AccidentsFile = profile.AccidentsFile
	}
	if profile.OutputDir != "" {
		s.OutputDir = profile.OutputDir
	}
}

func (s *Settings) validate() error {
	switch s.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", s.LogFormat)
	}
	if s.AccidentsFile == "" {
		return errors.New("accidents_file must not be empty")
	}
	return nil
}
