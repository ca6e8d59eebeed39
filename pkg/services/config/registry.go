package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry resolves named report profiles
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.ReportProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads an ini file where every non-empty section is a profile:
//
//	[fleet-east]
//	report_dir     = /data/lytx/east
//	accidents_file = accidents_report.csv
//	output_dir     = /data/out
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.ReportProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return domain.ReportProfile{}, fmt.Errorf("profile %s not found", name)
	}

	return domain.ReportProfile{
		Name:          name,
		ReportDir:     section.Key("report_dir").String(),
		AccidentsFile: section.Key("accidents_file").MustString(domain.DefaultAccidentsFile),
		OutputDir:     section.Key("output_dir").String(),
	}, nil
}

// DefaultProfilesPath is $HOME/.lytxcfg.
func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lytxcfg"
	}
	return filepath.Join(home, ".lytxcfg")
}
