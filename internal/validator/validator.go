package validator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardwar/internal/card"
	"github.com/arcanaland/cardwar/internal/config"
	"github.com/arcanaland/cardwar/internal/render"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate decodes the config file and checks its values. It only returns
// an error when the file does not exist. Decode failures are reported in
// Results.Errors.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("error parsing config: %v", err))
		return v.Results, nil
	}

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}

	v.ValidateConfig(cfg)

	return v.Results, nil
}

// ValidateConfig checks an already loaded config
func (v *Validator) ValidateConfig(cfg *config.Config) ValidationResults {
	v.validatePlayers(cfg)
	v.validateColor(cfg)
	v.validateSuitColors(cfg)

	if cfg.Seed < 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("negative seed %d is used as is", cfg.Seed))
	}

	return v.Results
}

func (v *Validator) validatePlayers(cfg *config.Config) {
	p1 := strings.TrimSpace(cfg.Player1)
	p2 := strings.TrimSpace(cfg.Player2)

	if p1 == "" {
		v.Results.Errors = append(v.Results.Errors, "player1 must not be empty")
	}
	if p2 == "" {
		v.Results.Errors = append(v.Results.Errors, "player2 must not be empty")
	}
	if p1 != "" && p1 == p2 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("player names must differ (both are %q)", p1))
	}
}

func (v *Validator) validateColor(cfg *config.Config) {
	switch cfg.Color {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported color: %s (supported: auto, always, never)", cfg.Color))
	}
}

func (v *Validator) validateSuitColors(cfg *config.Config) {
	names := make([]string, 0, len(cfg.SuitColors))
	for name := range cfg.SuitColors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hex := cfg.SuitColors[name]
		if _, err := card.ParseSuit(name); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("suit_colors.%s: %v", name, err))
			continue
		}
		if _, err := render.ParseSuitColors(map[string]string{name: hex}); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("suit_colors.%s: %v", name, err))
		}
	}
}
