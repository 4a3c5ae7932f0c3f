package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/energy-calculator/calc"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "ENERGY_CALC_"

// EnvConfigPath names the variable holding a config file path
const EnvConfigPath = EnvPrefix + "CONFIG"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds runtime settings; zero Locale means detect from the environment
type Config struct {
	Locale string  `yaml:"locale" env:"LOCALE"`
	Policy string  `yaml:"policy" env:"POLICY"`
	Sound  bool    `yaml:"sound" env:"SOUND"`
	Volume float64 `yaml:"volume" env:"VOLUME"`
	Debug  bool    `yaml:"debug" env:"DEBUG"`
	LogDir string  `yaml:"log_dir" env:"LOG_DIR"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Policy: calc.DefaultPolicy.Name,
		Sound:  false,
		Volume: 0.5,
		LogDir: "logs",
	}
}

// Load applies defaults, then the YAML file at path (or $ENERGY_CALC_CONFIG),
// then ENERGY_CALC_* environment variables, and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks policy name, locale syntax and volume range
func (c Config) Validate() error {
	if _, err := calc.LookupPolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
		}
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Volume)
	}
	return nil
}

// EvalPolicy resolves the configured policy name
func (c Config) EvalPolicy() calc.Policy {
	p, err := calc.LookupPolicy(c.Policy)
	if err != nil {
		return calc.DefaultPolicy
	}
	return p
}

// LocalePreferences lists locale candidates in priority order: the configured
// locale, then LC_ALL, LC_MESSAGES and LANG
func (c Config) LocalePreferences() []string {
	prefs := make([]string, 0, 4)
	if c.Locale != "" {
		prefs = append(prefs, c.Locale)
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			prefs = append(prefs, v)
		}
	}
	return prefs
}
