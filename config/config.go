// Package config holds the tool configuration: fallback financial figures,
// budget classification keywords, and the sensitivity sweep ranges. Files
// are YAML or JSON, detected by content.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"keeporsell"
)

// Config is the complete tool configuration.
type Config struct {
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Budget   BudgetConfig   `json:"budget" yaml:"budget"`
	Matrix   MatrixConfig   `json:"matrix" yaml:"matrix"`
	Stresses []StressConfig `json:"stresses,omitempty" yaml:"stresses,omitempty"`
}

// DefaultsConfig carries the fallback figures applied when a flag is not
// given on the command line.
type DefaultsConfig struct {
	InterestRate    float64 `json:"interest_rate" yaml:"interest_rate"`
	SellingCostPct  float64 `json:"selling_cost_pct" yaml:"selling_cost_pct"`
	PayoffThreshold float64 `json:"payoff_threshold" yaml:"payoff_threshold"`
	TermMonths      int     `json:"term_months" yaml:"term_months"`
}

// BudgetConfig drives statement parsing and expense classification.
type BudgetConfig struct {
	OperatingKeywords []string `json:"operating_keywords" yaml:"operating_keywords"`
	UtilityKeywords   []string `json:"utility_keywords" yaml:"utility_keywords"`
	// IncomePath and ExpensesPath are JSONPath expressions applied to JSON
	// statements.
	IncomePath   string `json:"income_path" yaml:"income_path"`
	ExpensesPath string `json:"expenses_path" yaml:"expenses_path"`
}

// MatrixConfig sets the sweep ranges for the sensitivity grid.
type MatrixConfig struct {
	Price keeporsell.Sweep `json:"price" yaml:"price"`
	Rate  keeporsell.Sweep `json:"rate" yaml:"rate"`
	Rent  keeporsell.Sweep `json:"rent" yaml:"rent"`
}

// StressConfig is an extra fixed-delta risk scenario appended to one
// strategy's built-in catalogue.
type StressConfig struct {
	Strategy string  `json:"strategy" yaml:"strategy"` // "rental" or "sell"
	Label    string  `json:"label" yaml:"label"`
	Annual   float64 `json:"annual_delta" yaml:"annual_delta"`
}

// Load reads the file when path is set and falls back to defaults otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file, YAML or JSON based on extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Defaults.InterestRate < 0 {
		return fmt.Errorf("defaults.interest_rate cannot be negative")
	}
	if c.Defaults.SellingCostPct < 0 || c.Defaults.SellingCostPct > 100 {
		return fmt.Errorf("defaults.selling_cost_pct must be between 0 and 100")
	}
	if c.Defaults.PayoffThreshold < 0 {
		return fmt.Errorf("defaults.payoff_threshold cannot be negative")
	}
	if c.Defaults.TermMonths <= 0 {
		return fmt.Errorf("defaults.term_months must be positive")
	}
	for name, s := range map[string]keeporsell.Sweep{
		"matrix.price": c.Matrix.Price,
		"matrix.rate":  c.Matrix.Rate,
		"matrix.rent":  c.Matrix.Rent,
	} {
		if s.Step <= 0 {
			return fmt.Errorf("%s.step must be positive", name)
		}
		if s.Max <= s.Min {
			return fmt.Errorf("%s.max must be greater than min", name)
		}
	}
	for i, s := range c.Stresses {
		if s.Strategy != string(keeporsell.Rental) && s.Strategy != string(keeporsell.Sell) {
			return fmt.Errorf("stresses[%d].strategy must be %q or %q", i, keeporsell.Rental, keeporsell.Sell)
		}
		if s.Label == "" {
			return fmt.Errorf("stresses[%d].label is required", i)
		}
	}
	return nil
}

// FixedStresses converts the configured extra scenarios into engine
// stresses.
func (c *Config) FixedStresses() []keeporsell.FixedStress {
	out := make([]keeporsell.FixedStress, 0, len(c.Stresses))
	for _, s := range c.Stresses {
		out = append(out, keeporsell.FixedStress{
			Strategy:    keeporsell.Strategy(s.Strategy),
			Label:       s.Label,
			AnnualDelta: keeporsell.M(s.Annual),
		})
	}
	return out
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			InterestRate:    6.13,
			SellingCostPct:  7.0,
			PayoffThreshold: 6.0,
			TermMonths:      360,
		},
		Budget: BudgetConfig{
			OperatingKeywords: []string{"lawn", "pool", "maintenance", "cleaning"},
			UtilityKeywords:   []string{"fpl", "electric", "water", "gas", "sewer", "internet"},
			IncomePath:        "$.income.monthly",
			ExpensesPath:      "$.expenses",
		},
		Matrix: MatrixConfig{
			Price: keeporsell.Sweep{Min: 650000, Max: 905000, Step: 5000},
			Rate:  keeporsell.Sweep{Min: 5.0, Max: 8.05, Step: 0.05},
			Rent:  keeporsell.Sweep{Min: 3500, Max: 5300, Step: 50},
		},
	}
}
