package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/meera/gstbill/internal/domain"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Invoice settings
	Invoice InvoiceConfig `yaml:"invoice"`

	// Seller profile printed on every invoice
	Company CompanyConfig `yaml:"company"`

	// Seller bank details printed on every invoice
	Bank BankConfig `yaml:"bank"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

type InvoiceConfig struct {
	TaxRatePercent float64 `yaml:"tax_rate_percent"` // IGST rate as percentage (18 = 18%)
	DefaultDueDays int     `yaml:"default_due_days"` // Days until invoice due
	NumberPrefix   string  `yaml:"number_prefix"`    // Invoice number prefix (e.g., "INV")
	OutputDir      string  `yaml:"output_dir"`       // Directory for generated invoices
	CurrencyPrefix string  `yaml:"currency_prefix"`  // Symbol prepended to money values
}

type CompanyConfig struct {
	Name      string   `yaml:"name"`
	Address   []string `yaml:"address"`
	GSTIN     string   `yaml:"gstin"`
	State     string   `yaml:"state"`
	StateCode string   `yaml:"state_code"`
	Contact   []string `yaml:"contact"`
	Email     string   `yaml:"email"`
	Website   string   `yaml:"website"`
}

type BankConfig struct {
	AccountHolder string `yaml:"account_holder"`
	BankName      string `yaml:"bank_name"`
	AccountNo     string `yaml:"account_no"`
	BranchAndIFSC string `yaml:"branch_and_ifsc"`
	SwiftCode     string `yaml:"swift_code"`
}

// Company converts the config block to the domain seller profile
func (c CompanyConfig) Company() domain.Company {
	return domain.Company{
		Name:         c.Name,
		AddressLines: c.Address,
		GSTIN:        c.GSTIN,
		State:        c.State,
		StateCode:    c.StateCode,
		Contact:      c.Contact,
		Email:        c.Email,
		Website:      c.Website,
	}
}

// Bank converts the config block to the domain bank details
func (b BankConfig) Bank() domain.BankDetails {
	return domain.BankDetails{
		AccountHolder: b.AccountHolder,
		BankName:      b.BankName,
		AccountNo:     b.AccountNo,
		BranchAndIFSC: b.BranchAndIFSC,
		SwiftCode:     b.SwiftCode,
	}
}

// DefaultConfigPath returns ~/.config/gstbill/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "gstbill", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "gstbill", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(homeDir, ".config", "gstbill", "gstbill.db"),
		},
		Invoice: InvoiceConfig{
			TaxRatePercent: 18,
			DefaultDueDays: 30,
			NumberPrefix:   "INV",
			OutputDir:      filepath.Join(homeDir, ".config", "gstbill", "invoices"),
			CurrencyPrefix: "Rs.",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for database, invoices, etc.)
func (c *Config) EnsureDirectories() error {
	// Create database directory
	dbDir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	// Create invoice output directory
	if err := os.MkdirAll(c.Invoice.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}
