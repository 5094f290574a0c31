package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a complete scenario configuration for the CLI runner.
type Config struct {
	Pool     PoolConfig    `json:"pool" yaml:"pool"`
	Journal  JournalConfig `json:"journal" yaml:"journal"`
	Scenario []Step        `json:"scenario" yaml:"scenario"`
}

// PoolConfig contains pool policy parameters.
type PoolConfig struct {
	// DisableOpenWithdrawals switches the pool to claim-ticket-only mode.
	// The zero value keeps the open discipline enabled.
	DisableOpenWithdrawals bool `json:"disable_open_withdrawals" yaml:"disable_open_withdrawals"`
}

// JournalConfig selects the audit event sink.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv", "sqlite", "zap" or "none"
	EventsFile string `json:"events_file,omitempty" yaml:"events_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Step is one scripted ledger operation.
//
// Ops that mint a claim (deposit_claim) name it via Claim; redemption ops
// (redeem_full, redeem_partial) reference that name. Open-discipline ops
// (deposit, withdraw, withdraw_all) leave Claim empty.
type Step struct {
	Op       string `json:"op" yaml:"op"`
	Identity string `json:"identity" yaml:"identity"`
	Amount   int64  `json:"amount,omitempty" yaml:"amount,omitempty"`
	Claim    string `json:"claim,omitempty" yaml:"claim,omitempty"`
}

// Ops accepted in a scenario step.
const (
	OpDeposit       = "deposit"
	OpDepositClaim  = "deposit_claim"
	OpWithdraw      = "withdraw"
	OpWithdrawAll   = "withdraw_all"
	OpRedeemFull    = "redeem_full"
	OpRedeemPartial = "redeem_partial"
)

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

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

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Journal.Type {
	case "csv":
		if c.Journal.EventsFile == "" {
			return fmt.Errorf("journal events_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "zap", "none":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite', 'zap' or 'none'")
	}

	claims := map[string]bool{}
	for i, s := range c.Scenario {
		if s.Identity == "" {
			return fmt.Errorf("scenario[%d]: identity is required", i)
		}

		switch s.Op {
		case OpDeposit, OpRedeemPartial:
			if s.Amount <= 0 {
				return fmt.Errorf("scenario[%d]: %s amount must be positive", i, s.Op)
			}
		case OpDepositClaim:
			if s.Amount <= 0 {
				return fmt.Errorf("scenario[%d]: %s amount must be positive", i, s.Op)
			}
			if s.Claim == "" {
				return fmt.Errorf("scenario[%d]: deposit_claim must name its claim", i)
			}
			claims[s.Claim] = true
		case OpWithdraw:
			if s.Amount <= 0 {
				return fmt.Errorf("scenario[%d]: withdraw amount must be positive", i)
			}
		case OpWithdrawAll:
		case OpRedeemFull:
		default:
			return fmt.Errorf("scenario[%d]: unknown op %q", i, s.Op)
		}

		if s.Op == OpRedeemFull || s.Op == OpRedeemPartial {
			if s.Claim == "" {
				return fmt.Errorf("scenario[%d]: %s must reference a claim", i, s.Op)
			}
			if !claims[s.Claim] {
				return fmt.Errorf("scenario[%d]: claim %q not minted by an earlier step", i, s.Claim)
			}
		}
	}

	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			Type:       "csv",
			EventsFile: "./events.csv",
		},
		Scenario: []Step{
			{Op: OpDeposit, Identity: "alice", Amount: 100},
			{Op: OpWithdraw, Identity: "alice", Amount: 70},
			{Op: OpWithdrawAll, Identity: "alice"},
		},
	}
}
