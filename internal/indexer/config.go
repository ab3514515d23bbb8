package indexer

import (
	"errors"
	"slices"
	"time"

	"github.com/gabapcia/solindex/internal/pkg/validator"
)

const (
	// DefaultPollInterval is used when Config.PollInterval is zero.
	DefaultPollInterval = 5 * time.Second

	// DefaultBatchSize is used when Config.BatchSize is zero.
	DefaultBatchSize = 100
)

// ErrMissingTarget is returned by New when the configuration has no indexing target.
var ErrMissingTarget = errors.New("indexing target is required")

// Environment selects one of the well-known ledger clusters.
type Environment string

const (
	Mainnet  Environment = "mainnet"
	Devnet   Environment = "devnet"
	Testnet  Environment = "testnet"
	Localnet Environment = "localnet"
)

// Mode is the discriminant of a Target.
type Mode string

const (
	ModeAccount     Mode = "account"
	ModeTransaction Mode = "transaction"
	ModeProgram     Mode = "program"
)

// Target describes what a pass indexes. It is implemented only by
// AccountTarget, TransactionTarget and ProgramTarget.
type Target interface {
	Mode() Mode
	isTarget()
}

// AccountTarget snapshots the state of every address on each pass.
type AccountTarget struct {
	Addresses []string `validate:"min=1,dive,solana_pubkey"`
}

// TransactionTarget indexes the transaction history of every address.
// An empty address list is accepted; passes then log a warning and return.
type TransactionTarget struct {
	Addresses []string `validate:"dive,solana_pubkey"`
}

// ProgramTarget indexes the transaction history of a single program.
type ProgramTarget struct {
	ProgramID string `validate:"required,solana_pubkey"`
}

func (AccountTarget) Mode() Mode     { return ModeAccount }
func (TransactionTarget) Mode() Mode { return ModeTransaction }
func (ProgramTarget) Mode() Mode     { return ModeProgram }

func (AccountTarget) isTarget()     {}
func (TransactionTarget) isTarget() {}
func (ProgramTarget) isTarget()     {}

// Config is the immutable configuration of an indexing engine.
type Config struct {
	Environment  Environment   `validate:"required,oneof=mainnet devnet testnet localnet"`
	Target       Target        `validate:"-"` // validated on its own by Validate
	Endpoint     string        `validate:"omitempty,url"` // overrides the environment endpoint when set
	PollInterval time.Duration `validate:"gt=0"`
	BatchSize    int           `validate:"min=1,max=1000"`
}

// Mode returns the mode of the configured target.
func (c Config) Mode() Mode {
	if c.Target == nil {
		return ""
	}
	return c.Target.Mode()
}

// withDefaults returns a copy of c with zero-valued optional fields filled in.
func (c Config) withDefaults() Config {
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// clone returns a copy of c whose target shares no memory with c.
func (c Config) clone() Config {
	switch target := c.Target.(type) {
	case AccountTarget:
		c.Target = AccountTarget{Addresses: slices.Clone(target.Addresses)}
	case TransactionTarget:
		c.Target = TransactionTarget{Addresses: slices.Clone(target.Addresses)}
	}
	return c
}

// Validate checks the configuration and the fields required by its target variant.
func (c Config) Validate() error {
	if c.Target == nil {
		return errors.Join(validator.ErrValidationFailed, ErrMissingTarget)
	}

	if err := validator.Validate(c); err != nil {
		return err
	}

	return validator.Validate(c.Target)
}
