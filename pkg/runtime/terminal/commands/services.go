package commands

import (
	"errors"

	"github.com/de-tools/bank-ledger/pkg/services/interest"
	"github.com/de-tools/bank-ledger/pkg/services/ledger"
	"github.com/de-tools/bank-ledger/pkg/services/rates"
	"github.com/de-tools/bank-ledger/pkg/services/statement"
)

// Services is filled in by the root command before any subcommand runs.
type Services struct {
	Ledger     ledger.Service
	Rates      rates.Service
	Calculator interest.Calculator
	Statements statement.Builder
}

var errNotInitialized = errors.New("services are not initialized")

func (s *Services) ready() error {
	if s == nil || s.Ledger == nil || s.Rates == nil || s.Calculator == nil || s.Statements == nil {
		return errNotInitialized
	}
	return nil
}
