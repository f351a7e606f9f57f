package registry

import (
	"database/sql"
	"fmt"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/services/interest"
	"github.com/de-tools/bank-ledger/pkg/services/ledger"
	"github.com/de-tools/bank-ledger/pkg/services/rates"
	"github.com/de-tools/bank-ledger/pkg/services/statement"
	"github.com/de-tools/bank-ledger/pkg/store/duckdb"
	ledgerstore "github.com/de-tools/bank-ledger/pkg/store/duckdb/ledger"
	rulestore "github.com/de-tools/bank-ledger/pkg/store/duckdb/rules"
)

// Registry owns the database handle and the services built on top of it.
type Registry struct {
	db *sql.DB

	Ledger     ledger.Service
	Rates      rates.Service
	Calculator interest.Calculator
	Statements statement.Builder
}

func New(cfg *domain.Config) (*Registry, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	lStore, err := ledgerstore.NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	rStore, err := rulestore.NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	ledgerSvc := ledger.NewService(db, lStore)
	ratesSvc := rates.NewService(db, rStore, cfg.Cache.RulesTTL)
	calc := interest.NewCalculator(ledgerSvc, ratesSvc, interest.Settings{
		DayCountBasis:       cfg.Interest.DayCountBasis,
		CarryForwardBalance: cfg.Interest.CarryForwardBalance,
	})

	return &Registry{
		db:         db,
		Ledger:     ledgerSvc,
		Rates:      ratesSvc,
		Calculator: calc,
		Statements: statement.NewBuilder(ledgerSvc, calc),
	}, nil
}

func (r *Registry) Close() error {
	return r.db.Close()
}
