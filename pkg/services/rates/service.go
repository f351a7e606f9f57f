package rates

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/bank-ledger/pkg/adapters"
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/services/config"
	"github.com/de-tools/bank-ledger/pkg/store/duckdb"
	rulestore "github.com/de-tools/bank-ledger/pkg/store/duckdb/rules"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const rulesCacheKey = "rules"

var maxRate = decimal.NewFromInt(100)

type Service interface {
	// UpsertRule stores a rule, replacing any rule effective on the same date.
	UpsertRule(ctx context.Context, date time.Time, ruleID string, rate decimal.Decimal) (domain.InterestRule, error)
	// ListRules returns all rules ordered by effective date.
	ListRules(ctx context.Context) ([]domain.InterestRule, error)
	// ImportRules upserts every rule of an ini seed file. The file is
	// validated in full before anything is written.
	ImportRules(ctx context.Context, path string) (int, error)
}

type service struct {
	db    *sql.DB
	store rulestore.Store
	cache *cache.Cache
}

func NewService(db *sql.DB, store rulestore.Store, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &service{
		db:    db,
		store: store,
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func validateRule(date time.Time, ruleID string, rate decimal.Decimal) (domain.InterestRule, error) {
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return domain.InterestRule{}, domain.ErrInvalidRuleID
	}
	if !rate.IsPositive() || rate.GreaterThanOrEqual(maxRate) {
		return domain.InterestRule{}, fmt.Errorf("%w: got %s", domain.ErrInvalidRate, rate)
	}
	if !domain.FitsScale(rate, domain.RateScale) {
		return domain.InterestRule{}, fmt.Errorf("%w: at most %d decimal places, got %s", domain.ErrInvalidRate, domain.RateScale, rate)
	}
	return domain.InterestRule{
		Date:   domain.TruncateDay(date),
		RuleID: ruleID,
		Rate:   rate,
	}, nil
}

func (s *service) UpsertRule(ctx context.Context, date time.Time, ruleID string, rate decimal.Decimal) (domain.InterestRule, error) {
	rule, err := validateRule(date, ruleID, rate)
	if err != nil {
		return domain.InterestRule{}, err
	}

	defer s.cache.Delete(rulesCacheKey)
	if err := s.store.UpsertRule(ctx, adapters.MapDomainRuleToStore(rule)); err != nil {
		return domain.InterestRule{}, err
	}

	zerolog.Ctx(ctx).Info().
		Str("date", domain.FormatDate(rule.Date)).
		Str("rule_id", rule.RuleID).
		Str("rate", rule.Rate.String()).
		Msg("interest rule saved")
	return rule, nil
}

func (s *service) ListRules(ctx context.Context) ([]domain.InterestRule, error) {
	if cached, ok := s.cache.Get(rulesCacheKey); ok {
		return slices.Clone(cached.([]domain.InterestRule)), nil
	}

	records, err := s.store.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	rules := make([]domain.InterestRule, 0, len(records))
	for _, r := range records {
		rules = append(rules, adapters.MapStoreRuleToDomain(r))
	}
	slices.SortStableFunc(rules, func(a, b domain.InterestRule) int {
		return a.Date.Compare(b.Date)
	})

	s.cache.SetDefault(rulesCacheKey, rules)
	return slices.Clone(rules), nil
}

func (s *service) ImportRules(ctx context.Context, path string) (int, error) {
	seed, err := config.LoadRuleSeed(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load rule seed %s: %w", path, err)
	}

	rules := make([]domain.InterestRule, 0, len(seed))
	for _, r := range seed {
		rule, err := validateRule(r.Date, r.RuleID, r.Rate)
		if err != nil {
			return 0, fmt.Errorf("rule %s: %w", domain.FormatDate(r.Date), err)
		}
		rules = append(rules, rule)
	}

	defer s.cache.Delete(rulesCacheKey)
	err = duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		for _, rule := range rules {
			if err := s.store.UpsertRule(ctx, adapters.MapDomainRuleToStore(rule)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().Str("path", path).Int("count", len(rules)).Msg("interest rules imported")
	return len(rules), nil
}
