package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/ini.v1"
)

// LoadRuleSeed parses an ini file of interest rules. Each section is named
// by its effective date (YYYYMMDD) and carries rule_id and rate keys:
//
//	[20230615]
//	rule_id = RULE03
//	rate = 2.20
//
// Sections are returned in file order. Values are not range-checked here.
func LoadRuleSeed(path string) ([]domain.InterestRule, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	var rules []domain.InterestRule
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}

		date, err := domain.ParseDate(section.Name())
		if err != nil {
			return nil, fmt.Errorf("section [%s]: %w", section.Name(), err)
		}

		rawRate := strings.TrimSpace(section.Key("rate").String())
		rate, err := decimal.NewFromString(rawRate)
		if err != nil {
			return nil, fmt.Errorf("section [%s]: %w: %q", section.Name(), domain.ErrInvalidRate, rawRate)
		}

		rules = append(rules, domain.InterestRule{
			Date:   date,
			RuleID: section.Key("rule_id").String(),
			Rate:   rate,
		})
	}
	return rules, nil
}
