package adapters

import (
	"github.com/de-tools/bank-ledger/pkg/models/api"
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/models/store"
)

func MapStoreRuleToDomain(rule store.InterestRule) domain.InterestRule {
	return domain.InterestRule{
		Date:   domain.TruncateDay(rule.EffectiveDate),
		RuleID: rule.RuleID,
		Rate:   rule.Rate,
	}
}

func MapDomainRuleToStore(rule domain.InterestRule) store.InterestRule {
	return store.InterestRule{
		EffectiveDate: rule.Date,
		RuleID:        rule.RuleID,
		Rate:          rule.Rate,
	}
}

func MapRuleDomainToApi(rule domain.InterestRule) api.InterestRule {
	return api.InterestRule{
		Date:   domain.FormatDate(rule.Date),
		RuleID: rule.RuleID,
		Rate:   domain.FormatRate(rule.Rate),
	}
}
