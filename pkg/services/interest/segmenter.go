package interest

import (
	"slices"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// RateSpans clips each rule's effective range to the month. A rule is in
// force from its date until the day before the next rule's date; the latest
// rule has no end.
func RateSpans(rules []domain.InterestRule, month domain.Month) []domain.RateSpan {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b domain.InterestRule) int {
		return a.Date.Compare(b.Date)
	})

	monthStart, monthEnd := month.Start(), month.End()

	var spans []domain.RateSpan
	for i, rule := range sorted {
		end := monthEnd
		if i+1 < len(sorted) {
			end = minTime(end, domain.TruncateDay(sorted[i+1].Date).AddDate(0, 0, -1))
		}
		start := maxTime(domain.TruncateDay(rule.Date), monthStart)
		if start.After(end) {
			continue
		}
		spans = append(spans, domain.RateSpan{
			Start:  start,
			End:    end,
			RuleID: rule.RuleID,
			Rate:   rule.Rate,
		})
	}
	return spans
}

// BalanceSpans splits the month into ranges of constant EOD balance. Only
// transactions dated within the month are considered. With a nil opening
// balance, the first transaction's EOD balance stands for the whole head of
// the month and a month without transactions yields no spans.
func BalanceSpans(txns []domain.Transaction, month domain.Month, opening *decimal.Decimal) []domain.BalanceSpan {
	monthStart, monthEnd := month.Start(), month.End()

	var inMonth []domain.Transaction
	for _, txn := range txns {
		d := domain.TruncateDay(txn.Date)
		if d.Before(monthStart) || d.After(monthEnd) {
			continue
		}
		txn.Date = d
		inMonth = append(inMonth, txn)
	}
	slices.SortStableFunc(inMonth, func(a, b domain.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	var previous decimal.Decimal
	switch {
	case opening != nil:
		previous = *opening
	case len(inMonth) > 0:
		previous = inMonth[0].EODBalance
	default:
		return nil
	}

	var spans []domain.BalanceSpan
	spanStart := monthStart
	for _, txn := range inMonth {
		if txn.EODBalance.Equal(previous) {
			continue
		}
		spanEnd := txn.Date.AddDate(0, 0, -1)
		if !spanStart.After(spanEnd) {
			spans = append(spans, domain.BalanceSpan{Start: spanStart, End: spanEnd, Balance: previous})
		}
		spanStart = txn.Date
		previous = txn.EODBalance
	}
	if !spanStart.After(monthEnd) {
		spans = append(spans, domain.BalanceSpan{Start: spanStart, End: monthEnd, Balance: previous})
	}
	return spans
}

// Intersect crosses rate spans (outer) with balance spans (inner) and keeps
// every non-empty overlap.
func Intersect(rateSpans []domain.RateSpan, balanceSpans []domain.BalanceSpan) []domain.InterestPeriod {
	var periods []domain.InterestPeriod
	for _, rs := range rateSpans {
		for _, bs := range balanceSpans {
			start := maxTime(rs.Start, bs.Start)
			end := minTime(rs.End, bs.End)
			if start.After(end) {
				continue
			}
			days := domain.DaysBetween(start, end)
			periods = append(periods, domain.InterestPeriod{
				Start:              start,
				End:                end,
				RuleID:             rs.RuleID,
				Rate:               rs.Rate,
				Balance:            bs.Balance,
				Days:               days,
				AnnualizedInterest: Annualize(bs.Balance, rs.Rate, days),
			})
		}
	}
	return periods
}

// Annualize returns balance * rate% * days, rounded half-to-even to cents.
func Annualize(balance, rate decimal.Decimal, days int) decimal.Decimal {
	return balance.Mul(rate).Div(hundred).Mul(decimal.NewFromInt(int64(days))).RoundBank(2)
}
