package adapters

import (
	"github.com/de-tools/bank-ledger/pkg/models/api"
	"github.com/de-tools/bank-ledger/pkg/models/domain"
)

func MapInterestPeriodDomainToApi(p domain.InterestPeriod) api.InterestPeriod {
	return api.InterestPeriod{
		StartDate:          domain.FormatDate(p.Start),
		EndDate:            domain.FormatDate(p.End),
		RuleID:             p.RuleID,
		Rate:               domain.FormatRate(p.Rate),
		Balance:            p.Balance.StringFixed(2),
		Days:               p.Days,
		AnnualizedInterest: p.AnnualizedInterest.StringFixed(2),
	}
}

func MapAccrualDomainToApi(a domain.Accrual) api.Accrual {
	out := api.Accrual{
		AccountID: a.AccountID,
		Month:     a.Month.String(),
		Status:    string(a.Status()),
		Amount:    a.Amount.String(),
		Posted:    a.Posted().StringFixed(2),
		Periods:   []api.InterestPeriod{},
	}
	for _, p := range a.Periods {
		out.Periods = append(out.Periods, MapInterestPeriodDomainToApi(p))
	}
	if a.Err != nil {
		out.Error = a.Err.Error()
	}
	return out
}

func MapStatementDomainToApi(s domain.Statement) api.Statement {
	out := api.Statement{
		AccountID:         s.AccountID,
		Month:             s.Month.String(),
		OpeningBalance:    s.OpeningBalance.StringFixed(2),
		Lines:             []api.StatementLine{},
		InterestAvailable: s.InterestAvailable,
		InterestError:     s.InterestError,
		ClosingBalance:    s.ClosingBalance.StringFixed(2),
	}
	for _, line := range s.Lines {
		out.Lines = append(out.Lines, mapStatementLine(line))
	}
	if s.Interest != nil {
		out.Lines = append(out.Lines, mapStatementLine(*s.Interest))
	}
	return out
}

func mapStatementLine(line domain.StatementLine) api.StatementLine {
	return api.StatementLine{
		Date:          domain.FormatDate(line.Date),
		TransactionID: line.TransactionID,
		Type:          string(line.Type),
		Amount:        line.Amount.StringFixed(2),
		Balance:       line.Balance.StringFixed(2),
	}
}
