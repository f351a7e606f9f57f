package api

type InterestPeriod struct {
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	RuleID             string `json:"rule_id"`
	Rate               string `json:"rate"`
	Balance            string `json:"balance"`
	Days               int    `json:"days"`
	AnnualizedInterest string `json:"annualized_interest"`
}

type Accrual struct {
	AccountID string           `json:"account_id"`
	Month     string           `json:"month"`
	Status    string           `json:"status"`
	Amount    string           `json:"amount"`
	Posted    string           `json:"posted"`
	Periods   []InterestPeriod `json:"periods"`
	Error     string           `json:"error,omitempty"`
}

type StatementLine struct {
	Date          string `json:"date"`
	TransactionID string `json:"txn_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type Statement struct {
	AccountID         string          `json:"account_id"`
	Month             string          `json:"month"`
	OpeningBalance    string          `json:"opening_balance"`
	Lines             []StatementLine `json:"lines"`
	InterestAvailable bool            `json:"interest_available"`
	InterestError     string          `json:"interest_error,omitempty"`
	ClosingBalance    string          `json:"closing_balance"`
}
