package api

type TransactionRequest struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type Transaction struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Amount     string `json:"amount"`
	EODBalance string `json:"eod_balance"`
}

type RuleRequest struct {
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

type InterestRule struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
