package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type Column struct {
	Title string
	Width int
	Right bool
}

type TableConfig struct {
	Transactions []Column
	Statement    []Column
	Rules        []Column
	Periods      []Column
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		Transactions: []Column{
			{Title: "Date", Width: 8},
			{Title: "Txn Id", Width: 11},
			{Title: "Type", Width: 4},
			{Title: "Amount", Width: 10, Right: true},
		},
		Statement: []Column{
			{Title: "Date", Width: 8},
			{Title: "Txn Id", Width: 11},
			{Title: "Type", Width: 4},
			{Title: "Amount", Width: 10, Right: true},
			{Title: "Balance", Width: 12, Right: true},
		},
		Rules: []Column{
			{Title: "Date", Width: 8},
			{Title: "RuleId", Width: 10},
			{Title: "Rate (%)", Width: 8, Right: true},
		},
		Periods: []Column{
			{Title: "Start", Width: 8},
			{Title: "End", Width: 8},
			{Title: "RuleId", Width: 10},
			{Title: "Rate (%)", Width: 8, Right: true},
			{Title: "Balance", Width: 12, Right: true},
			{Title: "Days", Width: 4, Right: true},
			{Title: "Annualized", Width: 12, Right: true},
		},
	}
}

const templates = `
{{define "transactions"}}Account: {{.AccountID}}
{{separator .Columns}}
{{header .Columns}}
{{separator .Columns}}
{{range .Rows}}{{row $.Columns (date .Date) .ID (print .Type) (money .Amount)}}
{{end}}{{separator .Columns}}
{{end}}

{{define "rules"}}Interest rules:
{{separator .Columns}}
{{header .Columns}}
{{separator .Columns}}
{{range .Rows}}{{row $.Columns (date .Date) .RuleID (rate .Rate)}}
{{end}}{{separator .Columns}}
{{end}}

{{define "interest"}}Account: {{.Accrual.AccountID}}  Month: {{.Accrual.Month}}
{{separator .Columns}}
{{header .Columns}}
{{separator .Columns}}
{{range .Accrual.Periods}}{{row $.Columns (date .Start) (date .End) .RuleID (rate .Rate) (money .Balance) (print .Days) (money .AnnualizedInterest)}}
{{end}}{{separator .Columns}}
{{if .Accrual.Available}}Interest accrued: {{money .Accrual.Posted}}
{{else}}Interest unavailable: {{.Accrual.Err}}
{{end}}{{end}}

{{define "statement"}}Account: {{.Statement.AccountID}}  Month: {{.Statement.Month}}
Opening balance: {{money .Statement.OpeningBalance}}
{{separator .Columns}}
{{header .Columns}}
{{separator .Columns}}
{{range .Statement.Lines}}{{row $.Columns (date .Date) .TransactionID (print .Type) (money .Amount) (money .Balance)}}
{{end}}{{with .Statement.Interest}}{{row $.Columns (date .Date) .TransactionID (print .Type) (money .Amount) (money .Balance)}}
{{end}}{{separator .Columns}}
{{if not .Statement.InterestAvailable}}Interest unavailable: {{.Statement.InterestError}}
{{end}}Closing balance: {{money .Statement.ClosingBalance}}
{{end}}
`

// Reporter renders ledger data as fixed-width text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	c := &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}

	funcMap := template.FuncMap{
		"row": formatRow,
		"header": func(cols []Column) string {
			titles := make([]string, len(cols))
			for i, col := range cols {
				titles[i] = col.Title
			}
			return formatRow(cols, titles...)
		},
		"separator": separator,
		"date":      domain.FormatDate,
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"rate": domain.FormatRate,
	}
	c.tmpl = template.Must(template.New("reports").Funcs(funcMap).Parse(templates))
	return c
}

func formatRow(cols []Column, values ...string) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		var v string
		if i < len(values) {
			v = values[i]
		}
		if col.Right {
			cells[i] = fmt.Sprintf("%*s", col.Width, v)
		} else {
			cells[i] = fmt.Sprintf("%-*s", col.Width, v)
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func separator(cols []Column) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = strings.Repeat("-", col.Width+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func (c *Reporter) render(name string, data any) error {
	if err := c.tmpl.ExecuteTemplate(c.writer, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func (c *Reporter) Transactions(accountID string, txns []domain.Transaction) error {
	return c.render("transactions", struct {
		AccountID string
		Columns   []Column
		Rows      []domain.Transaction
	}{accountID, c.config.Transactions, txns})
}

func (c *Reporter) Rules(rules []domain.InterestRule) error {
	return c.render("rules", struct {
		Columns []Column
		Rows    []domain.InterestRule
	}{c.config.Rules, rules})
}

func (c *Reporter) Interest(accrual domain.Accrual) error {
	return c.render("interest", struct {
		Columns []Column
		Accrual domain.Accrual
	}{c.config.Periods, accrual})
}

func (c *Reporter) Statement(stmt domain.Statement) error {
	return c.render("statement", struct {
		Columns   []Column
		Statement domain.Statement
	}{c.config.Statement, stmt})
}
