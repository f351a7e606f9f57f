package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/de-tools/bank-ledger/pkg/adapters"
	"github.com/de-tools/bank-ledger/pkg/models/api"
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/services/interest"
	ledgersvc "github.com/de-tools/bank-ledger/pkg/services/ledger"
	"github.com/de-tools/bank-ledger/pkg/services/rates"
	"github.com/de-tools/bank-ledger/pkg/services/statement"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Handler struct {
	ledger     ledgersvc.Service
	rates      rates.Service
	calculator interest.Calculator
	statements statement.Builder
}

func NewHandler(
	ledger ledgersvc.Service,
	rates rates.Service,
	calculator interest.Calculator,
	statements statement.Builder,
) *Handler {
	return &Handler{
		ledger:     ledger,
		rates:      rates,
		calculator: calculator,
		statements: statements,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := chi.URLParam(r, "account")

	var req api.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errMalformedBody, err))
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	typ, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	amount, err := parseAmount(req.Amount, domain.ErrInvalidAmount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	txn, err := h.ledger.Process(ctx, domain.TransactionInput{
		AccountID: account,
		Date:      date,
		Type:      typ,
		Amount:    amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, adapters.MapTransactionDomainToApi(txn))
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := chi.URLParam(r, "account")

	from, err := optionalDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := optionalDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	txns, err := h.ledger.ListTransactions(ctx, account, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Transaction, 0, len(txns))
	for _, txn := range txns {
		response = append(response, adapters.MapTransactionDomainToApi(txn))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	h.writeRules(w, r)
}

func (h *Handler) PutRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req api.RuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errMalformedBody, err))
		return
	}
	rate, err := parseAmount(req.Rate, domain.ErrInvalidRate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.rates.UpsertRule(ctx, date, req.RuleID, rate); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeRules(w, r)
}

func (h *Handler) writeRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.rates.ListRules(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.InterestRule, 0, len(rules))
	for _, rule := range rules {
		response = append(response, adapters.MapRuleDomainToApi(rule))
	}
	writeJSON(w, r, http.StatusOK, response)
}

// GetInterest answers 200 even when the accrual failed; the body then
// carries status "unavailable".
func (h *Handler) GetInterest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := chi.URLParam(r, "account")

	month, err := domain.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	accrual := h.calculator.ComputeMonthlyInterest(ctx, account, month)
	writeJSON(w, r, http.StatusOK, adapters.MapAccrualDomainToApi(accrual))
}

func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := chi.URLParam(r, "account")

	month, err := domain.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	stmt, err := h.statements.Build(ctx, account, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapStatementDomainToApi(stmt))
}

var errMalformedBody = errors.New("malformed request body")

func parseAmount(s string, sentinel error) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", sentinel, s)
	}
	return d, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, errMalformedBody),
		errors.Is(err, domain.ErrInvalidAccount),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrInvalidRuleID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidMonth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		message = http.StatusText(status)
	}
	writeJSON(w, r, status, api.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
