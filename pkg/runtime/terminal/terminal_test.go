package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/commands"
	"github.com/de-tools/bank-ledger/pkg/services/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cli  *CLI
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func setupFixture(t *testing.T) *fixture {
	reg, err := registry.New(&domain.Config{
		Database: domain.DatabaseConfig{Path: ":memory:"},
		Interest: domain.InterestConfig{DayCountBasis: 365},
		Cache:    domain.CacheConfig{RulesTTL: time.Minute},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		reg.Close()
	})

	f := &fixture{out: &bytes.Buffer{}, logs: &bytes.Buffer{}}
	f.cli = NewCLI(Options{
		Output:    f.out,
		LogOutput: f.logs,
		Services: &commands.Services{
			Ledger:     reg.Ledger,
			Rates:      reg.Rates,
			Calculator: reg.Calculator,
			Statements: reg.Statements,
		},
	})
	return f
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	f.out.Reset()
	err := f.cli.Run(context.Background(), args)
	return f.out.String(), err
}

func TestCLI_Flow(t *testing.T) {
	f := setupFixture(t)

	out, err := f.run(t, "rule", "20230101", "RULE01", "1.95")
	require.NoError(t, err)
	assert.Contains(t, out, "| 20230101 | RULE01     |     1.95 |")

	_, err = f.run(t, "rule", "20230520", "RULE02", "1.90")
	require.NoError(t, err)
	out, err = f.run(t, "rule", "20230615", "RULE03", "2.20")
	require.NoError(t, err)
	assert.Contains(t, out, "| 20230615 | RULE03     |     2.20 |")

	for _, args := range [][]string{
		{"txn", "20230505", "AC001", "D", "100.00"},
		{"txn", "20230601", "AC001", "D", "150.00"},
		{"txn", "20230626", "AC001", "W", "20.00"},
	} {
		_, err := f.run(t, args...)
		require.NoError(t, err)
	}

	out, err = f.run(t, "txn", "20230626", "AC001", "w", "100.00")
	require.NoError(t, err)
	assert.Contains(t, out, "| 20230505 | 20230505-01 | D    |     100.00 |")
	assert.Contains(t, out, "| 20230626 | 20230626-02 | W    |     100.00 |")

	out, err = f.run(t, "interest", "AC001", "202306")
	require.NoError(t, err)
	assert.Contains(t, out, "| 20230601 | 20230614 | RULE02     |     1.90 |       250.00 |   14 |        66.50 |")
	assert.Contains(t, out, "Interest accrued: 0.39")

	out, err = f.run(t, "statement", "AC001", "202306")
	require.NoError(t, err)
	assert.Contains(t, out, "Opening balance: 100.00")
	assert.Contains(t, out, "| 20230630 |             | I    |       0.39 |       130.39 |")
	assert.Contains(t, out, "Closing balance: 130.39")
}

func TestCLI_Errors(t *testing.T) {
	f := setupFixture(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "bad date", args: []string{"txn", "2023-06-01", "AC001", "D", "10"}, wantErr: domain.ErrInvalidDate},
		{name: "bad type", args: []string{"txn", "20230601", "AC001", "X", "10"}, wantErr: domain.ErrInvalidTransactionType},
		{name: "bad amount", args: []string{"txn", "20230601", "AC001", "D", "ten"}, wantErr: domain.ErrInvalidAmount},
		{name: "overdraw", args: []string{"txn", "20230601", "AC001", "W", "10"}, wantErr: domain.ErrInsufficientBalance},
		{name: "bad rate", args: []string{"rule", "20230601", "RULE01", "100"}, wantErr: domain.ErrInvalidRate},
		{name: "bad month", args: []string{"statement", "AC001", "2023"}, wantErr: domain.ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("wrong arg count", func(t *testing.T) {
		_, err := f.run(t, "txn", "20230601")
		assert.Error(t, err)
	})
}

func TestCLI_RuleImport(t *testing.T) {
	f := setupFixture(t)

	path := filepath.Join(t.TempDir(), "rules.ini")
	require.NoError(t, os.WriteFile(path, []byte("[20230101]\nrule_id = RULE01\nrate = 1.95\n"), 0o600))

	out, err := f.run(t, "rule", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 interest rules")
	assert.Contains(t, out, "| 20230101 | RULE01     |     1.95 |")
}

func TestCLI_OpensDatabaseFromFlag(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bank.db")
	out := &bytes.Buffer{}

	cli := NewCLI(Options{Output: out, LogOutput: &bytes.Buffer{}})
	require.NoError(t, cli.Run(context.Background(), []string{"--db", dbPath, "txn", "20230601", "AC001", "D", "100"}))

	cli = NewCLI(Options{Output: out, LogOutput: &bytes.Buffer{}})
	out.Reset()
	require.NoError(t, cli.Run(context.Background(), []string{"--db", dbPath, "statement", "AC001", "202306"}))
	assert.Contains(t, out.String(), "| 20230601 | 20230601-01 | D    |     100.00 |       100.00 |")
}
