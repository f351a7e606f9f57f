package config

import (
	"testing"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuleSeed(t *testing.T) {
	path := writeFile(t, "rules.ini", `
[20230101]
rule_id = RULE01
rate = 1.95

[20230520]
rule_id = RULE02
rate = 1.90

[20230615]
rule_id = RULE03
rate = 2.20
`)

	rules, err := LoadRuleSeed(path)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, domain.Date(2023, time.January, 1), rules[0].Date)
	assert.Equal(t, "RULE01", rules[0].RuleID)
	assert.Equal(t, "1.95", rules[0].Rate.StringFixed(2))
	assert.Equal(t, domain.Date(2023, time.June, 15), rules[2].Date)
	assert.Equal(t, "2.2", rules[2].Rate.String())
}

func TestLoadRuleSeed_Errors(t *testing.T) {
	t.Run("bad section date", func(t *testing.T) {
		path := writeFile(t, "rules.ini", "[june]\nrule_id = R\nrate = 1\n")
		_, err := LoadRuleSeed(path)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("bad rate", func(t *testing.T) {
		path := writeFile(t, "rules.ini", "[20230101]\nrule_id = R\nrate = lots\n")
		_, err := LoadRuleSeed(path)
		assert.ErrorIs(t, err, domain.ErrInvalidRate)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRuleSeed("/nonexistent/rules.ini")
		assert.Error(t, err)
	})
}
