package tax_test

import (
	"testing"

	"fjacquet/balance-rli/cmd/tax"

	"github.com/stretchr/testify/assert"
)

func TestTaxCommandMetadata(t *testing.T) {
	assert.Equal(t, "tax", tax.Cmd.Use)
	assert.Contains(t, tax.Cmd.Short, "first-category tax")
	assert.NotNil(t, tax.Cmd.Run)
}

func TestTaxCommandFlags(t *testing.T) {
	for _, name := range []string{
		"regime", "mode", "ppm", "withdrawals", "fines",
		"historical-tax", "uf-quantity", "uf-value", "extras", "tables",
	} {
		assert.NotNil(t, tax.Cmd.Flags().Lookup(name), name)
	}
}

func TestTaxCommandFlagDefaults(t *testing.T) {
	assert.Equal(t, "14d3", tax.Cmd.Flags().Lookup("regime").DefValue)
	assert.Equal(t, "no-incentive", tax.Cmd.Flags().Lookup("mode").DefValue)
}
