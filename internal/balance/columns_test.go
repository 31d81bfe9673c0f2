package balance

import (
	"testing"

	"fjacquet/balance-rli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerToken(text string, center float64) models.PositionedToken {
	return models.PositionedToken{Text: text, X0: center - 10, X1: center + 10, Top: 30, PageWidth: 600}
}

func TestMapColumnsHeaderStrategyReproducesCenters(t *testing.T) {
	tokens := []models.PositionedToken{
		headerToken("CODIGO", 30),
		headerToken("CUENTA", 90),
		headerToken("DEBITOS", 200),
		headerToken("CREDITOS", 250),
		headerToken("DEUDOR", 300),
		headerToken("ACREEDOR", 350),
		headerToken("ACTIVOS", 400),
		headerToken("PASIVOS", 450),
		headerToken("PERDIDAS", 500),
		headerToken("GANANCIAS", 560),
	}

	spec, strategy := MapColumns(tokens, 600)

	assert.Equal(t, StrategyHeader, strategy)
	require.Len(t, spec.Numeric(), 8)
	assert.Equal(t, 200.0, spec[models.ColumnDebits])
	assert.Equal(t, 250.0, spec[models.ColumnCredits])
	assert.Equal(t, 300.0, spec[models.ColumnDebtorBalance])
	assert.Equal(t, 350.0, spec[models.ColumnCreditorBalance])
	assert.Equal(t, 400.0, spec[models.ColumnAssets])
	assert.Equal(t, 450.0, spec[models.ColumnLiabilities])
	assert.Equal(t, 500.0, spec[models.ColumnLosses])
	assert.Equal(t, 560.0, spec[models.ColumnGains])
	assert.Equal(t, 30.0, spec[models.ColumnCode])
}

func TestMapColumnsLowercaseLabelsStillMatch(t *testing.T) {
	tokens := []models.PositionedToken{
		headerToken("Debitos", 200),
		headerToken("Creditos", 250),
		headerToken("Activos", 400),
		headerToken("Pasivos", 450),
	}

	spec, strategy := MapColumns(tokens, 600)

	assert.Equal(t, StrategyHeader, strategy)
	assert.Equal(t, 200.0, spec[models.ColumnDebits])
}

func TestMapColumnsFallsBackBelowFourNumericMatches(t *testing.T) {
	// Three numeric labels plus both anchors: still below the threshold.
	tokens := []models.PositionedToken{
		headerToken("CODIGO", 30),
		headerToken("CUENTA", 90),
		headerToken("DEBITOS", 123),
		headerToken("CREDITOS", 234),
		headerToken("GANANCIAS", 345),
	}

	spec, strategy := MapColumns(tokens, 600)

	assert.Equal(t, StrategyProportional, strategy)
	// Partial header matches are discarded entirely.
	assert.Equal(t, 600*0.33, spec[models.ColumnDebits])
	assert.Equal(t, 600*0.42, spec[models.ColumnCredits])
	assert.Equal(t, 600*0.51, spec[models.ColumnDebtorBalance])
	assert.Equal(t, 600*0.59, spec[models.ColumnCreditorBalance])
	assert.Equal(t, 600*0.67, spec[models.ColumnAssets])
	assert.Equal(t, 600*0.73, spec[models.ColumnLiabilities])
	assert.Equal(t, 600*0.82, spec[models.ColumnLosses])
	assert.Equal(t, 600*0.92, spec[models.ColumnGains])
}

func TestMapColumnsNoHeaderTokensUsesProportions(t *testing.T) {
	spec, strategy := MapColumns(nil, 500)

	assert.Equal(t, StrategyProportional, strategy)
	assert.Len(t, spec.Numeric(), 8)
	assert.Equal(t, 500*0.92, spec[models.ColumnGains])
}
