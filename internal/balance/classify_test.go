package balance

import (
	"testing"

	"fjacquet/balance-rli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRowFindsCodeNameAndValues(t *testing.T) {
	row := Row{Tokens: []models.PositionedToken{
		tok("300101", 10, 46, 60),
		tok("VENTAS", 60, 100, 60),
		tok("DEL", 104, 120, 60),
		tok("GIRO", 124, 150, 60),
		tok("222.137.351", 540, 580, 60),
	}}

	classified, ok := ClassifyRow(row)

	require.True(t, ok)
	assert.Equal(t, "300101", classified.Code)
	assert.Equal(t, "VENTAS DEL GIRO", classified.Name)
	require.Len(t, classified.Values, 1)
	assert.Equal(t, int64(222137351), classified.Values[0].Amount)
	assert.Equal(t, 560.0, classified.Values[0].X)
}

func TestClassifyRowNameStopsAtFirstNumericToken(t *testing.T) {
	row := Row{Tokens: []models.PositionedToken{
		tok("400101", 10, 46, 60),
		tok("COSTO", 60, 90, 60),
		tok("1.500", 200, 230, 60),
		tok("VENTAS", 240, 280, 60), // after a numeric token, not part of the name
		tok("2.500", 300, 330, 60),
	}}

	classified, ok := ClassifyRow(row)

	require.True(t, ok)
	assert.Equal(t, "COSTO", classified.Name)
	assert.Len(t, classified.Values, 2)
}

func TestClassifyRowWithoutCodeAnchor(t *testing.T) {
	row := Row{Tokens: []models.PositionedToken{
		tok("TOTALES", 10, 60, 60),
		tok("999.999", 200, 240, 60),
	}}

	_, ok := ClassifyRow(row)
	assert.False(t, ok)
}

func TestClassifyRowCodeAnchorNotAValue(t *testing.T) {
	row := Row{Tokens: []models.PositionedToken{
		tok("110101", 10, 46, 60),
		tok("CAJA", 60, 90, 60),
		tok("5.000", 400, 430, 60),
	}}

	classified, ok := ClassifyRow(row)

	require.True(t, ok)
	require.Len(t, classified.Values, 1)
	assert.Equal(t, int64(5000), classified.Values[0].Amount)
}

func TestClassifyRowSeparatorOnlyTokenParsesToZero(t *testing.T) {
	row := Row{Tokens: []models.PositionedToken{
		tok("110101", 10, 46, 60),
		tok("CAJA", 60, 90, 60),
		tok("...", 400, 410, 60),
	}}

	classified, ok := ClassifyRow(row)

	require.True(t, ok)
	require.Len(t, classified.Values, 1)
	assert.Equal(t, int64(0), classified.Values[0].Amount)
}
