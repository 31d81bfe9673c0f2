package extract_test

import (
	"testing"

	"fjacquet/balance-rli/cmd/extract"

	"github.com/stretchr/testify/assert"
)

func TestExtractCommandMetadata(t *testing.T) {
	assert.Equal(t, "extract", extract.Cmd.Use)
	assert.Contains(t, extract.Cmd.Short, "account ledger")
	assert.Contains(t, extract.Cmd.Long, "eight-column balance sheet")
	assert.NotNil(t, extract.Cmd.Run)
}
