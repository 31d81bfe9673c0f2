package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapterInvalidLevelFallsBack(t *testing.T) {
	a := NewLogrusAdapter("nonsense", "text")
	assert.Equal(t, logrus.InfoLevel, a.logger.GetLevel())
}

func TestNewLogrusAdapterJSONFormat(t *testing.T) {
	a := NewLogrusAdapter("debug", "json")
	assert.Equal(t, logrus.DebugLevel, a.logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, a.logger.Formatter)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	m := &MockLogger{}
	m.Info("extracted ledger", Field{Key: FieldCount, Value: 12})
	m.WithError(errors.New("boom")).Error("extraction failed")

	assert.Len(t, m.Entries, 2)
	assert.True(t, m.HasMessage("extracted ledger"))
	assert.Equal(t, "ERROR", m.Entries[1].Level)
	assert.EqualError(t, m.Entries[1].Error, "boom")
}

func TestSetDefaultLoggerIgnoresNil(t *testing.T) {
	orig := GetLogger()
	SetDefaultLogger(nil)
	assert.Equal(t, orig, GetLogger())

	m := &MockLogger{}
	SetDefaultLogger(m)
	assert.Equal(t, Logger(m), GetLogger())
	SetDefaultLogger(orig)
}
