package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapterInvalidLevelFallsBack(t *testing.T) {
	logger := NewLogrusAdapter("shouting", "text")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestLogrusAdapterFieldsReachOutput(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.WithField(FieldVariant, "efd-icms").Info("parsed file",
		Field{Key: FieldCount, Value: 42})

	out := buf.String()
	assert.Contains(t, out, `"variant":"efd-icms"`)
	assert.Contains(t, out, `"count":42`)
	assert.Contains(t, out, "parsed file")
}

func TestLogrusAdapterWithError(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)

	logger := NewLogrusAdapterFromLogger(base)
	logger.WithError(errors.New("broken pipe")).Error("read failed")

	assert.Contains(t, buf.String(), "broken pipe")
}

func TestMockLoggerCaptures(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", Field{Key: "a", Value: 1})
	mock.Warn("careful")

	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))
	assert.Len(t, mock.EntriesByLevel("INFO"), 1)
}

func TestMockLoggerDerivedLoggersShareStore(t *testing.T) {
	mock := &MockLogger{}

	mock.WithError(errors.New("boom")).Warn("derived entry")
	mock.WithField("k", "v").Info("another")

	assert.True(t, mock.HasEntry("WARN", "derived entry"))
	assert.True(t, mock.HasEntry("INFO", "another"))
	entries := mock.EntriesByLevel("WARN")
	assert.Len(t, entries, 1)
	assert.EqualError(t, entries[0].Error, "boom")
}
