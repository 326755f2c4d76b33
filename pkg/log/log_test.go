package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	return &buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "hello")
}

func TestWithFields_Development(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"path": "/v1/orders", "query": "q=john", "operator_email": "ops@example.com"}).Info("request")

	out := buf.String()
	assert.Contains(t, out, "path=/v1/orders")
	assert.Contains(t, out, "operator_email=ops@example.com")
	assert.NotContains(t, out, "query=")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("query", "q=john").Info("request")

	assert.Contains(t, buf.String(), "query=")
}
