package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-studio/pkg/logger"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup("", logger.NewNop(), "resume-studio-test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
