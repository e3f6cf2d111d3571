package logging_test

import (
	"testing"

	"codechunk/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_SetupLevels(t *testing.T) {
	logger, err := logging.Setup(false, "codechunk", "test")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel), "production logger should not log debug")
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))

	logger, err = logging.Setup(true, "codechunk", "test")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel), "debug logger should log debug")
}
