package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApplicationRegistersSubcommands(testInstance *testing.T) {
	application := NewApplication()

	registeredNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredNames[registeredCommand.Name()] = true
	}

	for _, expectedName := range []string{"index", "validate", "audit", "graph"} {
		require.True(testInstance, registeredNames[expectedName], expectedName)
	}
}

func TestPersistentFlagChanged(testInstance *testing.T) {
	testCases := []struct {
		name            string
		setFlag         bool
		expectedChanged bool
	}{
		{name: "flag_not_set", setFlag: false, expectedChanged: false},
		{name: "flag_set", setFlag: true, expectedChanged: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			application := NewApplication()
			if testCase.setFlag {
				require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "debug"))
			}

			require.Equal(testInstance, testCase.expectedChanged, application.persistentFlagChanged(application.rootCommand, logLevelFlagNameConstant))
		})
	}
}

func TestSyncLoggerInstanceToleratesNilLogger(testInstance *testing.T) {
	application := NewApplication()
	require.NoError(testInstance, application.syncLoggerInstance(nil))
	require.NoError(testInstance, application.syncLoggerInstance(zap.NewNop()))
}
