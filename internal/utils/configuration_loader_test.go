package utils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/activemirror/sitesync/internal/utils"
)

const (
	testEnvironmentPrefixConstant     = "TESTSITESYNC"
	testLogLevelKeyConstant           = "common.log_level"
	testLogLevelEnvironmentConstant   = testEnvironmentPrefixConstant + "_COMMON_LOG_LEVEL"
	testDefaultLogLevelConstant       = "info"
	testFileLogLevelConstant          = "warn"
	testEnvironmentLogLevelConstant   = "error"
	testConfigFileNameConstant        = "config.yaml"
	testConfigContentTemplateConstant = "common:\n  log_level: %s\n"
	testConfigurationNameConstant     = "config"
	testConfigurationTypeConstant     = "yaml"
)

type loaderFixture struct {
	Common loaderCommonFixture `mapstructure:"common"`
}

type loaderCommonFixture struct {
	LogLevel string `mapstructure:"log_level"`
}

func TestConfigurationLoaderLoadConfiguration(testInstance *testing.T) {
	testCases := []struct {
		name                string
		fileLogLevel        string
		environmentLogLevel string
		expectedLogLevel    string
		expectConfigFile    bool
	}{
		{
			name:                "defaults_apply_without_config_file",
			fileLogLevel:        "",
			environmentLogLevel: "",
			expectedLogLevel:    testDefaultLogLevelConstant,
			expectConfigFile:    false,
		},
		{
			name:                "config_file_overrides_defaults",
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: "",
			expectedLogLevel:    testFileLogLevelConstant,
			expectConfigFile:    true,
		},
		{
			name:                "environment_overrides_config_file",
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: testEnvironmentLogLevelConstant,
			expectedLogLevel:    testEnvironmentLogLevelConstant,
			expectConfigFile:    true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			searchDirectory := testInstance.TempDir()
			configurationFilePath := ""
			if len(testCase.fileLogLevel) > 0 {
				configurationFilePath = filepath.Join(searchDirectory, testConfigFileNameConstant)
				configurationContents := fmt.Sprintf(testConfigContentTemplateConstant, testCase.fileLogLevel)
				require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContents), 0o644))
			}
			if len(testCase.environmentLogLevel) > 0 {
				testInstance.Setenv(testLogLevelEnvironmentConstant, testCase.environmentLogLevel)
			}

			loader := utils.NewConfigurationLoader(
				testConfigurationNameConstant,
				testConfigurationTypeConstant,
				testEnvironmentPrefixConstant,
				[]string{searchDirectory},
			)

			var loadedFixture loaderFixture
			defaultValues := map[string]any{testLogLevelKeyConstant: testDefaultLogLevelConstant}
			loadedConfiguration, loadError := loader.LoadConfiguration(configurationFilePath, defaultValues, &loadedFixture)

			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expectedLogLevel, loadedFixture.Common.LogLevel)
			if testCase.expectConfigFile {
				require.Equal(testInstance, configurationFilePath, loadedConfiguration.ConfigFileUsed)
			}
		})
	}
}

func TestConfigurationLoaderRejectsMalformedFile(testInstance *testing.T) {
	searchDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(searchDirectory, testConfigFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte("common: [unterminated\n"), 0o644))

	loader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{searchDirectory},
	)

	var loadedFixture loaderFixture
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &loadedFixture)
	require.Error(testInstance, loadError)
}
