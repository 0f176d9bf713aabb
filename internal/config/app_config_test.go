package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/textstats/internal/types"
	"github.com/temirov/textstats/internal/utils"
)

type configTestCase struct {
	name             string
	globalContent    string
	localContent     string
	expectedSettings Settings
	expectError      bool
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	defaults := Settings{
		Top:            DefaultTop,
		Format:         types.FormatRaw,
		Color:          types.ColorAuto,
		TokenizerModel: DefaultTokenizerModel,
	}

	testCases := []configTestCase{
		{
			name:             "no_files_uses_defaults",
			expectedSettings: defaults,
		},
		{
			name:          "local_overrides_global",
			globalContent: "top: 3\nformat: json\nclipboard: true\n",
			localContent:  "top: 5\ncolor: never\ntokens:\n  enabled: true\n  model: cl100k_base\n",
			expectedSettings: Settings{
				Top:            5,
				Format:         types.FormatJSON,
				Color:          types.ColorNever,
				Clipboard:      true,
				TokensEnabled:  true,
				TokenizerModel: "cl100k_base",
			},
		},
		{
			name:          "global_only_with_mixed_case",
			globalContent: "format: YAML\ncolor: Always\n",
			expectedSettings: Settings{
				Top:            DefaultTop,
				Format:         "YAML",
				Color:          "Always",
				TokenizerModel: DefaultTokenizerModel,
			},
		},
		{
			name:             "zero_top_is_kept",
			localContent:     "top: 0\n",
			expectedSettings: Settings{Top: 0, Format: types.FormatRaw, Color: types.ColorAuto, TokenizerModel: DefaultTokenizerModel},
		},
		{
			name:         "negative_top_rejected",
			localContent: "top: -1\n",
			expectError:  true,
		},
		{
			name:         "unknown_format_rejected",
			localContent: "format: toml\n",
			expectError:  true,
		},
		{
			name:         "unknown_color_rejected",
			localContent: "color: sometimes\n",
			expectError:  true,
		},
		{
			name:         "malformed_yaml_rejected",
			localContent: "top: [unterminated\n",
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.GlobalConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir})
			if testCase.expectError {
				if err == nil {
					t.Fatalf("expected LoadApplicationConfiguration to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			if settings := loadedConfig.Settings(); settings != testCase.expectedSettings {
				t.Fatalf("expected settings %+v, got %+v", testCase.expectedSettings, settings)
			}
		})
	}
}

func TestMergeKeepsUnsetValues(t *testing.T) {
	topValue := 4
	enabled := true
	base := ApplicationConfiguration{Top: &topValue, Format: types.FormatXML, Tokens: TokenConfiguration{Enabled: &enabled}}
	merged := base.Merge(ApplicationConfiguration{Color: types.ColorAlways})
	if merged.Top == nil || *merged.Top != 4 {
		t.Fatalf("expected top to survive merge")
	}
	if merged.Format != types.FormatXML || merged.Color != types.ColorAlways {
		t.Fatalf("unexpected merge result %+v", merged)
	}
	if merged.Tokens.Enabled == nil || !*merged.Tokens.Enabled {
		t.Fatalf("expected tokens enabled to survive merge")
	}
	topValue = 9
	if *merged.Top != 4 {
		t.Fatalf("expected merge to clone pointer values")
	}
}
