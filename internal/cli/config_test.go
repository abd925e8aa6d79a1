package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/kitreport/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, defaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     Config
		wantCode errors.Code
	}{
		{
			name: "full",
			content: `organization = "ACME Spa"
default_revision = "Rev.09"

[preview]
scale = 2.5
`,
			want: Config{Organization: "ACME Spa", DefaultRevision: "Rev.09", Preview: PreviewConfig{Scale: 2.5}},
		},
		{
			name:    "empty",
			content: "",
			want:    Config{},
		},
		{
			name:     "unknown key",
			content:  `organisation = "typo"`,
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "syntax error",
			content:  `organization = `,
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "negative scale",
			content:  "[preview]\nscale = -1\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			got, err := loadConfig(path)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("loadConfig() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("loadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigDefaultFile(t *testing.T) {
	dir := chdir(t)

	cfg, err := loadConfig("")
	if err != nil || cfg != (Config{}) {
		t.Errorf("loadConfig(\"\") without file = %+v, %v", cfg, err)
	}

	writeConfig(t, dir, `organization = "ACME Spa"`)
	cfg, err = loadConfig("")
	if err != nil || cfg.Organization != "ACME Spa" {
		t.Errorf("loadConfig(\"\") = %+v, %v", cfg, err)
	}

	if _, err := loadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("explicit missing file error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
