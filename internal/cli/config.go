package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kitreport/pkg/errors"
)

// Config is the optional kitreport.toml file.
//
//	organization     = "ISOKIT Srl"
//	default_revision = "Rev.05"
//
//	[preview]
//	scale = 2.0
type Config struct {
	Organization    string        `toml:"organization"`
	DefaultRevision string        `toml:"default_revision"`
	Preview         PreviewConfig `toml:"preview"`
}

// PreviewConfig tunes the PNG preview.
type PreviewConfig struct {
	Scale float64 `toml:"scale"`
}

// loadConfig reads the config file at path. With an empty path the default
// file is read if it exists; an explicit path must exist. Unknown keys are
// rejected so typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if cfg.Preview.Scale < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: preview.scale must be positive", path)
	}
	return cfg, nil
}
