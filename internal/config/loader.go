package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file base name searched for in the working directory.
const FileName = "plume"

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "PLUME"

// Loaded is a Config plus where it came from.
type Loaded struct {
	*Config
	// Source is the file that was read, or "" when only defaults and the
	// environment were used.
	Source string
}

// Load reads configuration. When path is empty, plume.{yml,yaml,toml} is
// searched for in dir. An explicit path that does not exist is an error; a
// missing file found by search is not.
func Load(dir, path string) (*Loaded, error) {
	v := viper.New()

	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	file := viper.New()
	if path != "" {
		file.SetConfigFile(path)
	} else {
		file.SetConfigName(FileName)
		file.AddConfigPath(dir)
	}

	source := ""
	if err := file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		source = file.ConfigFileUsed()
		if err := v.MergeConfigMap(file.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging %s: %w", source, err)
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &Loaded{Config: &cfg, Source: source}, nil
}

// Encoding is a config file syntax.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// EncodingFor picks an encoding from a file extension. Anything that is not
// .toml is YAML.
func EncodingFor(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return EncodingTOML
	}
	return EncodingYAML
}

// Marshal encodes cfg in the given syntax.
func Marshal(cfg *Config, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("marshaling config as toml: %w", err)
		}
		return buf.Bytes(), nil
	case EncodingYAML, "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling config as yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown config encoding %q (use yaml or toml)", enc)
	}
}

// Save writes cfg to path, choosing YAML or TOML by extension.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg, EncodingFor(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
