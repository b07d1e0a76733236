package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "BUNDLR_"

// ProjectFiles are the file names looked up in the project directory, in order
var ProjectFiles = []string{".bundlr.toml", "bundlr.toml", ".bundlr.yaml", "bundlr.yaml", ".bundlr.yml", "bundlr.yml"}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Dir is searched for a project file when File is empty
	Dir string

	// File is an explicit project file; it must exist
	File string

	// Overrides are applied last, keyed by dotted path ("defaults.strict")
	Overrides map[string]interface{}

	// SkipEnv disables the environment layer
	SkipEnv bool
}

// GetDefaultsContent returns the embedded default configuration file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	if err != nil {
		// the embedded file is part of the binary
		panic(err)
	}
	return cfg
}

// Load merges defaults, the project file, the environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project file
	path, err := findProjectFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Source = path
	cfg.raw = k.Raw()

	logger.Debug().
		Str("source", path).
		Int("bundles", len(cfg.Bundles)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps BUNDLR_DEFAULTS__SRC_PATH to defaults.src_path
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func findProjectFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	if opts.Dir == "" {
		return "", nil
	}

	for _, name := range ProjectFiles {
		path := filepath.Join(opts.Dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
