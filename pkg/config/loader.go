package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/logging"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// EnvPrefix prefixes environment variables read into the configuration
const EnvPrefix = "TREEINSTALL_"

// DefaultFiles are looked up in the search directory when no file is given
var DefaultFiles = []string{
	"treeinstall.toml",
	".treeinstall.toml",
	"treeinstall.yaml",
	"treeinstall.yml",
}

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// File is an explicit configuration file; it must exist
	File string

	// SearchDir is where DefaultFiles are looked for when File is empty;
	// empty means the working directory
	SearchDir string

	// Overrides are applied last, keys use "." as delimiter
	Overrides map[string]interface{}

	// NoDefaults skips the embedded defaults
	NoDefaults bool
}

// Load builds the configuration from every source in LoadOptions
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if !opts.NoDefaults {
		if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
		}
	}

	// 2. Configuration file
	path, err := resolveFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		// specs replace the defaults instead of merging element by element
		fileK := koanf.New(".")
		if err := fileK.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		if fileK.Exists("specs") {
			k.Delete("specs")
		}
		if err := k.Merge(fileK); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("specs", len(cfg.Specs)).
		Str("source_root", cfg.SourceRoot).
		Str("dest_root", cfg.DestRoot).
		Msg("Configuration loaded")
	return cfg, nil
}

// Default returns the embedded configuration, ignoring files and the
// environment
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				rewritePairHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if cfg.Vars == nil {
		cfg.Vars = map[string]string{}
	}
	return &cfg, nil
}

func resolveFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	dir := opts.SearchDir
	if dir == "" {
		dir = "."
	}
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// envKey maps TREEINSTALL_DEST_ROOT to dest_root and TREEINSTALL_VARS_docdir
// to vars.docdir. Variable names keep their case.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if len(key) > len("VARS_") && strings.EqualFold(key[:len("VARS_")], "VARS_") {
		return "vars." + key[len("VARS_"):]
	}
	return strings.ToLower(key)
}

// rewritePairHookFunc accepts a rewrite rule written as a two element list
func rewritePairHookFunc() mapstructure.DecodeHookFunc {
	pairType := reflect.TypeOf(types.RewritePair{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != pairType || (f.Kind() != reflect.Slice && f.Kind() != reflect.Array) {
			return data, nil
		}
		items := reflect.ValueOf(data)
		if items.Len() != 2 {
			return nil, fmt.Errorf("rewrite rule needs [pattern, replacement], got %d elements", items.Len())
		}
		return map[string]interface{}{
			"pattern": fmt.Sprint(items.Index(0).Interface()),
			"replace": fmt.Sprint(items.Index(1).Interface()),
		}, nil
	}
}
