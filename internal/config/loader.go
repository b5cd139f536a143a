// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` from four layers (highest
precedence last):

  1. `Defaults()`.
  2. Optional `<root>/conf/.env`.
  3. Optional `<root>/conf/userform.yaml`, or the file passed to
     `LoadFile`.
  4. Environment variables prefixed `USERFORM_`, where `__` maps to “.”
     (e.g., `USERFORM_HTTP__LISTEN_ADDR → http.listen_addr`).

The merged tree is unmarshalled over the defaults, validated, enriched
with the runtime root path, and cached in an `atomic.Pointer`.

Instrumentation
---------------
  • DEBUG spans for root discovery, YAML read, and env overlay.
  • ERROR spans for parse, unmarshal, and validation failures.
  • Logs use `zap.S()` so early boot issues surface before the file
    logger is installed.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	envPrefix    = "USERFORM_"
	confDir      = "conf"
	yamlFileName = "userform.yaml"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves USERFORM_ROOT or climbs directories until conf/ is found.
// Falls back to the working directory.
func rootDir() string {
	if r := os.Getenv(envPrefix + "ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if fi, err := os.Stat(filepath.Join(dir, confDir)); err == nil && fi.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load discovers the root and reads conf/userform.yaml when present.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)
	return load(root, filepath.Join(root, confDir, yamlFileName), false)
}

// LoadFile is Load with an explicit YAML path, which must exist.
func LoadFile(path string) (*Config, error) {
	return load(rootDir(), path, true)
}

func load(root, yamlPath string, mustExist bool) (*Config, error) {
	_ = godotenv.Load(filepath.Join(root, confDir, ".env"))

	k := koanf.New(".")

	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		if mustExist || !errors.Is(err, fs.ErrNotExist) {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, fmt.Errorf("load %s: %w", yamlPath, err)
		}
		zap.S().Debugw("config yaml absent, using defaults", "file", yamlPath)
	} else {
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, fmt.Errorf("env overlay: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.Root = root
	if cfg.Log.Dir != "" && !filepath.IsAbs(cfg.Log.Dir) {
		cfg.Log.Dir = filepath.Join(root, cfg.Log.Dir)
	}
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"session_ttl", cfg.Session.IdleTTL,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// Get returns the last successfully loaded Config, or nil.
func Get() *Config { return current.Load() }
