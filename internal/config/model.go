// internal/config/model.go
//
// Typed configuration model for userform.
//
// Context
// -------
// These structs define the shape of the tree that loader.go builds from
// four layers (highest precedence last):
//
//   • Defaults()                                – compiled-in values,
//   • optional `conf/.env`                      – dotenv values,
//   • optional `conf/userform.yaml`             – static file,
//   • `USERFORM_`-prefixed environment overrides.
//
// Validation happens immediately after unmarshal; the binary refuses to
// start on a malformed tree.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • Durations are written as Go duration strings ("30m", "15s").
//   • The `Paths` block is filled at runtime.

package config

import "time"

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gt=0"`
}

// Session controls how long a visitor's form survives without activity.
// One session stands in for one page view of the form.
type Session struct {
	CookieName      string        `koanf:"cookie_name"      validate:"required,printascii"`
	IdleTTL         time.Duration `koanf:"idle_ttl"         validate:"gt=0"`
	CleanupInterval time.Duration `koanf:"cleanup_interval" validate:"gt=0"`
}

// CSRF holds the signing key for form tokens.  Empty means a random key is
// generated at startup, which invalidates open forms on restart.
type CSRF struct {
	Key    string        `koanf:"key"     validate:"omitempty,base64rawurl"`
	MaxAge time.Duration `koanf:"max_age" validate:"gt=0"`
}

// Log selects verbosity and the directory for rotated JSON files.
type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	Dir   string `koanf:"dir"`
}

// Metrics toggles the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path" validate:"omitempty,startswith=/"`
}

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // USERFORM_ROOT or discovered parent
}

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Session Session `koanf:"session"`
	CSRF    CSRF    `koanf:"csrf"`
	Log     Log     `koanf:"log"`
	Metrics Metrics `koanf:"metrics"`
	Paths   Paths   `koanf:"-"`
}

// Defaults returns the baseline every layer overrides.
func Defaults() Config {
	return Config{
		HTTP: HTTP{
			ListenAddr:   ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Session: Session{
			CookieName:      "userform_session",
			IdleTTL:         30 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		CSRF: CSRF{MaxAge: 2 * time.Hour},
		Log:  Log{Level: "info", Dir: "logs"},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
