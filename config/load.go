// Package config loads a matrix.Config from a file, the environment and an
// optional .env file. Environment variables override the file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
	"go.uber.org/zap"

	matrix "github.com/xizhibei/go-matrix"
)

const (
	DefaultEnvPrefix = "MATRIX"
	DefaultEnvFile   = ".env"
)

const (
	keyHost       = "host"
	keyAPIKey     = "api_key"
	keyAPIVersion = "api_version"
	keyUseSSL     = "use_ssl"
	keyDebug      = "debug"
	keyPort       = "port"
	keyTimeout    = "timeout"
)

type loadOptions struct {
	file      string
	envFile   string
	envPrefix string
}

// LoadOption is a functional option for Load.
type LoadOption func(o *loadOptions)

// WithFile reads a YAML, JSON or TOML file. The format follows the extension.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithEnvFile sets the .env file to load before reading the environment.
// A missing file is ignored. Empty disables it.
func WithEnvFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix, MATRIX by default,
// so the API key is read from MATRIX_API_KEY.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// Load builds a validated matrix.Config.
func Load(options ...LoadOption) (matrix.Config, error) {
	rec, err := LoadRecord(options...)
	if err != nil {
		return matrix.Config{}, err
	}
	return matrix.NewConfig(rec)
}

// LoadRecord reads the raw record without validating it. Keys that are set
// nowhere stay nil.
func LoadRecord(options ...LoadOption) (matrix.Record, error) {
	o := loadOptions{
		envFile:   DefaultEnvFile,
		envPrefix: DefaultEnvPrefix,
	}
	for _, option := range options {
		option(&o)
	}

	log := zap.S().With("module", "matrix.config")

	if o.envFile != "" {
		if _, err := os.Stat(o.envFile); err == nil {
			if err := godotenv.Load(o.envFile); err != nil {
				return matrix.Record{}, &matrix.ConfigurationError{Err: errors.Wrapf(err, "load %s", o.envFile)}
			}
			log.Debugf("Loaded env file %s", o.envFile)
		} else if !os.IsNotExist(err) {
			return matrix.Record{}, &matrix.ConfigurationError{Err: errors.Wrapf(err, "stat %s", o.envFile)}
		}
	}

	v := viper.New()
	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if o.file != "" {
		v.SetConfigFile(o.file)
		if err := v.ReadInConfig(); err != nil {
			return matrix.Record{}, &matrix.ConfigurationError{Err: errors.Wrapf(err, "read %s", o.file)}
		}
		log.Debugf("Loaded config file %s", o.file)
	}

	r := reader{v: v}
	rec := matrix.Record{
		Host:       r.getString(keyHost),
		APIKey:     r.getString(keyAPIKey),
		APIVersion: r.getString(keyAPIVersion),
		UseSSL:     r.getBool(keyUseSSL),
		Debug:      r.getBool(keyDebug),
		Port:       r.getInt(keyPort),
		Timeout:    r.getDuration(keyTimeout),
	}
	if len(r.invalid) > 0 {
		return matrix.Record{}, &matrix.ConfigurationError{
			Fields: r.invalid,
			Err:    errors.Newf("invalid values: %s", strings.Join(r.errs, "; ")),
		}
	}
	return rec, nil
}

type reader struct {
	v       *viper.Viper
	invalid []string
	errs    []string
}

func (r *reader) fail(key string, err error) {
	r.invalid = append(r.invalid, key)
	r.errs = append(r.errs, key+": "+err.Error())
}

func (r *reader) getString(key string) *string {
	if !r.v.IsSet(key) {
		return nil
	}
	s, err := cast.ToStringE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &s
}

func (r *reader) getBool(key string) *bool {
	if !r.v.IsSet(key) {
		return nil
	}
	b, err := cast.ToBoolE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &b
}

func (r *reader) getInt(key string) *int {
	if !r.v.IsSet(key) {
		return nil
	}
	n, err := cast.ToIntE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &n
}

// getDuration accepts "90s", "1d2h" and other str2duration forms. Bare numbers
// are seconds.
func (r *reader) getDuration(key string) *time.Duration {
	if !r.v.IsSet(key) {
		return nil
	}
	raw := r.v.Get(key)
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if d, err := str2duration.ParseDuration(s); err == nil {
			return &d
		}
		raw = s
	}
	secs, err := cast.ToFloat64E(raw)
	if err != nil {
		r.fail(key, errors.Newf("invalid duration %q", raw))
		return nil
	}
	d := time.Duration(secs * float64(time.Second))
	return &d
}
