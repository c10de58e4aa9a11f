package matrix

import (
	"net"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Record is the raw configuration input. Pointer fields distinguish an absent
// field from a zero value.
type Record struct {
	Host       *string        `json:"host" yaml:"host" mapstructure:"host" validate:"required"`
	APIKey     *string        `json:"api_key" yaml:"api_key" mapstructure:"api_key" validate:"required"`
	APIVersion *string        `json:"api_version" yaml:"api_version" mapstructure:"api_version" validate:"required"`
	UseSSL     *bool          `json:"use_ssl" yaml:"use_ssl" mapstructure:"use_ssl" validate:"required"`
	Debug      *bool          `json:"debug,omitempty" yaml:"debug,omitempty" mapstructure:"debug"`
	Port       *int           `json:"port,omitempty" yaml:"port,omitempty" mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Timeout    *time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// Config is the immutable client configuration. Build it with NewConfig.
type Config struct {
	host       string
	apiKey     string
	apiVersion string
	useSSL     bool
	debug      bool
	port       int
	timeout    time.Duration
}

var recordValidator = validator.New()

// NewConfig validates rec and builds a Config from it.
// A missing required field yields a *ConfigurationError naming every such field.
func NewConfig(rec Record) (Config, error) {
	if err := recordValidator.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fieldName(fe.StructField()))
			}
			return Config{}, &ConfigurationError{Fields: fields, Err: err}
		}
		return Config{}, &ConfigurationError{Err: err}
	}

	c := Config{
		host:       *rec.Host,
		apiKey:     *rec.APIKey,
		apiVersion: *rec.APIVersion,
		useSSL:     *rec.UseSSL,
	}
	if c.host == "" {
		return Config{}, &ConfigurationError{Fields: []string{"host"}, Err: errors.New("host is empty")}
	}
	if rec.Debug != nil {
		c.debug = *rec.Debug
	}
	if rec.Port != nil {
		c.port = *rec.Port
	} else {
		c.port = defaultPort(c.useSSL)
	}
	if rec.Timeout != nil {
		c.timeout = *rec.Timeout
	}
	return c, nil
}

// MustConfig is like NewConfig but panics on error.
func MustConfig(rec Record) Config {
	c, err := NewConfig(rec)
	if err != nil {
		panic(err)
	}
	return c
}

var recordFieldNames = map[string]string{
	"Host":       "host",
	"APIKey":     "api_key",
	"APIVersion": "api_version",
	"UseSSL":     "use_ssl",
	"Debug":      "debug",
	"Port":       "port",
	"Timeout":    "timeout",
}

func fieldName(structField string) string {
	if n, ok := recordFieldNames[structField]; ok {
		return n
	}
	return structField
}

func defaultPort(useSSL bool) int {
	if useSSL {
		return DefaultHTTPSPort
	}
	return DefaultHTTPPort
}

// Host is the service host name, without scheme or port.
func (c Config) Host() string { return c.host }

// APIKey is sent as api_key on every request.
func (c Config) APIKey() string { return c.apiKey }

// APIVersion is sent as api_version on every request.
func (c Config) APIVersion() string { return c.apiVersion }

// UseSSL reports whether requests go over https.
func (c Config) UseSSL() bool { return c.useSSL }

// Debug reports whether debug=1 is added to every request.
func (c Config) Debug() bool { return c.debug }

// Port is the effective port, defaulted from UseSSL when unset.
func (c Config) Port() int { return c.port }

// Timeout is the per-request timeout; zero means no client-side limit.
func (c Config) Timeout() time.Duration { return c.timeout }

// Scheme returns "https" when TLS is enabled, else "http".
func (c Config) Scheme() string {
	if c.useSSL {
		return "https"
	}
	return "http"
}

// BaseURL returns scheme://host, with the port only when it is not the
// scheme's default.
func (c Config) BaseURL() string {
	host := c.host
	if c.port != 0 && c.port != defaultPort(c.useSSL) {
		host = net.JoinHostPort(c.host, strconv.Itoa(c.port))
	}
	return c.Scheme() + "://" + host
}

// Ptr returns a pointer to v. It keeps Record literals short.
func Ptr[T any](v T) *T {
	return &v
}
