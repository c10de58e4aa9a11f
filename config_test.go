package matrix_test

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"

	matrix "github.com/xizhibei/go-matrix"
)

type ConfigTestSuite struct {
	suite.Suite
}

func validRecord() matrix.Record {
	return matrix.Record{
		Host:       matrix.Ptr("example.org"),
		APIKey:     matrix.Ptr("K"),
		APIVersion: matrix.Ptr("2"),
		UseSSL:     matrix.Ptr(true),
	}
}

func (suite *ConfigTestSuite) TestDefaults() {
	cfg, err := matrix.NewConfig(validRecord())
	suite.Require().NoError(err)

	suite.Equal("example.org", cfg.Host())
	suite.Equal("K", cfg.APIKey())
	suite.Equal("2", cfg.APIVersion())
	suite.True(cfg.UseSSL())
	suite.False(cfg.Debug())
	suite.Equal(443, cfg.Port())
	suite.Equal(time.Duration(0), cfg.Timeout())
	suite.Equal("https", cfg.Scheme())
	suite.Equal("https://example.org", cfg.BaseURL())
}

func (suite *ConfigTestSuite) TestPlainHTTPDefaultPort() {
	rec := validRecord()
	rec.UseSSL = matrix.Ptr(false)

	cfg, err := matrix.NewConfig(rec)
	suite.Require().NoError(err)
	suite.Equal(80, cfg.Port())
	suite.Equal("http://example.org", cfg.BaseURL())
}

func (suite *ConfigTestSuite) TestExplicitPort() {
	rec := validRecord()
	rec.UseSSL = matrix.Ptr(false)
	rec.Port = matrix.Ptr(8080)
	rec.Debug = matrix.Ptr(true)
	rec.Timeout = matrix.Ptr(5 * time.Second)

	cfg, err := matrix.NewConfig(rec)
	suite.Require().NoError(err)
	suite.Equal(8080, cfg.Port())
	suite.True(cfg.Debug())
	suite.Equal(5*time.Second, cfg.Timeout())
	suite.Equal("http://example.org:8080", cfg.BaseURL())

	rec.UseSSL = matrix.Ptr(true)
	rec.Port = matrix.Ptr(80)
	cfg, err = matrix.NewConfig(rec)
	suite.Require().NoError(err)
	suite.Equal("https://example.org:80", cfg.BaseURL())
}

func (suite *ConfigTestSuite) TestIPv6Host() {
	rec := validRecord()
	rec.Host = matrix.Ptr("::1")
	rec.Port = matrix.Ptr(8443)

	cfg, err := matrix.NewConfig(rec)
	suite.Require().NoError(err)
	suite.Equal("https://[::1]:8443", cfg.BaseURL())
}

func (suite *ConfigTestSuite) TestMissingFields() {
	_, err := matrix.NewConfig(matrix.Record{Host: matrix.Ptr("example.org")})
	suite.Require().Error(err)
	suite.True(errors.Is(err, matrix.ErrConfiguration))

	var cerr *matrix.ConfigurationError
	suite.Require().True(errors.As(err, &cerr))
	suite.ElementsMatch([]string{"api_key", "api_version", "use_ssl"}, cerr.Fields)
	suite.Contains(err.Error(), "api_key")
}

func (suite *ConfigTestSuite) TestFalseIsNotMissing() {
	rec := validRecord()
	rec.UseSSL = matrix.Ptr(false)
	rec.APIKey = matrix.Ptr("")

	_, err := matrix.NewConfig(rec)
	suite.NoError(err)
}

func (suite *ConfigTestSuite) TestEmptyHost() {
	rec := validRecord()
	rec.Host = matrix.Ptr("")

	_, err := matrix.NewConfig(rec)
	var cerr *matrix.ConfigurationError
	suite.Require().True(errors.As(err, &cerr))
	suite.Equal([]string{"host"}, cerr.Fields)
}

func (suite *ConfigTestSuite) TestInvalidPort() {
	rec := validRecord()
	rec.Port = matrix.Ptr(70000)

	_, err := matrix.NewConfig(rec)
	var cerr *matrix.ConfigurationError
	suite.Require().True(errors.As(err, &cerr))
	suite.Equal([]string{"port"}, cerr.Fields)
}

func (suite *ConfigTestSuite) TestMustConfig() {
	suite.NotPanics(func() { matrix.MustConfig(validRecord()) })
	suite.Panics(func() { matrix.MustConfig(matrix.Record{}) })
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
