package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-m", "production",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
				"-k", "sk_test_123", "-x", "seedsecret", "-l", "cdn.example.com,img.example.com",
			},
			expected: &Config{
				EndpointAddrHTTP:  "127.0.0.1:9090",
				DatabaseDSN:       "db",
				SecretKey:         "secret",
				Environment:       "production",
				S3RootUser:        "user",
				S3RootPassword:    "password",
				S3Bucket:          "bucket",
				S3Region:          "us-west-1",
				S3BaseEndpoint:    "http://endpoint",
				StripeSecretKey:   "sk_test_123",
				SeedSecret:        "seedsecret",
				ProxyAllowedHosts: []string{"cdn.example.com", "img.example.com"},
			},
		},
		{
			name: "defaults survive when flags absent",
			args: []string{"cmd"},
			expected: func() *Config {
				c := &Config{}
				c.LoadDefaults()
				return c
			}(),
		},
	}

	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			c := &Config{}
			if tt.name == "defaults survive when flags absent" {
				c.LoadDefaults()
			} else {
				c.ProxyAllowedHosts = []string{"127.0.0.1"}
			}
			parseFlags(c)

			assert.Equal(t, tt.expected.EndpointAddrHTTP, c.EndpointAddrHTTP)
			assert.Equal(t, tt.expected.DatabaseDSN, c.DatabaseDSN)
			assert.Equal(t, tt.expected.SecretKey, c.SecretKey)
			assert.Equal(t, tt.expected.Environment, c.Environment)
			assert.Equal(t, tt.expected.S3Bucket, c.S3Bucket)
			assert.Equal(t, tt.expected.StripeSecretKey, c.StripeSecretKey)
			assert.Equal(t, tt.expected.SeedSecret, c.SeedSecret)
			assert.Equal(t, tt.expected.ProxyAllowedHosts, c.ProxyAllowedHosts)
		})
	}
}
