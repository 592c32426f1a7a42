package config

import (
	"encoding/json"
	"os"

	"github.com/folderforge/folderforge/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, non-empty fields are copied
// into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrHTTP  string   `json:"endpoint_addr_http"`
	DatabaseDSN       string   `json:"database_dsn"`
	SecretKey         string   `json:"secret_key"`
	Environment       string   `json:"environment"`
	BaseURL           string   `json:"base_url"`
	S3RootUser        string   `json:"s3_root_user"`
	S3RootPassword    string   `json:"s3_root_password"`
	S3Bucket          string   `json:"s3_bucket"`
	S3Region          string   `json:"s3_region"`
	S3BaseEndpoint    string   `json:"s3_base_endpoint"`
	S3PublicBaseURL   string   `json:"s3_public_base_url"`
	StripeSecretKey   string   `json:"stripe_secret_key"`
	SeedEnabled       *bool    `json:"seed_enabled"`
	SeedSecret        string   `json:"seed_secret"`
	SeedFixturePath   string   `json:"seed_fixture_path"`
	ProxyAllowedHosts []string `json:"proxy_allowed_hosts"`
	ProxyCacheEntries int      `json:"proxy_cache_entries"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics. Only fields present in the file
// override the defaults; the caller is expected to apply command-line
// flags afterwards.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.Environment != "" {
		config.Environment = c.Environment
	}
	if c.BaseURL != "" {
		config.BaseURL = c.BaseURL
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
	if c.S3PublicBaseURL != "" {
		config.S3PublicBaseURL = c.S3PublicBaseURL
	}
	if c.StripeSecretKey != "" {
		config.StripeSecretKey = c.StripeSecretKey
	}
	if c.SeedEnabled != nil {
		config.SeedEnabled = *c.SeedEnabled
	}
	if c.SeedSecret != "" {
		config.SeedSecret = c.SeedSecret
	}
	if c.SeedFixturePath != "" {
		config.SeedFixturePath = c.SeedFixturePath
	}
	if len(c.ProxyAllowedHosts) > 0 {
		config.ProxyAllowedHosts = c.ProxyAllowedHosts
	}
	if c.ProxyCacheEntries > 0 {
		config.ProxyCacheEntries = c.ProxyCacheEntries
	}
}
