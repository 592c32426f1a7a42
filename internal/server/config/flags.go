package config

import (
	"flag"
	"os"
	"strings"

	"github.com/folderforge/folderforge/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-m string   environment mode ("development" or "production")
//	-w string   public base URL
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-o string   S3 public base URL
//	-k string   Stripe secret key
//	-f string   seed fixture path
//	-x string   seed shared secret
//	-y          enable the seed route in production
//	-l string   comma-separated media proxy host allow-list
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-m", "-w", "-u", "-p", "-b", "-g", "-e", "-o", "-k", "-f", "-x", "-y", "-l",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.Environment, "m", config.Environment, "environment mode")
	fs.StringVar(&config.BaseURL, "w", config.BaseURL, "public base URL")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "o", config.S3PublicBaseURL, "S3 public base URL")

	fs.StringVar(&config.StripeSecretKey, "k", config.StripeSecretKey, "Stripe secret key")

	fs.StringVar(&config.SeedFixturePath, "f", config.SeedFixturePath, "seed fixture path")
	fs.StringVar(&config.SeedSecret, "x", config.SeedSecret, "seed shared secret")
	fs.BoolVar(&config.SeedEnabled, "y", config.SeedEnabled, "enable seed route in production")

	proxyHosts := fs.String("l", strings.Join(config.ProxyAllowedHosts, ","), "media proxy allowed hosts (comma-separated)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *proxyHosts != "" {
		config.ProxyAllowedHosts = strings.Split(*proxyHosts, ",")
	}
}
