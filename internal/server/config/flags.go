package config

import (
	"flag"
	"os"

	"github.com/avoronovs/partyplan/internal/flagx"
	"github.com/avoronovs/partyplan/internal/server/auth"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t string   token TTL in "<n>h"/"<n>d" form
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	ttl := fs.String("t", "", "token TTL (e.g. 24h, 7d)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *ttl != "" {
		config.TokenTTL = auth.ParseTTL(*ttl)
	}
}
