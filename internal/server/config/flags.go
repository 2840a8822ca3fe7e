package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/blogadmin/internal/flagx"
)

// parseFlags overlays short command-line flags:
//
//	-a string     HTTP bind address (e.g. ":8080")
//	-t duration   token lifetime (e.g. "30m")
//	-l duration   simulated latency per call
//	-s bool       load seed data (use -s=false to start empty)
//	-v string     log level
//	-f string     log format, json or text
//	-o string     comma-separated CORS origins
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-s", "-v", "-f", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.DurationVar(&config.TokenTTL, "t", config.TokenTTL, "token lifetime")
	fs.DurationVar(&config.Latency, "l", config.Latency, "simulated latency per call")
	fs.BoolVar(&config.SeedData, "s", config.SeedData, "load seed data")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AllowedOrigins = splitList(*origins)
}
