package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the account API
//	-f string   path to the local state database
//	-l string   log level (debug, info, warn, error)
//
// Arguments are pre-filtered so flags owned by other components (like the
// -c/-config pair handled in json.go) do not trip the parse.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the account API")
	fs.StringVar(&cfg.DatabaseFilePath, "f", cfg.DatabaseFilePath, "path to the local state database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
