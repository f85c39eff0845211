// Package command provides CLI command definitions for cfwkv.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cfwkv-go/internal/cli/config"
	"github.com/yndnr/cfwkv-go/internal/cli/connection"
	"github.com/yndnr/cfwkv-go/internal/infra/buildinfo"
)

// Env carries everything an invocation reads from or writes to the
// outside world.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Environ is the environment snapshot taken at program entry.
	Environ map[string]string
	// ClientOptions are applied after the defaults when building the
	// API client.
	ClientOptions []connection.ClientOption
}

const envMetadataKey = "env"

// App creates the CLI application.
func App(env *Env) *cli.App {
	return &cli.App{
		Name:    "cfwkv",
		Usage:   "Manage Cloudflare Workers KV namespaces and keys",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			NamespaceCommand(),
			KeyCommand(),
		},
		Writer:    env.Stdout,
		ErrWriter: env.Stderr,
		Metadata: map[string]any{
			envMetadataKey: env,
		},
		// Run decides the exit code; urfave/cli must not call os.Exit.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// commandFlags returns the flags of a leaf command: its own flags followed
// by a fresh copy of the global flags, so that credentials and output
// options are accepted after the subcommand too.
func commandFlags(own ...cli.Flag) []cli.Flag {
	return append(own, globalFlags()...)
}

// globalFlags returns the global CLI flags.
// Credential flags have no EnvVars: CLOUDFLARE_* variables override
// flags, which urfave/cli's fallback semantics cannot express.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "email",
			Usage: "The email associated with the authentication key. Exporting " + config.EnvAuthEmail + " will override.",
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "The authentication key for Cloudflare access. Exporting " + config.EnvAuthKey + " will override.",
		},
		&cli.StringFlag{
			Name:  "accountId",
			Usage: "The Cloudflare account identifier. Exporting " + config.EnvAccountID + " will override.",
		},
		&cli.StringFlag{
			Name:  "zoneId",
			Usage: "The Cloudflare zone identifier. Exporting " + config.EnvZoneID + " will override.",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default: ~/.cfwkv/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Read CLOUDFLARE_* variables from a dotenv file; the process environment still wins",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml, table",
		},
		&cli.BoolFlag{
			Name:  "no-headers",
			Usage: "Omit the header row of table output",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout (e.g., 30s); 0 waits forever",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log request details to stderr",
		},
	}
}

// Run executes the CLI with args (including the program name) and
// returns the process exit code.
func Run(ctx context.Context, env *Env, args []string) int {
	err := App(env).RunContext(ctx, args)
	return exitCode(env.Stderr, err)
}

// exitCode reports err on stderr and maps it to an exit code.
func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exitErr.ExitCode()
	}

	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(stderr, cfgErr.Error())
		return 1
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

// envFrom retrieves the invocation environment from context.
func envFrom(c *cli.Context) *Env {
	if env, ok := c.App.Metadata[envMetadataKey].(*Env); ok {
		return env
	}
	return &Env{Stdout: os.Stdout, Stderr: os.Stderr}
}
