// Package command provides CLI command definitions for cfwkv.
package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/cfwkv-go/internal/cli/config"
	"github.com/yndnr/cfwkv-go/internal/cli/connection"
	"github.com/yndnr/cfwkv-go/internal/cli/dispatch"
	"github.com/yndnr/cfwkv-go/internal/cli/output"
	"github.com/yndnr/cfwkv-go/internal/telemetry/logger"
)

// requestBuilder builds the single request of a command.
type requestBuilder func() (*connection.Request, error)

// invoke runs the shared pipeline: resolve and validate credentials,
// build the request, dispatch it and print the rendered response.
// A non-200 status is returned as a cli.ExitCoder carrying code 1.
func invoke(c *cli.Context, build requestBuilder) error {
	env := envFrom(c)

	cfg, err := resolveConfig(c, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	formatOpts := []output.Option{output.WithNoHeaders(cfg.NoHeaders)}

	req, err := build()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: "text", Output: env.Stderr})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log = log.With("command", c.Command.FullName())

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, log)
	ctx = logger.WithRequestID(ctx, ulid.Make().String())

	logger.L(ctx).Debug("credentials resolved",
		"email", cfg.Email,
		"account", cfg.AccountID,
		"output", string(format),
	)

	opts := append([]connection.ClientOption{connection.WithTimeout(cfg.Timeout)}, env.ClientOptions...)
	client := connection.NewHTTPClient(cfg.Email, cfg.Key, cfg.AccountID, opts...)

	outcome, err := dispatch.New(client, format, formatOpts...).Dispatch(ctx, req)
	if len(outcome.Output) > 0 {
		if _, werr := env.Stdout.Write(outcome.Output); werr != nil {
			return fmt.Errorf("write output: %w", werr)
		}
	}
	if err != nil {
		return err
	}

	if outcome.ExitCode != dispatch.ExitOK {
		logger.L(ctx).Debug("request unsuccessful", "status", outcome.StatusCode)
		return cli.Exit("", outcome.ExitCode)
	}
	return nil
}

// resolveConfig merges config file, flags and the environment snapshot.
func resolveConfig(c *cli.Context, env *Env) (*config.Config, error) {
	environ := env.Environ
	if path := lineageString(c, "env-file"); path != "" {
		merged, err := config.LoadEnvFile(path, environ)
		if err != nil {
			return nil, err
		}
		environ = merged
	}

	return config.Resolve(config.Sources{
		File:  lineageString(c, "config"),
		Flags: flagOverrides(c),
		Env:   environ,
	})
}

// flagOverrides collects the global flags the user actually set, before
// or after the subcommand.
func flagOverrides(c *cli.Context) map[string]any {
	flags := make(map[string]any)

	stringFlags := map[string]string{
		"email":     config.KeyEmail,
		"key":       config.KeyKey,
		"accountId": config.KeyAccountID,
		"zoneId":    config.KeyZoneID,
		"output":    config.KeyOutput,
	}
	for flag, key := range stringFlags {
		if ctx := setIn(c, flag); ctx != nil {
			flags[key] = ctx.String(flag)
		}
	}

	if ctx := setIn(c, "timeout"); ctx != nil {
		flags[config.KeyTimeout] = ctx.Duration("timeout")
	}
	if ctx := setIn(c, "no-headers"); ctx != nil {
		flags[config.KeyNoHeaders] = ctx.Bool("no-headers")
	}
	if ctx := setIn(c, "verbose"); ctx != nil && ctx.Bool("verbose") {
		flags[config.KeyLogLevel] = "debug"
	}

	return flags
}

// setIn returns the nearest context in c's lineage where flag was set,
// or nil. Global flags exist on both the app and every leaf command.
func setIn(c *cli.Context, flag string) *cli.Context {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(flag) {
			return ctx
		}
	}
	return nil
}

// lineageString returns the value of a string flag set anywhere in c's
// lineage, or "".
func lineageString(c *cli.Context, flag string) string {
	if ctx := setIn(c, flag); ctx != nil {
		return ctx.String(flag)
	}
	return ""
}

// requireArgs returns exactly len(names) positional arguments.
func requireArgs(c *cli.Context, names ...string) ([]string, error) {
	args, err := positionalArgs(c)
	if err != nil {
		return nil, err
	}
	if len(args) < len(names) {
		return nil, fmt.Errorf("%s required (usage: %s %s)",
			names[len(args)], c.Command.HelpName, strings.Join(names, " "))
	}
	if len(args) > len(names) {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(args[len(names):], " "))
	}
	return args, nil
}

// positionalArgs returns the positional arguments of c. The flag parser
// stops at the first positional argument, so flags of the command that
// follow one are applied here. Tokens after "--" are always positional.
func positionalArgs(c *cli.Context) ([]string, error) {
	rest := c.Args().Slice()
	var args []string

	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if tok == "--" {
			return append(args, rest[i+1:]...), nil
		}

		f, value, hasValue := commandFlag(c.Command, tok)
		if f == nil {
			args = append(args, tok)
			continue
		}
		if f == cli.HelpFlag {
			cli.HelpPrinter(c.App.Writer, cli.CommandHelpTemplate, c.Command)
			return nil, cli.Exit("", 0)
		}

		switch _, isBool := f.(*cli.BoolFlag); {
		case hasValue:
		case isBool:
			value = "true"
		case i+1 < len(rest):
			i++
			value = rest[i]
		default:
			return nil, fmt.Errorf("flag needs an argument: %s", tok)
		}

		// Aliases are only synchronized during parsing; set the canonical name.
		if err := c.Set(f.Names()[0], value); err != nil {
			return nil, fmt.Errorf("invalid value %q for flag %s: %w", value, tok, err)
		}
	}

	return args, nil
}

// commandFlag matches tok ("-name", "--name" or "--name=value") against
// the flags of cmd. Unknown names are not flags, so values such as "-1"
// stay positional.
func commandFlag(cmd *cli.Command, tok string) (cli.Flag, string, bool) {
	if cmd == nil || len(tok) < 2 || tok[0] != '-' {
		return nil, "", false
	}

	name := strings.TrimPrefix(tok[1:], "-")
	name, value, hasValue := strings.Cut(name, "=")
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return f, value, hasValue
			}
		}
	}
	return nil, "", false
}

// intOption parses the leading integer of a numeric option, so "12abc"
// is 12. Absent, non-numeric and zero values fall back to def.
func intOption(c *cli.Context, name string, def int) int {
	s := strings.TrimSpace(c.String(name))

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return def
	}
	return n
}
