// Command campushire-admin is an operator CLI for inspecting the
// job-board backend through the same client the web tier uses.
// A backend-issued access token with admin role must be supplied via
// the -token flag or the ADMIN_ACCESS_TOKEN environment variable.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/campushire/campushire-web/config"
	"github.com/campushire/campushire-web/internal/bootstrap"
	"github.com/campushire/campushire-web/internal/ports"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Config   config.AppConfig
	Services bootstrap.ServiceContainer
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1)
	}

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{Config: &cfg, Logger: logger})
	if err != nil {
		logger.ErrorContext(context.Background(), "build services", "error", err)
		os.Exit(1)
	}

	cmdCtx := &commandContext{
		Ctx:      context.Background(),
		Logger:   logger,
		Config:   cfg,
		Services: services,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"list-users": {
			name:        "list-users",
			description: "List platform accounts",
			run:         runListUsers,
		},
		"list-jobs": {
			name:        "list-jobs",
			description: "List job postings",
			run:         runListJobs,
		},
		"query": {
			name:        "query",
			description: "Run a JMESPath expression over a backend resource",
			run:         runQuery,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stderr, "usage: campushire-admin <command> [flags]\n\ncommands:\n"); err != nil {
		return err
	}

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	for _, name := range names {
		if err := writef(tw, "  %s\t%s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// credentialFromFlagOrEnv resolves the admin access token.
func credentialFromFlagOrEnv(flagValue string) (ports.Credential, error) {
	if flagValue != "" {
		return ports.Credential(flagValue), nil
	}
	if env := os.Getenv("ADMIN_ACCESS_TOKEN"); env != "" {
		return ports.Credential(env), nil
	}
	return "", fmt.Errorf("an access token is required (use -token or ADMIN_ACCESS_TOKEN)")
}
