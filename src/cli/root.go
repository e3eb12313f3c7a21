// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/serxoz/odoors/src/internal/helper/posix"
	"github.com/serxoz/odoors/src/logger"
	"github.com/serxoz/odoors/src/odoo"
	"github.com/spf13/cobra"
)

// ErrCredentialsRequired is returned by commands that need an authenticated
// session when no login/password is available from flags or the config file.
var ErrCredentialsRequired = errors.New("login and password are required, set them via flags or config file")

// app carries the resolved configuration and output sinks shared by all
// subcommands of one Execute run.
type app struct {
	version string
	log     logger.Logger

	configPath string
	flags      Config
	jsonOut    bool

	config *Config
}

// Execute runs the root command against ctx and returns the first error the
// invoked subcommand produced. The passed logger receives all human-readable
// output; data output goes to the command's stdout.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	a := &app{version: version, log: log}

	exe := posix.GetExecutableName()
	rootCmd := &cobra.Command{
		Use:           exe,
		Short:         "Typed Odoo JSON-RPC client",
		Long:          "odoors talks to an Odoo server over its JSON-RPC interface: session login,\nmodel search/read/create/write, and raw method calls.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// In --json mode diagnostics must stay machine-readable too.
			if a.jsonOut {
				a.log = logger.NewJSONLogger(cmd.ErrOrStderr(), false)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (YAML or JSON)")
	pf.StringVar(&a.flags.Host, "host", "", "base URL of the remote server")
	pf.StringVar(&a.flags.Database, "database", "", "database name")
	pf.StringVar(&a.flags.Login, "login", "", "user login")
	pf.StringVar(&a.flags.Password, "password", "", "user password")
	pf.IntVar(&a.flags.Timeout, "timeout", 0, "request timeout in seconds")
	pf.BoolVar(&a.jsonOut, "json", false, "emit data output as JSON")

	rootCmd.AddCommand(
		a.startCmd(),
		a.loginCmd(),
		a.searchReadCmd(),
		a.callCmd(),
		a.createCmd(),
		a.writeCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// resolveConfig merges the config file with flag overrides. Flags win over
// file values, which win over defaults. The result is cached for the run.
func (a *app) resolveConfig(cmd *cobra.Command) (*Config, error) {
	if a.config != nil {
		return a.config, nil
	}

	config, err := loadConfig(a.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		config.Host = a.flags.Host
	}
	if flags.Changed("database") {
		config.Database = a.flags.Database
	}
	if flags.Changed("login") {
		config.Login = a.flags.Login
	}
	if flags.Changed("password") {
		config.Password = a.flags.Password
	}
	if flags.Changed("timeout") && a.flags.Timeout > 0 {
		config.Timeout = a.flags.Timeout
	}

	if config.Host == "" {
		return nil, errors.New("host is required, set it via --host or config file")
	}

	a.config = config
	return config, nil
}

// newClient builds an unauthenticated client from the resolved configuration.
func (a *app) newClient(cmd *cobra.Command) (*odoo.Client, *Config, error) {
	config, err := a.resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	client := odoo.New(config.Host, config.Database)
	transport := odoo.NewHTTPTransport(a.version)
	transport.Timeout = time.Duration(config.Timeout) * time.Second
	client.SetTransport(transport)

	return client, config, nil
}

// newAuthenticatedClient builds a client and logs it in with the configured
// credentials.
func (a *app) newAuthenticatedClient(cmd *cobra.Command) (*odoo.Client, error) {
	client, config, err := a.newClient(cmd)
	if err != nil {
		return nil, err
	}
	if config.Login == "" || config.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if _, err := client.Login(cmd.Context(), config.Login, config.Password); err != nil {
		return nil, err
	}
	return client, nil
}

// emitJSON marshals v and writes it to the command's stdout as one line.
func emitJSON(cmd *cobra.Command, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// startCmd returns the bootstrap discovery subcommand.
func (a *app) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Fetch bootstrap hints from a demo server",
		Long:  "Calls the common/start discovery method and prints the returned key/value\nhints (suggested host, database, user, password) for sandbox sessions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			values, err := client.Start(cmd.Context())
			if err != nil {
				return err
			}

			if a.jsonOut {
				return emitJSON(cmd, values)
			}
			a.log.Println(RenderValues(values))
			return nil
		},
	}
}

// loginCmd returns the authentication subcommand.
func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print the user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newAuthenticatedClient(cmd)
			if err != nil {
				return err
			}

			uid, _ := client.UID()
			if a.jsonOut {
				return emitJSON(cmd, map[string]any{"uid": uid})
			}
			a.log.Printf("Logged in to %s as uid %d", client.Database(), uid)
			return nil
		},
	}
}

// searchReadCmd returns the search-read subcommand.
func (a *app) searchReadCmd() *cobra.Command {
	var (
		domainJSON string
		fieldsCSV  string
		limit      uint32
		offset     uint32
	)

	cmd := &cobra.Command{
		Use:   "search-read MODEL",
		Short: "Filter and read records of a model in one round trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newAuthenticatedClient(cmd)
			if err != nil {
				return err
			}

			var domain any
			if err := json.Unmarshal([]byte(domainJSON), &domain); err != nil {
				return fmt.Errorf("invalid --domain: %w", err)
			}

			opts := odoo.SearchOptions{Fields: splitFields(fieldsCSV)}
			if cmd.Flags().Changed("limit") {
				opts.Limit = odoo.Uint32(limit)
			}
			if cmd.Flags().Changed("offset") {
				opts.Offset = odoo.Uint32(offset)
			}

			var records []map[string]any
			if err := client.SearchRead(cmd.Context(), args[0], domain, opts, &records); err != nil {
				return err
			}

			if a.jsonOut {
				return emitJSON(cmd, records)
			}
			a.log.Println(RenderRecords(records, opts.Fields))
			return nil
		},
	}

	cmd.Flags().StringVar(&domainJSON, "domain", "[]", "filter expression as a JSON array")
	cmd.Flags().StringVar(&fieldsCSV, "fields", "", "comma-separated field names (default: all)")
	cmd.Flags().Uint32Var(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().Uint32Var(&offset, "offset", 0, "number of records to skip")
	return cmd
}

// callCmd returns the raw method-call subcommand.
func (a *app) callCmd() *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "call MODEL METHOD",
		Short: "Invoke an arbitrary model method",
		Long:  "Generic escape hatch: invokes METHOD on MODEL through the object dispatcher\nwith --args as the positional argument list, and prints the raw result.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newAuthenticatedClient(cmd)
			if err != nil {
				return err
			}

			var callArgs any
			if err := json.Unmarshal([]byte(argsJSON), &callArgs); err != nil {
				return fmt.Errorf("invalid --args: %w", err)
			}

			var result json.RawMessage
			if err := client.Call(cmd.Context(), args[0], args[1], callArgs, &result); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "[]", "positional arguments as a JSON array")
	return cmd
}

// createCmd returns the record-creation subcommand.
func (a *app) createCmd() *cobra.Command {
	var valuesJSON string

	cmd := &cobra.Command{
		Use:   "create MODEL",
		Short: "Create a record and print its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newAuthenticatedClient(cmd)
			if err != nil {
				return err
			}

			values, err := parseValues(valuesJSON)
			if err != nil {
				return err
			}

			id, err := client.Create(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return emitJSON(cmd, map[string]any{"id": id})
			}
			a.log.Printf("Created %s record %d", args[0], id)
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesJSON, "values", "", "field values as a JSON object (required)")
	cmd.MarkFlagRequired("values")
	return cmd
}

// writeCmd returns the record-update subcommand.
func (a *app) writeCmd() *cobra.Command {
	var valuesJSON string

	cmd := &cobra.Command{
		Use:   "write MODEL ID[,ID...]",
		Short: "Update records and print the success flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newAuthenticatedClient(cmd)
			if err != nil {
				return err
			}

			ids, err := parseIDs(args[1])
			if err != nil {
				return err
			}

			values, err := parseValues(valuesJSON)
			if err != nil {
				return err
			}

			ok, err := client.Write(cmd.Context(), args[0], ids, values)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return emitJSON(cmd, map[string]any{"success": ok})
			}
			a.log.Printf("Write to %s %v: %t", args[0], ids, ok)
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesJSON, "values", "", "field values as a JSON object (required)")
	cmd.MarkFlagRequired("values")
	return cmd
}

// splitFields parses a comma-separated field list, dropping empty entries.
func splitFields(csv string) []string {
	if csv == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(csv, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// parseIDs parses a comma-separated id list into int64s.
func parseIDs(csv string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid record id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("at least one record id is required")
	}
	return ids, nil
}

// parseValues parses the --values JSON object.
func parseValues(valuesJSON string) (map[string]any, error) {
	values := make(map[string]any)
	if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
		return nil, fmt.Errorf("invalid --values: %w", err)
	}
	return values, nil
}
