// Command queryc compiles a structured query into dialect-specific SQL.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/compiler"
	"github.com/oxhq/queryc/db"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/internal/config"
	"github.com/oxhq/queryc/primitives"
)

type compileOutput struct {
	CorrelationID string `json:"correlation_id"`
	SQL           string `json:"sql"`
	Params        []any  `json:"params"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "queryc",
		Short: "Compile structured resource/fact queries into SQL",
		Long:  "queryc compiles prefix-notation resource and fact queries into dialect-specific, parameterized SQL.",
	}

	rootCmd.AddCommand(newCompileCmd(), newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompileCmd() *cobra.Command {
	var (
		dataset string
		version string
		file    string
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a query AST (JSON, nested arrays) into SQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			backend, err := buildBackend(cfg)
			if err != nil {
				return err
			}

			raw, err := readInput(file)
			if err != nil {
				return err
			}

			query, err := ast.FromJSON(raw)
			if err != nil {
				return err
			}

			resourceV1, resourceV2, factV2 := compiler.BuildTables(backend)

			var table *dialect.Table
			switch dataset {
			case "resource":
				if version == "v1" {
					table = resourceV1
				} else {
					table = resourceV2
				}
			case "fact":
				table = factV2
			default:
				return fmt.Errorf("queryc: unknown --dataset %q (want resource or fact)", dataset)
			}

			var (
				sql    string
				params []any
			)
			if dataset == "resource" {
				sql, params, err = compiler.ResourceQueryToSQL(table, query)
			} else {
				sql, params, err = compiler.FactQueryToSQL(table, query)
			}
			if err != nil {
				return err
			}

			out := compileOutput{
				CorrelationID: uuid.NewString(),
				SQL:           sql,
				Params:        params,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "resource", "dataset to query: resource or fact")
	cmd.Flags().StringVar(&version, "dialect", "v2", "resource dialect version: v1 or v2 (ignored for --dataset=fact)")
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON query file (default: read from stdin)")

	return cmd
}

// newMigrateCmd wires cfg.Backend/cfg.DSN/cfg.Debug into the matching
// package db Connect* call, so a host can ask queryc to bootstrap the
// five tables its generated SQL addresses before ever compiling a query
// against them. This is the only place in the tree that dials a database;
// the compiler itself never does.
func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bootstrap the schema queryc's generated SQL addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.DSN == "" {
				return fmt.Errorf("queryc: QUERYC_DSN must be set to migrate")
			}

			var (
				gdb *gorm.DB
				err error
			)
			switch cfg.Backend {
			case "postgres":
				gdb, err = db.ConnectPostgres(cfg.DSN, cfg.Debug)
			case "mysql":
				gdb, err = db.ConnectMySQL(cfg.DSN, cfg.Debug)
			case "sqlite":
				gdb, err = db.ConnectSQLite(cfg.DSN, cfg.Debug)
			default:
				return fmt.Errorf("queryc: unknown backend %q", cfg.Backend)
			}
			if err != nil {
				return err
			}

			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "queryc: migrated %s schema at %s\n", cfg.Backend, cfg.DSN)
			return nil
		},
	}
	return cmd
}

func buildBackend(cfg *config.Config) (primitives.Backend, error) {
	switch cfg.Backend {
	case "postgres":
		return primitives.Postgres(), nil
	case "mysql":
		return primitives.MySQL(cfg.DSN)
	case "sqlite":
		return primitives.SQLite(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("queryc: unknown backend %q", cfg.Backend)
	}
}

func readInput(file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	return io.ReadAll(os.Stdin)
}
