package main

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/santa-exe/internal/config"
)

var catalogValidate bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print or validate the response catalog",
	Long: `Prints the effective catalog as YAML: the built-in lines merged with the file at
$SANTA_CATALOG_PATH, if set. With --validate it only checks that every key the menu and
scenarios reference has at least one response.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runCatalog(cmd.OutOrStdout(), cfg.Catalog, catalogValidate)
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogValidate, "validate", false, "validate only, print nothing but the verdict")
}

func runCatalog(out io.Writer, cfg config.CatalogConfig, validateOnly bool) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if validateOnly {
		if err := cat.Validate(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "catalog ok: %d keys, %d scenarios, %d actions\n",
			len(cat.Keys()), len(cat.Scenarios()), len(cat.Actions()))
		return err
	}

	data, err := cat.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
