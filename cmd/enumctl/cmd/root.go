package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"smartenum/internal/builtin"
	"smartenum/internal/reference"
)

var enumsDir string

var rootCmd = &cobra.Command{
	Use:   "enumctl",
	Short: "Inspect abbreviated enum catalogs",
	Long: `enumctl reads the same catalogs as the server (YAML/TOML files plus
built-in families) and resolves members by abbreviation, name or value.

Examples:
  enumctl list
  enumctl show weekday
  enumctl lookup status A
  enumctl lookup status a --ignore-case
  enumctl validate --enums ./reference/enums`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&enumsDir, "enums", "reference/enums", "Path to enums directory")
}

// loadCatalog собирает каталог; отсутствующая папка — только встроенные семейства.
func loadCatalog() (reference.Catalog, error) {
	catalog := make(reference.Catalog)
	if st, err := os.Stat(enumsDir); err == nil && st.IsDir() {
		loaded, err := reference.LoadEnumCatalog(enumsDir)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	if err := builtin.Register(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "error: %s: %v\n", msg, err)
}
