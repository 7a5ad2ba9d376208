package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartenum/internal/smartenum"
)

var lookupIgnoreCase bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, name := range catalog.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <catalog>",
	Short: "Show members of a catalog in name order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := catalogView(args[0])
		if err != nil {
			return err
		}
		members, err := v.Members()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVALUE\tABBREVIATION")
		for _, m := range members {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Name(), m.Value(), m.Abbreviation())
		}
		return tw.Flush()
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <catalog> <abbreviation>",
	Short: "Resolve a member by abbreviation",
	Long: `Resolves an abbreviation with the catalog's default comparison mode.
With --ignore-case (true or false) the mode is given explicitly.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := catalogView(args[0])
		if err != nil {
			return err
		}
		var m smartenum.Member
		if cmd.Flags().Changed("ignore-case") {
			found := false
			if m, found = v.TryFromAbbreviation(args[1], lookupIgnoreCase); !found {
				if err := v.Init(); err != nil {
					return err
				}
				return fmt.Errorf("%w: abbreviation %q in %s", smartenum.ErrNotFound, args[1], v.Name())
			}
		} else if m, err = v.FromAbbreviation(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", m.Name(), m.Value())
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Initialize every catalog and report failures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		issues := catalog.Validate()
		for _, it := range issues {
			printError(cmd.ErrOrStderr(), it.Catalog, fmt.Errorf("%s: %s", it.Code, it.Message))
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d catalogs failed validation", len(issues))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d catalogs ok\n", len(catalog))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, lookupCmd, validateCmd)
	lookupCmd.Flags().BoolVar(&lookupIgnoreCase, "ignore-case", false, "Compare abbreviations ignoring case")
}

func catalogView(name string) (smartenum.View, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	v, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("catalog %q not found", name)
	}
	return v, nil
}
