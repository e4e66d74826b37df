package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bestiary/internal/session"
	"github.com/pdiddy/bestiary/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Look an animal up locally, then online",
	Long: `Search matches the query as a case-insensitive substring of the names in
the local dataset. When nothing matches, the online animals API is asked
instead. An empty query lists the whole local dataset.

Results are printed as a numbered list. Use --select to print the details
of one position.`,
	RunE: runSearchCmd,
}

func init() {
	searchCmd.Flags().Int("select", 0, "print the details of this result position (1-based)")
	addFormatFlags(searchCmd)

	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	sel, _ := cmd.Flags().GetInt("select")
	if sel < 0 {
		return fmt.Errorf("--select must be a positive position, got %d", sel)
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	return runQuery(cmd, cfg, strings.Join(args, " "), sel, formatFromFlags(cmd))
}

// runQuery performs one search and prints it. sel is 1-based; zero prints
// the name list. Not finding anything is reported but is not a failure.
func runQuery(cmd *cobra.Command, cfg types.Config, query string, sel int, format outputFormat) error {
	stderr := cmd.ErrOrStderr()
	sess, startup := newSession(cfg, session.WithRemoteNotice(func(n session.Notice) {
		fmt.Fprintln(stderr, n)
	}))
	if startup != nil {
		fmt.Fprintln(stderr, startup)
	}

	it := sess.Search(cmd.Context(), query)
	if n, ok := it.Notice(); ok {
		if it.State == session.NotFound {
			fmt.Fprintln(stderr, n)
			return nil
		}
		return errors.New(n.String())
	}

	out := searchOutput{
		Query:      query,
		Provenance: it.Set.Provenance(),
		Names:      it.Set.Names(),
	}
	if sel > 0 {
		dm, ok := it.Set.Project(sel - 1)
		if !ok {
			return fmt.Errorf("position %d out of range: %d result(s)", sel, it.Set.Len())
		}
		out.Selected = &dm
	}
	return writeOutput(cmd.OutOrStdout(), format, out, nil)
}
