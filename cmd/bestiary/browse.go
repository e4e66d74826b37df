// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/bestiary/internal/session"
	"github.com/pdiddy/bestiary/internal/ui"
)

const browseLogFile = "bestiary-debug.log"

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse animals interactively",
	Long: `Browse opens the interactive encyclopedia: a search line, the list of
result names and the details of the selected animal. Enter searches, tab
switches between the search line and the list, esc quits.

The terminal is taken over while browsing, so with --debug the log goes to
` + browseLogFile + ` instead of stderr.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if viper.GetBool("debug") {
		l, err := newLogger(true, browseLogFile)
		if err != nil {
			return err
		}
		logger = l
	} else {
		logger = zap.NewNop()
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	// Sends never block a search.
	notices := make(chan session.Notice, 4)
	sess, startup := newSession(cfg, session.WithRemoteNotice(func(n session.Notice) {
		select {
		case notices <- n:
		default:
		}
	}))

	opts := []ui.Option{ui.WithNotices(notices)}
	if startup != nil {
		opts = append(opts, ui.WithStartupNotice(*startup))
	}
	return ui.Run(cmd.Context(), sess, opts...)
}
