package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCmd = &cobra.Command{
	Use:   "show <query> <position>",
	Short: "Print the details of one search result",
	Long: `Show runs the same lookup as search and prints the details of the result
at the given 1-based position. It is shorthand for search --select.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runShow,
}

func init() {
	addFormatFlags(showCmd)

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[len(args)-1])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	query := strings.Join(args[:len(args)-1], " ")
	return runQuery(cmd, cfg, query, pos, formatFromFlags(cmd))
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("position must be a number from 1, got %q", s)
	}
	return n, nil
}
