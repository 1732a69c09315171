package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"ticketcounter/internal"
	"ticketcounter/internal/calendar"
	"ticketcounter/internal/di"
	"ticketcounter/internal/structures"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flags = &structures.CliFlags{}

	app *internal.App

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ticketcounter",
	Short: "Track daily messages and ticket links against daily goals",
	Long: `ticketcounter keeps a local log of support messages sent and unique
ticket links handled each day, compares them with daily goals, prints
weekly summaries and exports everything to CSV.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = di.InitApp(flags)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return nil
	},
	RunE: runMenu,
}

var addCmd = &cobra.Command{
	Use:   "add [link]",
	Short: "Add a new ticket link (prompts when no link is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

var msgCmd = &cobra.Command{
	Use:   "msg",
	Short: "Log sent messages (+1 by default)",
	Args:  cobra.NoArgs,
	RunE:  runMsg,
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "View today's stats",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the report for the last 7 days",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to CSV (optional cache clear)",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the classic interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Restore the local cache from an archived snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var (
	msgCount int
	weekAsOf string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", defaultConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "Enable debug logging")

	msgCmd.Flags().IntVar(&msgCount, "count", 1, "Number of messages to add")
	weekCmd.Flags().StringVar(&weekAsOf, "as-of", "", "Last day of the report (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(addCmd, msgCmd, todayCmd, weekCmd, exportCmd, menuCmd, restoreCmd)
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and releases the app whether or not the
// command failed.
func run() error {
	defer closeApp()
	return rootCmd.Execute()
}

func closeApp() {
	if app != nil {
		app.Close()
		app = nil
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ticketcounter", "config.yaml")
}

func runAdd(cmd *cobra.Command, args []string) error {
	link := ""
	if len(args) == 1 {
		link = args[0]
	}
	return app.Controller(stdin, stdout).AddTicket(link)
}

func runMsg(cmd *cobra.Command, args []string) error {
	return app.Controller(stdin, stdout).LogMessages(msgCount)
}

func runToday(cmd *cobra.Command, args []string) error {
	app.Controller(stdin, stdout).Today()
	return nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	asOf := app.Service.Now()
	if weekAsOf != "" {
		t, err := calendar.ParseKey(weekAsOf)
		if err != nil {
			return err
		}
		asOf = t
	}
	app.Controller(stdin, stdout).Week(asOf)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	return app.Controller(stdin, stdout).Export()
}

func runMenu(cmd *cobra.Command, args []string) error {
	return app.Controller(stdin, stdout).Menu()
}

func runRestore(cmd *cobra.Command, args []string) error {
	return app.Controller(stdin, stdout).Restore(args[0])
}
