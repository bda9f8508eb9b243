// Package main runs the jobsheet terminal spreadsheet and its file chores.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jobsheet"
	nt "jobsheet/entity"
	"jobsheet/store/duck"
	"jobsheet/util"
)

const fileMode = 0644

var (
	version string

	cfgPath string
	logPath string

	cfg    *jobsheet.Config
	lgr    *sabot.Sabot
	logOut io.Writer
	ctx    context.Context
)

func main() {

	rootCmd := &cobra.Command{
		Use:               "jobsheet [file]",
		Short:             "Terminal spreadsheet for job requests",
		Long:              "jobsheet edits job requests in a grid, importing and exporting csv, json, xlsx and parquet.",
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
		RunE:              runSheet,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "yaml config file")
	rootCmd.PersistentFlags().StringVarP(&logPath, "log", "l", "", "log file (overrides config)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert rows between formats, picked by extension",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "summary <file>",
		Short: "Count rows by status and priority",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "sample-config <path>",
		Short: "Write a sample config unless one is there already",
		Args:  cobra.ExactArgs(1),
		RunE:  runSampleConfig,
	})

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) (err error) {

	cfg = jobsheet.DefaultConfig()
	if cfgPath != "" {
		err = util.LoadConfig(cfg, cfgPath)
		if err != nil {
			return
		}
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	logOut = util.OpenLog(cfg.LogFile, fileMode)
	lgr = &sabot.Sabot{Writer: logOut}
	ctx = lgr.WithFields(context.Background(), "app_id", "jobsheet", "version", version, "command", cmd.Name())

	lgr.Info(ctx, "starting", "config", cfgPath, "args", args)
	return
}

func teardown(cmd *cobra.Command, args []string) {

	lgr.Info(ctx, "stopping")
	util.CloseLog(logOut)
}

func runSheet(cmd *cobra.Command, args []string) (err error) {

	model := cfg.NewModel(ctx, lgr)
	if len(args) == 1 {
		model = model.WithImport(args[0])
	}

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "sheet failed", err)
		err = errors.Wrapf(err, "failed to run sheet")
	}
	return
}

func runConvert(cmd *cobra.Command, args []string) (err error) {

	result, err := jobsheet.ReadRows(ctx, lgr, args[0])
	if err != nil {
		return
	}

	for _, problem := range result.Problems {
		lgr.Error(ctx, "skipped line", problem, "path", args[0], "line", problem.Line)
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", problem.Error())
	}

	err = jobsheet.WriteRows(ctx, lgr, args[1], result.Rows)
	if err != nil {
		return
	}

	lgr.Info(ctx, "converted", "in", args[0], "out", args[1], "count", len(result.Rows))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(result.Rows), args[1])
	return
}

func runSummary(cmd *cobra.Command, args []string) (err error) {

	result, err := jobsheet.ReadRows(ctx, lgr, args[0])
	if err != nil {
		return
	}

	dk, err := duck.New(lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(ctx, result.Rows)
	if err != nil {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d rows\n", len(result.Rows))

	for _, key := range []nt.Key{nt.Status, nt.Priority} {
		var counts []duck.Count
		counts, err = dk.Counts(ctx, key)
		if err != nil {
			return
		}

		fmt.Fprintf(out, "\n%s\n", nt.Columns[nt.ColumnIndex(key)].Label)
		for _, count := range counts {
			fmt.Fprintf(out, "  %-16s %d\n", display(count.Value), count.Count)
		}
	}
	return
}

func runSampleConfig(cmd *cobra.Command, args []string) (err error) {

	err = util.SampleConfig(jobsheet.DefaultConfig(), args[0], fileMode)
	if err != nil {
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "sample config at %s\n", args[0])
	return
}

func display(value string) string {
	if value == "" {
		return "(blank)"
	}
	return value
}
