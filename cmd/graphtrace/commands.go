// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphtrace/config"
	"github.com/katalvlaran/graphtrace/logging"
	"github.com/katalvlaran/graphtrace/pipeline"
)

// rootFlags are inherited by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// runFlags are shared by bfs and dfs.
type runFlags struct {
	nodes          string
	links          string
	root           string
	out            string
	render         bool
	markedOnly     bool
	classification string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "graphtrace",
		Short: "Shortest-path trees and DFS edge classification over CSV graphs",
		Long: `graphtrace reads a node file (label,id,...) and a link file (tail,head,...),
runs a traversal from the node carrying the root label and writes the results
as CSV, plus an optional Graphviz drawing of the decorated graph.

Settings resolve as: defaults, --config YAML, .env, GRAPHTRACE_* variables,
then command-line flags.

Examples:
  graphtrace bfs --root Ti --out turnin
  graphtrace dfs --root Ti --classification classical --render --marked-only`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rf.configPath, "config", "",
		"YAML configuration file")
	cmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&rf.logFormat, "log-format", "",
		"Log format: console, json, auto")

	cmd.AddCommand(
		newRunCmd(rf, config.ModeBFS, "Breadth-first shortest-path tree from the root"),
		newRunCmd(rf, config.ModeDFS, "Depth-first forest with discovery/finish times and edge kinds"),
	)

	return cmd
}

func newRunCmd(rf *rootFlags, mode, short string) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   mode,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, rf, f, mode)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.nodes, "nodes", "", "Nodes CSV path")
	flags.StringVar(&f.links, "links", "", "Links CSV path")
	flags.StringVar(&f.root, "root", "", "Label of the root node")
	flags.StringVar(&f.out, "out", "", "Output directory")
	flags.BoolVar(&f.render, "render", false, "Write graph.gv")
	flags.BoolVar(&f.markedOnly, "marked-only", false, "Draw only decorated edges")
	if mode == config.ModeDFS {
		flags.StringVar(&f.classification, "classification", "",
			"Non-tree edge rule: observed, classical")
	}

	return cmd
}

func run(cmd *cobra.Command, rf *rootFlags, f *runFlags, mode string) error {
	cfg, err := config.Resolve(rf.configPath)
	if err != nil {
		return err
	}
	cfg.Mode = mode
	applyFlags(cmd, rf, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log.Debug("configuration resolved", zap.Any("config", cfg))

	rep, err := pipeline.Run(cmd.Context(), &cfg, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s root=%s nodes=%d edges=%d reached=%d\n",
		rep.Mode, rep.Root, rep.Nodes, rep.Edges, rep.Reached)
	for _, path := range rep.Files {
		fmt.Fprintln(out, path)
	}

	return nil
}

// applyFlags copies explicitly set flags over the resolved configuration.
func applyFlags(cmd *cobra.Command, rf *rootFlags, f *runFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.Log.Level = rf.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = rf.logFormat
	}
	if changed("nodes") {
		cfg.Nodes = f.nodes
	}
	if changed("links") {
		cfg.Links = f.links
	}
	if changed("root") {
		cfg.Root = f.root
	}
	if changed("out") {
		cfg.OutDir = f.out
	}
	if changed("render") {
		cfg.Render = f.render
	}
	if changed("marked-only") {
		cfg.MarkedOnly = f.markedOnly
	}
	if changed("classification") {
		cfg.Classification = f.classification
	}
}
