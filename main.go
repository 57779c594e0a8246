// Copyright 2026 Redpanda Data, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/redpanda-data/common-go/licenseupdater/internal/config"
	"github.com/redpanda-data/common-go/licenseupdater/internal/log"
	"github.com/redpanda-data/common-go/licenseupdater/internal/output"
	"github.com/redpanda-data/common-go/licenseupdater/internal/updater"
	"github.com/redpanda-data/common-go/licenseupdater/templates"
)

type options struct {
	configFile        string
	check             bool
	updateDescription bool
	updateCopyright   bool
	updateLicense     bool
	addMissing        bool
	logLevel          string
	concurrency       int
}

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "licenseupdater",
		Long:          "licenseupdater keeps the description, copyright and license header of source files up to date.",
		Example:       "licenseupdater --config .licenseupdater.yaml --update-copyright [--check]",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), opts.logLevel)
			return run(ctx, cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: info, debug, verbose or trace.")
	cmd.Flags().StringVar(&opts.configFile, "config", ".licenseupdater.yaml", "Path to config file.")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Check diffs and exit instead of writing files.")
	cmd.Flags().BoolVar(&opts.updateDescription, "update-description", false, "Allow replacing the description of existing headers.")
	cmd.Flags().BoolVar(&opts.updateCopyright, "update-copyright", false, "Allow replacing the copyright of existing headers.")
	cmd.Flags().BoolVar(&opts.updateLicense, "update-license", false, "Allow replacing the license of existing headers.")
	cmd.Flags().BoolVar(&opts.addMissing, "add-missing", false, "Add a header to matched files that have none.")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Number of files processed at once, defaults to GOMAXPROCS.")

	cmd.AddCommand(renderCmd())

	return cmd
}

func withLogger(ctx context.Context, level string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.New(os.Stderr, log.LevelFromString(level))
	log.SetGlobals(logger)
	return log.IntoContext(ctx, logger)
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	renderer := templates.NewRenderer()

	cfg, err := config.LoadWithEnv(opts.configFile, renderer)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("update-description") {
		cfg.UpdateDescription = opts.updateDescription
	}
	if flags.Changed("update-copyright") {
		cfg.UpdateCopyright = opts.updateCopyright
	}
	if flags.Changed("update-license") {
		cfg.UpdateLicense = opts.updateLicense
	}
	if flags.Changed("add-missing") {
		cfg.AddMissing = opts.addMissing
	}

	if !cfg.Flags.Any() && !cfg.AddMissing {
		log.Info(ctx, "no updates enabled, headers will only be checked for parse errors")
	}

	writer := output.NewWriter(opts.check)
	u := updater.New(cfg, renderer, writer, updater.WithConcurrency(opts.concurrency))

	if _, err := u.Run(ctx); err != nil {
		return err
	}

	if opts.check {
		if err := writer.Err(); err != nil {
			return errors.Wrap(err, "headers are out of date")
		}
	}
	return nil
}

func renderCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:     "render [template] [key=value...]",
		Short:   "Render a template to stdout.",
		Example: "render copyright Organization=Acme CopyrightYears=2024\nrender --content '{{ .Project }} {{ year }}' Project=widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := templates.NewRenderer()
			name := templates.ContentTemplate
			if cmd.Flags().Changed("content") {
				renderer = templates.NewRendererFromContent(content)
			} else {
				if len(args) == 0 {
					return errors.New("a template name or --content is required")
				}
				name, args = args[0], args[1:]
			}

			vars := map[string]any{}
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return errors.Newf("invalid variable %q, expected key=value", arg)
				}
				vars[key] = value
			}

			out, err := renderer.Render(name, vars)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "render this inline template text instead of a named template")
	return cmd
}
