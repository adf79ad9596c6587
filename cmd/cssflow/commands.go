package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/cssflow/backend/raster"
	"github.com/benoitkugler/cssflow/config"
	doc "github.com/benoitkugler/cssflow/html/document"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/version"
	"github.com/spf13/cobra"
)

// app is shared by the sub commands, once the configuration is loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "cssflow",
		Short:        "Lay out HTML documents with CSS 2.1 visual formatting",
		Version:      version.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(version.VersionString + "\n")
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	flags.Float64("width", 0, "initial viewport width, in pixels")
	flags.Float64("height", 0, "initial viewport height, in pixels")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.NewViper(a.cfgFile)
		if err != nil {
			return err
		}
		for key, flag := range map[string]string{
			"viewport.width":  "width",
			"viewport.height": "height",
			"logger.level":    "log-level",
		} {
			if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
				return fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
		a.cfg, err = config.NewConfigFromViper(v)
		if err != nil {
			return err
		}
		return logger.Init(a.cfg.Logger.Level, a.cfg.Logger.Format)
	}

	root.AddCommand(a.newRenderCmd(), a.newDumpCmd(), a.newConfigCmd())
	return root
}

// load renders the HTML file at [path] with the current configuration.
func (a *app) load(path string, sink logger.Sink) (*doc.Document, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	opts.Diagnostics = sink
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()
	return doc.RenderHTML(f, opts)
}

func (a *app) newRenderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <file.html>",
		Short: "Render a document to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0], nil)
			if err != nil {
				return err
			}
			canvas := raster.New(d.Size())
			d.Draw(canvas)
			if err := canvas.SavePNG(output); err != nil {
				return err
			}
			w, h := d.Size()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%gx%g)\n", output, w, h)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output PNG file")
	return cmd
}

func (a *app) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.html>",
		Short: "Print the laid out box tree of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var diags logger.Collector
			d, err := a.load(args[0], logger.Tee{logger.Default, &diags})
			if err != nil {
				return err
			}
			d.Dump(cmd.OutOrStdout())
			if n := len(diags.Events); n != 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d layout warning(s)\n", n)
			}
			return nil
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, in YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(cmd.OutOrStdout(), a.cfg)
		},
	}
}
