// Package cli is the dacti-viewer command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"dacti/bootstrap"
	"dacti/hal"
	"dacti/internal/buildinfo"
	"dacti/internal/config"
	"dacti/internal/textfb"
	"dacti/viewer"
	"dacti/viewer/triangle"

	"github.com/spf13/cobra"
)

// Execute builds the root command from the environment and runs it.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	reg, err := NewRegistry(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return NewRootCommand(cfg, reg).Execute()
}

// NewRegistry registers the bundled viewer modules.
func NewRegistry(cfg config.Config) (*viewer.Registry, error) {
	reg := viewer.NewRegistry()
	hud := cfg.HUD
	err := reg.Register(triangle.Name, func(context.Context) (viewer.Module, error) {
		return triangle.New(triangle.WithHUD(hud)), nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// NewRootCommand returns the dacti-viewer command. cfg supplies flag defaults.
func NewRootCommand(cfg config.Config, reg *viewer.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:   "dacti-viewer",
		Short: "Run a dacti viewer module against a host surface",
		Long: `dacti-viewer loads a viewer module, binds one viewer to a named surface
and drives its per-frame update, in a window or headless.

Flags default to the DACTI_* environment variables.`,
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, reg)
		},
	}
	root.Annotations = map[string]string{"build": buildinfo.String()}
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build: {{index .Annotations "build"}}
`)

	f := root.Flags()
	f.StringVar(&cfg.Module, "module", cfg.Module, "viewer module to load")
	f.StringVar(&cfg.Canvas, "canvas", cfg.Canvas, "surface name the viewer binds to")
	f.StringVar(&cfg.SurfaceName, "surface", cfg.SurfaceName, "name of the surface the host provides")
	f.IntVar(&cfg.Width, "width", cfg.Width, "surface width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "surface height in pixels")
	f.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run without a window")
	f.IntVar(&cfg.Hz, "hz", cfg.Hz, "frame rate")
	f.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "stop after N frames in headless mode (0 = run forever)")
	f.Var(&cfg.OnFrameError, "on-frame-error", "what to do when a frame fails: halt or skip")
	f.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "write the surface as PNG to this path when the loop ends")
	f.IntVar(&cfg.Scale, "scale", cfg.Scale, "window scale factor")

	root.AddCommand(newModulesCommand(reg))
	return root
}

func newModulesCommand(reg *viewer.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the registered viewer modules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range reg.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func run(cmd *cobra.Command, cfg config.Config, reg *viewer.Registry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	hostCfg := cfg.Host()
	hostCfg.Log = cmd.OutOrStdout()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	starter := func(ctx context.Context) func(hal.HAL, hal.Scheduler) error {
		return func(h hal.HAL, sched hal.Scheduler) error {
			return start(ctx, h, sched, cfg, reg)
		}
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: cfg.Ticks, Host: hostCfg}, starter(ctx))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return hal.RunWindow(hal.WindowConfig{
		Title: "dacti",
		Scale: cfg.Scale,
		TPS:   cfg.Hz,
		Hold:  true,
		Host:  hostCfg,
	}, starter(ctx))
}

// start runs the bootstrap on a host. A failed startup leaves a failure
// screen on the primary surface instead of any viewer frame.
func start(ctx context.Context, h hal.HAL, sched hal.Scheduler, cfg config.Config, reg viewer.Loader) error {
	err := bootstrap.New(h, reg, cfg.Bootstrap()).Start(ctx, sched)
	if errors.Is(err, bootstrap.ErrModuleUnavailable) || errors.Is(err, bootstrap.ErrConstruction) {
		if p := h.Surfaces().Primary(); p != nil {
			textfb.FailureScreen(p.Framebuffer(), "dacti: startup failed", err)
		}
	}
	if cfg.Snapshot != "" {
		if serr := writeSnapshot(h, cfg.Snapshot); serr != nil {
			h.Logger().WriteLineString(fmt.Sprintf("snapshot: %v", serr))
			if err == nil {
				err = serr
			}
		}
	}
	return err
}
