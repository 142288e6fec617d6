package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const defaultScene = "random"

// renderOptions holds the command line flags of the root command
type renderOptions struct {
	output     string
	samples    int
	depth      int
	width      int
	workers    int
	seed       int64
	background string
	texture    string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "pathtracer [scene]",
		Short: "Render a preset scene with a Monte-Carlo path tracer",
		Long: "Render a preset scene with a Monte-Carlo path tracer.\n\n" +
			"Without -o the image is saved to output/<scene>/render_<timestamp>.png.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultScene
			if len(args) == 1 {
				name = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, name, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "",
		"output image, format from the extension: "+strings.Join(loaders.SupportedOutputFormats(), ", "))
	flags.IntVarP(&opts.samples, "samples", "s", 0, "samples per pixel (default: scene setting)")
	flags.IntVarP(&opts.depth, "depth", "d", 0, "maximum bounces per path (default: scene setting)")
	flags.IntVarP(&opts.width, "width", "w", 0, "image width in pixels (default: scene setting)")
	flags.IntVarP(&opts.workers, "workers", "j", 0, "render workers (default: all CPUs)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.StringVar(&opts.background, "background", "", "solid background color as hex, e.g. #b3ccff")
	flags.StringVar(&opts.texture, "texture", scene.DefaultTexturePath, "image used by the earth scenes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	cmd.AddCommand(newScenesCommand())
	return cmd
}

func newScenesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, info := range scene.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, info.DisplayName, info.Description)
			}
			return w.Flush()
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, cmd *cobra.Command, name string, opts *renderOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	core.SetLogger(logger)

	output := opts.output
	if output == "" {
		output = defaultOutputPath(name, time.Now())
	}
	if err := loaders.CheckOutputFormat(output); err != nil {
		return err
	}

	s, err := scene.ByName(name, scene.Options{TexturePath: opts.texture})
	if err != nil {
		return err
	}
	if err := applyOverrides(s, opts, cmd.Flags()); err != nil {
		return err
	}

	width, height := s.ImageSize()
	logger.Info("rendering scene", "scene", name, "width", width, "height", height,
		"samples", s.SamplesPerPixel(), "depth", s.MaxDepth())

	renderOpts := []renderer.Option{renderer.WithSeed(opts.seed), renderer.WithLogger(logger)}
	if cmd.Flags().Changed("workers") {
		renderOpts = append(renderOpts, renderer.WithWorkers(opts.workers))
	}

	img, stats, err := renderer.Render(ctx, s, renderOpts...)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := loaders.SaveImage(output, img); err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), stats, output)
	return nil
}

// applyOverrides replaces scene settings with flags the user set explicitly
func applyOverrides(s *scene.Scene, opts *renderOptions, flags *pflag.FlagSet) error {
	sampling := s.Sampling
	if flags.Changed("samples") {
		sampling.SamplesPerPixel = opts.samples
	}
	if flags.Changed("depth") {
		sampling.MaxDepth = opts.depth
	}
	if flags.Changed("width") {
		sampling.ImageWidth = opts.width
	}
	s.SetSampling(sampling)

	if flags.Changed("background") {
		c, err := colorful.Hex(opts.background)
		if err != nil {
			return fmt.Errorf("invalid background color %q: %w", opts.background, err)
		}
		r, g, b := c.LinearRgb()
		s.SetBackground(renderer.SolidBackground{Color: core.NewVec3(r, g, b)})
	}
	return nil
}

func defaultOutputPath(name string, now time.Time) string {
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func printSummary(w io.Writer, stats renderer.RenderStats, output string) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Rendered %d pixels with %d samples in %v (%.0f samples/s, %d workers)\n",
		stats.TotalPixels, stats.TotalSamples, stats.Elapsed.Round(time.Millisecond),
		stats.SamplesPerSecond(), stats.Workers)
	p.Fprintf(w, "Render saved as %s\n", output)
}
