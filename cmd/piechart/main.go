// Command piechart renders an annular (donut/pie) chart to SVG or PNG.
//
// Sections come from a config file (any format viper reads):
//
//	radius: 100
//	inner-radius: 60
//	sections:
//	  - percentage: 50
//	    color: "#e74c3c"
//	  - percentage: 30
//	    color: "#3498db"
//
// Flags override config values. With --palette, sections may omit colors
// and get generated ones.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/pie"
)

type sectionConfig struct {
	Percentage float64 `mapstructure:"percentage"`
	Color      string  `mapstructure:"color"`
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		configFile string
		out        string
		format     string
		usePalette bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "piechart",
		Short:         "Render an annular (donut/pie) chart to SVG or PNG",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				pie.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}

			viper.SetDefault("radius", 100.0)
			viper.SetDefault("inner-radius", 0.0)
			viper.SetDefault("background", "#ffffff")
			viper.SetDefault("stroke-cap", "butt")
			viper.SetDefault("divider-size", 0.0)

			if configFile != "" {
				viper.SetConfigFile(configFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			viper.SetEnvPrefix("piechart")
			viper.AutomaticEnv()
			for _, name := range []string{
				"radius", "inner-radius", "background",
				"stroke-cap", "divider-size", "center-value", "center-label",
			} {
				if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
					return err
				}
			}

			var sections []sectionConfig
			if err := viper.UnmarshalKey("sections", &sections); err != nil {
				return fmt.Errorf("decode sections: %w", err)
			}
			if len(sections) == 0 {
				return fmt.Errorf("no sections configured")
			}
			if usePalette {
				fillPalette(sections)
			}

			chart := buildChart(sections)
			return render(chart, out, format)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "chart config file")
	cmd.Flags().StringVarP(&out, "out", "o", "chart.svg", "output file")
	cmd.Flags().StringVar(&format, "format", "", "output format: svg or png (default: from extension)")
	cmd.Flags().BoolVar(&usePalette, "palette", false, "fill missing section colors from a generated palette")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log filtered sections and degenerate geometry")
	cmd.Flags().Float64("radius", 100, "outer radius")
	cmd.Flags().Float64("inner-radius", 0, "donut hole radius")
	cmd.Flags().String("background", "#ffffff", "ring background color")
	cmd.Flags().String("stroke-cap", "butt", "section endpoint shape: butt or round")
	cmd.Flags().Float64("divider-size", 0, "gap between sections in degrees")
	cmd.Flags().String("center-value", "", "center overlay value text")
	cmd.Flags().String("center-label", "", "center overlay label text")
	return cmd
}

// fillPalette assigns generated colors to sections that omit one, keeping
// configured colors untouched.
func fillPalette(sections []sectionConfig) {
	missing := 0
	for _, s := range sections {
		if s.Color == "" {
			missing++
		}
	}
	if missing == 0 {
		return
	}
	palette := pie.Palette(missing)
	i := 0
	for idx := range sections {
		if sections[idx].Color == "" {
			sections[idx].Color = palette[i]
			i++
		}
	}
}

func buildChart(sections []sectionConfig) *pie.Chart {
	chartSections := make([]pie.Section, len(sections))
	for i, s := range sections {
		chartSections[i] = pie.Section{Percentage: s.Percentage, Color: s.Color}
	}

	opts := []pie.Option{
		pie.WithSections(chartSections),
		pie.WithInnerRadius(viper.GetFloat64("inner-radius")),
		pie.WithBackgroundColor(viper.GetString("background")),
		pie.WithDividerSize(viper.GetFloat64("divider-size")),
	}
	if strings.EqualFold(viper.GetString("stroke-cap"), "round") {
		opts = append(opts, pie.WithStrokeCap(pie.StrokeCapRound))
	}
	value, label := viper.GetString("center-value"), viper.GetString("center-label")
	if value != "" || label != "" {
		opts = append(opts, pie.WithCenterText(value, label))
	}
	return pie.New(viper.GetFloat64("radius"), opts...)
}

func render(chart *pie.Chart, out, format string) error {
	if format == "" {
		if strings.EqualFold(filepath.Ext(out), ".png") {
			format = "png"
		} else {
			format = "svg"
		}
	}
	switch strings.ToLower(format) {
	case "png":
		return pie.RenderPNG(chart, out)
	case "svg":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		if err := chart.Compose().WriteSVG(f); err != nil {
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
