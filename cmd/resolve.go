// File: cmd/resolve.go
package cmd

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/facet/api/schemas"
	"github.com/xkilldash9x/facet/internal/config"
	"github.com/xkilldash9x/facet/internal/observability"
	"github.com/xkilldash9x/facet/pkg/geometry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// resolveOutput is the wire form of one resolved box.
type resolveOutput struct {
	Rect           schemas.Rect `json:"rect"`
	DeferredWidth  bool         `json:"deferred_width,omitempty"`
	DeferredHeight bool         `json:"deferred_height,omitempty"`
	Warnings       []string     `json:"warnings,omitempty"`
}

// newResolveCmd creates and configures the `resolve` command.
func newResolveCmd() *cobra.Command {
	var (
		parentWidth  float64
		parentHeight float64
	)

	resolveCmd := &cobra.Command{
		Use:   "resolve [spec.json]",
		Short: "Resolves a box specification into a concrete rectangle",
		Long: `Reads a JSON box specification (or an array of them) from a file or
stdin and resolves it against the given parent dimensions, printing the
resulting rectangles as JSON.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("layout.base_size", cmd.Flags().Lookup("base-size")); err != nil {
				return err
			}
			return viper.BindPFlag("layout.inherited_size", cmd.Flags().Lookup("inherited-size"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			raw, err := readInput(args)
			if err != nil {
				return err
			}

			wireSpecs, err := decodeBoxSpecs(raw)
			if err != nil {
				return fmt.Errorf("failed to decode box specification: %w", err)
			}

			// Re-load the config now that the flags are bound in PreRunE, so
			// command-line overrides take precedence over file and env values.
			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}
			layoutCfg := cfg.Layout()
			engine := geometry.NewEngine(logger)

			specs := make([]geometry.BoxSpec, 0, len(wireSpecs))
			for i, ws := range wireSpecs {
				spec, err := geometry.BoxSpecFromSchema(ws)
				if err != nil {
					return fmt.Errorf("spec %d: %w", i, err)
				}
				specs = append(specs, spec)
			}

			results, err := engine.ResolveAll(cmd.Context(), specs,
				parentWidth, parentHeight, layoutCfg.BaseSize, layoutCfg.InheritedSize)
			if err != nil {
				return err
			}

			out := make([]resolveOutput, 0, len(results))
			for _, r := range results {
				o := resolveOutput{
					Rect:           r.Rect,
					DeferredWidth:  r.DeferredWidth,
					DeferredHeight: r.DeferredHeight,
				}
				for _, w := range r.Warnings {
					o.Warnings = append(o.Warnings, w.String())
				}
				out = append(out, o)
			}

			logger.Debug("Resolved box specifications", zap.Int("count", len(out)))
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	resolveCmd.Flags().Float64Var(&parentWidth, "parent-width", 1920, "parent width in pixels")
	resolveCmd.Flags().Float64Var(&parentHeight, "parent-height", 1080, "parent height in pixels")
	resolveCmd.Flags().Float64("base-size", 16, "theme-wide base size in pixels (backs em)")
	resolveCmd.Flags().Float64("inherited-size", 16, "inherited size in pixels (backs rem)")

	return resolveCmd
}

// decodeBoxSpecs accepts either a single box spec object or an array of them.
func decodeBoxSpecs(raw []byte) ([]schemas.BoxSpec, error) {
	var many []schemas.BoxSpec
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	var one schemas.BoxSpec
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []schemas.BoxSpec{one}, nil
}

// readInput reads the file named by args, or stdin when no file is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(newResolveCmd())
}
