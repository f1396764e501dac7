// File: cmd/monitors.go
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/facet/api/schemas"
	"github.com/xkilldash9x/facet/internal/config"
	"github.com/xkilldash9x/facet/internal/observability"
	"github.com/xkilldash9x/facet/pkg/display"
)

// monitorsOutput is the wire form of one composed topology.
type monitorsOutput struct {
	Mode   string         `json:"mode"`
	Bounds schemas.Rect   `json:"bounds"`
	Spaces []spaceOutput  `json:"spaces"`
	Points []locateOutput `json:"points,omitempty"`
}

type spaceOutput struct {
	Name     string          `json:"name"`
	Bounds   schemas.Rect    `json:"bounds"`
	Monitors []monitorOutput `json:"monitors"`
}

type monitorOutput struct {
	ID      string       `json:"id"`
	Name    string       `json:"name,omitempty"`
	Frame   schemas.Rect `json:"frame"`
	Primary bool         `json:"primary,omitempty"`
}

type locateOutput struct {
	Point   schemas.Point `json:"point"`
	Monitor string        `json:"monitor,omitempty"`
	Space   string        `json:"space,omitempty"`
	Found   bool          `json:"found"`
}

// newMonitorsCmd creates and configures the `monitors` command.
func newMonitorsCmd() *cobra.Command {
	var locateFlags []string

	monitorsCmd := &cobra.Command{
		Use:   "monitors [topology.json]",
		Short: "Composes a monitor topology into virtual spaces",
		Long: `Reads a monitor topology from a JSON file (or stdin) and composes it
into virtual spaces according to the composition mode. Points given with
--locate are mapped to the monitor that contains them.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlag("display.mode", cmd.Flags().Lookup("mode"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			// Re-load the config now that the mode flag is bound in PreRunE.
			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}

			// The positional argument wins over the configured topology file.
			if len(args) == 0 && cfg.Display().TopologyFile != "" {
				args = []string{cfg.Display().TopologyFile}
			}
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			var topology schemas.MonitorTopology
			if err := json.Unmarshal(raw, &topology); err != nil {
				return fmt.Errorf("failed to decode monitor topology: %w", err)
			}
			if topology.Mode == "" {
				topology.Mode = schemas.CompositionMode(cfg.Display().Mode)
			}

			registry := display.NewRegistry(logger)
			vs, err := registry.Update(topology)
			if err != nil {
				return err
			}

			out := monitorsOutput{
				Mode:   vs.Mode.String(),
				Bounds: vs.Bounds(),
			}
			for _, s := range vs.Spaces {
				so := spaceOutput{Name: s.Name, Bounds: s.Bounds}
				for _, sm := range s.Monitors {
					so.Monitors = append(so.Monitors, monitorOutput{
						ID:      sm.ID,
						Name:    sm.Name,
						Frame:   sm.Frame,
						Primary: sm.Primary,
					})
				}
				out.Spaces = append(out.Spaces, so)
			}

			for _, raw := range locateFlags {
				p, err := parsePoint(raw)
				if err != nil {
					return err
				}
				lo := locateOutput{Point: p}
				if loc, found := registry.Locate(p); found {
					lo.Monitor = loc.MonitorID
					lo.Space = loc.Space
					lo.Found = true
				}
				out.Points = append(out.Points, lo)
			}

			logger.Debug("Composed monitor topology",
				zap.String("mode", out.Mode),
				zap.Int("spaces", len(out.Spaces)))
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	monitorsCmd.Flags().String("mode", "", "composition mode: unified, separate, or mixed")
	monitorsCmd.Flags().StringArrayVar(&locateFlags, "locate", nil, `point to locate, as "x,y" (repeatable)`)

	return monitorsCmd
}

// parsePoint parses an "x,y" pair.
func parsePoint(raw string) (schemas.Point, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return schemas.Point{}, fmt.Errorf("invalid point %q: expected \"x,y\"", raw)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return schemas.Point{}, fmt.Errorf("invalid point %q: %w", raw, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return schemas.Point{}, fmt.Errorf("invalid point %q: %w", raw, err)
	}
	return schemas.Point{X: x, Y: y}, nil
}

func init() {
	rootCmd.AddCommand(newMonitorsCmd())
}
