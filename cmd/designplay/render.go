package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/jask/designplay/internal/preview"
	"github.com/jask/designplay/internal/scene"
)

func newRenderCmd(c *cli) *cobra.Command {
	var (
		plain   bool
		closing bool
		scale   float64
		theme   string
	)
	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Print the preview of a scene from the saved state",
		Long: `Print the preview of one scene (tray, layout, content, approval, modal)
as the editor shows it. Without an argument the last active scene is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			st := sess.store.State()
			tab := st.Tab
			if len(args) == 1 {
				if tab, err = parseScene(args[0]); err != nil {
					return err
				}
			}
			mode := c.theme()
			if theme != "" {
				mode = scene.ThemeMode(theme)
				if !scene.Valid(mode, scene.ThemeModes) {
					return fmt.Errorf("unknown theme %q (want %s)", theme, strings.Join(scene.Names(scene.ThemeModes), "|"))
				}
			}
			if scale <= 0 {
				scale = c.cfg.UI.Scale
			}

			out := preview.Render(preview.For(tab, st, preview.Options{Closing: closing, Theme: mode}), scale)
			if plain {
				out = ansi.Strip(out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "strip colors")
	cmd.Flags().BoolVar(&closing, "closing", false, "render the tray in its closing state")
	cmd.Flags().Float64Var(&scale, "scale", 0, "preview scale (default from ui.scale)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme override: dark|light")
	return cmd
}

// parseScene resolves a scene name, suggesting the closest one on a miss.
func parseScene(name string) (scene.Tab, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range scene.Tabs {
		if string(t) == name {
			return t, nil
		}
	}
	best, bestDist := scene.Tabs[0], -1
	for _, t := range scene.Tabs {
		d := levenshtein.ComputeDistance(name, string(t))
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	if bestDist <= len(best)/2 {
		return "", fmt.Errorf("unknown scene %q, did you mean %q?", name, best)
	}
	return "", fmt.Errorf("unknown scene %q (want %s)", name, strings.Join(scene.Names(scene.Tabs), "|"))
}
