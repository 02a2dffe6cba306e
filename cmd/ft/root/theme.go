package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"flavortown/internal/engine"
	"flavortown/internal/ui"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage custom themes",
	}
	cmd.AddCommand(newThemeAddCmd(a), newThemeListCmd(a), newThemeRmCmd(a))
	return cmd
}

func newThemeAddCmd(a *app) *cobra.Command {
	var in engine.CreateThemeInput
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom theme",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Name = strings.Join(args, " ")
			t, err := svc.CreateTheme(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render(ui.IconPalette+" Created"), t.Icon, ui.Gold.Render(t.Name), ui.Muted.Render(t.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Icon, "icon", engine.DefaultThemeIcon, "icon")
	cmd.Flags().StringVar(&in.PrimaryColor, "primary", engine.DefaultThemePrimaryColor, "primary color")
	cmd.Flags().StringVar(&in.SecondaryColor, "secondary", engine.DefaultThemeSecondaryColor, "secondary color")
	cmd.Flags().StringVar(&in.FontFamily, "font", engine.DefaultThemeFontFamily, "font family")
	cmd.Flags().StringVar(&in.Mood, "mood", string(engine.DefaultThemeMood), "mood")
	return cmd
}

func newThemeListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List custom themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			themes, err := svc.ListThemes(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(themes) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No custom themes yet. Create one with `ft theme add <name>`."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconPalette, "Custom Themes"))
			for _, t := range themes {
				created := time.UnixMilli(t.CreatedAt).Format("2006-01-02")
				fmt.Fprintf(out, "- %s %s %s %s\n", t.Icon, ui.Gold.Render(t.Name),
					ui.Muted.Render(fmt.Sprintf("%s %s/%s %s %s", engine.Mood(t.Mood).Label(), t.PrimaryColor, t.SecondaryColor, t.FontFamily, created)),
					ui.Muted.Render(t.ID))
			}
			return nil
		},
	}
	return cmd
}

func newThemeRmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a custom theme",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteTheme(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted "+args[0]))
			return nil
		},
	}
	return cmd
}
