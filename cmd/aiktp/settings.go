package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aiktp_sync/internal/settings"
)

func newSettingsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or change the stored site settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStores(ctx, a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			author, err := st.settings.ActingPrincipalID(ctx)
			if err != nil {
				return err
			}
			cats, err := st.settings.DefaultCategories(ctx)
			if err != nil {
				return err
			}
			prefs, err := st.settings.ContentPrefs(ctx)
			if err != nil {
				return err
			}
			key, err := st.settings.APIKey(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "author:             %d\n", author)
			fmt.Fprintf(out, "default categories: %s\n", joinIDs(cats))
			fmt.Fprintf(out, "api key set:        %t\n", key != "")
			fmt.Fprintf(out, "length:             %s\n", prefs.Length)
			fmt.Fprintf(out, "tone:               %s\n", prefs.Tone)
			fmt.Fprintf(out, "language:           %s\n", prefs.Language)
			fmt.Fprintf(out, "custom prompt:      %s\n", prefs.CustomPrompt)
			return nil
		},
	})

	var (
		author     int64
		categories string
		prefs      settings.ContentPrefs
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStores(ctx, a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			flags := cmd.Flags()
			if flags.Changed("author") {
				if _, err := st.principals.GetByID(ctx, author); err != nil {
					return fmt.Errorf("find author %d: %w", author, err)
				}
				if err := st.settings.SetActingPrincipalID(ctx, author); err != nil {
					return err
				}
			}
			if flags.Changed("categories") {
				if err := st.settings.SetDefaultCategories(ctx, settings.ParseIDs(categories)); err != nil {
					return err
				}
			}
			if flags.Changed("length") || flags.Changed("tone") || flags.Changed("language") || flags.Changed("prompt") {
				current, err := st.settings.ContentPrefs(ctx)
				if err != nil {
					return err
				}
				if flags.Changed("length") {
					current.Length = prefs.Length
				}
				if flags.Changed("tone") {
					current.Tone = prefs.Tone
				}
				if flags.Changed("language") {
					current.Language = prefs.Language
				}
				if flags.Changed("prompt") {
					current.CustomPrompt = prefs.CustomPrompt
				}
				if err := st.settings.SetContentPrefs(ctx, current); err != nil {
					return err
				}
			}
			a.logger.Info("settings updated")
			return nil
		},
	}
	set.Flags().Int64Var(&author, "author", 0, "principal id records are created as")
	set.Flags().StringVar(&categories, "categories", "", "comma separated default category ids")
	set.Flags().StringVar(&prefs.Length, "length", "", "generated content length (short, medium, long)")
	set.Flags().StringVar(&prefs.Tone, "tone", "", "writing tone")
	set.Flags().StringVar(&prefs.Language, "language", "", "output language")
	set.Flags().StringVar(&prefs.CustomPrompt, "prompt", "", "extra instructions sent with every generation")
	cmd.AddCommand(set)

	return cmd
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ",")
}
