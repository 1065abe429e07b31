package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pitchdeck/internal/client"
	"pitchdeck/internal/config"
	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/service/render"
	"pitchdeck/internal/viewer"
)

type flags struct {
	Server  string
	Session string
	Deck    string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "deckview",
		Short:         "Page through a pitch deck in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if !cmd.Flags().Changed("server") {
				f.Server = config.Load().BaseURL
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := fetchDeck(cmd.Context(), f)
			if err != nil {
				return err
			}
			themes, err := render.LoadThemes()
			if err != nil {
				return err
			}

			p := tea.NewProgram(viewer.New(d, themes), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVarP(&f.Server, "server", "s", "http://localhost:3000", "pitch deck server base URL")
	root.PersistentFlags().StringVar(&f.Session, "session", "", "session whose current deck to show")
	root.PersistentFlags().StringVarP(&f.Deck, "deck", "d", "", "deck id (overrides --session)")

	root.AddCommand(newSummaryCmd(f), newListCmd(f))
	return root
}

func newSummaryCmd(f *flags) *cobra.Command {
	var (
		plain bool
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the deck as formatted text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := fetchDeck(cmd.Context(), f)
			if err != nil {
				return err
			}

			if plain {
				text, err := client.New(f.Server, nil).Summary(cmd.Context(), d.ID)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			if style == "theme" {
				style = themeStyle(d.Theme)
			}
			out, err := viewer.RenderMarkdown(d, style, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the server's plain-text report")
	cmd.Flags().StringVar(&style, "style", "", `glamour style ("dark", "light", "notty", "theme"); empty detects the terminal`)
	cmd.Flags().IntVarP(&width, "width", "w", 80, "word wrap width")
	return cmd
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored decks; * marks the session's current deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			decks, err := client.New(f.Server, nil).ListDecks(cmd.Context(), f.Session)
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No decks yet.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range decks {
				mark := " "
				if d.Current {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d slides\n", mark, d.ID, d.CompanyName, d.Theme, d.SlideCount)
			}
			return tw.Flush()
		},
	}
}

func fetchDeck(ctx context.Context, f *flags) (*models.Deck, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c := client.New(f.Server, nil)
	if f.Deck != "" {
		return c.GetDeck(ctx, f.Deck)
	}
	return c.GetCurrent(ctx, f.Session)
}

// themeStyle matches the glamour style to the deck's own theme
func themeStyle(theme models.Theme) string {
	themes, err := render.LoadThemes()
	if err != nil {
		return ""
	}
	tokens, ok := themes.Lookup(theme)
	if !ok {
		return ""
	}
	return viewer.GlamourStyle(tokens)
}
