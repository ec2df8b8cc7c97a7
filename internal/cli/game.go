package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Commit, read, and touch game records",
	}

	cmd.AddCommand(newGameRecordCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameTouchCmd())

	return cmd
}

func newGameRecordCmd() *cobra.Command {
	var winner, white, black, timestamp string

	cmd := &cobra.Command{
		Use:   "record <game-id>",
		Short: "Commit a game result (server only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := time.Now().UTC()
			if timestamp != "" {
				parsed, err := time.Parse(time.RFC3339, timestamp)
				if err != nil {
					return fmt.Errorf("invalid --timestamp, want RFC3339: %w", err)
				}
				ts = parsed
			}

			body := map[string]any{
				"winner":    winner,
				"white":     white,
				"black":     black,
				"timestamp": ts,
			}

			var result GameResult
			if err := client.Post("/api/v1/games/"+url.PathEscape(args[0]), body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winner identity (omit for a draw)")
	cmd.Flags().StringVar(&white, "white", "", "White participant identity")
	cmd.Flags().StringVar(&black, "black", "", "Black participant identity")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "Match completion time, RFC3339 (default: now)")
	_ = cmd.MarkFlagRequired("white")
	_ = cmd.MarkFlagRequired("black")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Fetch a committed game record (public)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResult
			if err := client.Get("/api/v1/games/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <game-id>",
		Short: "Extend a record's retention window (public)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/games/"+url.PathEscape(args[0])+"/touch", nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("retention window extended")
			return nil
		},
	}
}
