package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage game sessions",
	}

	sessionCmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Start a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var session Session
			if err := client.Post("/api/v1/sessions", nil, &session); err != nil {
				out.PrintError(err)
				return err
			}

			if err := cfg.SaveSession(session.ID); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(session)
			return nil
		},
	})

	sessionCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := requireSession()
			if err != nil {
				out.PrintError(err)
				return err
			}

			var session Session
			if err := client.Get("/api/v1/sessions/"+id, &session); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(session)
			return nil
		},
	})

	sessionCmd.AddCommand(&cobra.Command{
		Use:   "end",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := requireSession()
			if err != nil {
				out.PrintError(err)
				return err
			}

			if err := client.Delete("/api/v1/sessions/" + id); err != nil {
				out.PrintError(err)
				return err
			}

			out.PrintMessage("Session ended")
			return nil
		},
	})

	return sessionCmd
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play ROW,COL [ROW,COL...]",
		Short: "Submit a word as a path of tile positions",
		Long: `Submit a word by listing the tile positions that spell it,
in order, as row,col pairs. Example:

  woggle play 0,0 0,1 1,2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := requireSession()
			if err != nil {
				out.PrintError(err)
				return err
			}

			path, err := parsePath(args)
			if err != nil {
				out.PrintError(err)
				return err
			}

			var result PlayResult
			if err := client.Post("/api/v1/sessions/"+id+"/words", map[string]any{"path": path}, &result); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(result)
			return nil
		},
	}
}

func newReshuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reshuffle",
		Short: "Generate a fresh board, resetting words, score, and timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := requireSession()
			if err != nil {
				out.PrintError(err)
				return err
			}

			var session Session
			if err := client.Post("/api/v1/sessions/"+id+"/reshuffle", nil, &session); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(session)
			return nil
		},
	}
}

func newCheatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cheat",
		Short: "List every word findable on the current board",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := requireSession()
			if err != nil {
				out.PrintError(err)
				return err
			}

			var solutions Solutions
			if err := client.Get("/api/v1/sessions/"+id+"/solutions", &solutions); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(solutions)
			return nil
		},
	}
}

func newTimerCmd() *cobra.Command {
	timerCmd := &cobra.Command{
		Use:   "timer",
		Short: "Control the round timer",
	}

	actions := []struct {
		use   string
		short string
	}{
		{"start", "Start or resume the round timer"},
		{"pause", "Pause the round timer"},
		{"reset", "Stop the timer and clear elapsed time"},
	}

	for _, action := range actions {
		timerCmd.AddCommand(&cobra.Command{
			Use:   action.use,
			Short: action.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := NewOutput(cfg.Output)

				id, err := requireSession()
				if err != nil {
					out.PrintError(err)
					return err
				}

				var session Session
				if err := client.Post("/api/v1/sessions/"+id+"/timer/"+cmd.Use, nil, &session); err != nil {
					out.PrintError(err)
					return err
				}

				out.Print(session)
				return nil
			},
		})
	}

	return timerCmd
}

// requireSession returns the active session ID or an error telling the
// user to start one
func requireSession() (string, error) {
	if cfg.SessionID == "" {
		return "", fmt.Errorf("no active session; run 'woggle session new' first")
	}
	return cfg.SessionID, nil
}

// parsePath converts "row,col" arguments into the API path shape
func parsePath(args []string) ([]map[string]int, error) {
	path := make([]map[string]int, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid position %q: expected ROW,COL", arg)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid row in %q", arg)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid column in %q", arg)
		}
		path = append(path, map[string]int{"row": row, "col": col})
	}
	return path, nil
}
