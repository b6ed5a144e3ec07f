package hroctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hustredowls/redowls.club/internal/services/contact"
	"github.com/spf13/cobra"
)

const defaultInboxLimit = 20

type inboxMessage struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Locale    string    `json:"locale,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newInboxCmd(deps Deps) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List contact messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			store, err := deps.OpenInbox(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open inbox: %w", err)
			}
			defer store.Close()

			messages, err := contact.NewService(store).Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list messages: %w", err)
			}
			if asJSON {
				return writeInboxJSON(cmd.OutOrStdout(), messages)
			}
			return writeInboxTable(cmd.OutOrStdout(), messages)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print messages as JSON")
	cmd.Flags().IntVar(&limit, "limit", defaultInboxLimit, "Maximum messages to list")
	return cmd
}

func writeInboxJSON(w io.Writer, messages []contact.Message) error {
	out := make([]inboxMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, inboxMessage{
			ID:        m.ID,
			FullName:  m.FullName,
			Email:     m.Email,
			Body:      m.Body,
			Locale:    m.Locale,
			CreatedAt: m.CreatedAt,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeInboxTable(w io.Writer, messages []contact.Message) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tFROM\tEMAIL\tLOCALE\tMESSAGE")
	for _, m := range messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.CreatedAt.UTC().Format(time.RFC3339), m.FullName, m.Email, m.Locale, preview(m.Body, 60))
	}
	return tw.Flush()
}

// preview flattens body to one line of at most n runes.
func preview(body string, n int) string {
	flat := strings.Join(strings.Fields(body), " ")
	runes := []rune(flat)
	if len(runes) <= n {
		return flat
	}
	return string(runes[:n-1]) + "…"
}
