package hroctl

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/spf13/cobra"
)

type catalogRecord struct {
	Index       int       `json:"index"`
	ID          string    `json:"id"`
	Format      string    `json:"format"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Alt         string    `json:"alt,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCatalogCmd(deps Deps) *cobra.Command {
	var asJSON bool
	var placeholders bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the gallery catalog as the site would load it",
		Example: `  # Table of photos, newest first
  hroctl catalog

  # Full records including placeholder data URLs
  hroctl catalog --json --placeholders`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.Gallery.Placeholders = placeholders
			source, err := deps.OpenCatalog(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			loaded, err := source.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			if asJSON {
				return writeCatalogJSON(cmd.OutOrStdout(), loaded)
			}
			return writeCatalogTable(cmd.OutOrStdout(), loaded)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	cmd.Flags().BoolVar(&placeholders, "placeholders", false, "Derive blurred placeholders while loading")
	return cmd
}

func writeCatalogJSON(w io.Writer, loaded catalog.Catalog) error {
	records := make([]catalogRecord, 0, loaded.Len())
	for _, r := range loaded.Records() {
		records = append(records, catalogRecord{
			Index:       r.SequenceIndex,
			ID:          r.ID,
			Format:      r.Format,
			Width:       r.Width,
			Height:      r.Height,
			Alt:         r.Alt,
			Placeholder: r.Placeholder,
			CreatedAt:   r.CreatedAt,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeCatalogTable(w io.Writer, loaded catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tID\tFORMAT\tSIZE\tPLACEHOLDER\tCREATED")
	for _, r := range loaded.Records() {
		placeholder := "-"
		if r.HasPlaceholder() {
			placeholder = fmt.Sprintf("%dB", len(r.Placeholder))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%dx%d\t%s\t%s\n",
			r.SequenceIndex, r.ID, r.Format, r.Width, r.Height, placeholder, r.CreatedAt.UTC().Format(time.RFC3339))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d photos\n", loaded.Len())
	return err
}
