package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"companysite/frontend/products"
	"companysite/infrastructure/i18n"
	"companysite/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("catalogsheet: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var out, locale string
	cmd := &cobra.Command{
		Use:          "catalogsheet",
		Short:        "Write the printable product catalog to a PDF file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := writeCatalogSheet(out, locale, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "catalog.pdf", "destination file")
	cmd.Flags().StringVar(&locale, "locale", "en", "language of the sheet title")
	return cmd
}

func writeCatalogSheet(path, locale string, printedAt time.Time) (int, error) {
	translator, err := i18n.New(locale)
	if err != nil {
		return 0, err
	}
	title := translator.For(locale).T("products_title")

	pdfBytes, err := products.RenderCatalogPDF(models.Catalog(), title, printedAt)
	if err != nil {
		return 0, fmt.Errorf("render catalog: %w", err)
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(pdfBytes), nil
}
