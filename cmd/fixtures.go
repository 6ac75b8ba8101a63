package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/mapping"
	"storefront.GO/service/catalogapi"
	fixtureService "storefront.GO/service/fixture"
	"storefront.GO/service/query"
)

var (
	fixtureFile     string
	fixtureBatch    int
	fixtureReplace  bool
	fixtureFilter   string
	fixturePages    int
	fixturePageSize int
)

var fixturesImportCmd = &cobra.Command{
	Use:   "fixtures:import",
	Short: "Import raw search API products from a JSON file into the fixture database",
	Run: func(c *cobra.Command, args []string) {
		f, err := os.Open(fixtureFile)
		if err != nil {
			fmt.Printf("Failed to open JSON: %v\n", err)
			return
		}
		defer f.Close()

		repo, err := openFixtures()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := fixtureService.ImportProducts(repo, f, fixtureService.ImportOptions{
			BatchSize: fixtureBatch,
			Replace:   fixtureReplace,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}
		printFixtureReport("Import", res)
	},
}

var fixturesRecordCmd = &cobra.Command{
	Use:   "fixtures:record",
	Short: "Record live search results into the fixture database",
	Run: func(c *cobra.Command, args []string) {
		listingFilter = fixtureFilter
		p, err := parseFilterFlag()
		if err != nil {
			fmt.Printf("Invalid filter: %v\n", err)
			return
		}
		external := mapping.ToExternalFilter(*p.Filters)

		cfg := config.Get()
		client := catalogapi.NewClientFromConfig(cfg)
		repo, err := openFixtures()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(fixturePages+1)*cfg.APITimeout)
		defer cancel()
		res, err := fixtureService.Record(ctx, client, repo, fixtureService.RecordOptions{
			ImportOptions: fixtureService.ImportOptions{BatchSize: fixtureBatch, Replace: fixtureReplace},
			Query:         query.Build(&external, p.SortBy),
			PageSize:      fixturePageSize,
			MaxPages:      fixturePages,
		})
		if err != nil {
			fmt.Printf("Record failed: %s (%v)\n", catalogapi.Message(err), err)
			return
		}
		printFixtureReport("Record", res)
	},
}

func printFixtureReport(title string, res *fixtureService.ImportResult) {
	for _, w := range res.Warnings {
		fmt.Printf("  [warn] %s\n", w)
	}
	fmt.Printf(`
=== %s Report ===
Products:       %d
Stored:         %d
Skipped:        %d
Pages fetched:  %d
Total time:     %s
  - Fetch:      %s
  - DB upsert:  %s
=====================
`, title, res.Total, res.Imported, res.Skipped, res.Pages,
		res.TotalTime.Round(time.Millisecond),
		res.FetchTime.Round(time.Millisecond),
		res.DBTime.Round(time.Millisecond))
}

func init() {
	fixturesImportCmd.Flags().StringVarP(&fixtureFile, "file", "f", "", "JSON file path (required)")
	fixturesImportCmd.MarkFlagRequired("file")

	fixturesRecordCmd.Flags().StringVarP(&fixtureFilter, "filter", "f", "", "Listing parameters as a query string")
	fixturesRecordCmd.Flags().IntVar(&fixturePages, "pages", 1, "Maximum number of pages to record")
	fixturesRecordCmd.Flags().IntVar(&fixturePageSize, "page-size", 48, "Products per recorded page")

	for _, c := range []*cobra.Command{fixturesImportCmd, fixturesRecordCmd} {
		c.Flags().IntVar(&fixtureBatch, "batch-size", 500, "Batch size for DB operations")
		c.Flags().BoolVar(&fixtureReplace, "replace", false, "Delete existing fixtures first")
	}
	rootCmd.AddCommand(fixturesImportCmd, fixturesRecordCmd)
}
