package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"storefront.GO/api/listing"
	"storefront.GO/config"
	"storefront.GO/mapping"
	"storefront.GO/service/catalogapi"
	"storefront.GO/service/query"
	"storefront.GO/state"
)

var (
	listingFilter  string
	listingJSON    bool
	listingMeta    bool
	listingRetries int
)

var listingBrowseCmd = &cobra.Command{
	Use:   "listing:browse",
	Short: "Load one listing page and print it",
	Long: `Load one listing page and print it. Filters use the HTTP query syntax:

  storefront listing:browse -f "category=bebek-arabasi&color=mavi&minPrice=0&maxPrice=5000&page=2"`,
	RunE: func(c *cobra.Command, args []string) error {
		p, err := parseFilterFlag()
		if err != nil {
			return err
		}
		cfg := config.Get()
		src, err := NewSource(cfg)
		if err != nil {
			return err
		}

		st := loadListing(src, p, cfg.PageSize, listingRetries, listingMeta)

		if listingJSON {
			enc := json.NewEncoder(c.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}
		printListing(c, st)
		if st.Error != "" {
			return fmt.Errorf("listing failed: %s", st.Error)
		}
		return nil
	},
}

var listingQueryCmd = &cobra.Command{
	Use:   "listing:query",
	Short: "Print the search query for a filter without calling the API",
	RunE: func(c *cobra.Command, args []string) error {
		p, err := parseFilterFlag()
		if err != nil {
			return err
		}
		external := mapping.ToExternalFilter(*p.Filters)
		fmt.Fprintln(c.OutOrStdout(), query.Build(&external, p.SortBy))
		return nil
	},
}

// loadListing fetches one page, retrying the failed request up to retries
// times, and optionally loads categories and brands afterwards.
func loadListing(src catalogapi.Source, p state.Params, pageSize, retries int, meta bool) state.State {
	store := state.NewStore(src, state.WithPageSize(pageSize))
	defer store.Close()

	store.LoadProductsWithParams(p)
	store.Wait()
	for i := 0; i < retries && store.State().Error != ""; i++ {
		log.Printf("listing: %s, retrying (%d/%d)", store.State().Error, i+1, retries)
		store.Retry()
		store.Wait()
	}
	if meta && store.State().Error == "" {
		store.LoadCatalogMeta()
		store.Wait()
	}
	return store.State()
}

func parseFilterFlag() (state.Params, error) {
	q, err := url.ParseQuery(strings.TrimPrefix(listingFilter, "?"))
	if err != nil {
		return state.Params{}, fmt.Errorf("filter: %w", err)
	}
	return listing.ParseParams(q)
}

func printListing(c *cobra.Command, st state.State) {
	out := c.OutOrStdout()
	fmt.Fprintf(out, "Status:   %s\n", st.Status())
	if st.Error != "" {
		fmt.Fprintf(out, "Error:    %s\n", st.Error)
	}
	fmt.Fprintf(out, "Page:     %d/%d (%d products, %d per page)\n", st.CurrentPage, st.TotalPages(), st.TotalCount, st.PageSize)
	fmt.Fprintf(out, "Sort:     %s\n", st.SortBy)
	fmt.Fprintf(out, "Filters:  %d active\n", st.ActiveFilterCount())
	for _, p := range st.Products {
		sale := ""
		if p.OriginalPrice != nil {
			sale = fmt.Sprintf(" (was %.2f)", *p.OriginalPrice)
		}
		fmt.Fprintf(out, "  %-10s %-40.40s %10.2f%s\n", p.ID, p.Name, p.Price, sale)
	}
	if len(st.Categories) > 0 || len(st.Brands) > 0 {
		fmt.Fprintf(out, "Catalog:  %d categories, %d brands\n", len(st.Categories), len(st.Brands))
	}
}

func init() {
	for _, c := range []*cobra.Command{listingBrowseCmd, listingQueryCmd} {
		c.Flags().StringVarP(&listingFilter, "filter", "f", "", "Listing parameters as a query string")
	}
	listingBrowseCmd.Flags().BoolVar(&listingJSON, "json", false, "Print the state as JSON")
	listingBrowseCmd.Flags().BoolVar(&listingMeta, "meta", false, "Also load categories and brands")
	listingBrowseCmd.Flags().IntVar(&listingRetries, "retry", 0, "Retry a failed page load this many times")
	rootCmd.AddCommand(listingBrowseCmd, listingQueryCmd)
}
