package mapping

// Sort keys accepted by the listing.
const (
	SortRelevance    = "relevance"
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortMostReviewed = "mostReviewed"
	SortDiscountDesc = "discount-desc"
	SortTopFavorites = "topFavorites"
	SortNewest       = "newlyToOld"
)

// sortCodes maps listing sort keys to the search API's sort codes.
var sortCodes = map[string]string{
	SortRelevance:    "relevance",
	SortPriceAsc:     "price-asc",
	SortPriceDesc:    "price-desc",
	SortMostReviewed: "mostReviewed",
	SortDiscountDesc: "discount-desc",
	SortTopFavorites: "topFavorites",
	SortNewest:       "newlyToOld",
}

// SortCode resolves a sort key; unknown and empty keys resolve to relevance.
func SortCode(key string) string {
	if code, ok := sortCodes[key]; ok {
		return code
	}
	return sortCodes[SortRelevance]
}

// IsValidSort reports whether key is one of the known sort keys.
func IsValidSort(key string) bool {
	_, ok := sortCodes[key]
	return ok
}

// SortKeys lists the sort keys in menu order.
func SortKeys() []string {
	return []string{SortRelevance, SortPriceAsc, SortPriceDesc, SortMostReviewed, SortDiscountDesc, SortTopFavorites, SortNewest}
}
