package state

import (
	"testing"

	"storefront.GO/model/entity/catalog"
)

func loadedState(total, page int) State {
	s := Initial(10)
	s = reduce(s, fetchStarted{})
	return reduce(s, searchSucceeded{
		Products:   []catalog.Product{{ID: "1"}},
		TotalCount: total,
		Page:       page,
		PageSize:   10,
	})
}

func TestReduceSearchSucceededClampsPage(t *testing.T) {
	s := loadedState(15, 9)
	if s.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", s.CurrentPage)
	}
	if s.Status() != StatusLoaded {
		t.Errorf("Status = %s, want loaded", s.Status())
	}

	s = loadedState(0, 4)
	if s.CurrentPage != 1 || s.HasNextPage() || s.HasPreviousPage() {
		t.Errorf("empty result: page %d next %v prev %v", s.CurrentPage, s.HasNextPage(), s.HasPreviousPage())
	}
}

func TestReduceSearchFailed(t *testing.T) {
	s := loadedState(40, 3)
	s = reduce(s, fetchStarted{})
	s = reduce(s, searchFailed{Message: "hata"})
	if s.Status() != StatusErrored || s.Error != "hata" {
		t.Errorf("Status = %s, Error = %q", s.Status(), s.Error)
	}
	if len(s.Products) != 0 || s.TotalCount != 0 || s.CurrentPage != 1 {
		t.Errorf("failed state kept data: %d products, total %d, page %d", len(s.Products), s.TotalCount, s.CurrentPage)
	}
	if s = reduce(s, fetchStarted{}); s.Error != "" {
		t.Error("fetchStarted should clear the error")
	}
}

func TestReduceParamsReplaced(t *testing.T) {
	s := loadedState(100, 5)
	s = reduce(s, paramsReplaced{SortBy: "price-asc"})
	if s.CurrentPage != 5 || s.SortBy != "price-asc" {
		t.Errorf("sort only: page %d sort %q", s.CurrentPage, s.SortBy)
	}

	f := catalog.Filter{Sizes: []string{}, OnSaleOnly: catalog.Bool(true)}
	s = reduce(s, paramsReplaced{Filters: &f})
	if s.CurrentPage != 1 {
		t.Errorf("new filters: page %d, want 1", s.CurrentPage)
	}
	if s.Filters.Has(catalog.KeySizes) || s.ActiveFilterCount() != 1 {
		t.Errorf("Filters = %+v, want empty sizes dropped", s.Filters)
	}
}

func TestReduceSelection(t *testing.T) {
	s := loadedState(10, 1)
	s = reduce(s, productSelected{Product: catalog.Product{ID: "7"}})
	if s.SelectedProduct == nil || s.SelectedProduct.ID != "7" {
		t.Fatalf("SelectedProduct = %+v", s.SelectedProduct)
	}
	s = reduce(s, selectFailed{Message: "yok"})
	if s.SelectedProduct != nil || len(s.Products) != 1 {
		t.Errorf("select failure should keep the listing: %+v", s)
	}
	s = reduce(s, selectionCleared{})
	if s.SelectedProduct != nil {
		t.Error("selection not cleared")
	}
}

func TestReduceIgnoresUnknownAction(t *testing.T) {
	s := loadedState(10, 1)
	if got := reduce(s, struct{}{}); got.CurrentPage != s.CurrentPage || got.TotalCount != s.TotalCount {
		t.Error("unknown action changed state")
	}
}
