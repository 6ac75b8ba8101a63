package state

import (
	"context"
	"log"
	"sync"

	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalogapi"
	"storefront.GO/service/normalizer"
	"storefront.GO/service/query"
)

// Params replaces listing parameters in one intent. Zero fields keep the
// current value; a non-nil Filters replaces the whole filter.
type Params struct {
	Filters  *catalog.Filter
	Page     int
	PageSize int
	SortBy   string
}

type callKind int

const (
	callNone callKind = iota
	callSearch
	callSelect
	callMeta
)

type searchCall struct {
	filters  catalog.Filter
	page     int
	pageSize int
	sortBy   string
}

type lastCall struct {
	kind   callKind
	search searchCall
	id     string
}

type StoreOption func(*Store)

func WithLogger(l *log.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

func WithNormalizer(n *normalizer.Normalizer) StoreOption {
	return func(s *Store) { s.norm = n }
}

// WithPageSize sets the initial page size.
func WithPageSize(n int) StoreOption {
	return func(s *Store) { s.state = Initial(n) }
}

// WithContext sets the parent context of every request.
func WithContext(ctx context.Context) StoreOption {
	return func(s *Store) { s.ctx = ctx }
}

// Store is the single owner of listing State. Each search intent gets a
// sequence number and cancels the search before it; a result whose sequence
// is not the latest is dropped.
type Store struct {
	mu     sync.Mutex
	state  State
	source catalogapi.Source
	norm   *normalizer.Normalizer
	logger *log.Logger

	ctx    context.Context
	stop   context.CancelFunc
	closed bool

	searchSeq    uint64
	searchCancel context.CancelFunc
	selectSeq    uint64
	selectCancel context.CancelFunc
	metaSeq      uint64

	pendingSearch bool
	pendingSelect bool
	pendingMeta   bool

	last lastCall
	wg   sync.WaitGroup

	notifyMu sync.Mutex
	subs     map[int]func(State)
	nextSub  int
}

func NewStore(source catalogapi.Source, opts ...StoreOption) *Store {
	s := &Store{
		state:  Initial(DefaultPageSize),
		source: source,
		ctx:    context.Background(),
		subs:   make(map[int]func(State)),
	}
	for _, o := range opts {
		o(s)
	}
	if s.norm == nil {
		s.norm = normalizer.New()
	}
	s.ctx, s.stop = context.WithCancel(s.ctx)
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive the state after every change. The
// returned func removes the subscription. Notifications are serialized, so fn
// must not call Store intents synchronously.
func (s *Store) Subscribe(fn func(State)) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if len(s.subs) == 0 {
		return
	}
	st := s.State()
	for _, fn := range s.subs {
		fn(st)
	}
}

// Wait blocks until every request started so far has resolved.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight requests and waits for them. Later results are
// discarded.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.stop()
	s.wg.Wait()
}

// dispatch applies a and corrects Loading for overlapping requests. Callers
// hold mu.
func (s *Store) dispatch(a action) {
	next := reduce(s.state, a)
	next.Loading = s.pendingSearch || s.pendingSelect || s.pendingMeta
	s.state = next
}

// LoadProducts fetches the current page with the current parameters.
func (s *Store) LoadProducts() {
	s.mu.Lock()
	call := s.currentCall()
	s.startSearchLocked(call)
	s.mu.Unlock()
	s.notify()
}

// LoadProductsWithParams replaces the given parameters and fetches. The
// requested page is sent as is; the stored page follows the response.
func (s *Store) LoadProductsWithParams(p Params) {
	s.mu.Lock()
	s.dispatch(paramsReplaced{Filters: p.Filters, Page: p.Page, PageSize: p.PageSize, SortBy: p.SortBy})
	call := s.currentCall()
	if p.Page > 0 {
		call.page = p.Page
	}
	s.startSearchLocked(call)
	s.mu.Unlock()
	s.notify()
}

// SetFilters merges patch into the filter, returns to page 1 and fetches.
func (s *Store) SetFilters(patch catalog.FilterPatch) {
	s.intent(filtersPatched{Patch: patch})
}

func (s *Store) ClearFilters() {
	s.intent(filtersCleared{})
}

// SetPage moves to page n, clamped to the known page range, and fetches.
func (s *Store) SetPage(n int) {
	s.intent(pageSet{Page: n})
}

func (s *Store) SetPageSize(n int) {
	s.intent(pageSizeSet{Size: n})
}

func (s *Store) SetSortBy(key string) {
	s.intent(sortSet{SortBy: key})
}

func (s *Store) intent(a action) {
	s.mu.Lock()
	s.dispatch(a)
	s.startSearchLocked(s.currentCall())
	s.mu.Unlock()
	s.notify()
}

func (s *Store) currentCall() searchCall {
	return searchCall{
		filters:  s.state.Filters.Clone(),
		page:     s.state.CurrentPage,
		pageSize: s.state.PageSize,
		sortBy:   s.state.SortBy,
	}
}

func (s *Store) startSearchLocked(call searchCall) {
	if s.closed {
		return
	}
	s.searchSeq++
	seq := s.searchSeq
	if s.searchCancel != nil {
		s.searchCancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.searchCancel = cancel
	s.pendingSearch = true
	s.last = lastCall{kind: callSearch, search: call}
	s.dispatch(fetchStarted{})

	s.wg.Add(1)
	go s.runSearch(ctx, cancel, seq, call)
}

func (s *Store) runSearch(ctx context.Context, cancel context.CancelFunc, seq uint64, call searchCall) {
	defer s.wg.Done()
	defer cancel()

	external := mapping.ToExternalFilter(call.filters)
	req := catalogapi.SearchRequest{
		Query:       query.Build(&external, call.sortBy),
		Filter:      call.filters,
		SortBy:      call.sortBy,
		CurrentPage: call.page - 1,
		PageSize:    call.pageSize,
	}
	resp, err := s.source.Search(ctx, req)

	var result action
	if err != nil {
		s.logf("state: search %q failed: %v", req.Query, err)
		result = searchFailed{Message: catalogapi.Message(err)}
	} else {
		result = searchSucceeded{
			Products:    s.norm.Products(resp.Products, resp.Facets),
			TotalCount:  resp.Pagination.TotalResults,
			Page:        resp.Pagination.CurrentPage + 1,
			PageSize:    resp.Pagination.PageSize,
			Options:     s.norm.Facets(resp.Facets),
			Facets:      resp.Facets,
			Breadcrumbs: s.norm.Breadcrumbs(resp.Breadcrumbs),
		}
	}

	s.mu.Lock()
	if s.closed || seq != s.searchSeq {
		s.mu.Unlock()
		return
	}
	s.pendingSearch = false
	s.searchCancel = nil
	s.dispatch(result)
	s.mu.Unlock()
	s.notify()
}

// SelectProduct fetches one product by id into SelectedProduct.
func (s *Store) SelectProduct(id string) {
	s.mu.Lock()
	s.startSelectLocked(id)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) ClearSelectedProduct() {
	s.mu.Lock()
	if s.selectCancel != nil {
		s.selectCancel()
		s.selectCancel = nil
	}
	s.selectSeq++
	s.pendingSelect = false
	s.dispatch(selectionCleared{})
	s.mu.Unlock()
	s.notify()
}

func (s *Store) startSelectLocked(id string) {
	if s.closed {
		return
	}
	s.selectSeq++
	seq := s.selectSeq
	if s.selectCancel != nil {
		s.selectCancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.selectCancel = cancel
	s.pendingSelect = true
	s.last = lastCall{kind: callSelect, id: id}
	s.dispatch(fetchStarted{})
	facets := s.state.Facets

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		raw, err := s.source.Product(ctx, id)
		var result action
		if err != nil {
			s.logf("state: product %s failed: %v", id, err)
			result = selectFailed{Message: catalogapi.Message(err)}
		} else {
			result = productSelected{Product: s.norm.Product(raw, facets)}
		}

		s.mu.Lock()
		if s.closed || seq != s.selectSeq {
			s.mu.Unlock()
			return
		}
		s.pendingSelect = false
		s.selectCancel = nil
		s.dispatch(result)
		s.mu.Unlock()
		s.notify()
	}()
}

// LoadCatalogMeta fetches the category and brand lists.
func (s *Store) LoadCatalogMeta() {
	s.mu.Lock()
	s.startMetaLocked()
	s.mu.Unlock()
	s.notify()
}

func (s *Store) startMetaLocked() {
	if s.closed {
		return
	}
	s.metaSeq++
	seq := s.metaSeq
	s.pendingMeta = true
	s.last = lastCall{kind: callMeta}
	s.dispatch(fetchStarted{})
	ctx := s.ctx

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		res, err := catalogapi.FetchMeta(ctx, s.source)
		var result action
		if err != nil {
			s.logf("state: catalog meta failed: %v", err)
			result = metaFailed{Message: catalogapi.Message(err)}
		} else {
			result = metaLoaded{Categories: normalizer.Categories(res.Categories), Brands: normalizer.Brands(res.Brands)}
		}

		s.mu.Lock()
		if s.closed || seq != s.metaSeq {
			s.mu.Unlock()
			return
		}
		s.pendingMeta = false
		s.dispatch(result)
		s.mu.Unlock()
		s.notify()
	}()
}

// Retry re-issues the most recent request with the same parameters. Without
// a previous request it loads the current page.
func (s *Store) Retry() {
	s.mu.Lock()
	switch s.last.kind {
	case callSelect:
		s.startSelectLocked(s.last.id)
	case callMeta:
		s.startMetaLocked()
	case callSearch:
		s.startSearchLocked(s.last.search)
	default:
		s.startSearchLocked(s.currentCall())
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
