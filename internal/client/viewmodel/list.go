package viewmodel

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/logging"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Loader fetches the full collection from the server.
type Loader[T models.Record] func(ctx context.Context) ([]T, error)

type options struct {
	staleGuard bool
	lang       language.Tag
	log        logging.Logger
}

type Option func(*options)

// WithStaleGuard drops load responses that are older than the newest load
// issued on the same list.
func WithStaleGuard() Option {
	return func(o *options) { o.staleGuard = true }
}

// WithLanguage sets the collation used for sorting. The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// List is a server-backed collection with client-side sort and filter.
// It is safe for concurrent use.
type List[T models.Record] struct {
	load Loader[T]
	opts options

	mu     sync.Mutex
	items  []T
	sort   SortState
	filter string
	col    *collate.Collator
	issued uint64
}

func NewList[T models.Record](load Loader[T], opts ...Option) *List[T] {
	o := options{lang: language.English, log: logging.Discard()}
	for _, fn := range opts {
		fn(&o)
	}
	return &List[T]{
		load:  load,
		opts:  o,
		items: []T{},
		col:   collate.New(o.lang),
	}
}

// Load replaces the whole collection with the server's. On error the
// current collection is kept.
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	l.issued++
	seq := l.issued
	l.mu.Unlock()

	items, err := l.load(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.opts.staleGuard && seq != l.issued {
		l.opts.log.Debug(ctx, "dropped stale load", "seq", seq, "latest", l.issued)
		return nil
	}
	l.items = items
	return nil
}

// Reset empties the collection and clears sort and filter.
func (l *List[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = []T{}
	l.sort = SortState{}
	l.filter = ""
}

func (l *List[T]) ApplySort(field string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sort = l.sort.next(field)
}

func (l *List[T]) ApplyFilter(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = term
}

func (l *List[T]) Sort() SortState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sort
}

func (l *List[T]) Filter() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// Len is the size of the loaded collection, before filtering.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns the loaded collection in server order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// Find looks a record up by id in the loaded collection.
func (l *List[T]) Find(id int64) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Derived returns the loaded collection sorted and then filtered.
func (l *List[T]) Derived() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := append(make([]T, 0, len(l.items)), l.items...)
	sortRecords(out, l.sort, l.col)

	kept := out[:0]
	for _, it := range out {
		if matches(it, l.filter) {
			kept = append(kept, it)
		}
	}
	return kept
}
