package viewmodel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLoader(cars ...models.Car) Loader[models.Car] {
	return func(context.Context) ([]models.Car, error) {
		return append([]models.Car(nil), cars...), nil
	}
}

func ids(cars []models.Car) []int64 {
	out := make([]int64, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}

func loaded(t *testing.T, cars ...models.Car) *List[models.Car] {
	t.Helper()
	l := NewList(staticLoader(cars...))
	require.NoError(t, l.Load(context.Background()))
	return l
}

func TestApplySort_TogglesDirection(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Make: "b"},
		models.Car{ID: 2, Make: "a"},
		models.Car{ID: 3, Make: "c"},
	)

	l.ApplySort("make")
	assert.Equal(t, []int64{2, 1, 3}, ids(l.Derived()))
	assert.Equal(t, SortState{Field: "make", Dir: Ascending}, l.Sort())

	l.ApplySort("make")
	assert.Equal(t, []int64{3, 1, 2}, ids(l.Derived()))
	assert.Equal(t, Descending, l.Sort().Dir)

	l.ApplySort("make")
	assert.Equal(t, []int64{2, 1, 3}, ids(l.Derived()))

	l.ApplySort("model")
	assert.Equal(t, SortState{Field: "model", Dir: Ascending}, l.Sort())
}

func TestApplySort_TwiceMoreRestoresAscending(t *testing.T) {
	cars := []models.Car{
		{ID: 1, Color: "red"},
		{ID: 2, Color: "blue"},
		{ID: 3, Color: "red"},
		{ID: 4, Color: "blue"},
	}
	l := loaded(t, cars...)

	l.ApplySort("color")
	first := l.Derived()
	l.ApplySort("color")
	l.ApplySort("color")
	assert.Equal(t, first, l.Derived())
	// equal keys keep source order
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(first))
}

func TestApplySort_DescendingKeepsTiesStable(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Color: "red"},
		models.Car{ID: 2, Color: "blue"},
		models.Car{ID: 3, Color: "red"},
	)
	l.ApplySort("color")
	l.ApplySort("color")
	assert.Equal(t, []int64{1, 3, 2}, ids(l.Derived()))
}

func TestApplySort_IsLexicalNotNumeric(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Year: "2019"},
		models.Car{ID: 2, Year: "999"},
		models.Car{ID: 3, Year: "10"},
	)
	l.ApplySort("year")
	assert.Equal(t, []int64{3, 1, 2}, ids(l.Derived()))
}

func TestApplySort_AbsentValuesSortAsEmpty(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Notes: "x"},
		models.Car{ID: 2},
	)
	l.ApplySort("notes")
	assert.Equal(t, []int64{2, 1}, ids(l.Derived()))

	l.ApplySort("no_such_field")
	assert.Equal(t, []int64{1, 2}, ids(l.Derived()))
}

func TestApplySort_LocaleAware(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Make: "Banana"},
		models.Car{ID: 2, Make: "apple"},
		models.Car{ID: 3, Make: "Ärger"},
	)
	l.ApplySort("make")
	// a byte-wise compare would put "Banana" first and "Ärger" last
	assert.Equal(t, []int64{2, 3, 1}, ids(l.Derived()))
}

func TestApplyFilter(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Make: "Ford", Notes: "parked by the dorm"},
		models.Car{ID: 2, Make: "Fiat", OwnerName: "Doris"},
		models.Car{ID: 3, Make: "VW"},
	)

	l.ApplyFilter("DOR")
	assert.Equal(t, []int64{1, 2}, ids(l.Derived()), "match in any field, ignoring case")

	l.ApplyFilter("zzz")
	assert.Empty(t, l.Derived())

	l.ApplyFilter("")
	assert.Len(t, l.Derived(), 3)
	assert.Equal(t, "", l.Filter())
}

func TestDerived_SortThenFilter(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Make: "Fiat"},
		models.Car{ID: 2, Make: "VW"},
		models.Car{ID: 3, Make: "Ford"},
	)
	l.ApplySort("make")
	l.ApplySort("make")
	l.ApplyFilter("f")
	assert.Equal(t, []int64{3, 1}, ids(l.Derived()))
}

func TestDerived_IsIdempotent(t *testing.T) {
	l := loaded(t,
		models.Car{ID: 1, Make: "b", Model: "x"},
		models.Car{ID: 2, Make: "a", Model: "y"},
		models.Car{ID: 3, Make: "b", Model: "z"},
	)
	l.ApplySort("make")
	l.ApplyFilter("b")

	first := l.Derived()
	assert.Equal(t, first, l.Derived())
	assert.Equal(t, []int64{1, 3}, ids(first))
	assert.Equal(t, []int64{1, 2, 3}, ids(l.Items()), "source order untouched")
}

func TestLoad_ErrorKeepsCollection(t *testing.T) {
	fail := false
	l := NewList(func(context.Context) ([]models.Car, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return []models.Car{{ID: 1}}, nil
	})
	ctx := context.Background()
	require.NoError(t, l.Load(ctx))

	fail = true
	require.Error(t, l.Load(ctx))
	assert.Equal(t, []int64{1}, ids(l.Derived()))
}

func TestLoad_NilBecomesEmpty(t *testing.T) {
	l := NewList(func(context.Context) ([]models.Car, error) { return nil, nil })
	require.NoError(t, l.Load(context.Background()))
	assert.NotNil(t, l.Derived())
	assert.Zero(t, l.Len())
}

func TestFindAndReset(t *testing.T) {
	l := loaded(t, models.Car{ID: 4, Make: "VW"})
	l.ApplySort("make")
	l.ApplyFilter("v")

	c, ok := l.Find(4)
	require.True(t, ok)
	assert.Equal(t, "VW", c.Make)
	_, ok = l.Find(5)
	assert.False(t, ok)

	l.Reset()
	assert.Zero(t, l.Len())
	assert.Equal(t, SortState{}, l.Sort())
	assert.Empty(t, l.Filter())
}

// overlappingLoads issues two loads; the first one issued resolves last.
func overlappingLoads(t *testing.T, opts ...Option) []models.Car {
	t.Helper()
	gates := []chan []models.Car{make(chan []models.Car), make(chan []models.Car)}
	started := make(chan struct{})
	var n atomic.Int32

	l := NewList(func(context.Context) ([]models.Car, error) {
		i := n.Add(1) - 1
		started <- struct{}{}
		return <-gates[i], nil
	}, opts...)

	ctx := context.Background()
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- l.Load(ctx)
		}()
		<-started
	}

	gates[1] <- []models.Car{{ID: 2, Make: "newer request"}}
	require.NoError(t, <-errs)
	gates[0] <- []models.Car{{ID: 1, Make: "older request"}}
	require.NoError(t, <-errs)
	wg.Wait()

	return l.Derived()
}

func TestLoad_LastResolvedWins(t *testing.T) {
	got := overlappingLoads(t)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestLoad_StaleGuardKeepsNewestIssued(t *testing.T) {
	got := overlappingLoads(t, WithStaleGuard())
	assert.Equal(t, []int64{2}, ids(got))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "asc", Ascending.String())
	assert.Equal(t, "desc", Descending.String())
}
