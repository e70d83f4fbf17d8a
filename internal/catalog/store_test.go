package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSource is a mock implementation of the Source interface
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Fetch(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func testProducts() []Product {
	return []Product{
		{ID: "1", Name: "Air Runner", Price: 12000, Rating: 4.5, Styles: StyleTags{"Sneakers"}},
		{ID: "2", Name: "Court Classic", Price: 9500, Rating: 4.1, Styles: StyleTags{"Sneakers"}},
		{ID: "3", Name: "Chelsea Boot", Price: 18500, Rating: 4.8, Styles: StyleTags{"Boots"}},
		{ID: "4", Name: "Trail Blazer", Price: 15000, Rating: 4.2, Styles: StyleTags{"Sneakers", "Outdoor"}},
		{ID: "5", Name: "Desert Boot", Price: 1500, Rating: 3.9, Styles: StyleTags{"Boots"}},
	}
}

func loadedStore(t *testing.T, pageSize int) *Store {
	t.Helper()
	src := new(MockSource)
	src.On("Fetch", mock.Anything).Return(testProducts(), nil).Once()

	s := NewStore(src, pageSize)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestStore_Load(t *testing.T) {
	t.Run("Fetches once per lifetime", func(t *testing.T) {
		src := new(MockSource)
		src.On("Fetch", mock.Anything).Return(testProducts(), nil).Once()

		s := NewStore(src, 4)
		ctx := context.Background()

		assert.NoError(t, s.Load(ctx))
		assert.NoError(t, s.Load(ctx))

		assert.Equal(t, 5, s.Len())
		assert.Equal(t, 4, s.VisibleCount())
		src.AssertNumberOfCalls(t, "Fetch", 1)
	})

	t.Run("Failure leaves catalog empty", func(t *testing.T) {
		src := new(MockSource)
		src.On("Fetch", mock.Anything).Return(nil, ErrFetchFailed).Once()

		s := NewStore(src, 4)
		err := s.Load(context.Background())

		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.VisibleSlice())
		assert.False(t, s.HasMore())

		// still once-only: a failed load is not retried this lifetime
		assert.NoError(t, s.Load(context.Background()))
		src.AssertNumberOfCalls(t, "Fetch", 1)
	})
}

func TestStore_ApplyFilter(t *testing.T) {
	t.Run("Style exact match, case-insensitive", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.ApplyFilter(Filter{Style: "sneakers"})

		assert.Equal(t, 3, s.Len())
		visible := s.VisibleSlice()
		require.Len(t, visible, 3)
		// original relative order preserved
		assert.Equal(t, ID("1"), visible[0].ID)
		assert.Equal(t, ID("2"), visible[1].ID)
		assert.Equal(t, ID("4"), visible[2].ID)
	})

	t.Run("Style matches any tag", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.ApplyFilter(Filter{Style: "Outdoor"})

		assert.Equal(t, 1, s.Len())
		assert.Equal(t, ID("4"), s.VisibleSlice()[0].ID)
	})

	t.Run("Search name substring", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.ApplyFilter(Filter{Search: "boot"})

		// "Chelsea Boot" and "Desert Boot" by name, plus both carry the
		// "Boots" tag anyway
		assert.Equal(t, 2, s.Len())
	})

	t.Run("Search tag containment is bidirectional", func(t *testing.T) {
		s := loadedStore(t, 4)

		// query contained in tag
		s.ApplyFilter(Filter{Search: "sneak"})
		assert.Equal(t, 3, s.Len())

		// tag contained in query
		s.ApplyFilter(Filter{Search: "cheap sneakers please"})
		assert.Equal(t, 3, s.Len())
	})

	t.Run("Search matches price string", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.ApplyFilter(Filter{Search: "18500"})

		require.Equal(t, 1, s.Len())
		assert.Equal(t, ID("3"), s.VisibleSlice()[0].ID)
	})

	t.Run("Style and search compose with AND", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.ApplyFilter(Filter{Style: "Boots", Search: "desert"})

		require.Equal(t, 1, s.Len())
		assert.Equal(t, ID("5"), s.VisibleSlice()[0].ID)
	})

	t.Run("No matches is an empty view, not an error", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.ApplyFilter(Filter{Style: "Sandals"})

		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.VisibleSlice())
		assert.False(t, s.HasMore())
	})

	t.Run("Resets cursor", func(t *testing.T) {
		s := loadedStore(t, 4)
		s.Advance(4)
		assert.Equal(t, 5, s.VisibleCount())

		s.ApplyFilter(Filter{})
		assert.Equal(t, 4, s.VisibleCount())
	})

	t.Run("Filter set before load survives it", func(t *testing.T) {
		src := new(MockSource)
		src.On("Fetch", mock.Anything).Return(testProducts(), nil).Once()

		s := NewStore(src, 4)
		s.ApplyFilter(Filter{Style: "Boots"})
		require.NoError(t, s.Load(context.Background()))

		assert.Equal(t, 2, s.Len())
	})
}

func TestStore_Advance(t *testing.T) {
	s := loadedStore(t, 4)

	assert.Equal(t, 4, s.VisibleCount())
	assert.True(t, s.HasMore())

	// 5 items, page size 4: 4 -> 5 (clamped), never 8
	s.Advance(4)
	assert.Equal(t, 5, s.VisibleCount())
	assert.False(t, s.HasMore())

	s.Advance(4)
	assert.Equal(t, 5, s.VisibleCount())

	// non-positive step means one page
	s2 := loadedStore(t, 2)
	s2.Advance(0)
	assert.Equal(t, 4, s2.VisibleCount())
}

func TestStore_VisibleSlice_IsCopy(t *testing.T) {
	s := loadedStore(t, 4)

	visible := s.VisibleSlice()
	visible[0].Name = "mutated"

	assert.Equal(t, "Air Runner", s.VisibleSlice()[0].Name)
}

func TestStore_Get(t *testing.T) {
	s := loadedStore(t, 4)

	t.Run("Found", func(t *testing.T) {
		p, err := s.Get("3")
		assert.NoError(t, err)
		assert.Equal(t, "Chelsea Boot", p.Name)
	})

	t.Run("Found regardless of filter", func(t *testing.T) {
		s.ApplyFilter(Filter{Style: "Sneakers"})
		p, err := s.Get("5")
		assert.NoError(t, err)
		assert.Equal(t, "Desert Boot", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.Get("999")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestStore_DefaultPageSize(t *testing.T) {
	src := new(MockSource)
	src.On("Fetch", mock.Anything).Return(testProducts(), nil).Once()

	s := NewStore(src, 0)
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, DefaultPageSize, s.VisibleCount())
}

func TestStore_LoadError_WrapsSourceError(t *testing.T) {
	src := new(MockSource)
	src.On("Fetch", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	s := NewStore(src, 4)
	err := s.Load(context.Background())
	assert.Error(t, err)
}
