package banners

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerhub/bannerhub/internal/shared"
)

type memoryRepo struct {
	mu      sync.Mutex
	banners map[string]Banner
	err     error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{banners: make(map[string]Banner)}
}

func (m *memoryRepo) Upsert(ctx context.Context, banner Banner) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, exists := m.banners[banner.ID]
	m.banners[banner.ID] = banner
	return !exists, nil
}

func (m *memoryRepo) Get(ctx context.Context, id string) (Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Banner{}, m.err
	}
	b, ok := m.banners[id]
	if !ok {
		return Banner{}, fmt.Errorf("banner %s: %w", id, shared.ErrNotFound)
	}
	return b, nil
}

func sale() Banner {
	return Banner{ID: "b1", Title: "Sale", Description: "50% off", Timer: 30, URL: "http://x"}
}

func TestUpsertThenGet(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	result, err := svc.Upsert(ctx, sale())
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{ID: "b1", Status: StatusCreated}, result)

	view, err := svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, View{Title: "Sale", Description: "50% off", Timer: 30, URL: "http://x"}, view)
}

func TestUpsertReplacesAllFields(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sale())
	require.NoError(t, err)

	replacement := Banner{ID: "b1", Title: "Clearance", Description: "70% off", Timer: 0, URL: "https://y"}
	result, err := svc.Upsert(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, result.Status)

	view, err := svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, replacement.view(), view)

	again, err := svc.Upsert(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, again.Status)
	view, err = svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, replacement.view(), view)
}

func TestUpsertKeepsTimerAsGiven(t *testing.T) {
	for _, timer := range []float64{1.5, -5, 0, 3600} {
		svc := NewService(newMemoryRepo())
		b := sale()
		b.Timer = timer

		_, err := svc.Upsert(context.Background(), b)
		require.NoError(t, err)

		view, err := svc.Get(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, timer, view.Timer)
	}
}

func TestGetUnknownIsNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Get(context.Background(), "never")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetRequiresID(t *testing.T) {
	svc := NewService(newMemoryRepo())

	for _, id := range []string{"", "  "} {
		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrValidation)
	}
}

func TestUpsertValidation(t *testing.T) {
	cases := map[string]func(*Banner){
		"missing id":         func(b *Banner) { b.ID = "" },
		"missing title":      func(b *Banner) { b.Title = "" },
		"blank description":  func(b *Banner) { b.Description = "   " },
		"missing url":        func(b *Banner) { b.URL = "" },
		"everything missing": func(b *Banner) { *b = Banner{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newMemoryRepo()
			svc := NewService(repo)
			b := sale()
			mutate(&b)

			_, err := svc.Upsert(context.Background(), b)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrValidation)
			assert.Empty(t, repo.banners)
		})
	}
}

func TestUpsertPropagatesStoreError(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errors.New("too many connections")
	svc := NewService(repo)

	_, err := svc.Upsert(context.Background(), sale())
	require.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrValidation)
}
