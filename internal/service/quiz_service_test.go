package service

import (
	"context"
	"testing"
	"time"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

type countingQuizStore struct {
	fakeQuizStore
	findActiveCalls int
}

func (c *countingQuizStore) FindActive() ([]model.Quiz, error) {
	c.findActiveCalls++
	return c.fakeQuizStore.FindActive()
}

func newCacheFixture(t *testing.T) (*QuizService, *countingQuizStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := &countingQuizStore{fakeQuizStore: fakeQuizStore{quizzes: map[uint]*model.Quiz{
		1: {BaseModel: model.BaseModel{ID: 1}, Title: "Cached quiz", IsActive: true},
		2: {BaseModel: model.BaseModel{ID: 2}, Title: "Hidden quiz", IsActive: false},
	}}}
	return NewQuizService(store, rdb, 30*time.Second), store, mr
}

func TestListActiveUsesCache(t *testing.T) {
	svc, store, mr := newCacheFixture(t)
	ctx := context.Background()

	first, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if len(first) != 1 || first[0].ID != 1 {
		t.Fatalf("expected only the active quiz, got %+v", first)
	}
	if !mr.Exists(activeQuizCacheKey) {
		t.Fatalf("expected cache key to be set")
	}

	if _, err := svc.ListActive(ctx); err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if store.findActiveCalls != 1 {
		t.Fatalf("expected 1 store hit, got %d", store.findActiveCalls)
	}
}

func TestListActiveCacheExpires(t *testing.T) {
	svc, store, mr := newCacheFixture(t)
	ctx := context.Background()

	if _, err := svc.ListActive(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	mr.FastForward(31 * time.Second)

	if _, err := svc.ListActive(ctx); err != nil {
		t.Fatalf("list after expiry failed: %v", err)
	}
	if store.findActiveCalls != 2 {
		t.Fatalf("expected 2 store hits after expiry, got %d", store.findActiveCalls)
	}
}

func TestToggleActiveInvalidatesCache(t *testing.T) {
	svc, store, mr := newCacheFixture(t)
	ctx := context.Background()

	if _, err := svc.ListActive(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	active, err := svc.ToggleActive(ctx, 1)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if active {
		t.Fatalf("expected quiz to be deactivated")
	}
	if mr.Exists(activeQuizCacheKey) {
		t.Fatalf("expected cache key to be invalidated")
	}

	after, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list after toggle failed: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("expected no active quizzes after toggle, got %+v", after)
	}
	if store.findActiveCalls != 2 {
		t.Fatalf("expected fresh store read after invalidation, got %d hits", store.findActiveCalls)
	}
}

func TestToggleActiveTwiceRestoresState(t *testing.T) {
	svc, _, _ := newCacheFixture(t)
	ctx := context.Background()

	first, err := svc.ToggleActive(ctx, 1)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	second, err := svc.ToggleActive(ctx, 1)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if first != false || second != true {
		t.Fatalf("expected toggles to flip and restore, got %v then %v", first, second)
	}
}

func TestListActiveWithoutRedis(t *testing.T) {
	store := &countingQuizStore{fakeQuizStore: fakeQuizStore{quizzes: map[uint]*model.Quiz{
		1: {BaseModel: model.BaseModel{ID: 1}, Title: "No cache", IsActive: true},
	}}}
	svc := NewQuizService(store, nil, 30*time.Second)

	for i := 0; i < 2; i++ {
		quizzes, err := svc.ListActive(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(quizzes) != 1 {
			t.Fatalf("expected 1 quiz, got %d", len(quizzes))
		}
	}
	if store.findActiveCalls != 2 {
		t.Fatalf("expected store hit per call without redis, got %d", store.findActiveCalls)
	}
}
