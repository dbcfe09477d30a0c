package service

import (
	"context"
	"encoding/json"
	"time"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const activeQuizCacheKey = "quizapi:quizzes:active"

// QuizStore 测验存取接口，由 repository.QuizRepository 实现
type QuizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindActive() ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	ToggleActive(id uint) (bool, error)
	Delete(id uint) error
}

type QuizService struct {
	Store QuizStore
	Redis *redis.Client
	ttl   time.Duration
}

func NewQuizService(store QuizStore, rdb *redis.Client, cacheTTL time.Duration) *QuizService {
	return &QuizService{Store: store, Redis: rdb, ttl: cacheTTL}
}

func (s *QuizService) Create(ctx context.Context, quiz *model.Quiz) error {
	if err := s.Store.Create(quiz); err != nil {
		return err
	}
	s.InvalidateActiveCache(ctx)
	return nil
}

func (s *QuizService) Get(id uint) (*model.Quiz, error) {
	return s.Store.FindByID(id)
}

// ListActive 活动测验列表走短 TTL 的 redis 缓存，缓存不可用时直接回源
func (s *QuizService) ListActive(ctx context.Context) ([]model.Quiz, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, activeQuizCacheKey).Bytes(); err == nil {
			var quizzes []model.Quiz
			if json.Unmarshal(raw, &quizzes) == nil {
				return quizzes, nil
			}
		}
	}

	quizzes, err := s.Store.FindActive()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(quizzes); err == nil {
			if err := s.Redis.Set(ctx, activeQuizCacheKey, raw, s.ttl).Err(); err != nil {
				logger.Log.Warn("Failed to cache active quizzes", zap.Error(err))
			}
		}
	}

	return quizzes, nil
}

func (s *QuizService) Update(ctx context.Context, quiz *model.Quiz) error {
	if err := s.Store.Update(quiz); err != nil {
		return err
	}
	s.InvalidateActiveCache(ctx)
	return nil
}

// ToggleActive 原子翻转 active 标志并返回新值
func (s *QuizService) ToggleActive(ctx context.Context, id uint) (bool, error) {
	active, err := s.Store.ToggleActive(id)
	if err != nil {
		return false, err
	}
	s.InvalidateActiveCache(ctx)
	return active, nil
}

func (s *QuizService) Delete(ctx context.Context, id uint) error {
	if err := s.Store.Delete(id); err != nil {
		return err
	}
	s.InvalidateActiveCache(ctx)
	return nil
}

func (s *QuizService) InvalidateActiveCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, activeQuizCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate active quiz cache", zap.Error(err))
	}
}
