package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockContentRepository mocks repository.ContentRepository.
type MockContentRepository struct {
	mock.Mock
}

func NewMockContentRepository(t testingT) *MockContentRepository {
	m := &MockContentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ContentPost), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, query repository.ListPostsQuery) ([]*entity.ContentPost, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.ContentPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) Create(ctx context.Context, post *entity.ContentPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockContentRepository) Update(ctx context.Context, post *entity.ContentPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
