package service

import (
	"fmt"
	"testing"

	"slovanglik/internal/domain"
	"slovanglik/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Summary(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("CategoryCounts", int64(123)).Return([]domain.CategoryCount{
		{Level: 1, Category: "числа", Count: 10},
		{Level: 1, Category: "приветствие", Count: 4},
		{Level: 3, Category: "мебель", Count: 7},
	}, nil)

	service := NewStatsService(mockRepo, testutil.NewTestLogger())

	counts, total, err := service.Summary(123)

	assert.NoError(t, err)
	assert.Len(t, counts, 3)
	assert.Equal(t, 21, total)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_Summary_Empty(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("CategoryCounts", int64(123)).Return([]domain.CategoryCount{}, nil)

	service := NewStatsService(mockRepo, testutil.NewTestLogger())

	counts, total, err := service.Summary(123)

	assert.NoError(t, err)
	assert.Empty(t, counts)
	assert.Zero(t, total)
}

func TestStatsService_Summary_RepositoryError(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("CategoryCounts", int64(123)).Return(nil, fmt.Errorf("db error"))

	service := NewStatsService(mockRepo, testutil.NewTestLogger())

	counts, total, err := service.Summary(123)

	assert.Error(t, err)
	assert.Nil(t, counts)
	assert.Zero(t, total)
}
