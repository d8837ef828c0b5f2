package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/favbuddy/internal/application/port/mocks"
	"github.com/bnema/favbuddy/internal/application/usecase"
	"github.com/bnema/favbuddy/internal/domain/entity"
)

func TestListRuns_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	runs := mocks.NewMockRunHistoryRepository(ctrl)

	want := []*entity.EnrichSession{{ID: "r2"}, {ID: "r1"}}
	runs.EXPECT().Recent(gomock.Any(), usecase.DefaultRunListLimit).Return(want, nil)

	got, err := usecase.NewListRunsUseCase(runs).Execute(testContext(), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListRuns_ExplicitLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	runs := mocks.NewMockRunHistoryRepository(ctrl)
	runs.EXPECT().Recent(gomock.Any(), 5).Return(nil, nil)

	got, err := usecase.NewListRunsUseCase(runs).Execute(testContext(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListRuns_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	runs := mocks.NewMockRunHistoryRepository(ctrl)
	runs.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))

	_, err := usecase.NewListRunsUseCase(runs).Execute(testContext(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list runs")
}
