package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentx/internal/repository/mocks"
)

func TestJobService_FinishExpiredSchedules(t *testing.T) {
	repo := &mocks.JobRepository{}
	repo.On("GetActiveScheduleIDsPastEndDate", mock.Anything).Return([]int64{3, 4}, nil)
	repo.On("UpdateScheduleStatuses", mock.Anything, []int64{3, 4}, StatusFinished).Return(nil)

	assert.NoError(t, NewJobService(repo).FinishExpiredSchedules(context.Background()))
	repo.AssertExpectations(t)
}

func TestJobService_FinishExpiredSchedulesNothingToDo(t *testing.T) {
	repo := &mocks.JobRepository{}
	repo.On("GetActiveScheduleIDsPastEndDate", mock.Anything).Return(nil, nil)

	assert.NoError(t, NewJobService(repo).FinishExpiredSchedules(context.Background()))
	repo.AssertNotCalled(t, "UpdateScheduleStatuses", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobService_FinishExpiredSchedulesErrors(t *testing.T) {
	repo := &mocks.JobRepository{}
	repo.On("GetActiveScheduleIDsPastEndDate", mock.Anything).Return(nil, errors.New("db down"))

	assert.Error(t, NewJobService(repo).FinishExpiredSchedules(context.Background()))
}

func TestJobService_StartRejectsBadSpec(t *testing.T) {
	_, err := NewJobService(&mocks.JobRepository{}).Start("every tuesday")
	assert.Error(t, err)
}

func TestJobService_Start(t *testing.T) {
	c, err := NewJobService(&mocks.JobRepository{}).Start("@daily")
	assert.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	c.Stop()
}
