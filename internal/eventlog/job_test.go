package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	job := NewCleanupJob(service, 10)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(100), nil)

	err := job.Process(ctx)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 30)

	mockRepo.On("CleanupOldEvents", mock.Anything, 30).Return(int64(0), errors.New("timeout"))

	assert.Error(t, job.Process(context.Background()))
}

func TestCleanupJob_WrapsServiceError(t *testing.T) {
	cause := errors.New("timeout")
	mockRepo := new(MockRepository)
	mockRepo.On("CleanupOldEvents", mock.Anything, 7).Return(int64(0), cause)

	err := NewCleanupJob(NewService(mockRepo), 7).Process(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), ErrMsgCleanupFailed)
}
