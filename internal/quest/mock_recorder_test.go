package quest

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// MockRecorder is a mock implementation of the Recorder interface
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordDelivery(questID string, reward domain.Reward, itemCount int) {
	m.Called(questID, reward, itemCount)
}

func (m *MockRecorder) RecordDeliveryRejected(questID string) {
	m.Called(questID)
}

func (m *MockRecorder) RecordPenalty(questID string, penalty domain.Penalty) {
	m.Called(questID, penalty)
}
