package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockModel is a mock implementation of service.Model
type MockModel struct {
	mock.Mock
}

func (m *MockModel) GenerateText(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	args := m.Called(ctx, prompt, jsonMode)
	return args.String(0), args.Error(1)
}

// Replying returns a MockModel that answers every call with reply.
func Replying(reply string) *MockModel {
	m := &MockModel{}
	m.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(reply, nil)
	return m
}
