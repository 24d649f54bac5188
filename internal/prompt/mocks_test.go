package prompt

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) DetectDefaultScope(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
