package scope

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockStatusReader struct {
	mock.Mock
}

func (m *mockStatusReader) GetStatus(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
