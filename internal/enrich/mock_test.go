package enrich

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockFinder struct {
	mock.Mock
}

func (m *mockFinder) FindContacts(ctx context.Context, req ContactRequest) (*ContactResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*ContactResult)
	return res, args.Error(1)
}
