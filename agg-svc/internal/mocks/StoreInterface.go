package mocks

import (
	"context"

	"cardapio/agg-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t mock.TestingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	return m
}

func (_m *StoreInterface) RecordOrderCreated(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_m *StoreInterface) RecordStatusChange(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}
