package commands_test

import (
	"context"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/receiver"
	"mailroom/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id int64) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel, expected parcel.Status) error {
	args := m.Called(ctx, p, expected)
	return args.Error(0)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockReceiverRepository struct{ mock.Mock }

func (m *MockReceiverRepository) GetByName(ctx context.Context, name string) (*receiver.Receiver, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receiver.Receiver), args.Error(1)
}

func (m *MockReceiverRepository) Add(ctx context.Context, r *receiver.Receiver) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiverRepository) Update(ctx context.Context, r *receiver.Receiver) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockReceiverUoW struct{ mock.Mock }

func (m *MockReceiverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiverUoW) ReceiverRepository() ports.ReceiverRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiverRepository)
}

type MockReceiverUoWFactory struct{ mock.Mock }

func (m *MockReceiverUoWFactory) Create() commands.ReceiverUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceiverUoW)
}
