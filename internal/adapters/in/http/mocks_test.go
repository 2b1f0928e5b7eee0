package http_test

import (
	"context"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
)

type MockCalculateQuote struct{ mock.Mock }

func (m *MockCalculateQuote) Handle(
	ctx context.Context,
	query queries.CalculateQuoteQuery,
) (queries.CalculateQuoteQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CalculateQuoteQueryResponse), args.Error(1)
}

type MockRegisterShipment struct{ mock.Mock }

func (m *MockRegisterShipment) Handle(
	ctx context.Context,
	cmd commands.RegisterShipmentCommand,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockTransitionShipmentStatus struct{ mock.Mock }

func (m *MockTransitionShipmentStatus) Handle(
	ctx context.Context,
	cmd commands.TransitionShipmentStatusCommand,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockFinalizeByTrackingCode struct{ mock.Mock }

func (m *MockFinalizeByTrackingCode) Handle(
	ctx context.Context,
	cmd commands.FinalizeByTrackingCodeCommand,
) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockCreateCourier struct{ mock.Mock }

func (m *MockCreateCourier) Handle(ctx context.Context, cmd commands.CreateCourierCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateCustomer struct{ mock.Mock }

func (m *MockCreateCustomer) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSetCustomerEnabled struct{ mock.Mock }

func (m *MockSetCustomerEnabled) Handle(ctx context.Context, cmd commands.SetCustomerEnabledCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetShipmentByTrackingCode struct{ mock.Mock }

func (m *MockGetShipmentByTrackingCode) Handle(
	ctx context.Context,
	query queries.GetShipmentByTrackingCodeQuery,
) (queries.GetShipmentByTrackingCodeQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetShipmentByTrackingCodeQueryResponse), args.Error(1)
}

type MockGetCourierShipments struct{ mock.Mock }

func (m *MockGetCourierShipments) Handle(
	ctx context.Context,
	query queries.GetCourierShipmentsQuery,
) ([]queries.GetCourierShipmentsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCourierShipmentsQueryResponse), args.Error(1)
}

type MockGetAllCouriers struct{ mock.Mock }

func (m *MockGetAllCouriers) Handle(
	ctx context.Context,
	query queries.GetAllCouriersQuery,
) ([]queries.GetAllCouriersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetAllCouriersQueryResponse), args.Error(1)
}
