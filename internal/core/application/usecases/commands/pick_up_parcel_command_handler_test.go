package commands_test

import (
	"errors"
	"testing"
	"time"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func receivedParcel(t *testing.T, id int64, trackingNumber string) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(trackingNumber, "顺丰", "张三", "302", "Admin", time.Now().Add(-time.Hour), parcel.Details{})
	require.NoError(t, err)
	require.NoError(t, p.MarkStored(id, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour)))
	return p
}

func pickedUpParcel(t *testing.T, id int64, trackingNumber string) *parcel.Parcel {
	t.Helper()
	receivedAt := time.Now().Add(-2 * time.Hour)
	pickedUpAt := time.Now().Add(-time.Hour)
	p, err := parcel.RestoreParcel(
		id, trackingNumber, "顺丰", "张三", "302", "Admin",
		receivedAt, parcel.Details{}, parcel.PickedUp, "张三", &pickedUpAt,
		receivedAt, pickedUpAt,
	)
	require.NoError(t, err)
	return p
}

func pickUpUoW(repo *MockParcelRepository) (*MockParcelUoW, *MockParcelUoWFactory) {
	uow := new(MockParcelUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestPickUpParcelCommandHandler_Handle_SuccessByID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(7, "", "张三", "picked up at desk")
	require.NoError(t, err)

	target := receivedParcel(t, 7, "SF123")
	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()
	repo.On("Update", mock.Anything, target, parcel.Received).Return(nil).Once()

	uow, factory := pickUpUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewPickUpParcelCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, parcel.PickedUp, updated.Status())
	assert.Equal(t, "张三", updated.PickedUpBy())
	require.NotNil(t, updated.PickedUpAt())
	assert.False(t, updated.PickedUpAt().Before(updated.ReceivedAt()))
	assert.Contains(t, updated.Notes(), "picked up at desk")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPickUpParcelCommandHandler_Handle_SuccessByTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(0, "SF123", "张三", "")
	require.NoError(t, err)

	target := receivedParcel(t, 7, "SF123")
	repo := new(MockParcelRepository)
	repo.On("GetByTrackingNumber", mock.Anything, "SF123").Return([]*parcel.Parcel{target}, nil).Once()
	repo.On("Update", mock.Anything, target, parcel.Received).Return(nil).Once()

	uow, factory := pickUpUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewPickUpParcelCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.PickedUp, updated.Status())
	repo.AssertExpectations(t)
}

func TestPickUpParcelCommandHandler_Handle_IDWinsOverTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(7, "SF999", "张三", "")
	require.NoError(t, err)

	target := receivedParcel(t, 7, "SF123")
	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()
	repo.On("Update", mock.Anything, target, parcel.Received).Return(nil).Once()

	uow, factory := pickUpUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetByTrackingNumber", mock.Anything, mock.Anything)
}

func TestPickUpParcelCommandHandler_Handle_NotFoundByID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(456, "", "张三", "")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, int64(456)).
		Return(nil, errs.NewObjectNotFoundError("id", int64(456))).Once()

	uow, factory := pickUpUoW(repo)

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPickUpParcelCommandHandler_Handle_NotFoundByTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(0, "NOPE", "张三", "")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("GetByTrackingNumber", mock.Anything, "NOPE").Return([]*parcel.Parcel{}, nil).Once()

	_, factory := pickUpUoW(repo)

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.ErrorContains(t, err, "tracking_number")
}

func TestPickUpParcelCommandHandler_Handle_AmbiguousTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(0, "SF123", "张三", "")
	require.NoError(t, err)

	// A second record with the same tracking number, even an already
	// collected one, makes the tracking number unusable as an identifier.
	matches := []*parcel.Parcel{
		receivedParcel(t, 7, "SF123"),
		pickedUpParcel(t, 8, "SF123"),
	}
	repo := new(MockParcelRepository)
	repo.On("GetByTrackingNumber", mock.Anything, "SF123").Return(matches, nil).Once()

	uow, factory := pickUpUoW(repo)

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrTrackingNumberAmbiguous)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, parcel.Received, matches[0].Status())
}

func TestPickUpParcelCommandHandler_Handle_AlreadyPickedUp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(8, "", "李四", "")
	require.NoError(t, err)

	target := pickedUpParcel(t, 8, "SF123")
	before := *target.PickedUpAt()
	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, int64(8)).Return(target, nil).Once()

	uow, factory := pickUpUoW(repo)

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.ErrorContains(t, err, "PickedUp")

	// the original pickup record is untouched
	assert.Equal(t, "张三", target.PickedUpBy())
	assert.Equal(t, before, *target.PickedUpAt())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPickUpParcelCommandHandler_Handle_ConcurrentPickupLoses(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(7, "", "李四", "")
	require.NoError(t, err)

	// The snapshot read is still Received, but another pickup commits first
	// and the conditional update matches no rows.
	target := receivedParcel(t, 7, "SF123")
	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()
	repo.On("Update", mock.Anything, target, parcel.Received).
		Return(errs.NewInvalidStateError("parcel", parcel.PickedUp.String())).Once()

	uow, factory := pickUpUoW(repo)

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestPickUpParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PickUpParcelCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPickUpParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPickUpParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPickUpParcelCommand(7, "", "张三", "")
	require.NoError(t, err)

	uow := new(MockParcelUoW)
	factory := new(MockParcelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPickUpParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
