//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cinepass/internal/infra"
	"cinepass/internal/usecase/queries"
	queriesmock "cinepass/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetBooking(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()

	t.Run("returns the owner's booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		view := &queries.BookingView{ID: bookingID, CustomerID: ownerID, Reference: "BK000123"}
		store.EXPECT().FindBookingByID(gomock.Any(), bookingID).Return(view, nil)

		got, err := queries.NewBookingQueries(store).GetBooking(context.Background(), bookingID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("another customer's booking reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		view := &queries.BookingView{ID: bookingID, CustomerID: uuid.New()}
		store.EXPECT().FindBookingByID(gomock.Any(), bookingID).Return(view, nil)

		_, err := queries.NewBookingQueries(store).GetBooking(context.Background(), bookingID, ownerID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("store not-found maps to the query sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindBookingByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetBooking(context.Background(), bookingID, ownerID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueries_ListCustomerBookings(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns the customer's bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		items := []queries.BookingListItem{
			{ID: uuid.New(), Reference: "BK000001", Status: "confirmed"},
			{ID: uuid.New(), Reference: "BK000002", Status: "cancelled"},
		}
		store.EXPECT().ListBookingsByCustomer(gomock.Any(), ownerID).Return(items, nil)

		got, err := queries.NewBookingQueries(store).ListCustomerBookings(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("no bookings yields an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListBookingsByCustomer(gomock.Any(), ownerID).Return(nil, nil)

		got, err := queries.NewBookingQueries(store).ListCustomerBookings(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
