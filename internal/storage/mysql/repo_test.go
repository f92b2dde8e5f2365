package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelera/internal/domain"
)

func newTestRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestListRooms_NullNotes(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listRoomsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "floor", "capacity", "notes", "is_active"}).
			AddRow("r1", "101", 1, 2, nil, true).
			AddRow("r2", "102", 1, 2, "Fuga de agua", false))

	rooms, err := repo.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	assert.Nil(t, rooms[0].Notes)
	assert.True(t, rooms[0].Active)
	require.NotNil(t, rooms[1].Notes)
	assert.Equal(t, "Fuga de agua", *rooms[1].Notes)
	assert.False(t, rooms[1].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func summaryColumns() []string {
	return []string{
		"id", "booking_reference", "full_name", "number", "name",
		"check_in", "check_out", "nights", "price_per_night",
		"total", "balance", "status",
	}
}

func TestListBookingSummaries_ByCheckIn(t *testing.T) {
	repo, mock := newTestRepo(t)

	want := bookingSummarySelect +
		" WHERE (b.check_in_date >= ? AND b.check_in_date <= ?) ORDER BY b.check_in_date, b.id"
	mock.ExpectQuery(regexp.QuoteMeta(want)).
		WithArgs("2025-07-01", "2025-07-31").
		WillReturnRows(sqlmock.NewRows(summaryColumns()).
			AddRow("b1", "RES-1", "Ana Lopez", "101", "Directo",
				"2025-07-10", "2025-07-13", 3, 180000.0, 540000.0, 240000.0, "CONFIRMED"))

	out, err := repo.ListBookingSummaries(context.Background(), domain.BookingWindowQuery{
		Range:     domain.DateRange{Start: "2025-07-01", End: "2025-07-31"},
		ByCheckIn: true,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, domain.BookingConfirmed, s.Status)
	require.NotNil(t, s.TotalNights)
	assert.Equal(t, 3, *s.TotalNights)
	require.NotNil(t, s.BalanceDue)
	assert.Equal(t, 240000.0, *s.BalanceDue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingSummaries_OverlapWindow(t *testing.T) {
	repo, mock := newTestRepo(t)

	// a stay touches the window when it ends on or after the start and
	// begins on or before the end
	want := bookingSummarySelect +
		" WHERE (b.check_out_date >= ? AND b.check_in_date <= ?) ORDER BY b.check_in_date, b.id"
	mock.ExpectQuery(regexp.QuoteMeta(want)).
		WithArgs("2025-07-06", "2025-07-20").
		WillReturnRows(sqlmock.NewRows(summaryColumns()).
			AddRow("b2", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	out, err := repo.ListBookingSummaries(context.Background(), domain.BookingWindowQuery{
		Range: domain.DateRange{Start: "2025-07-06", End: "2025-07-20"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	// all-NULL joins decay to nil pointers and the pending fallback
	assert.Nil(t, out[0].GuestName)
	assert.Nil(t, out[0].CheckInDate)
	assert.Equal(t, domain.BookingPending, out[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getBookingSQL)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMonthlyKPIs_NoMonthsSkipsQuery(t *testing.T) {
	repo, mock := newTestRepo(t)

	out, err := repo.ListMonthlyKPIs(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMonthlyKPIs_TwoMonths(t *testing.T) {
	repo, mock := newTestRepo(t)

	want := monthlyKPIsSelect +
		" AND DATE_FORMAT(b.check_in_date, '%Y-%m-01') IN (?,?) GROUP BY month, c.name ORDER BY month, c.name"
	mock.ExpectQuery(regexp.QuoteMeta(want)).
		WithArgs("2025-06-01", "2025-07-01").
		WillReturnRows(sqlmock.NewRows([]string{"month", "name", "nights", "revenue", "revenue_no_tax", "bookings"}).
			AddRow("2025-06-01", "Directo", 40, 8000000.0, 6722689.07, 12).
			AddRow("2025-07-01", nil, 10, 2000000.0, 1680672.26, 3))

	out, err := repo.ListMonthlyKPIs(context.Background(), []string{"2025-06-01", "2025-07-01"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].ChannelName)
	assert.Equal(t, "Directo", *out[0].ChannelName)
	assert.Nil(t, out[1].ChannelName)
	assert.Equal(t, 10, out[1].NightsSold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBooking_WritesRawStatus(t *testing.T) {
	repo, mock := newTestRepo(t)

	ref := "RES-AB12CD34"
	in := "2025-07-10"
	out := "2025-07-13"
	price := 180000.0

	mock.ExpectExec(regexp.QuoteMeta(insertBookingSQL)).
		WithArgs("b1", ref, "g1", "r1", "c1", in, out, price, "CONFIRMED", true, 2, 2, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertBooking(context.Background(), domain.Booking{
		ID:                "b1",
		Reference:         &ref,
		GuestID:           "g1",
		RoomID:            "r1",
		ChannelID:         "c1",
		CheckInDate:       &in,
		CheckOutDate:      &out,
		PricePerNight:     &price,
		Status:            domain.BookingConfirmed,
		IncludesBreakfast: true,
		BreakfastQuantity: 2,
		NumberOfGuests:    2,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatus_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(updateBookingStatusSQL)).
		WithArgs("CANCELLED", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBookingStatus(context.Background(), "missing", domain.BookingCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPayments_MethodMapping(t *testing.T) {
	repo, mock := newTestRepo(t)

	cols := []string{"id", "booking_id", "booking_reference", "full_name", "name",
		"amount", "payment_method", "payment_date", "created_at", "notes"}
	mock.ExpectQuery(regexp.QuoteMeta(listPaymentsSQL)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("p1", "b1", "RES-1", "Ana Lopez", "Directo",
				320000.0, "CARD", "2025-07-06", "2025-07-06", nil).
			AddRow("p2", "b2", nil, nil, nil,
				-150000.0, "BARTER", nil, "2025-07-01", "devolucion"))

	out, err := repo.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].Method)
	assert.Equal(t, domain.PayCard, *out[0].Method)
	require.NotNil(t, out[0].PaymentDate)
	assert.Equal(t, "2025-07-06", *out[0].PaymentDate)

	// unknown raw methods stay unset instead of guessing
	assert.Nil(t, out[1].Method)
	assert.Nil(t, out[1].PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePayment_OK(t *testing.T) {
	repo, mock := newTestRepo(t)

	date := "2025-07-06"
	mock.ExpectExec(regexp.QuoteMeta(updatePaymentSQL)).
		WithArgs("b1", 320000.0, "TRANSFER", date, nil, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePayment(context.Background(), domain.PaymentRecord{
		ID:          "p1",
		BookingID:   "b1",
		Amount:      320000,
		Method:      domain.PayTransfer,
		PaymentDate: &date,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
