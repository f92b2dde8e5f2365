package mysql

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"hotelera/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func f64Ptr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	i := int(n.Int64)
	return &i
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		var notes sql.NullString
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Floor, &rm.Capacity, &notes, &rm.Active); err != nil {
			return nil, err
		}
		rm.Notes = strPtr(notes)
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.db.QueryContext(ctx, listChannelsSQL)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()

	var out []domain.Channel
	for rows.Next() {
		var c domain.Channel
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) ListBookingSummaries(ctx context.Context, q domain.BookingWindowQuery) ([]domain.BookingSummary, error) {
	var pred sq.Sqlizer
	if q.ByCheckIn {
		pred = sq.And{
			sq.GtOrEq{"b.check_in_date": q.Range.Start},
			sq.LtOrEq{"b.check_in_date": q.Range.End},
		}
	} else {
		// any stay touching the window
		pred = sq.And{
			sq.GtOrEq{"b.check_out_date": q.Range.Start},
			sq.LtOrEq{"b.check_in_date": q.Range.End},
		}
	}
	where, args, err := pred.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	query := bookingSummarySelect + " WHERE " + where + " ORDER BY b.check_in_date, b.id"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking summaries: %w", err)
	}
	defer rows.Close()

	var out []domain.BookingSummary
	for rows.Next() {
		var s domain.BookingSummary
		var ref, guest, room, channel, checkIn, checkOut, status sql.NullString
		var nights sql.NullInt64
		var price, total, balance sql.NullFloat64
		if err := rows.Scan(&s.ID, &ref, &guest, &room, &channel, &checkIn, &checkOut, &nights, &price, &total, &balance, &status); err != nil {
			return nil, err
		}
		s.Reference = strPtr(ref)
		s.GuestName = strPtr(guest)
		s.RoomNumber = strPtr(room)
		s.ChannelName = strPtr(channel)
		s.CheckInDate = strPtr(checkIn)
		s.CheckOutDate = strPtr(checkOut)
		s.TotalNights = intPtr(nights)
		s.PricePerNight = f64Ptr(price)
		s.TotalAmount = f64Ptr(total)
		s.BalanceDue = f64Ptr(balance)
		s.Status = domain.MapBookingStatus(status.String)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, getBookingSQL, id)

	var b domain.Booking
	var ref, checkIn, checkOut, obs, status sql.NullString
	var price sql.NullFloat64
	err := row.Scan(
		&b.ID, &ref, &b.GuestID, &b.RoomID, &b.ChannelID,
		&checkIn, &checkOut, &price, &status,
		&b.IncludesBreakfast, &b.BreakfastQuantity, &b.NumberOfGuests, &obs,
	)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	b.Reference = strPtr(ref)
	b.CheckInDate = strPtr(checkIn)
	b.CheckOutDate = strPtr(checkOut)
	b.PricePerNight = f64Ptr(price)
	b.Observations = strPtr(obs)
	b.Status = domain.MapBookingStatus(status.String)
	return b, nil
}

func (r *Repo) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	rows, err := r.db.QueryContext(ctx, listGuestsSQL)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var out []domain.Guest
	for rows.Next() {
		var g domain.Guest
		var city, country, nat, addr, ecName, ecPhone, notes sql.NullString
		err := rows.Scan(
			&g.ID, &g.FullName, &g.Email, &g.Phone, &city, &country, &nat, &addr,
			&g.DocumentType, &g.DocumentNumber, &ecName, &ecPhone, &notes,
		)
		if err != nil {
			return nil, err
		}
		g.City = strPtr(city)
		g.Country = strPtr(country)
		g.Nationality = strPtr(nat)
		g.Address = strPtr(addr)
		g.EmergencyContactName = strPtr(ecName)
		g.EmergencyContactPhone = strPtr(ecPhone)
		g.Notes = strPtr(notes)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) ListGuestStays(ctx context.Context) ([]domain.GuestStay, error) {
	rows, err := r.db.QueryContext(ctx, listGuestStaysSQL)
	if err != nil {
		return nil, fmt.Errorf("list guest stays: %w", err)
	}
	defer rows.Close()

	var out []domain.GuestStay
	for rows.Next() {
		var s domain.GuestStay
		var checkIn, checkOut, status sql.NullString
		if err := rows.Scan(&s.GuestID, &checkIn, &checkOut, &status); err != nil {
			return nil, err
		}
		s.CheckInDate = strPtr(checkIn)
		s.CheckOutDate = strPtr(checkOut)
		s.Status = domain.MapBookingStatus(status.String)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, listPaymentsSQL)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var ref, guest, channel, method, date, created, notes sql.NullString
		if err := rows.Scan(&p.ID, &p.BookingID, &ref, &guest, &channel, &p.Amount, &method, &date, &created, &notes); err != nil {
			return nil, err
		}
		p.Reference = strPtr(ref)
		p.GuestName = strPtr(guest)
		p.ChannelName = strPtr(channel)
		if m, ok := domain.MapPaymentMethod(method.String); ok {
			p.Method = &m
		}
		p.PaymentDate = strPtr(date)
		p.CreatedAt = strPtr(created)
		p.Notes = strPtr(notes)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListMonthlyKPIs(ctx context.Context, months []string) ([]domain.MonthlyKPI, error) {
	if len(months) == 0 {
		return nil, nil
	}
	where, args, err := sq.Eq{"DATE_FORMAT(b.check_in_date, '%Y-%m-01')": months}.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kpi query: %w", err)
	}

	query := monthlyKPIsSelect + " AND " + where + " GROUP BY month, c.name ORDER BY month, c.name"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list monthly kpis: %w", err)
	}
	defer rows.Close()

	var out []domain.MonthlyKPI
	for rows.Next() {
		var k domain.MonthlyKPI
		var channel sql.NullString
		if err := rows.Scan(&k.Month, &channel, &k.NightsSold, &k.Revenue, &k.RevenueNoTax, &k.Bookings); err != nil {
			return nil, err
		}
		k.ChannelName = strPtr(channel)
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *Repo) InsertBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID,
		valStr(b.Reference),
		b.GuestID,
		b.RoomID,
		b.ChannelID,
		valStr(b.CheckInDate),
		valStr(b.CheckOutDate),
		valF64(b.PricePerNight),
		domain.RawBookingStatus(b.Status),
		b.IncludesBreakfast,
		b.BreakfastQuantity,
		b.NumberOfGuests,
		valStr(b.Observations),
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *Repo) UpdateBooking(ctx context.Context, b domain.Booking) error {
	res, err := r.db.ExecContext(ctx, updateBookingSQL,
		b.GuestID,
		b.RoomID,
		b.ChannelID,
		valStr(b.CheckInDate),
		valStr(b.CheckOutDate),
		valF64(b.PricePerNight),
		domain.RawBookingStatus(b.Status),
		b.IncludesBreakfast,
		b.BreakfastQuantity,
		b.NumberOfGuests,
		valStr(b.Observations),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return noneUpdated(res)
}

func (r *Repo) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, updateBookingStatusSQL, domain.RawBookingStatus(status), id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return noneUpdated(res)
}

func (r *Repo) InsertGuest(ctx context.Context, g domain.Guest) error {
	_, err := r.db.ExecContext(ctx, insertGuestSQL,
		g.ID,
		g.FullName,
		g.DocumentType,
		g.DocumentNumber,
		valStr(g.Country),
		g.Phone,
		g.Email,
		valStr(g.City),
		valStr(g.Nationality),
		valStr(g.Address),
		valStr(g.EmergencyContactName),
		valStr(g.EmergencyContactPhone),
		valStr(g.Notes),
	)
	if err != nil {
		return fmt.Errorf("insert guest: %w", err)
	}
	return nil
}

func (r *Repo) UpdateGuest(ctx context.Context, g domain.Guest) error {
	res, err := r.db.ExecContext(ctx, updateGuestSQL,
		g.FullName,
		g.DocumentType,
		g.DocumentNumber,
		valStr(g.Country),
		g.Phone,
		g.Email,
		valStr(g.City),
		valStr(g.Nationality),
		valStr(g.Address),
		valStr(g.EmergencyContactName),
		valStr(g.EmergencyContactPhone),
		valStr(g.Notes),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("update guest: %w", err)
	}
	return noneUpdated(res)
}

func (r *Repo) InsertPayment(ctx context.Context, p domain.PaymentRecord) error {
	_, err := r.db.ExecContext(ctx, insertPaymentSQL,
		p.ID,
		p.BookingID,
		p.Amount,
		domain.RawPaymentMethod(p.Method),
		valStr(p.PaymentDate),
		valStr(p.Notes),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *Repo) UpdatePayment(ctx context.Context, p domain.PaymentRecord) error {
	res, err := r.db.ExecContext(ctx, updatePaymentSQL,
		p.BookingID,
		p.Amount,
		domain.RawPaymentMethod(p.Method),
		valStr(p.PaymentDate),
		valStr(p.Notes),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return noneUpdated(res)
}

// noneUpdated maps a zero-row UPDATE to ErrNotFound. Drivers that cannot
// report affected rows pass through as success.
func noneUpdated(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
