// Command seed fills an empty database with a demo dataset: rooms,
// channels, guests and a spread of bookings with payments. Intended for
// local development and demo environments only.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotelera/internal/adapters/observability"
	"hotelera/internal/domain"
	"hotelera/internal/format"
	"hotelera/internal/shared"
	mysqlrepo "hotelera/internal/storage/mysql"
)

const seedWorkers = 4

var channelNames = []string{"Directo", "Booking", "Expedia", "Airbnb"}

var guestSeeds = []struct {
	name, email, phone, doc string
}{
	{"Laura Diaz", "laura.diaz@mail.com", "3001234567", "CC-1020304050"},
	{"Carlos Mejia", "carlos.mejia@mail.com", "3109876543", "CC-8090102030"},
	{"Ana Rojas", "ana.rojas@mail.com", "3204567890", "CE-555443322"},
	{"Pedro Gutierrez", "pedro.g@mail.com", "3012223344", "CC-1122334455"},
	{"Marta Salazar", "marta.salazar@mail.com", "3156667788", "PA-AB123456"},
	{"Julian Ortiz", "julian.ortiz@mail.com", "3043332211", "CC-9988776655"},
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	repo := mysqlrepo.New(db)

	channelIDs := seedChannels(ctx, db)
	roomIDs := seedRooms(ctx, db, cfg.RoomsTotal)
	guestIDs := seedGuests(ctx, repo)

	// Bookings fan out over a bounded worker pool; each worker writes one
	// booking plus its payment.
	sem := semaphore.NewWeighted(int64(seedWorkers))
	var wg sync.WaitGroup
	today := time.Now()

	for i := 0; i < len(guestIDs)*2; i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			checkIn := today.AddDate(0, 0, i-len(guestIDs)) // spread around today
			if err := seedBooking(ctx, repo, seedBookingParams{
				guestID:   guestIDs[i%len(guestIDs)],
				roomID:    roomIDs[i%len(roomIDs)],
				channelID: channelIDs[i%len(channelIDs)],
				checkIn:   checkIn,
				nights:    1 + i%4,
				rate:      280000 + float64(i%5)*20000,
				seq:       i,
			}); err != nil {
				log.Warn().Int("seq", i).Err(err).Msg("seed booking failed")
				return
			}
			log.Info().Int("seq", i).Msg("booking seeded")
		}()
	}
	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedChannels(ctx context.Context, db *sql.DB) []string {
	ids := make([]string, 0, len(channelNames))
	for _, name := range channelNames {
		id := uuid.NewString()
		if _, err := db.ExecContext(ctx, `INSERT INTO channels (id, name) VALUES (?, ?)`, id, name); err != nil {
			log.Fatal().Err(err).Str("channel", name).Msg("insert channel failed")
		}
		ids = append(ids, id)
	}
	return ids
}

func seedRooms(ctx context.Context, db *sql.DB, count int) []string {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := uuid.NewString()
		floor := i/10 + 1
		number := fmt.Sprintf("%d%02d", floor, i%10+1)
		active := i != count-1 // keep the last room out of service for the demo board
		var notes any
		if !active {
			notes = "Reparacion aire acondicionado"
		}
		_, err := db.ExecContext(ctx,
			`INSERT INTO apartments (id, number, floor, capacity, notes, is_active) VALUES (?, ?, ?, ?, ?, ?)`,
			id, number, floor, 2+i%3, notes, active,
		)
		if err != nil {
			log.Fatal().Err(err).Str("room", number).Msg("insert room failed")
		}
		ids = append(ids, id)
	}
	return ids
}

func seedGuests(ctx context.Context, repo *mysqlrepo.Repo) []string {
	ids := make([]string, 0, len(guestSeeds))
	for _, g := range guestSeeds {
		guest := domain.Guest{
			ID:             uuid.NewString(),
			FullName:       g.name,
			Email:          g.email,
			Phone:          g.phone,
			DocumentType:   "CC",
			DocumentNumber: g.doc,
			Country:        ptr("Colombia"),
		}
		if err := repo.InsertGuest(ctx, guest); err != nil {
			log.Fatal().Err(err).Str("guest", g.name).Msg("insert guest failed")
		}
		ids = append(ids, guest.ID)
	}
	return ids
}

type seedBookingParams struct {
	guestID   string
	roomID    string
	channelID string
	checkIn   time.Time
	nights    int
	rate      float64
	seq       int
}

func seedBooking(ctx context.Context, repo *mysqlrepo.Repo, p seedBookingParams) error {
	checkIn := format.FormatDateKey(p.checkIn)
	checkOut := format.FormatDateKey(p.checkIn.AddDate(0, 0, p.nights))
	ref := fmt.Sprintf("RES-SEED%03d", p.seq)

	status := domain.BookingConfirmed
	switch {
	case p.checkIn.Before(time.Now().AddDate(0, 0, -p.nights)):
		status = domain.BookingCheckedOut
	case p.checkIn.Before(time.Now()):
		status = domain.BookingCheckedIn
	}

	b := domain.Booking{
		ID:             uuid.NewString(),
		Reference:      &ref,
		GuestID:        p.guestID,
		RoomID:         p.roomID,
		ChannelID:      p.channelID,
		CheckInDate:    &checkIn,
		CheckOutDate:   &checkOut,
		PricePerNight:  &p.rate,
		Status:         status,
		NumberOfGuests: 2,
	}
	if err := repo.InsertBooking(ctx, b); err != nil {
		return err
	}

	// every other booking gets its payment up front
	if p.seq%2 == 0 {
		payment := domain.PaymentRecord{
			ID:          uuid.NewString(),
			BookingID:   b.ID,
			Amount:      p.rate * float64(p.nights),
			Method:      domain.PayCard,
			PaymentDate: &checkIn,
		}
		if err := repo.InsertPayment(ctx, payment); err != nil {
			return err
		}
	}
	return nil
}

func ptr(s string) *string { return &s }
