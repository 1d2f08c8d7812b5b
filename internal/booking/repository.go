package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// OccupiedRoomNumbers returns the room numbers of this type with an
	// assignment overlapping the half-open interval [checkIn, checkOut).
	// The result may contain duplicates; callers count distinct numbers.
	OccupiedRoomNumbers(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) ([]int, error)

	// CreateWithAssignment atomically books a room: it re-reads the room
	// type capacity and the occupied set inside one transaction, picks the
	// lowest free room number and inserts the booking together with its
	// room assignment. Either both rows exist afterwards or neither does.
	CreateWithAssignment(ctx context.Context, b *Booking) (*BookedRoom, error)

	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// DeleteByIDs removes the given bookings and their room assignments in
	// one transaction. When any id is missing the whole delete rolls back.
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// occupiedRoomNumbersQuery builds the shared overlap query. Overlap of
// half-open intervals: existing.check_in < requested.check_out AND
// existing.check_out > requested.check_in. Touching intervals do not overlap,
// which is what enables same-day turnover.
func occupiedRoomNumbersQuery(roomTypeID int64, checkIn, checkOut time.Time) (string, []interface{}, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("room_number").
		From("public.booked_rooms").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		Where(squirrel.Lt{"check_in_date": checkOut}).
		Where(squirrel.Gt{"check_out_date": checkIn}).
		ToSql()
}

func (r *pgxRepository) OccupiedRoomNumbers(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) ([]int, error) {
	query, args, err := occupiedRoomNumbersQuery(roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("build occupied rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("occupied rooms query failed: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan room number failed: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

func (r *pgxRepository) CreateWithAssignment(ctx context.Context, b *Booking) (*BookedRoom, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin booking transaction failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the room type row. Concurrent booking attempts for the same room
	// type serialize here, so the scan below sees a consistent snapshot.
	var capacity int
	err = tx.QueryRow(ctx,
		"SELECT available_rooms_number FROM public.room_types WHERE id = $1 FOR UPDATE",
		b.RoomTypeID,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("lock room type failed: %w", err)
	}

	query, args, err := occupiedRoomNumbersQuery(b.RoomTypeID, b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("build occupied rooms query failed: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("occupied rooms query failed: %w", err)
	}

	var occupied []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan room number failed: %w", err)
		}
		occupied = append(occupied, n)
	}
	rows.Close()

	roomNumber := firstFreeRoom(capacity, occupied)
	if roomNumber == 0 {
		return nil, ErrSoldOut
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err = psql.Insert("public.bookings").
		Columns("room_type_id", "check_in_date", "check_out_date", "guest_name", "guest_email", "guest_phone").
		Values(b.RoomTypeID, b.CheckInDate, b.CheckOutDate, b.GuestName, b.GuestEmail, b.GuestPhone).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("create booking failed: %w", err)
	}

	room := &BookedRoom{
		BookingID:    b.ID,
		RoomTypeID:   b.RoomTypeID,
		RoomNumber:   roomNumber,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
	}

	query, args, err = psql.Insert("public.booked_rooms").
		Columns("booking_id", "room_type_id", "room_number", "check_in_date", "check_out_date").
		Values(room.BookingID, room.RoomTypeID, room.RoomNumber, room.CheckInDate, room.CheckOutDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create booked room query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&room.ID); err != nil {
		// The exclusion constraint on (room_type_id, room_number, stay
		// range) is the backstop if a writer slipped past the row lock.
		// Losing that race is a conflict, never a silent double booking.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return nil, ErrSoldOut
		}
		return nil, fmt.Errorf("create booked room failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking failed: %w", err)
	}

	b.RoomNumber = room.RoomNumber
	return room, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.room_type_id", "b.check_in_date", "b.check_out_date",
		"br.room_number", "b.guest_name", "b.guest_email", "b.guest_phone", "b.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.booked_rooms br ON br.booking_id = b.id")

	if filter.FutureOnly {
		query = query.Where(squirrel.GtOrEq{"b.check_in_date": filter.Today})
	}

	query = query.OrderBy("b.check_in_date ASC", "b.id ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.RoomTypeID, &b.CheckInDate, &b.CheckOutDate,
			&b.RoomNumber, &b.GuestName, &b.GuestEmail, &b.GuestPhone, &b.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete transaction failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("public.booked_rooms").
		Where(squirrel.Eq{"booking_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booked rooms query failed: %w", err)
	}

	roomsCT, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booked rooms failed: %w", err)
	}

	query, args, err = psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete bookings query failed: %w", err)
	}

	bookingsCT, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete bookings failed: %w", err)
	}

	deleted := bookingsCT.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}

	// All-or-nothing: rolling back here keeps a half-matched bulk delete
	// from silently dropping only some of the requested bookings.
	if deleted != int64(len(ids)) || roomsCT.RowsAffected() != deleted {
		return ErrPartialDelete
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete failed: %w", err)
	}

	return nil
}
