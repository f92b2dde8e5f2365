package mysql

// Statements with a fixed shape live here; range- and set-parameterized
// selects are built with squirrel in repo.go.

const listRoomsSQL = `
SELECT id, number, floor, capacity, notes, is_active
FROM apartments
ORDER BY number
`

const listChannelsSQL = `
SELECT id, name
FROM channels
ORDER BY name
`

const getBookingSQL = `
SELECT
  id,
  booking_reference,
  guest_id,
  apartment_id,
  channel_id,
  DATE_FORMAT(check_in_date, '%Y-%m-%d'),
  DATE_FORMAT(check_out_date, '%Y-%m-%d'),
  price_per_night,
  status,
  includes_breakfast,
  breakfast_quantity,
  number_of_guests,
  observations
FROM bookings
WHERE id = ?
`

const listGuestsSQL = `
SELECT
  id, full_name, email, phone, city, country, nationality, address,
  document_type, document_number,
  emergency_contact_name, emergency_contact_phone, notes
FROM guests
ORDER BY full_name
`

const listGuestStaysSQL = `
SELECT
  guest_id,
  DATE_FORMAT(check_in_date, '%Y-%m-%d'),
  DATE_FORMAT(check_out_date, '%Y-%m-%d'),
  status
FROM bookings
`

// Payments joined with the booking they settle; the ledger shows every
// payment, including ones against cancelled bookings.
const listPaymentsSQL = `
SELECT
  p.id,
  p.booking_id,
  b.booking_reference,
  g.full_name,
  c.name,
  p.amount,
  p.payment_method,
  DATE_FORMAT(p.payment_date, '%Y-%m-%d'),
  DATE_FORMAT(p.created_at, '%Y-%m-%d'),
  p.notes
FROM payments p
LEFT JOIN bookings b ON b.id = p.booking_id
LEFT JOIN guests g   ON g.id = b.guest_id
LEFT JOIN channels c ON c.id = b.channel_id
ORDER BY p.payment_date DESC, p.created_at DESC
`

// bookingSummarySelect replicates the console's booking_summary view: one
// row per booking with guest/room/channel names, derived totals and the
// open balance after payments.
const bookingSummarySelect = `
SELECT
  b.id,
  b.booking_reference,
  g.full_name,
  a.number,
  c.name,
  DATE_FORMAT(b.check_in_date, '%Y-%m-%d'),
  DATE_FORMAT(b.check_out_date, '%Y-%m-%d'),
  DATEDIFF(b.check_out_date, b.check_in_date),
  b.price_per_night,
  DATEDIFF(b.check_out_date, b.check_in_date) * b.price_per_night,
  DATEDIFF(b.check_out_date, b.check_in_date) * b.price_per_night - COALESCE(paid.total, 0),
  b.status
FROM bookings b
LEFT JOIN guests g   ON g.id = b.guest_id
LEFT JOIN apartments a ON a.id = b.apartment_id
LEFT JOIN channels c ON c.id = b.channel_id
LEFT JOIN (
  SELECT booking_id, SUM(amount) AS total
  FROM payments
  GROUP BY booking_id
) paid ON paid.booking_id = b.id
`

// monthlyKPIsSelect folds non-cancelled bookings into per-month, per-channel
// rows (the monthly_kpis view). Tax-free revenue assumes the 19% IVA the
// property charges on every night.
const monthlyKPIsSelect = `
SELECT
  DATE_FORMAT(b.check_in_date, '%Y-%m-01') AS month,
  c.name,
  COALESCE(SUM(DATEDIFF(b.check_out_date, b.check_in_date)), 0),
  COALESCE(SUM(DATEDIFF(b.check_out_date, b.check_in_date) * b.price_per_night), 0),
  COALESCE(SUM(DATEDIFF(b.check_out_date, b.check_in_date) * b.price_per_night) / 1.19, 0),
  COUNT(*)
FROM bookings b
LEFT JOIN channels c ON c.id = b.channel_id
WHERE b.status <> 'CANCELLED'
`

const insertBookingSQL = `
INSERT INTO bookings
  (id, booking_reference, guest_id, apartment_id, channel_id,
   check_in_date, check_out_date, price_per_night, status,
   includes_breakfast, breakfast_quantity, number_of_guests, observations)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateBookingSQL = `
UPDATE bookings SET
  guest_id           = ?,
  apartment_id       = ?,
  channel_id         = ?,
  check_in_date      = ?,
  check_out_date     = ?,
  price_per_night    = ?,
  status             = ?,
  includes_breakfast = ?,
  breakfast_quantity = ?,
  number_of_guests   = ?,
  observations       = ?,
  updated_at         = CURRENT_TIMESTAMP
WHERE id = ?
`

const updateBookingStatusSQL = `
UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

const insertGuestSQL = `
INSERT INTO guests
  (id, full_name, document_type, document_number, country, phone, email,
   city, nationality, address, emergency_contact_name, emergency_contact_phone, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateGuestSQL = `
UPDATE guests SET
  full_name               = ?,
  document_type           = ?,
  document_number         = ?,
  country                 = ?,
  phone                   = ?,
  email                   = ?,
  city                    = ?,
  nationality             = ?,
  address                 = ?,
  emergency_contact_name  = ?,
  emergency_contact_phone = ?,
  notes                   = ?,
  updated_at              = CURRENT_TIMESTAMP
WHERE id = ?
`

const insertPaymentSQL = `
INSERT INTO payments (id, booking_id, amount, payment_method, payment_date, notes)
VALUES (?, ?, ?, ?, ?, ?)
`

const updatePaymentSQL = `
UPDATE payments SET
  booking_id     = ?,
  amount         = ?,
  payment_method = ?,
  payment_date   = ?,
  notes          = ?
WHERE id = ?
`
