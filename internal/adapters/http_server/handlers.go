package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelera/internal/agg"
	"hotelera/internal/app"
	"hotelera/internal/domain"
	"hotelera/internal/format"
	"hotelera/internal/validate"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/board", h.getBoard)
	s.mux.Get("/v1/agenda", h.getAgenda)
	s.mux.Get("/v1/guests", h.listGuests)
	s.mux.Get("/v1/payments", h.listPayments)
	s.mux.Get("/v1/dashboard", h.getDashboard)
	s.mux.Get("/v1/channels", h.listChannels)

	s.mux.Get("/v1/bookings/{id}", h.getBooking)
	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Put("/v1/bookings/{id}", h.updateBooking)
	s.mux.Patch("/v1/bookings/{id}/cancel", h.cancelBooking)

	s.mux.Post("/v1/guests", h.createGuest)
	s.mux.Put("/v1/guests/{id}", h.updateGuest)

	s.mux.Post("/v1/payments", h.createPayment)
	s.mux.Put("/v1/payments/{id}", h.updatePayment)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem+json responses. Rejected
// drafts carry their field messages so the form can mark each input.
func writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(problem{
			Type:   "about:blank",
			Title:  "Unprocessable Entity",
			Status: http.StatusUnprocessableEntity,
			Detail: "draft rejected",
			Fields: verr.Fields,
		})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "resource not found")
		return
	}
	log.Error().Err(err).Msg("request failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func writeCreated(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write created body")
	}
}

// csv splits a comma-separated query value, dropping empty parts.
func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ---- read handlers ----

func (h *Handlers) getBoard(w http.ResponseWriter, r *http.Request) {
	view, err := h.Q.Board(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toBoardResponse(view))
}

func (h *Handlers) getAgenda(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := agg.BookingFilter{Query: q.Get("q")}
	for _, s := range csv(q.Get("status")) {
		filter.Statuses = append(filter.Statuses, domain.BookingStatus(s))
	}
	filter.Channels = csv(q.Get("channel"))

	view, err := h.Q.Agenda(r.Context(), q.Get("day"), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toAgendaResponse(view))
}

func (h *Handlers) listGuests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := agg.GuestFilter{Query: q.Get("q"), Tags: csv(q.Get("tag"))}
	for _, s := range csv(q.Get("status")) {
		filter.Statuses = append(filter.Statuses, domain.GuestStatus(s))
	}

	view, err := h.Q.Guests(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toGuestsResponse(view))
}

func (h *Handlers) listPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := agg.PaymentFilter{Query: q.Get("q"), Channels: csv(q.Get("channel"))}
	for _, s := range csv(q.Get("status")) {
		filter.Statuses = append(filter.Statuses, domain.PaymentStatus(s))
	}

	view, err := h.Q.Payments(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toPaymentsResponse(view))
}

func (h *Handlers) getDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.Q.Dashboard(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toDashboardResponse(view))
}

func (h *Handlers) listChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.Q.Channels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]channelDTO, 0, len(channels))
	for _, c := range channels {
		out = append(out, channelDTO{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Q.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toBookingDetail(b))
}

// ---- write handlers ----

type bookingRequest struct {
	GuestID           string `json:"guestId"`
	RoomID            string `json:"roomId"`
	ChannelID         string `json:"channelId"`
	CheckInDate       string `json:"checkInDate"`
	CheckOutDate      string `json:"checkOutDate"`
	PricePerNight     string `json:"pricePerNight"`
	Status            string `json:"status"`
	IncludesBreakfast bool   `json:"includesBreakfast"`
	BreakfastQuantity string `json:"breakfastQuantity"`
	NumberOfGuests    string `json:"numberOfGuests"`
	Observations      string `json:"observations"`
}

func (b bookingRequest) draft() validate.BookingDraft {
	return validate.BookingDraft(b)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	b, err := h.C.CreateBooking(r.Context(), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, toBookingDetail(b))
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	b, err := h.C.UpdateBooking(r.Context(), chi.URLParam(r, "id"), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toBookingDetail(b))
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.C.CancelBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type guestRequest struct {
	FullName              string `json:"fullName"`
	DocumentType          string `json:"documentType"`
	DocumentNumber        string `json:"documentNumber"`
	Country               string `json:"country"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	City                  string `json:"city"`
	Nationality           string `json:"nationality"`
	Address               string `json:"address"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	Notes                 string `json:"notes"`
}

func (g guestRequest) draft() validate.GuestDraft {
	return validate.GuestDraft(g)
}

func (h *Handlers) createGuest(w http.ResponseWriter, r *http.Request) {
	var req guestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	g, err := h.C.CreateGuest(r.Context(), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, toGuestDetail(g))
}

func (h *Handlers) updateGuest(w http.ResponseWriter, r *http.Request) {
	var req guestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	g, err := h.C.UpdateGuest(r.Context(), chi.URLParam(r, "id"), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toGuestDetail(g))
}

type paymentRequest struct {
	BookingID   string `json:"bookingId"`
	Amount      string `json:"amount"`
	Method      string `json:"paymentMethod"`
	PaymentDate string `json:"paymentDate"`
	Notes       string `json:"notes"`
}

func (p paymentRequest) draft() validate.PaymentDraft {
	return validate.PaymentDraft(p)
}

func (h *Handlers) createPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	p, err := h.C.CreatePayment(r.Context(), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, toPaymentRecordDTO(p))
}

func (h *Handlers) updatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	p, err := h.C.UpdatePayment(r.Context(), chi.URLParam(r, "id"), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, toPaymentRecordDTO(p))
}

// ---- response shapes ----

type channelDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type roomDTO struct {
	ID           string   `json:"id"`
	Number       string   `json:"number"`
	Floor        int      `json:"floor"`
	Status       string   `json:"status"`
	StatusLabel  string   `json:"statusLabel"`
	Guest        *string  `json:"guest,omitempty"`
	CheckIn      *string  `json:"checkIn,omitempty"`
	CheckOut     *string  `json:"checkOut,omitempty"`
	Channel      *string  `json:"channel,omitempty"`
	Rate         *float64 `json:"rate,omitempty"`
	RateLabel    string   `json:"rateLabel"`
	Housekeeping *string  `json:"housekeeping,omitempty"`
	Note         *string  `json:"note,omitempty"`
}

type boardStatsDTO struct {
	Total         int `json:"total"`
	Occupied      int `json:"occupied"`
	Available     int `json:"available"`
	Cleaning      int `json:"cleaning"`
	Maintenance   int `json:"maintenance"`
	OccupancyRate int `json:"occupancyRate"`
}

type arrivalDTO struct {
	Guest   string `json:"guest"`
	Room    string `json:"room"`
	Date    string `json:"date"`
	Channel string `json:"channel"`
}

type departureDTO struct {
	Guest   string `json:"guest"`
	Room    string `json:"room"`
	Date    string `json:"date"`
	Settled bool   `json:"settled"`
}

type alertDTO struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type housekeepingDTO struct {
	Room string `json:"room"`
	Task string `json:"task"`
}

type boardResponse struct {
	Date         string            `json:"date"`
	DateLabel    string            `json:"dateLabel"`
	Rooms        []roomDTO         `json:"rooms"`
	Stats        boardStatsDTO     `json:"stats"`
	Arrivals     []arrivalDTO      `json:"arrivals"`
	Departures   []departureDTO    `json:"departures"`
	Alerts       []alertDTO        `json:"alerts"`
	Housekeeping []housekeepingDTO `json:"housekeeping"`
}

func toBoardResponse(v app.BoardView) boardResponse {
	rooms := make([]roomDTO, 0, len(v.Rooms))
	for _, rv := range v.Rooms {
		rooms = append(rooms, roomDTO{
			ID:           rv.ID,
			Number:       rv.Number,
			Floor:        rv.Floor,
			Status:       string(rv.Status),
			StatusLabel:  rv.Status.Label(),
			Guest:        rv.Guest,
			CheckIn:      rv.CheckIn,
			CheckOut:     rv.CheckOut,
			Channel:      rv.Channel,
			Rate:         rv.Rate,
			RateLabel:    format.FormatCurrency(rv.Rate),
			Housekeeping: rv.Housekeeping,
			Note:         rv.Note,
		})
	}
	arrivals := make([]arrivalDTO, 0, len(v.Arrivals))
	for _, a := range v.Arrivals {
		arrivals = append(arrivals, arrivalDTO(a))
	}
	departures := make([]departureDTO, 0, len(v.Departures))
	for _, d := range v.Departures {
		departures = append(departures, departureDTO(d))
	}
	alerts := make([]alertDTO, 0, len(v.Alerts))
	for _, a := range v.Alerts {
		alerts = append(alerts, alertDTO(a))
	}
	tasks := make([]housekeepingDTO, 0, len(v.Housekeeping))
	for _, t := range v.Housekeeping {
		tasks = append(tasks, housekeepingDTO(t))
	}
	return boardResponse{
		Date:      v.Date,
		DateLabel: v.DateLabel,
		Rooms:     rooms,
		Stats: boardStatsDTO{
			Total:         v.Stats.Total,
			Occupied:      v.Stats.Occupied,
			Available:     v.Stats.Available,
			Cleaning:      v.Stats.Cleaning,
			Maintenance:   v.Stats.Maintenance,
			OccupancyRate: v.Stats.OccupancyRate,
		},
		Arrivals:     arrivals,
		Departures:   departures,
		Alerts:       alerts,
		Housekeeping: tasks,
	}
}

type bookingDTO struct {
	ID            string   `json:"id"`
	Reference     *string  `json:"reference,omitempty"`
	GuestName     *string  `json:"guestName,omitempty"`
	RoomNumber    *string  `json:"roomNumber,omitempty"`
	ChannelName   *string  `json:"channelName,omitempty"`
	CheckInDate   *string  `json:"checkInDate,omitempty"`
	CheckOutDate  *string  `json:"checkOutDate,omitempty"`
	TotalNights   *int     `json:"totalNights,omitempty"`
	PricePerNight *float64 `json:"pricePerNight,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	TotalLabel    string   `json:"totalLabel"`
	BalanceDue    *float64 `json:"balanceDue,omitempty"`
	Status        string   `json:"status"`
	StatusLabel   string   `json:"statusLabel"`
}

func toBookingDTO(b domain.BookingSummary) bookingDTO {
	return bookingDTO{
		ID:            b.ID,
		Reference:     b.Reference,
		GuestName:     b.GuestName,
		RoomNumber:    b.RoomNumber,
		ChannelName:   b.ChannelName,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		TotalNights:   b.TotalNights,
		PricePerNight: b.PricePerNight,
		TotalAmount:   b.TotalAmount,
		TotalLabel:    format.FormatCurrency(b.TotalAmount),
		BalanceDue:    b.BalanceDue,
		Status:        string(b.Status),
		StatusLabel:   b.Status.Label(),
	}
}

type dayGroupDTO struct {
	Key      string       `json:"key"`
	Label    string       `json:"label"`
	Date     string       `json:"date"`
	IsToday  bool         `json:"isToday"`
	Bookings []bookingDTO `json:"bookings"`
}

type bookingCountsDTO struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	CheckIns  int `json:"checkIns"`
	Cancelled int `json:"cancelled"`
}

type weekDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type agendaResponse struct {
	Week     weekDTO          `json:"week"`
	Groups   []dayGroupDTO    `json:"groups"`
	Counts   bookingCountsDTO `json:"counts"`
	Channels []string         `json:"channels"`
}

func toAgendaResponse(v app.AgendaView) agendaResponse {
	groups := make([]dayGroupDTO, 0, len(v.Groups))
	for _, g := range v.Groups {
		bookings := make([]bookingDTO, 0, len(g.Bookings))
		for _, b := range g.Bookings {
			bookings = append(bookings, toBookingDTO(b))
		}
		groups = append(groups, dayGroupDTO{
			Key:      g.Key,
			Label:    g.Label,
			Date:     g.Date,
			IsToday:  g.IsToday,
			Bookings: bookings,
		})
	}
	return agendaResponse{
		Week:     weekDTO(v.Week),
		Groups:   groups,
		Counts:   bookingCountsDTO(v.Counts),
		Channels: v.Channels,
	}
}

type guestDTO struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Country     *string  `json:"country,omitempty"`
	City        *string  `json:"city,omitempty"`
	Document    string   `json:"documentNumber"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"statusLabel"`
	Visits      int      `json:"visits"`
	TotalNights int      `json:"totalNights"`
	LastStay    *string  `json:"lastStay,omitempty"`
	Tags        []string `json:"tags"`
}

type guestCountsDTO struct {
	Total   int `json:"total"`
	VIP     int `json:"vip"`
	Blocked int `json:"blocked"`
}

type guestsResponse struct {
	Guests []guestDTO     `json:"guests"`
	Counts guestCountsDTO `json:"counts"`
	Tags   []string       `json:"tags"`
}

func toGuestsResponse(v app.GuestsView) guestsResponse {
	guests := make([]guestDTO, 0, len(v.Profiles))
	for _, p := range v.Profiles {
		guests = append(guests, guestDTO{
			ID:          p.ID,
			FullName:    p.FullName,
			Email:       p.Email,
			Phone:       p.Phone,
			Country:     p.Country,
			City:        p.City,
			Document:    p.DocumentNumber,
			Status:      string(p.Status),
			StatusLabel: p.Status.Label(),
			Visits:      p.Visits,
			TotalNights: p.TotalNights,
			LastStay:    p.LastStay,
			Tags:        p.Tags,
		})
	}
	return guestsResponse{
		Guests: guests,
		Counts: guestCountsDTO(v.Counts),
		Tags:   v.Tags,
	}
}

type paymentDTO struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	Reference   *string `json:"reference,omitempty"`
	GuestName   *string `json:"guestName,omitempty"`
	ChannelName *string `json:"channelName,omitempty"`
	Amount      float64 `json:"amount"`
	AmountLabel string  `json:"amountLabel"`
	Method      string  `json:"paymentMethod,omitempty"`
	MethodLabel string  `json:"methodLabel"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"statusLabel"`
	PaymentDate *string `json:"paymentDate,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type paymentTotalsDTO struct {
	Revenue      float64 `json:"revenue"`
	RevenueLabel string  `json:"revenueLabel"`
	RefundTotal  float64 `json:"refundTotal"`
	PendingCount int     `json:"pendingCount"`
}

type channelSliceDTO struct {
	Label string  `json:"label"`
	Sum   float64 `json:"sum"`
	Share float64 `json:"share"`
}

type paymentsResponse struct {
	Payments []paymentDTO      `json:"payments"`
	Totals   paymentTotalsDTO  `json:"totals"`
	Channels []channelSliceDTO `json:"channels"`
}

func toPaymentsResponse(v app.PaymentsView) paymentsResponse {
	payments := make([]paymentDTO, 0, len(v.Payments))
	for _, p := range v.Payments {
		dto := paymentDTO{
			ID:          p.ID,
			BookingID:   p.BookingID,
			Reference:   p.Reference,
			GuestName:   p.GuestName,
			ChannelName: p.ChannelName,
			Amount:      p.Amount,
			AmountLabel: format.FormatCurrency(&p.Amount),
			MethodLabel: "Sin metodo",
			Status:      string(p.Status()),
			StatusLabel: p.Status().Label(),
			PaymentDate: p.PaymentDate,
			Notes:       p.Notes,
		}
		if p.Method != nil {
			dto.Method = string(*p.Method)
			dto.MethodLabel = p.Method.Label()
		}
		payments = append(payments, dto)
	}
	channels := make([]channelSliceDTO, 0, len(v.Channels))
	for _, c := range v.Channels {
		channels = append(channels, channelSliceDTO(c))
	}
	return paymentsResponse{
		Payments: payments,
		Totals: paymentTotalsDTO{
			Revenue:      v.Totals.Revenue,
			RevenueLabel: format.FormatCurrency(&v.Totals.Revenue),
			RefundTotal:  v.Totals.RefundTotal,
			PendingCount: v.Totals.PendingCount,
		},
		Channels: channels,
	}
}

type trendDTO struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
}

type kpiDTO struct {
	Revenue       float64 `json:"revenue"`
	RevenueLabel  string  `json:"revenueLabel"`
	RevenueNoTax  float64 `json:"revenueNoTax"`
	NightsSold    int     `json:"nightsSold"`
	Bookings      int     `json:"bookings"`
	OccupancyRate float64 `json:"occupancyRate"`
	ADR           float64 `json:"adr"`
	ADRLabel      string  `json:"adrLabel"`
	RevPAR        float64 `json:"revpar"`
	RevPARLabel   string  `json:"revparLabel"`
}

type dashboardResponse struct {
	Month          string            `json:"month"`
	MonthLabel     string            `json:"monthLabel"`
	KPIs           kpiDTO            `json:"kpis"`
	RevenueTrend   trendDTO          `json:"revenueTrend"`
	OccupancyTrend trendDTO          `json:"occupancyTrend"`
	NightsTrend    trendDTO          `json:"nightsTrend"`
	Channels       []channelSliceDTO `json:"channels"`
}

func toDashboardResponse(v app.DashboardView) dashboardResponse {
	channels := make([]channelSliceDTO, 0, len(v.Channels))
	for _, c := range v.Channels {
		channels = append(channels, channelSliceDTO(c))
	}
	return dashboardResponse{
		Month:      v.Month,
		MonthLabel: v.MonthLabel,
		KPIs: kpiDTO{
			Revenue:       v.KPIs.Revenue,
			RevenueLabel:  format.FormatCurrency(&v.KPIs.Revenue),
			RevenueNoTax:  v.KPIs.RevenueNoTax,
			NightsSold:    v.KPIs.NightsSold,
			Bookings:      v.KPIs.Bookings,
			OccupancyRate: v.KPIs.OccupancyRate,
			ADR:           v.KPIs.ADR,
			ADRLabel:      format.FormatCurrency(&v.KPIs.ADR),
			RevPAR:        v.KPIs.RevPAR,
			RevPARLabel:   format.FormatCurrency(&v.KPIs.RevPAR),
		},
		RevenueTrend:   trendDTO{Text: v.RevenueTrend.Text, Direction: string(v.RevenueTrend.Direction)},
		OccupancyTrend: trendDTO{Text: v.OccupancyTrend.Text, Direction: string(v.OccupancyTrend.Direction)},
		NightsTrend:    trendDTO{Text: v.NightsTrend.Text, Direction: string(v.NightsTrend.Direction)},
		Channels:       channels,
	}
}

type bookingDetailDTO struct {
	ID                string   `json:"id"`
	Reference         *string  `json:"reference,omitempty"`
	GuestID           string   `json:"guestId"`
	RoomID            string   `json:"roomId"`
	ChannelID         string   `json:"channelId"`
	CheckInDate       *string  `json:"checkInDate,omitempty"`
	CheckOutDate      *string  `json:"checkOutDate,omitempty"`
	PricePerNight     *float64 `json:"pricePerNight,omitempty"`
	Status            string   `json:"status"`
	StatusLabel       string   `json:"statusLabel"`
	IncludesBreakfast bool     `json:"includesBreakfast"`
	BreakfastQuantity int      `json:"breakfastQuantity"`
	NumberOfGuests    int      `json:"numberOfGuests"`
	Observations      *string  `json:"observations,omitempty"`
}

func toBookingDetail(b domain.Booking) bookingDetailDTO {
	return bookingDetailDTO{
		ID:                b.ID,
		Reference:         b.Reference,
		GuestID:           b.GuestID,
		RoomID:            b.RoomID,
		ChannelID:         b.ChannelID,
		CheckInDate:       b.CheckInDate,
		CheckOutDate:      b.CheckOutDate,
		PricePerNight:     b.PricePerNight,
		Status:            string(b.Status),
		StatusLabel:       b.Status.Label(),
		IncludesBreakfast: b.IncludesBreakfast,
		BreakfastQuantity: b.BreakfastQuantity,
		NumberOfGuests:    b.NumberOfGuests,
		Observations:      b.Observations,
	}
}

type guestDetailDTO struct {
	ID             string  `json:"id"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	DocumentType   string  `json:"documentType"`
	DocumentNumber string  `json:"documentNumber"`
	Country        *string `json:"country,omitempty"`
	City           *string `json:"city,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	Address        *string `json:"address,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func toGuestDetail(g domain.Guest) guestDetailDTO {
	return guestDetailDTO{
		ID:             g.ID,
		FullName:       g.FullName,
		Email:          g.Email,
		Phone:          g.Phone,
		DocumentType:   g.DocumentType,
		DocumentNumber: g.DocumentNumber,
		Country:        g.Country,
		City:           g.City,
		Nationality:    g.Nationality,
		Address:        g.Address,
		Notes:          g.Notes,
	}
}

type paymentRecordDTO struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	Amount      float64 `json:"amount"`
	AmountLabel string  `json:"amountLabel"`
	Method      string  `json:"paymentMethod"`
	PaymentDate *string `json:"paymentDate,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func toPaymentRecordDTO(p domain.PaymentRecord) paymentRecordDTO {
	return paymentRecordDTO{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		AmountLabel: format.FormatCurrency(&p.Amount),
		Method:      string(p.Method),
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
	}
}
