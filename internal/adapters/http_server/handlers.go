package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelbook/internal/app"
	"hotelbook/internal/domain"
)

type Handlers struct {
	Search   *app.SearchService
	Flow     *app.ManualFlow
	Ledger   domain.Ledger
	Sessions *app.Sessions
	Present  app.Presenter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Post("/v1/search", h.manualSearch)
	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Get("/v1/bookings/{id}", h.getBooking)
	s.mux.Get("/v1/bookings/{id}/confirmation", h.bookingConfirmation)
	s.mux.Get("/v1/bookings/{id}/email", h.bookingEmailPreview)
	s.mux.Post("/v1/wizard/sessions", h.createSession)
	s.mux.Get("/v1/wizard/sessions/{id}", h.getSession)
	s.mux.Post("/v1/wizard/sessions/{id}/messages", h.submitTurn)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps the core error kinds onto HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrBusy):
		writeProblem(w, http.StatusConflict, "Reply In Flight", "the assistant is still composing a reply")
	case errors.Is(err, domain.ErrInvalidRequest):
		// The flows validate per step; reaching this is a server bug.
		log.Error().Err(err).Msg("booking commit rejected after validation")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "booking could not be committed")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
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

// ---- catalog ----

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Query", "q parameter is required")
		return
	}
	hotels, err := h.Search.Search(r.Context(), q)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": hotels, "count": len(hotels)})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Search.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}

	etag, body := calcETagAndBody(hotel)
	// The catalog never changes within a process.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

// ---- manual flow ----

type searchBody struct {
	City        string `json:"city"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	Email       string `json:"email"`
	Preferences string `json:"preferences"`
	HotelID     string `json:"hotel_id,omitempty"`
}

func (b searchBody) query() (app.SearchQuery, error) {
	q := app.SearchQuery{
		City:        b.City,
		Guests:      b.Guests,
		Email:       b.Email,
		Preferences: b.Preferences,
	}
	if b.CheckIn != "" {
		t, err := time.Parse(domain.DateLayout, b.CheckIn)
		if err != nil {
			return q, domain.Invalid("check_in", "must be YYYY-MM-DD")
		}
		q.CheckIn = t
	}
	if b.CheckOut != "" {
		t, err := time.Parse(domain.DateLayout, b.CheckOut)
		if err != nil {
			return q, domain.Invalid("check_out", "must be YYYY-MM-DD")
		}
		q.CheckOut = t
	}
	return q, nil
}

func decode[T any](r *http.Request, dst *T) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *Handlers) manualSearch(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := decode(r, &body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	q, err := body.query()
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	hotels, err := h.Flow.Search(r.Context(), q)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": hotels, "count": len(hotels)})
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := decode(r, &body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if body.HotelID == "" {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "hotel_id: is required")
		return
	}
	q, err := body.query()
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	b, err := h.Flow.Book(r.Context(), q, body.HotelID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// ---- bookings ----

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Ledger.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) bookingConfirmation(w http.ResponseWriter, r *http.Request) {
	b, err := h.Ledger.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.Present.Summary(b))); err != nil {
		log.Error().Err(err).Msg("failed to write confirmation body")
	}
}

func (h *Handlers) bookingEmailPreview(w http.ResponseWriter, r *http.Request) {
	b, err := h.Ledger.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
		return
	}
	html, err := h.Present.EmailHTML(b)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Error().Err(err).Msg("failed to write email preview body")
	}
}

// ---- dialogue wizard ----

type sessionView struct {
	ID         string                   `json:"id"`
	State      domain.WizardState       `json:"state"`
	Transcript []domain.DialogueMessage `json:"transcript"`
}

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	id, wiz := h.Sessions.Create()
	writeJSON(w, http.StatusCreated, sessionView{
		ID:         id,
		State:      wiz.State(),
		Transcript: wiz.Transcript(),
	})
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	wiz, err := h.Sessions.Get(id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionView{ID: id, State: wiz.State(), Transcript: wiz.Transcript()})
}

func (h *Handlers) submitTurn(w http.ResponseWriter, r *http.Request) {
	wiz, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "session not found")
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := decode(r, &body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	turn, err := wiz.SubmitTurn(r.Context(), body.Text)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reply": turn.Reply,
		"done":  turn.Done,
		"state": wiz.State(),
	})
}
