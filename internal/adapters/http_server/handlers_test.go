package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "hotelbook/internal/adapters/http_server"
	"hotelbook/internal/app"
	"hotelbook/internal/catalog"
	"hotelbook/internal/domain"
	"hotelbook/internal/ledger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := catalog.NewGenerated(1, catalog.DefaultSize)
	book := ledger.New(ledger.WithSeed(1))
	search := app.NewSearchService(store, nil, time.Minute)

	srv := httpserver.New(10_000)
	srv.MountHandlers(&httpserver.Handlers{
		Search:   search,
		Flow:     app.NewManualFlow(search, book),
		Ledger:   book,
		Sessions: app.NewSessions(search, book, app.WithDelay(func() time.Duration { return 0 })),
	})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, res *http.Response, dst any) {
	t.Helper()
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return res
}

func TestSearchHotelsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/v1/hotels?q=paris")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body struct {
		Items []domain.Hotel `json:"items"`
		Count int            `json:"count"`
	}
	decodeBody(t, res, &body)
	if body.Count == 0 || body.Count > 20 {
		t.Fatalf("count %d out of expected range", body.Count)
	}
	for _, h := range body.Items {
		if !strings.EqualFold(h.City, "Paris") && !strings.Contains(strings.ToLower(h.Country), "paris") {
			t.Fatalf("non-matching hotel in results: %+v", h)
		}
	}

	// missing q is a client error
	res2, err := http.Get(ts.URL + "/v1/hotels?q=")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty q: status %d", res2.StatusCode)
	}
}

func TestGetHotelETag(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/v1/hotels/h001")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	etag := res.Header.Get("ETag")
	if res.StatusCode != http.StatusOK || etag == "" {
		t.Fatalf("status %d etag %q", res.StatusCode, etag)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/hotels/h001", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}

	res3, _ := http.Get(ts.URL + "/v1/hotels/h999")
	res3.Body.Close()
	if res3.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res3.StatusCode)
	}
}

func TestManualFlowEndpoints(t *testing.T) {
	ts := newTestServer(t)

	form := map[string]any{
		"city":      "Paris",
		"check_in":  "2024-06-10",
		"check_out": "2024-06-15",
		"guests":    2,
		"email":     "a@b.com",
	}

	res := postJSON(t, ts.URL+"/v1/search", form)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("search status %d", res.StatusCode)
	}
	var search struct {
		Items []domain.Hotel `json:"items"`
	}
	decodeBody(t, res, &search)
	if len(search.Items) == 0 {
		t.Fatalf("no hotels for Paris")
	}

	form["hotel_id"] = search.Items[0].ID
	form["preferences"] = "late check-in"
	res = postJSON(t, ts.URL+"/v1/bookings", form)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("booking status %d", res.StatusCode)
	}
	var b domain.Booking
	decodeBody(t, res, &b)
	if b.ID == "" || b.Nights != 5 || b.TotalCost != 5*search.Items[0].Price {
		t.Fatalf("unexpected booking: %+v", b)
	}

	// lookup, text confirmation and email preview
	res2, _ := http.Get(ts.URL + "/v1/bookings/" + b.ID)
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("get booking status %d", res2.StatusCode)
	}
	res2.Body.Close()

	res3, _ := http.Get(ts.URL + "/v1/bookings/" + b.ID + "/confirmation")
	if res3.StatusCode != http.StatusOK || !strings.HasPrefix(res3.Header.Get("Content-Type"), "text/plain") {
		t.Fatalf("confirmation status %d type %s", res3.StatusCode, res3.Header.Get("Content-Type"))
	}
	res3.Body.Close()

	res4, _ := http.Get(ts.URL + "/v1/bookings/" + b.ID + "/email")
	if res4.StatusCode != http.StatusOK || !strings.HasPrefix(res4.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("email preview status %d type %s", res4.StatusCode, res4.Header.Get("Content-Type"))
	}
	res4.Body.Close()
}

func TestManualFlowValidation(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/search", map[string]any{
		"city":      "Paris",
		"check_in":  "2024-06-10",
		"check_out": "2024-06-15",
		"guests":    2,
		"email":     "not-an-email",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected problem+json, got %s", ct)
	}
	var p struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, res, &p)
	if !strings.Contains(p.Detail, "email") {
		t.Fatalf("problem detail should name the field: %q", p.Detail)
	}
}

func TestWizardEndpoints(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/wizard/sessions", map[string]any{})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create session status %d", res.StatusCode)
	}
	var created struct {
		ID         string                   `json:"id"`
		State      domain.WizardState       `json:"state"`
		Transcript []domain.DialogueMessage `json:"transcript"`
	}
	decodeBody(t, res, &created)
	if created.State != domain.StateCity || len(created.Transcript) != 1 {
		t.Fatalf("unexpected fresh session: %+v", created)
	}

	turnURL := fmt.Sprintf("%s/v1/wizard/sessions/%s/messages", ts.URL, created.ID)
	script := []struct {
		text string
		next domain.WizardState
	}{
		{"Paris", domain.StateDates},
		{"Check-in: 2024-06-10, Check-out: 2024-06-15", domain.StateGuests},
		{"2", domain.StateEmail},
		{"a@b.com", domain.StateSelection},
		{"1", domain.StateConfirmation},
	}
	for _, step := range script {
		res := postJSON(t, turnURL, map[string]string{"text": step.text})
		if res.StatusCode != http.StatusOK {
			t.Fatalf("turn %q status %d", step.text, res.StatusCode)
		}
		var turn struct {
			State domain.WizardState `json:"state"`
			Done  bool               `json:"done"`
		}
		decodeBody(t, res, &turn)
		if turn.State != step.next {
			t.Fatalf("after %q state=%s want %s", step.text, turn.State, step.next)
		}
	}

	res = postJSON(t, turnURL, map[string]string{"text": "confirm"})
	var final struct {
		Reply domain.DialogueMessage `json:"reply"`
		Done  bool                   `json:"done"`
		State domain.WizardState     `json:"state"`
	}
	decodeBody(t, res, &final)
	if !final.Done || final.State != domain.StateDone {
		t.Fatalf("expected completed session, got %+v", final)
	}
	if !strings.Contains(final.Reply.Text, "BK") {
		t.Fatalf("confirmation reply should carry the booking id: %q", final.Reply.Text)
	}

	// unknown session
	res404 := postJSON(t, ts.URL+"/v1/wizard/sessions/nope/messages", map[string]string{"text": "hi"})
	res404.Body.Close()
	if res404.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", res404.StatusCode)
	}
}
