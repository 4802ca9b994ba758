package app

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotelbook/internal/adapters/observability"
	"hotelbook/internal/domain"
)

const maxPresented = 3

// datePattern requires "check-in" before "check-out"; surrounding words are
// ignored but swapped order is rejected.
var datePattern = regexp.MustCompile(`(?i)check-in:\s*(\d{4}-\d{2}-\d{2}).*check-out:\s*(\d{4}-\d{2}-\d{2})`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const greeting = "Hello! I'm your booking assistant. I'll help you find the perfect hotel. " +
	"Let's start with your destination - which city would you like to visit?"

// Turn is the outcome of one wizard step: the agent's reply and whether the
// session reached a confirmed booking.
type Turn struct {
	Reply domain.DialogueMessage `json:"reply"`
	Done  bool                   `json:"done"`
}

// Wizard walks a user through the booking fields one free-text line at a
// time: city, dates, guests, email, then hotel selection and confirmation.
// It owns its session state; nothing is recovered from the transcript.
type Wizard struct {
	search *SearchService
	ledger domain.Ledger
	delay  func() time.Duration
	now    func() time.Time

	mu         sync.Mutex
	state      domain.WizardState
	awaiting   bool // single-flight: a reply is being composed
	req        domain.BookingRequest
	presented  []domain.Hotel // last search results shown, ≤ maxPresented
	transcript []domain.DialogueMessage
	booking    *domain.Booking
}

type WizardOption func(*Wizard)

// WithDelay overrides the thinking-delay source. Tests pass a zero delay.
func WithDelay(d func() time.Duration) WizardOption {
	return func(w *Wizard) { w.delay = d }
}

// WithWizardClock pins message timestamps.
func WithWizardClock(now func() time.Time) WizardOption {
	return func(w *Wizard) { w.now = now }
}

// ThinkingDelay is the production delay source: uniform 1..2 seconds.
func ThinkingDelay() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(time.Second)))
}

func NewWizard(search *SearchService, ledger domain.Ledger, opts ...WizardOption) *Wizard {
	w := &Wizard{
		search: search,
		ledger: ledger,
		delay:  ThinkingDelay,
		now:    time.Now,
		state:  domain.StateCity,
	}
	for _, o := range opts {
		o(w)
	}
	w.transcript = append(w.transcript, w.message(domain.RoleAgent, greeting, nil))
	return w
}

// SubmitTurn advances the machine one step. The reply is produced after the
// thinking delay elapses; while it is pending, further turns are refused
// with ErrBusy. A cancelled context abandons the turn without advancing.
func (w *Wizard) SubmitTurn(ctx context.Context, text string) (Turn, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return Turn{}, domain.Invalid("message", "must not be empty")
	}

	w.mu.Lock()
	if w.awaiting {
		w.mu.Unlock()
		return Turn{}, domain.ErrBusy
	}
	if w.state == domain.StateDone {
		w.mu.Unlock()
		return Turn{}, domain.Invalid("session", "booking already completed")
	}
	w.awaiting = true
	w.transcript = append(w.transcript, w.message(domain.RoleUser, input, nil))
	w.mu.Unlock()

	if !sleepCtx(ctx, w.delay()) {
		w.mu.Lock()
		w.awaiting = false
		w.mu.Unlock()
		return Turn{}, ctx.Err()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.awaiting = false

	observability.ObserveWizardTurn(string(w.state))
	turn, err := w.advance(ctx, input)
	if err != nil {
		return Turn{}, err
	}
	w.transcript = append(w.transcript, turn.Reply)
	return turn, nil
}

// advance applies one transition. Caller holds the lock.
func (w *Wizard) advance(ctx context.Context, input string) (Turn, error) {
	switch w.state {
	case domain.StateCity:
		return w.stepCity(input)
	case domain.StateDates:
		return w.stepDates(input)
	case domain.StateGuests:
		return w.stepGuests(input)
	case domain.StateEmail:
		return w.stepEmail(ctx, input)
	case domain.StateSelection:
		return w.stepSelection(input)
	case domain.StateConfirmation:
		return w.stepConfirmation(ctx, input)
	}
	return Turn{}, fmt.Errorf("wizard: unexpected state %q", w.state)
}

func (w *Wizard) stepCity(input string) (Turn, error) {
	w.req.City = input
	w.state = domain.StateDates
	return w.reply(fmt.Sprintf(
		"Great! You want to visit %s. Now, what are your check-in and check-out dates? "+
			`Please provide them in the format: "Check-in: YYYY-MM-DD, Check-out: YYYY-MM-DD"`,
		input), nil), nil
}

func (w *Wizard) stepDates(input string) (Turn, error) {
	m := datePattern.FindStringSubmatch(input)
	if m == nil {
		return w.reply("I couldn't understand the date format. Please provide dates like this: "+
			"'Check-in: 2024-06-10, Check-out: 2024-06-15'", nil), nil
	}
	checkIn, err1 := time.Parse(domain.DateLayout, m[1])
	checkOut, err2 := time.Parse(domain.DateLayout, m[2])
	if err1 != nil || err2 != nil {
		return w.reply("One of those dates doesn't exist on the calendar. Please try again, "+
			"e.g. 'Check-in: 2024-06-10, Check-out: 2024-06-15'", nil), nil
	}
	if !checkOut.After(checkIn) {
		return w.reply("Your check-out date must be after your check-in date. Please try again.", nil), nil
	}
	w.req.CheckIn, w.req.CheckOut = checkIn, checkOut
	w.state = domain.StateGuests
	return w.reply(fmt.Sprintf("Perfect! Check-in: %s, Check-out: %s. How many guests will be staying?",
		m[1], m[2]), nil), nil
}

func (w *Wizard) stepGuests(input string) (Turn, error) {
	guests, err := strconv.Atoi(input)
	if err != nil || guests < 1 || guests > 10 {
		return w.reply("Please enter a valid number of guests (1-10).", nil), nil
	}
	w.req.Guests = guests
	w.state = domain.StateEmail
	plural := ""
	if guests > 1 {
		plural = "s"
	}
	return w.reply(fmt.Sprintf("Got it! %d guest%s. I'll need your email address for the booking confirmation.",
		guests, plural), nil), nil
}

func (w *Wizard) stepEmail(ctx context.Context, input string) (Turn, error) {
	if !emailPattern.MatchString(input) {
		return w.reply("Please enter a valid email address.", nil), nil
	}
	w.req.Email = input

	// The search step is traversed synchronously within this transition.
	w.state = domain.StateSearch
	total, err := w.runSearch(ctx)
	if err != nil {
		w.state = domain.StateEmail
		w.req.Email = ""
		return Turn{}, err
	}
	if len(w.presented) == 0 {
		// Nowhere to go from an empty list; start over at the destination.
		w.state = domain.StateCity
		return w.reply(fmt.Sprintf(
			"I'm sorry, I couldn't find any hotels matching %s. Which other city would you like to try?",
			w.req.City), nil), nil
	}
	w.state = domain.StateSelection
	return w.reply(fmt.Sprintf("Excellent! I found %d hotels in %s. Here are the top %d options for you:",
		total, w.req.City, len(w.presented)), w.presented), nil
}

func (w *Wizard) stepSelection(input string) (Turn, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(w.presented) {
		return w.reply(fmt.Sprintf("Please enter a valid hotel number (1-%d).", len(w.presented)), nil), nil
	}
	chosen := w.presented[n-1]
	w.req.Hotel = &chosen

	nights := domain.Nights(w.req.CheckIn, w.req.CheckOut)
	total := float64(nights) * chosen.Price
	plural := ""
	if nights > 1 {
		plural = "s"
	}
	w.state = domain.StateConfirmation
	return w.reply(fmt.Sprintf(
		"Excellent choice! %s in %s.\n\nBooking Summary:\n- Hotel: %s\n- Dates: %s to %s (%d night%s)\n"+
			"- Guests: %d\n- Total Cost: %s %.0f\n\n"+
			`Type "confirm" to complete your booking, or "change" to select a different hotel.`,
		chosen.Name, chosen.City, chosen.Name,
		w.req.CheckIn.Format(domain.DateLayout), w.req.CheckOut.Format(domain.DateLayout),
		nights, plural, w.req.Guests, chosen.Currency, total), nil), nil
}

func (w *Wizard) stepConfirmation(ctx context.Context, input string) (Turn, error) {
	low := strings.ToLower(input)
	switch {
	case strings.Contains(low, "confirm"):
		b, err := w.ledger.Add(ctx, w.req)
		if err != nil {
			// Per-step validation should make this unreachable.
			return Turn{}, err
		}
		w.booking = &b
		w.state = domain.StateDone
		observability.ObserveBooking("wizard")
		t := w.reply(fmt.Sprintf(
			"Booking confirmed! Your booking ID is %s. A confirmation email will be sent to %s. "+
				"Thank you for choosing us!", b.ID, w.req.Email), nil)
		t.Done = true
		return t, nil

	case strings.Contains(low, "change"):
		w.state = domain.StateSearch
		if _, err := w.runSearch(ctx); err != nil {
			w.state = domain.StateConfirmation
			return Turn{}, err
		}
		w.state = domain.StateSelection
		return w.reply("No problem! Here are the hotel options again:", w.presented), nil

	default:
		return w.reply("Please type 'confirm' to complete your booking or 'change' to select a different hotel.", nil), nil
	}
}

// runSearch queries the catalog with the accumulated fields and overwrites
// the presented list. Returns the total match count before truncation to 3.
func (w *Wizard) runSearch(ctx context.Context) (int, error) {
	hotels, err := w.search.Search(ctx, w.req.City)
	if err != nil {
		return 0, err
	}
	total := len(hotels)
	if total > maxPresented {
		hotels = hotels[:maxPresented:maxPresented]
	}
	w.presented = hotels
	return total, nil
}

// State reports the current step for UI and test inspection.
func (w *Wizard) State() domain.WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Transcript returns a copy of the dialogue history, greeting included.
func (w *Wizard) Transcript() []domain.DialogueMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.DialogueMessage, len(w.transcript))
	copy(out, w.transcript)
	return out
}

// Booking returns the confirmed booking once the session is done.
func (w *Wizard) Booking() (domain.Booking, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.booking == nil {
		return domain.Booking{}, false
	}
	return *w.booking, true
}

func (w *Wizard) reply(text string, hotels []domain.Hotel) Turn {
	return Turn{Reply: w.message(domain.RoleAgent, text, hotels)}
}

func (w *Wizard) message(role domain.Role, text string, hotels []domain.Hotel) domain.DialogueMessage {
	return domain.DialogueMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: w.now().UTC(),
		Hotels:    hotels,
	}
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
