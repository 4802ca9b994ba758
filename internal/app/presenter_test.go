package app_test

import (
	"strings"
	"testing"
	"time"

	"hotelbook/internal/app"
	"hotelbook/internal/domain"
)

func sampleBooking(t *testing.T) domain.Booking {
	return domain.Booking{
		ID: "BK1717000000000ABCDE",
		Hotel: domain.Hotel{
			ID: "h001", Name: "Grand Palace Hotel", City: "Paris", Country: "France",
			Rating: 4.8, Price: 250, Currency: "EUR",
			Amenities: []string{"WiFi", "Pool", "Spa"},
			Address:   "123 Champs-Élysées, 75008 Paris, France",
		},
		CheckIn:   date(t, "2024-06-10"),
		CheckOut:  date(t, "2024-06-15"),
		Guests:    2,
		Nights:    5,
		TotalCost: 1250,
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Email:     "a@b.com",
	}
}

func TestSummary_ContainsAllSections(t *testing.T) {
	out := app.Presenter{}.Summary(sampleBooking(t))

	for _, want := range []string{
		"Booking ID: BK1717000000000ABCDE",
		"Hotel: Grand Palace Hotel",
		"Check-in: June 10, 2024",
		"Check-out: June 15, 2024",
		"Nights: 5",
		"Guests: 2",
		"- WiFi",
		"- Pool",
		"- Spa",
		"Room Rate: EUR 250 per night",
		"Total Cost: EUR 1250",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "SPECIAL REQUESTS") {
		t.Fatalf("empty preferences must not render a requests section")
	}
}

func TestSummary_IncludesPreferencesWhenSet(t *testing.T) {
	b := sampleBooking(t)
	b.Preferences = "quiet room, high floor"
	out := app.Presenter{}.Summary(b)
	if !strings.Contains(out, "SPECIAL REQUESTS") || !strings.Contains(out, "quiet room, high floor") {
		t.Fatalf("preferences not rendered:\n%s", out)
	}
}

func TestEmailHTML_RendersStandaloneDocument(t *testing.T) {
	html, err := app.Presenter{}.EmailHTML(sampleBooking(t))
	if err != nil {
		t.Fatalf("EmailHTML: %v", err)
	}
	for _, want := range []string{
		"<!doctype html>",
		"Booking Confirmation",
		"a@b.com",
		"BK1717000000000ABCDE",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("email preview missing %q", want)
		}
	}
}
