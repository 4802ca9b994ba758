package app

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"hotelbook/internal/domain"
)

// Presenter projects a confirmed booking into human-readable text and a
// standalone email-preview document. Pure formatting; no transport exists.
type Presenter struct{}

const prettyDate = "January 2, 2006"

// Summary composes the confirmation message body.
func (Presenter) Summary(b domain.Booking) string {
	var sb strings.Builder
	sb.WriteString("Dear Guest,\n\n")
	sb.WriteString("Thank you for booking with HotelBook! Here are your booking details:\n\n")

	sb.WriteString("BOOKING CONFIRMATION\n")
	fmt.Fprintf(&sb, "Booking ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Booking Date: %s\n\n", b.CreatedAt.Format(prettyDate))

	sb.WriteString("HOTEL DETAILS\n")
	fmt.Fprintf(&sb, "Hotel: %s\n", b.Hotel.Name)
	fmt.Fprintf(&sb, "Address: %s\n", b.Hotel.Address)
	fmt.Fprintf(&sb, "Rating: %.1f\n\n", b.Hotel.Rating)

	sb.WriteString("STAY DETAILS\n")
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn.Format(prettyDate))
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut.Format(prettyDate))
	fmt.Fprintf(&sb, "Nights: %d\n", b.Nights)
	fmt.Fprintf(&sb, "Guests: %d\n\n", b.Guests)

	sb.WriteString("AMENITIES INCLUDED\n")
	for _, a := range b.Hotel.Amenities {
		fmt.Fprintf(&sb, "- %s\n", a)
	}
	sb.WriteString("\n")

	sb.WriteString("COST BREAKDOWN\n")
	fmt.Fprintf(&sb, "Room Rate: %s %.0f per night\n", b.Hotel.Currency, b.Hotel.Price)
	fmt.Fprintf(&sb, "Total Nights: %d\n", b.Nights)
	fmt.Fprintf(&sb, "Total Cost: %s %.0f\n", b.Hotel.Currency, b.TotalCost)

	if b.Preferences != "" {
		fmt.Fprintf(&sb, "\nSPECIAL REQUESTS\n%s\n", b.Preferences)
	}

	sb.WriteString("\nWe look forward to welcoming you!\n\nBest regards,\nHotelBook Team\n")
	return sb.String()
}

var emailTmpl = template.Must(template.New("email").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Confirmation Email</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; line-height: 1.6; }
.email-container { max-width: 600px; margin: 0 auto; border: 1px solid #ddd; padding: 20px; }
.header { background: #f8f9fa; padding: 15px; margin: -20px -20px 20px -20px; }
</style>
</head>
<body>
<div class="email-container">
<div class="header"><h1>HotelBook - Booking Confirmation</h1></div>
<p>Sent to: {{.To}} on {{.Date}}</p>
<pre style="white-space: pre-wrap; font-family: Arial, sans-serif;">{{.Body}}</pre>
</div>
</body>
</html>
`))

// EmailHTML renders the same content as a standalone document, the
// best-effort "preview the confirmation email" affordance. Rendering
// failure is returned, never fatal to the booking itself.
func (p Presenter) EmailHTML(b domain.Booking) (string, error) {
	var sb strings.Builder
	err := emailTmpl.Execute(&sb, struct {
		To   string
		Date string
		Body string
	}{
		To:   b.Email,
		Date: b.CreatedAt.Format(time.RFC1123),
		Body: p.Summary(b),
	})
	if err != nil {
		return "", fmt.Errorf("render email preview: %w", err)
	}
	return sb.String(), nil
}
