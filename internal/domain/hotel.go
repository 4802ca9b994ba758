package domain

// Hotel is a catalog record. Immutable after catalog generation; bookings
// carry their own copy rather than a reference into the catalog.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Rating      float64  `json:"rating"` // bounded 1.0..5.0
	Price       float64  `json:"price"`  // per night, always > 0
	Currency    string   `json:"currency"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Category    string   `json:"category"`
}
