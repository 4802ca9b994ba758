package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"hotelbook/internal/domain"
)

type destination struct {
	city, country, currency string
}

// Destination pools for generated records. Flagship hotels below cover ten
// further cities on top of these.
var destinations = []destination{
	{"Barcelona", "Spain", "EUR"},
	{"Rome", "Italy", "EUR"},
	{"Sydney", "Australia", "AUD"},
	{"Toronto", "Canada", "CAD"},
	{"Berlin", "Germany", "EUR"},
	{"Amsterdam", "Netherlands", "EUR"},
	{"Prague", "Czech Republic", "CZK"},
	{"Vienna", "Austria", "EUR"},
	{"Stockholm", "Sweden", "SEK"},
	{"Copenhagen", "Denmark", "DKK"},
	{"Oslo", "Norway", "NOK"},
	{"Helsinki", "Finland", "EUR"},
	{"Lisbon", "Portugal", "EUR"},
	{"Madrid", "Spain", "EUR"},
	{"Brussels", "Belgium", "EUR"},
	{"Warsaw", "Poland", "PLN"},
	{"Budapest", "Hungary", "HUF"},
	{"Athens", "Greece", "EUR"},
	{"Istanbul", "Turkey", "TRY"},
	{"Bangkok", "Thailand", "THB"},
	{"Singapore", "Singapore", "SGD"},
	{"Hong Kong", "Hong Kong", "HKD"},
	{"Seoul", "South Korea", "KRW"},
	{"Mumbai", "India", "INR"},
	{"Delhi", "India", "INR"},
	{"São Paulo", "Brazil", "BRL"},
	{"Buenos Aires", "Argentina", "ARS"},
	{"Mexico City", "Mexico", "MXN"},
	{"Cairo", "Egypt", "EGP"},
	{"Cape Town", "South Africa", "ZAR"},
}

var hotelTypes = []string{
	"Grand Hotel", "Plaza Hotel", "Royal Hotel", "Imperial Hotel", "Boutique Hotel",
	"Business Hotel", "City Hotel", "Garden Hotel", "Palace Hotel", "Resort Hotel",
	"Luxury Inn", "Executive Hotel", "Premium Hotel", "Elite Hotel", "Signature Hotel",
}

var amenityGroups = [][]string{
	{"WiFi", "Restaurant", "Bar", "Gym", "Pool"},
	{"WiFi", "Spa", "Restaurant", "Room Service", "Concierge"},
	{"WiFi", "Business Center", "Meeting Rooms", "Restaurant", "Parking"},
	{"WiFi", "Pool", "Beach Access", "Water Sports", "Restaurant"},
	{"WiFi", "Ski Access", "Spa", "Restaurant", "Mountain View"},
	{"WiFi", "Airport Shuttle", "Restaurant", "Bar", "Luggage Storage"},
	{"WiFi", "Pet Friendly", "Restaurant", "Garden", "Parking"},
	{"WiFi", "Family Rooms", "Kids Club", "Pool", "Restaurant"},
}

var categories = []string{
	"Business", "Luxury", "Boutique", "Resort", "Budget", "Family", "Romantic", "Adventure",
}

var images = []string{
	"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=500",
	"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=500",
	"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=500",
	"https://images.unsplash.com/photo-1495365200479-c4ed1d35e1aa?w=500",
	"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=500",
	"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=500",
	"https://images.unsplash.com/photo-1580041065738-e72023775cdc?w=500",
	"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=500",
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=500",
	"https://images.unsplash.com/photo-1590381105924-c72589b9ef3f?w=500",
}

// flagships are the hand-authored head of the catalog. The generated tail
// starts at h011.
func flagships() []domain.Hotel {
	return []domain.Hotel{
		{
			ID: "h001", Name: "Grand Palace Hotel", City: "Paris", Country: "France",
			Rating: 4.8, Price: 250, Currency: "EUR", Image: images[0],
			Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym", "Room Service"},
			Description: "Luxurious 5-star hotel in the heart of Paris with stunning city views.",
			Address:     "123 Champs-Élysées, 75008 Paris, France", Category: "Luxury",
		},
		{
			ID: "h002", Name: "Ocean View Resort", City: "Miami", Country: "USA",
			Rating: 4.6, Price: 180, Currency: "USD", Image: images[1],
			Amenities:   []string{"Beach Access", "Pool", "WiFi", "Restaurant", "Bar", "Parking"},
			Description: "Beachfront resort with spectacular ocean views and modern amenities.",
			Address:     "456 Ocean Drive, Miami Beach, FL 33139, USA", Category: "Resort",
		},
		{
			ID: "h003", Name: "Mountain Lodge Retreat", City: "Aspen", Country: "USA",
			Rating: 4.7, Price: 320, Currency: "USD", Image: images[2],
			Amenities:   []string{"Ski Access", "Fireplace", "WiFi", "Restaurant", "Spa", "Hot Tub"},
			Description: "Cozy mountain lodge perfect for skiing and winter activities.",
			Address:     "789 Mountain View Dr, Aspen, CO 81611, USA", Category: "Lodge",
		},
		{
			ID: "h004", Name: "City Center Business Hotel", City: "New York", Country: "USA",
			Rating: 4.4, Price: 199, Currency: "USD", Image: images[3],
			Amenities:   []string{"WiFi", "Business Center", "Gym", "Restaurant", "Concierge", "Parking"},
			Description: "Modern business hotel in Manhattan's financial district.",
			Address:     "321 Wall Street, New York, NY 10005, USA", Category: "Business",
		},
		{
			ID: "h005", Name: "Boutique Charm Hotel", City: "London", Country: "UK",
			Rating: 4.5, Price: 160, Currency: "GBP", Image: images[4],
			Amenities:   []string{"WiFi", "Library", "Restaurant", "Bar", "Room Service", "Concierge"},
			Description: "Charming boutique hotel in the heart of London's West End.",
			Address:     "456 Piccadilly, London W1J 0DS, UK", Category: "Boutique",
		},
		{
			ID: "h006", Name: "Desert Oasis Resort", City: "Dubai", Country: "UAE",
			Rating: 4.9, Price: 400, Currency: "USD", Image: images[5],
			Amenities:   []string{"Pool", "Spa", "Golf Course", "WiFi", "Multiple Restaurants", "Butler Service"},
			Description: "Ultra-luxury resort in the heart of Dubai with world-class amenities.",
			Address:     "123 Sheikh Zayed Road, Dubai, UAE", Category: "Ultra-Luxury",
		},
		{
			ID: "h007", Name: "Sakura Garden Hotel", City: "Tokyo", Country: "Japan",
			Rating: 4.3, Price: 140, Currency: "USD", Image: images[6],
			Amenities:   []string{"WiFi", "Traditional Spa", "Restaurant", "Garden View", "Tea Service"},
			Description: "Traditional Japanese hotel with modern comforts in Shibuya.",
			Address:     "789 Shibuya Crossing, Tokyo 150-0043, Japan", Category: "Traditional",
		},
		{
			ID: "h008", Name: "Alpine View Hotel", City: "Zurich", Country: "Switzerland",
			Rating: 4.6, Price: 280, Currency: "CHF", Image: images[7],
			Amenities:   []string{"Mountain View", "WiFi", "Restaurant", "Spa", "Ski Storage", "Concierge"},
			Description: "Elegant hotel with breathtaking Alpine views and Swiss hospitality.",
			Address:     "321 Bahnhofstrasse, 8001 Zurich, Switzerland", Category: "Mountain",
		},
		{
			ID: "h009", Name: "Tropical Paradise Resort", City: "Bali", Country: "Indonesia",
			Rating: 4.7, Price: 120, Currency: "USD", Image: images[8],
			Amenities:   []string{"Beach Access", "Pool", "Spa", "WiFi", "Restaurant", "Water Sports"},
			Description: "Stunning beachfront resort in Bali with tropical gardens.",
			Address:     "456 Seminyak Beach, Bali 80361, Indonesia", Category: "Beach Resort",
		},
		{
			ID: "h010", Name: "Historic Castle Hotel", City: "Edinburgh", Country: "Scotland",
			Rating: 4.4, Price: 190, Currency: "GBP", Image: images[9],
			Amenities:   []string{"Historic Architecture", "WiFi", "Restaurant", "Bar", "Library", "Tour Guide"},
			Description: "Historic castle converted into a luxury hotel with period furnishings.",
			Address:     "123 Royal Mile, Edinburgh EH1 2NG, Scotland", Category: "Historic",
		},
	}
}

// Generate builds the full catalog: the flagship ten plus generated records
// up to size. Names, amenities, categories and images cycle through fixed
// pools; ratings and prices are drawn from bounded uniform ranges using the
// given seed, so tests can pin the output.
func Generate(seed int64, size int) []domain.Hotel {
	hotels := flagships()
	if size < len(hotels) {
		return hotels[:size]
	}
	head := len(hotels)
	rng := rand.New(rand.NewSource(seed))
	for i := head + 1; i <= size; i++ {
		k := i - head - 1
		dst := destinations[k%len(destinations)]
		cat := categories[k%len(categories)]
		hotels = append(hotels, domain.Hotel{
			ID:        fmt.Sprintf("h%03d", i),
			Name:      fmt.Sprintf("%s %s", hotelTypes[k%len(hotelTypes)], dst.city),
			City:      dst.city,
			Country:   dst.country,
			Rating:    float64(int((3.5+rng.Float64()*1.5)*10)) / 10,
			Price:     float64(80 + rng.Intn(301)),
			Currency:  dst.currency,
			Image:     images[k%len(images)],
			Amenities: amenityGroups[k%len(amenityGroups)],
			Description: fmt.Sprintf(
				"A wonderful %s hotel in the heart of %s offering excellent service and comfort.",
				strings.ToLower(cat), dst.city),
			Address:  fmt.Sprintf("%d Main Street, %s, %s", 1+rng.Intn(999), dst.city, dst.country),
			Category: cat,
		})
	}
	return hotels
}
