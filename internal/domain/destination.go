package domain

// Destination is one recommended place to travel. The ID is a
// lowercase-hyphenated slug assigned by the generating model; uniqueness
// within a batch is not enforced.
type Destination struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Tagline             string `json:"tagline"`
	WhyItFits           string `json:"whyItFits"`
	BestTimeToVisit     string `json:"bestTimeToVisit"`
	EstimatedDailySpend string `json:"estimatedDailySpend"`
	FlightTime          string `json:"flightTime"`
	ImageURL            string `json:"imageUrl"`
}
