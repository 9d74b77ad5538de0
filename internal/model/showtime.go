package model

// Showtime represents one scheduled screening of a movie at a cinema
// branch.  Date and Time are kept as the strings the API sends so they
// can be grouped and sorted verbatim.
//
// Fields:
//  ID       – showtime identifier.
//  MovieID  – movie the screening belongs to.
//  Date     – calendar date, "YYYY-MM-DD".
//  Cinema   – exhibitor chain, e.g. "Cathay" or "Shaw".
//  Location – branch of the chain (may be empty).
//  Time     – start time, "HH:MM" or "HH:MM:SS".
//  Link     – deep link to the exhibitor's booking page.
type Showtime struct {
	ID       int    `json:"id"`       // showtime.id
	MovieID  int    `json:"movie_id"` // showtime.movie_id
	Date     string `json:"date"`     // showtime.date
	Cinema   string `json:"cinema"`   // showtime.cinema
	Location string `json:"location"` // showtime.location
	Time     string `json:"time"`     // showtime.time
	Link     string `json:"link"`     // showtime.link
}
