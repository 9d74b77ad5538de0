package model

// Movie represents a film in the catalog as returned by the remote API.
// A movie is immutable once fetched and lives only as long as the page
// view that requested it.
//
// Fields:
//  ID          – catalog identifier.
//  Title       – display title with ratings and brackets already removed.
//  Synopsis    – free-text plot summary.
//  Cast        – comma separated cast list (may be empty).
//  Language    – spoken language(s).
//  Runtime     – human readable running time, e.g. "120 mins".
//  Genre       – genre label(s).
//  Rating      – classification such as "PG13" (may be empty).
//  OpeningDate – opening date as published by the exhibitor (may be empty).
//  Cinemas     – exhibitor chains currently showing the movie.
type Movie struct {
	ID          int      `json:"id"`           // movies.id
	Title       string   `json:"title"`        // movies.title
	Synopsis    string   `json:"synopsis"`     // movies.synopsis
	Cast        string   `json:"cast"`         // movies.cast
	Language    string   `json:"language"`     // movies.language
	Runtime     string   `json:"runtime"`      // movies.runtime
	Genre       string   `json:"genre"`        // movies.genre
	Rating      string   `json:"rating"`       // movies.rating (nullable)
	OpeningDate string   `json:"opening_date"` // movies.opening_date (nullable)
	Cinemas     []string `json:"cinemas,omitempty"`
}
