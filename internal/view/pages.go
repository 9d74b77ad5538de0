package view

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/watchwhatwhere/showtimes/internal/model"
	"github.com/watchwhatwhere/showtimes/internal/showtime"
)

// SynopsisLimit is the number of runes of synopsis shown on catalog cards.
const SynopsisLimit = 180

// Catalog is the data behind the catalog page.
type Catalog struct {
	Title   string
	Loading bool
	Movies  []Card
}

// Card is one movie in the catalog.
type Card struct {
	Title    string
	Synopsis string
	Href     string
	Cinemas  []Badge
}

// Badge is a cinema chip on a catalog card.
type Badge struct {
	Name  string
	Class string
}

// Detail is the data behind a movie's page.
type Detail struct {
	Title   string
	Loading bool
	Movie   *model.Movie
	Days    []Day
	Count   int // showtimes across all days
}

// Day is one date card on the detail page.
type Day struct {
	Date    string
	Label   string
	Cinemas []CinemaRow
}

// CinemaRow lists one cinema's times for a day.  Showtimes is set when no
// record names a branch; otherwise the times are split across Branches.
type CinemaRow struct {
	Name      string
	Showtimes []Slot
	Branches  []Branch
}

// Branch is one location of a cinema chain.
type Branch struct {
	Name      string
	Showtimes []Slot
}

// Slot is one bookable time.
type Slot struct {
	Label string
	Href  string
}

// NewCatalog builds catalog cards.
func NewCatalog(links Links, movies []model.Movie) Catalog {
	cards := make([]Card, 0, len(movies))
	for _, m := range movies {
		badges := make([]Badge, 0, len(m.Cinemas))
		for _, name := range m.Cinemas {
			badges = append(badges, Badge{Name: name, Class: CinemaClass(name)})
		}
		cards = append(cards, Card{
			Title:    m.Title,
			Synopsis: Truncate(m.Synopsis, SynopsisLimit),
			Href:     links.Movie(m.ID),
			Cinemas:  badges,
		})
	}
	return Catalog{Title: "Movies", Movies: cards}
}

// NewDetail groups showtimes by date, cinema and branch for m's page.
// Dates are shown oldest first, cinemas and branches in first-seen order,
// times ascending.
func NewDetail(links Links, m *model.Movie, showtimes []model.Showtime) Detail {
	grouped := showtime.GroupByLocation(showtimes)
	days := make([]Day, 0, grouped.Len())
	for _, date := range grouped.SortedKeys() {
		cinemas, _ := grouped.Get(date)
		rows := make([]CinemaRow, 0, cinemas.Len())
		for _, name := range cinemas.Keys() {
			locs, _ := cinemas.Get(name)
			rows = append(rows, cinemaRow(links, name, locs))
		}
		days = append(days, Day{Date: date, Label: LongDate(date), Cinemas: rows})
	}
	return Detail{Title: m.Title, Movie: m, Days: days, Count: showtime.LocatedCount(grouped)}
}

func cinemaRow(links Links, name string, locs *showtime.Locations) CinemaRow {
	row := CinemaRow{Name: name}
	if keys := locs.Keys(); len(keys) == 1 && keys[0] == showtime.Other {
		list, _ := locs.Get(showtime.Other)
		row.Showtimes = slots(links, list)
		return row
	}
	for _, loc := range locs.Keys() {
		list, _ := locs.Get(loc)
		row.Branches = append(row.Branches, Branch{Name: loc, Showtimes: slots(links, list)})
	}
	return row
}

func slots(links Links, list []model.Showtime) []Slot {
	out := make([]Slot, 0, len(list))
	for _, st := range showtime.SortByTime(list) {
		out = append(out, Slot{Label: Clock(st.Time), Href: links.Booking(st)})
	}
	return out
}

// Truncate shortens s to limit runes, appending "..." when cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + "..."
}

// CinemaClass returns the badge style for a cinema chain.
func CinemaClass(name string) string {
	switch strings.ToLower(name) {
	case "cathay":
		return "badge-cathay"
	case "shaw":
		return "badge-shaw"
	}
	return ""
}

// LongDate formats "2024-01-02" as "Tuesday, January 2, 2024".  Unparseable
// input is returned as is.
func LongDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// Clock formats "18:05" or "18:05:00" as "06:05 PM".
func Clock(hhmm string) string {
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if t, err := time.Parse(layout, hhmm); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return hhmm
}
