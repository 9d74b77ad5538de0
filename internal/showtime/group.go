package showtime

import (
	"sort"

	"github.com/watchwhatwhere/showtimes/internal/model"
)

// Other is the bucket used for records whose cinema (or location) is empty.
// Unrecognised but non-empty names always get their own key.  A cinema
// actually named "Other" shares this bucket with the unnamed records; every
// record is still kept.
const Other = "Other"

// Cinemas maps a cinema name to its showtimes.
type Cinemas = Index[[]model.Showtime]

// Dates maps a calendar date to the cinemas screening on that date.
type Dates = Index[*Cinemas]

// Locations maps a branch name to its showtimes.
type Locations = Index[[]model.Showtime]

// LocatedCinemas maps a cinema name to its branches.
type LocatedCinemas = Index[*Locations]

// LocatedDates maps a calendar date to cinemas and their branches.
type LocatedDates = Index[*LocatedCinemas]

// GroupByDate buckets showtimes by date, then cinema.  Keys are taken
// verbatim from each record; duplicates are kept.  Leaf order is input
// order; use SortByTime before display.
func GroupByDate(showtimes []model.Showtime) *Dates {
	out := newIndex[*Cinemas]()
	for _, st := range showtimes {
		cinemas := out.obtain(st.Date, newIndex[[]model.Showtime])
		key := bucket(st.Cinema)
		list, _ := cinemas.Get(key)
		cinemas.set(key, append(list, st))
	}
	return out
}

// GroupByLocation buckets showtimes by date, cinema, then location.
func GroupByLocation(showtimes []model.Showtime) *LocatedDates {
	out := newIndex[*LocatedCinemas]()
	for _, st := range showtimes {
		cinemas := out.obtain(st.Date, newIndex[*Locations])
		locations := cinemas.obtain(bucket(st.Cinema), newIndex[[]model.Showtime])
		key := bucket(st.Location)
		list, _ := locations.Get(key)
		locations.set(key, append(list, st))
	}
	return out
}

func bucket(name string) string {
	if name == "" {
		return Other
	}
	return name
}

// SortByTime returns a copy of showtimes ordered by their Time field using
// plain string comparison.  Equal times keep their input order.
func SortByTime(showtimes []model.Showtime) []model.Showtime {
	out := make([]model.Showtime, len(showtimes))
	copy(out, showtimes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Leaves reports the number of cinema groups across all dates.
func Leaves(d *Dates) int {
	n := 0
	for _, date := range d.keys {
		n += d.vals[date].Len()
	}
	return n
}

// Count reports the number of showtimes held across all leaf groups.
func Count(d *Dates) int {
	n := 0
	for _, date := range d.keys {
		cinemas := d.vals[date]
		for _, c := range cinemas.keys {
			n += len(cinemas.vals[c])
		}
	}
	return n
}

// LocatedLeaves reports the number of location groups across all dates.
func LocatedLeaves(d *LocatedDates) int {
	n := 0
	for _, date := range d.keys {
		cinemas := d.vals[date]
		for _, c := range cinemas.keys {
			n += cinemas.vals[c].Len()
		}
	}
	return n
}

// LocatedCount reports the number of showtimes in a three-level grouping.
func LocatedCount(d *LocatedDates) int {
	n := 0
	for _, date := range d.keys {
		cinemas := d.vals[date]
		for _, c := range cinemas.keys {
			locs := cinemas.vals[c]
			for _, l := range locs.keys {
				n += len(locs.vals[l])
			}
		}
	}
	return n
}
