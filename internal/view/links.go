package view

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"

	"github.com/watchwhatwhere/showtimes/internal/model"
)

// Links builds the URLs the pages point at.  Booking links carry an
// HMAC-SHA256 of their target so the redirect only follows links this
// server rendered.
type Links struct {
	Prefix string // route mount point, "" or "/name"
	Key    []byte // signing key for booking targets
}

// Movie is the detail page of movie id.
func (l Links) Movie(id int) string {
	return l.Prefix + "/movie/" + strconv.Itoa(id)
}

// Booking points at the booking redirect for st.
func (l Links) Booking(st model.Showtime) string {
	q := url.Values{}
	q.Set("to", st.Link)
	q.Set("sig", l.Sign(st.Link))
	q.Set("movie_id", strconv.Itoa(st.MovieID))
	q.Set("showtime_id", strconv.Itoa(st.ID))
	q.Set("cinema", st.Cinema)
	if st.Location != "" {
		q.Set("location", st.Location)
	}
	return l.Prefix + "/book?" + q.Encode()
}

// Sign returns the hex signature of target.
func (l Links) Sign(target string) string {
	return hex.EncodeToString(l.mac(target))
}

// Verify reports whether sig was issued for target.  Nothing verifies
// without a key.
func (l Links) Verify(target, sig string) bool {
	if len(l.Key) == 0 {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	return hmac.Equal(got, l.mac(target))
}

func (l Links) mac(target string) []byte {
	h := hmac.New(sha256.New, l.Key)
	h.Write([]byte(target))
	return h.Sum(nil)
}
