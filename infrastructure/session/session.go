package session

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ViewParam carries the page view id in the query string and in every form.
const ViewParam = "v"

// DefaultTTL is how long an idle page view is kept when its page never closes it.
const DefaultTTL = 2 * time.Hour

func NewToken() string {
	return uuid.NewString()
}

// ViewPath is the site root for the page view id.
func ViewPath(id string) string {
	return "/?" + url.Values{ViewParam: {id}}.Encode()
}

func Expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return now.Add(ttl)
}
