package userinfo

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/a-h/templ"
)

// DefaultColor is used when a card has no colour or an unsafe one.
const DefaultColor = "green"

var colorPattern = regexp.MustCompile(`^([a-zA-Z]{3,20}|#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6})$`)

// Data is what a user info card shows.
type Data struct {
	FirstName string
	LastName  string
	Notes     string
	Password  string
	Color     string
}

// SafeColor returns c when it is a plain colour name or hex code.
func SafeColor(c string) string {
	if colorPattern.MatchString(c) {
		return c
	}
	return DefaultColor
}

func UserInfo(data Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="user-info"><ul style="color: %s"><li>%s</li><li>%s</li><li>%s</li><li>%s</li></ul></div>`,
			SafeColor(data.Color),
			templ.EscapeString(data.FirstName),
			templ.EscapeString(data.LastName),
			templ.EscapeString(data.Notes),
			templ.EscapeString(data.Password))
		return err
	})
}
