package viewstate

import (
	"fmt"

	"companysite/models"
)

// State is everything one view session shows: the active section and the
// text typed into both forms.
type State struct {
	Page    models.Page
	Product models.ProductForm
	About   models.AboutForm
}

// InitialState is the state a new view session starts in.
func InitialState() State {
	return State{Page: models.PageHome}
}

// Action is a single user input applied to a State.
type Action interface {
	apply(State) (State, error)
}

// Navigate switches the active section. Form records are left alone.
type Navigate struct {
	Page models.Page
}

func (a Navigate) apply(s State) (State, error) {
	if !a.Page.Valid() {
		return s, fmt.Errorf("navigate: %w: %v", models.ErrUnknownPage, a.Page)
	}
	s.Page = a.Page
	return s, nil
}

// SetProductField replaces one field of the product form.
type SetProductField struct {
	Name  string
	Value string
}

func (a SetProductField) apply(s State) (State, error) {
	f, err := s.Product.With(a.Name, a.Value)
	if err != nil {
		return s, err
	}
	s.Product = f
	return s, nil
}

// SetAboutField replaces one field of the about form.
type SetAboutField struct {
	Name  string
	Value string
}

func (a SetAboutField) apply(s State) (State, error) {
	f, err := s.About.With(a.Name, a.Value)
	if err != nil {
		return s, err
	}
	s.About = f
	return s, nil
}

// Reduce returns the state that results from applying a to s. On error the
// original state is returned.
func Reduce(s State, a Action) (State, error) {
	if a == nil {
		return s, fmt.Errorf("nil action")
	}
	next, err := a.apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}
