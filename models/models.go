package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPage is returned for a page outside the site's three sections.
	ErrUnknownPage = errors.New("unknown page")
	// ErrUnknownField is returned when a form edit names a field the form does not have.
	ErrUnknownField = errors.New("unknown field")
)

// Page selects the section currently shown to a view session.
type Page int

const (
	PageHome Page = iota
	PageProducts
	PageAbout
)

var pageNames = [...]string{
	PageHome:     "home",
	PageProducts: "products",
	PageAbout:    "about",
}

// Pages returns every section in menu order.
func Pages() []Page {
	return []Page{PageHome, PageProducts, PageAbout}
}

func (p Page) Valid() bool {
	return p >= PageHome && p <= PageAbout
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageNames[p]
}

// ParsePage maps the wire name of a section back to its Page.
func ParsePage(raw string) (Page, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, p := range Pages() {
		if pageNames[p] == v {
			return p, nil
		}
	}
	return PageHome, fmt.Errorf("%w: %q", ErrUnknownPage, raw)
}

// Condition is the state a catalog product is sold in.
type Condition int

const (
	ConditionNew Condition = iota + 1
	ConditionUsed
	ConditionBroken
)

func (c Condition) String() string {
	switch c {
	case ConditionNew:
		return "New"
	case ConditionUsed:
		return "Used"
	case ConditionBroken:
		return "Broken"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// CatalogEntry is one read-only row of the product catalog.
type CatalogEntry struct {
	ID        int64
	Title     string
	Price     int64
	Condition Condition
}

var catalog = [...]CatalogEntry{
	{ID: 1, Title: "Car", Price: 393929, Condition: ConditionNew},
	{ID: 2, Title: "Plane", Price: 32423424232, Condition: ConditionUsed},
	{ID: 3, Title: "Helicopter", Price: 4443, Condition: ConditionNew},
	{ID: 4, Title: "Sail boat", Price: 3554334, Condition: ConditionBroken},
	{ID: 5, Title: "Motor Cycle", Price: 7655, Condition: ConditionNew},
	{ID: 6, Title: "Bicycle", Price: 786, Condition: ConditionNew},
	{ID: 7, Title: "Scooter", Price: 22, Condition: ConditionBroken},
}

// Catalog returns a copy of the product catalog in display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog[:])
	return out
}

// Field is a named form value, used when rendering forms in a fixed order.
type Field struct {
	Name  string
	Value string
}

// Product form field names as posted by the browser.
const (
	FieldProductName   = "productName"
	FieldProductPrice  = "productPrice"
	FieldProductNumber = "productNumber"
	FieldNotes         = "notes"
)

// About form field names as posted by the browser.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPassword  = "password"
	FieldEmail     = "email"
)

// ProductForm holds the text typed into the product form. Price and number are
// kept as entered.
type ProductForm struct {
	ProductName   string
	ProductPrice  string
	ProductNumber string
	Notes         string
}

// ProductFormFields lists the product form field names in display order.
func ProductFormFields() []string {
	return []string{FieldProductName, FieldProductPrice, FieldProductNumber, FieldNotes}
}

// With returns a copy of f with one field replaced.
func (f ProductForm) With(name, value string) (ProductForm, error) {
	switch name {
	case FieldProductName:
		f.ProductName = value
	case FieldProductPrice:
		f.ProductPrice = value
	case FieldProductNumber:
		f.ProductNumber = value
	case FieldNotes:
		f.Notes = value
	default:
		return f, fmt.Errorf("product form: %w: %q", ErrUnknownField, name)
	}
	return f, nil
}

func (f ProductForm) Fields() []Field {
	return []Field{
		{Name: FieldProductName, Value: f.ProductName},
		{Name: FieldProductPrice, Value: f.ProductPrice},
		{Name: FieldProductNumber, Value: f.ProductNumber},
		{Name: FieldNotes, Value: f.Notes},
	}
}

// AboutForm holds the text typed into the about form.
type AboutForm struct {
	FirstName string
	LastName  string
	Password  string
	Email     string
	Notes     string
}

// AboutFormFields lists the about form field names in display order.
func AboutFormFields() []string {
	return []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldNotes}
}

// With returns a copy of f with one field replaced.
func (f AboutForm) With(name, value string) (AboutForm, error) {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldPassword:
		f.Password = value
	case FieldEmail:
		f.Email = value
	case FieldNotes:
		f.Notes = value
	default:
		return f, fmt.Errorf("about form: %w: %q", ErrUnknownField, name)
	}
	return f, nil
}

func (f AboutForm) Fields() []Field {
	return []Field{
		{Name: FieldFirstName, Value: f.FirstName},
		{Name: FieldLastName, Value: f.LastName},
		{Name: FieldEmail, Value: f.Email},
		{Name: FieldPassword, Value: f.Password},
		{Name: FieldNotes, Value: f.Notes},
	}
}
