package viewstate

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"companysite/models"
)

func TestInitialState(t *testing.T) {
	c := NewController(nil)
	want := State{Page: models.PageHome}
	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}
}

func TestProductScenarioKeepsInputAcrossNavigation(t *testing.T) {
	c := NewController(nil)

	if err := c.Navigate(models.PageProducts); err != nil {
		t.Fatalf("navigate products: %v", err)
	}
	if got := c.Snapshot().Page; got != models.PageProducts {
		t.Fatalf("expected products page, got %v", got)
	}

	if err := c.SetProductField(models.FieldProductName, "Car"); err != nil {
		t.Fatalf("set productName: %v", err)
	}
	want := models.ProductForm{ProductName: "Car"}
	if diff := cmp.Diff(want, c.Snapshot().Product); diff != "" {
		t.Fatalf("product form mismatch (-want +got):\n%s", diff)
	}

	if err := c.Navigate(models.PageAbout); err != nil {
		t.Fatalf("navigate about: %v", err)
	}
	if err := c.Navigate(models.PageProducts); err != nil {
		t.Fatalf("navigate products: %v", err)
	}
	if got := c.Snapshot().Product.ProductName; got != "Car" {
		t.Fatalf("expected productName to survive navigation, got %q", got)
	}
}

func TestNavigateLastTargetWins(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewController(nil)
	pages := models.Pages()

	for i := 0; i < 200; i++ {
		target := pages[rng.Intn(len(pages))]
		if err := c.Navigate(target); err != nil {
			t.Fatalf("navigate %v: %v", target, err)
		}
		if got := c.Snapshot().Page; got != target {
			t.Fatalf("step %d: expected %v, got %v", i, target, got)
		}
	}
}

func TestFieldEditsLastWriteWins(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	c := NewController(nil)

	wantProduct := map[string]string{}
	wantAbout := map[string]string{}
	productNames := models.ProductFormFields()
	aboutNames := models.AboutFormFields()

	for i := 0; i < 300; i++ {
		value := string(rune('a' + rng.Intn(26)))
		switch rng.Intn(3) {
		case 0:
			name := productNames[rng.Intn(len(productNames))]
			if err := c.SetProductField(name, value); err != nil {
				t.Fatalf("set product %s: %v", name, err)
			}
			wantProduct[name] = value
		case 1:
			name := aboutNames[rng.Intn(len(aboutNames))]
			if err := c.SetAboutField(name, value); err != nil {
				t.Fatalf("set about %s: %v", name, err)
			}
			wantAbout[name] = value
		default:
			if err := c.Navigate(models.Pages()[rng.Intn(3)]); err != nil {
				t.Fatalf("navigate: %v", err)
			}
		}
	}

	s := c.Snapshot()
	for _, f := range s.Product.Fields() {
		if f.Value != wantProduct[f.Name] {
			t.Fatalf("product %s: expected %q, got %q", f.Name, wantProduct[f.Name], f.Value)
		}
	}
	for _, f := range s.About.Fields() {
		if f.Value != wantAbout[f.Name] {
			t.Fatalf("about %s: expected %q, got %q", f.Name, wantAbout[f.Name], f.Value)
		}
	}
}

func TestUnknownFieldIsRejectedAndStateKept(t *testing.T) {
	c := NewController(nil)
	if err := c.SetAboutField(models.FieldEmail, "a@b.c"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	before := c.Snapshot()

	if err := c.SetProductField("colour", "red"); !errors.Is(err, models.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for product form, got %v", err)
	}
	if err := c.SetAboutField(models.FieldProductPrice, "1"); !errors.Is(err, models.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for about form, got %v", err)
	}
	if diff := cmp.Diff(before, c.Snapshot()); diff != "" {
		t.Fatalf("rejected edits changed state (-want +got):\n%s", diff)
	}
}

func TestNavigateRejectsOutOfRangePage(t *testing.T) {
	c := NewController(nil)
	if err := c.Navigate(models.Page(42)); !errors.Is(err, models.ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
	if got := c.Snapshot().Page; got != models.PageHome {
		t.Fatalf("expected page to stay home, got %v", got)
	}
}

func TestReduceIsPure(t *testing.T) {
	s := InitialState()
	next, err := Reduce(s, SetProductField{Name: models.FieldProductPrice, Value: "10"})
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if s.Product.ProductPrice != "" {
		t.Fatalf("reduce mutated its input: %+v", s)
	}
	if next.Product.ProductPrice != "10" {
		t.Fatalf("expected price 10, got %q", next.Product.ProductPrice)
	}
	if _, err := Reduce(s, nil); err == nil {
		t.Fatalf("expected error for nil action")
	}
}

type recordingSubmitter struct {
	product models.ProductForm
	about   models.AboutForm
	err     error
}

func (r *recordingSubmitter) SubmitProduct(_ context.Context, f models.ProductForm) error {
	r.product = f
	return r.err
}

func (r *recordingSubmitter) SubmitAbout(_ context.Context, f models.AboutForm) error {
	r.about = f
	return r.err
}

func TestSubmitHandsRecordToSubmitter(t *testing.T) {
	sub := &recordingSubmitter{}
	c := NewController(sub)
	_ = c.SetProductField(models.FieldProductNumber, "A-1")
	_ = c.SetAboutField(models.FieldFirstName, "Jane")

	if err := c.SubmitProductForm(context.Background()); err != nil {
		t.Fatalf("submit product: %v", err)
	}
	if err := c.SubmitAboutForm(context.Background()); err != nil {
		t.Fatalf("submit about: %v", err)
	}
	if sub.product.ProductNumber != "A-1" || sub.about.FirstName != "Jane" {
		t.Fatalf("submitter got product=%+v about=%+v", sub.product, sub.about)
	}
	if c.Snapshot().Product.ProductNumber != "A-1" {
		t.Fatalf("submit must not reset the record")
	}
}

func TestSubmitValidationErrorKeepsRecord(t *testing.T) {
	sub := &recordingSubmitter{err: &ValidationError{Fields: map[string]string{models.FieldEmail: "required"}}}
	c := NewController(sub)
	_ = c.SetAboutField(models.FieldNotes, "draft")

	err := c.SubmitAboutForm(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields[models.FieldEmail] != "required" {
		t.Fatalf("unexpected field errors: %v", verr.Fields)
	}
	if err.Error() != "validation failed: email: required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if c.Snapshot().About.Notes != "draft" {
		t.Fatalf("validation failure must keep in-progress input")
	}
}

func TestNopSubmitterAcceptsEverything(t *testing.T) {
	c := NewController(NopSubmitter{})
	if err := c.SubmitProductForm(context.Background()); err != nil {
		t.Fatalf("nop submit product: %v", err)
	}
	if err := c.SubmitAboutForm(context.Background()); err != nil {
		t.Fatalf("nop submit about: %v", err)
	}
}

func TestConcurrentDispatchKeepsRecordsWhole(t *testing.T) {
	c := NewController(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = c.SetProductField(models.FieldNotes, "n")
				_ = c.Navigate(models.Pages()[(i+j)%3])
			}
		}(i)
	}
	wg.Wait()
	if c.Snapshot().Product.Notes != "n" {
		t.Fatalf("expected notes to be set")
	}
}
