package viewstate

import (
	"context"
	"sync"
	"time"

	"companysite/models"
)

// Controller owns the State of one view session. Every mutation holds the
// lock for its whole duration, so requests of one session apply in order.
type Controller struct {
	mu        sync.Mutex
	state     State
	submitter Submitter
}

// NewController returns a controller in the initial state. A nil submitter
// is replaced by NopSubmitter.
func NewController(submitter Submitter) *Controller {
	if submitter == nil {
		submitter = NopSubmitter{}
	}
	return &Controller{state: InitialState(), submitter: submitter}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies a to the current state.
func (c *Controller) Dispatch(a Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Reduce(c.state, a)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

func (c *Controller) Navigate(page models.Page) error {
	return c.Dispatch(Navigate{Page: page})
}

func (c *Controller) SetProductField(name, value string) error {
	return c.Dispatch(SetProductField{Name: name, Value: value})
}

func (c *Controller) SetAboutField(name, value string) error {
	return c.Dispatch(SetAboutField{Name: name, Value: value})
}

// SubmitProductForm hands the current product record to the submitter.
// The record is not reset.
func (c *Controller) SubmitProductForm(ctx context.Context) error {
	form := c.Snapshot().Product
	return c.submitter.SubmitProduct(ctx, form)
}

// SubmitAboutForm hands the current about record to the submitter.
func (c *Controller) SubmitAboutForm(ctx context.Context) error {
	form := c.Snapshot().About
	return c.submitter.SubmitAbout(ctx, form)
}

// Session ties a Controller to the browser view that owns it.
type Session struct {
	ID         string
	Controller *Controller
	ExpiresAt  time.Time
}

// Expired returns true when the session expiry time is before now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
