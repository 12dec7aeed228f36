package wizard

import (
	"context"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/booking"
	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/validation"
)

// Translation keys of the wizard's validation failures.
const (
	KeySelectDevice    = "booking.selectBrandModel"
	KeySelectIssue     = "booking.selectIssue"
	KeySelectSlot      = "booking.selectDateTime"
	KeyNamePhone       = "booking.fillNamePhone"
	KeyUnknownBrand    = "booking.unknownBrand"
	KeyUnknownModel    = "booking.unknownModel"
	KeyUnknownIssue    = "booking.unknownIssue"
	KeyDateUnavailable = "booking.dateUnavailable"
	KeyTimeUnavailable = "booking.timeUnavailable"
)

// Issues is the fixed list of problems a visitor can pick.
var Issues = []string{"screen", "battery", "port", "camera", "water-damage", "other"}

// Form holds the wizard's local fields. Nothing here is persisted.
type Form struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Issue string `json:"issue"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

// Wizard drives device → issue → slot → details and commits to the booking store on submit.
type Wizard struct {
	step    Step
	form    Form
	date    *time.Time
	tod     string
	store   *booking.Store
	catalog catalog.Catalog
	loc     *time.Location
	now     func() time.Time
}

type Option func(*Wizard)

func WithClock(now func() time.Time) Option { return func(w *Wizard) { w.now = now } }

func New(store *booking.Store, c catalog.Catalog, loc *time.Location, opts ...Option) *Wizard {
	w := &Wizard{
		step:    StepDevice,
		store:   store,
		catalog: c,
		loc:     loc,
		now:     time.Now,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *Wizard) Step() Step { return w.step }

// SelectBrand picks a brand and drops the previously chosen model.
func (w *Wizard) SelectBrand(brand string) error {
	if _, ok := w.catalog.ModelsOf(brand); !ok {
		return validation.New(KeyUnknownBrand)
	}
	w.form.Brand = brand
	w.form.Model = ""
	return nil
}

func (w *Wizard) SelectModel(model string) error {
	if !w.catalog.HasModel(w.form.Brand, model) {
		return validation.New(KeyUnknownModel)
	}
	w.form.Model = model
	return nil
}

func (w *Wizard) SelectIssue(issue string) error {
	for _, i := range Issues {
		if i == issue {
			w.form.Issue = issue
			return nil
		}
	}
	return validation.New(KeyUnknownIssue)
}

// SelectDate picks a calendar day. Past days and Sundays are refused and leave the
// current selection as it was.
func (w *Wizard) SelectDate(day time.Time) error {
	if !DateAllowed(day, w.now(), w.loc) {
		return validation.New(KeyDateUnavailable)
	}
	d := midnight(day, w.loc)
	w.date = &d
	return nil
}

func (w *Wizard) SelectTime(hhmm string) error {
	if !validTime(hhmm) {
		return validation.New(KeyTimeUnavailable)
	}
	w.tod = hhmm
	return nil
}

// SetDetails overwrites the contact fields.
func (w *Wizard) SetDetails(name, phone, email, notes string) {
	w.form.Name = name
	w.form.Phone = phone
	w.form.Email = email
	w.form.Notes = notes
}

// Next advances one step when the current step is complete. On the details step it
// submits instead and reports submitted=true.
func (w *Wizard) Next(ctx context.Context) (submitted bool, err error) {
	switch w.step {
	case StepDevice:
		if w.form.Brand == "" || w.form.Model == "" {
			return false, validation.New(KeySelectDevice)
		}
	case StepIssue:
		if w.form.Issue == "" {
			return false, validation.New(KeySelectIssue)
		}
	case StepSlot:
		if w.date == nil || w.tod == "" {
			return false, validation.New(KeySelectSlot)
		}
	case StepDetails:
		if err := w.submit(ctx); err != nil {
			return false, err
		}
		return true, nil
	}
	if next, ok := w.step.next(); ok {
		w.step = next
	}
	return false, nil
}

// Back moves one step back; a no-op on the first step.
func (w *Wizard) Back() {
	if prev, ok := w.step.prev(); ok {
		w.step = prev
	}
}

func (w *Wizard) submit(ctx context.Context) error {
	if w.form.Name == "" || w.form.Phone == "" {
		return validation.New(KeyNamePhone)
	}

	var slot *booking.Slot
	if w.date != nil && w.tod != "" {
		s, err := BuildSlot(*w.date, w.tod, w.loc)
		if err != nil {
			return err
		}
		slot = &s
	}

	w.store.Update(booking.Patch{
		DeviceBrand: booking.Ptr(w.form.Brand),
		DeviceModel: booking.Ptr(w.form.Model),
		Issue:       booking.Ptr(w.form.Issue),
		Slot:        slot,
		Customer:    &booking.Customer{Name: w.form.Name, Phone: w.form.Phone, Email: w.form.Email},
		Notes:       booking.Ptr(w.form.Notes),
		Status:      booking.Ptr(booking.StatusPending),
	})
	w.store.Submit(ctx)
	w.Reset()
	return nil
}

// Reset restores the initial form and step.
func (w *Wizard) Reset() {
	w.step = StepDevice
	w.form = Form{}
	w.date = nil
	w.tod = ""
}

// State is a read-only view of the wizard for rendering.
type State struct {
	Step      Step     `json:"step"`
	StepIndex int      `json:"stepIndex"`
	Steps     []Step   `json:"steps"`
	Form      Form     `json:"form"`
	Date      string   `json:"date,omitempty"`
	Time      string   `json:"time,omitempty"`
	Models    []string `json:"models,omitempty"`
}

func (w *Wizard) Snapshot() State {
	st := State{
		Step:      w.step,
		StepIndex: w.step.Index(),
		Steps:     Steps(),
		Form:      w.form,
		Time:      w.tod,
	}
	if w.date != nil {
		st.Date = w.date.Format(DateLayout)
	}
	if w.form.Brand != "" {
		if models, ok := w.catalog.ModelsOf(w.form.Brand); ok {
			st.Models = models
		}
	}
	return st
}
