package booking

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

// Slot is a repair appointment window. End equals Start: duration is not modeled.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Draft is the partial service ticket accumulated by the wizard.
type Draft struct {
	DeviceBrand string    `json:"deviceBrand,omitempty"`
	DeviceModel string    `json:"deviceModel,omitempty"`
	Issue       string    `json:"issue,omitempty"`
	Slot        *Slot     `json:"slot,omitempty"`
	Customer    *Customer `json:"customer,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Status      Status    `json:"status,omitempty"`
}

// Patch carries the top-level fields to overwrite; nil fields are left untouched.
// Customer replaces the whole customer object.
type Patch struct {
	DeviceBrand *string
	DeviceModel *string
	Issue       *string
	Slot        *Slot
	Customer    *Customer
	Notes       *string
	Status      *Status
}

func (d *Draft) apply(p Patch) {
	if p.DeviceBrand != nil {
		d.DeviceBrand = *p.DeviceBrand
	}
	if p.DeviceModel != nil {
		d.DeviceModel = *p.DeviceModel
	}
	if p.Issue != nil {
		d.Issue = *p.Issue
	}
	if p.Slot != nil {
		s := *p.Slot
		d.Slot = &s
	}
	if p.Customer != nil {
		c := *p.Customer
		d.Customer = &c
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
}

func (d Draft) clone() Draft {
	if d.Slot != nil {
		s := *d.Slot
		d.Slot = &s
	}
	if d.Customer != nil {
		c := *d.Customer
		d.Customer = &c
	}
	return d
}

// Ptr is a helper for building patches.
func Ptr[T any](v T) *T { return &v }
