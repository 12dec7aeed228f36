package httpx

import (
	"net/http"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/ariefcatur/go-repair-shop/internal/wizard"
	"github.com/go-chi/chi/v5"
)

const keyBookingSubmitted = "booking.submitted"

type BookingHandler struct {
	Location *time.Location
	Now      func() time.Time
}

func (h *BookingHandler) Register(r chi.Router) {
	r.Route("/booking", func(r chi.Router) {
		r.Get("/", h.getWizard)
		r.Get("/draft", h.getDraft)
		r.Get("/issues", h.listIssues)
		r.Get("/slots", h.listSlots)
		r.Put("/device", h.selectDevice)
		r.Put("/issue", h.selectIssue)
		r.Put("/date", h.selectDate)
		r.Put("/time", h.selectTime)
		r.Put("/details", h.setDetails)
		r.Post("/next", h.next)
		r.Post("/back", h.back)
		r.Delete("/", h.reset)
	})
}

func (h *BookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type deviceReq struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type issueReq struct {
	Issue string `json:"issue"`
}

type dateReq struct {
	Date string `json:"date"`
}

type timeReq struct {
	Time string `json:"time"`
}

type detailsReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type nextResp struct {
	Submitted bool         `json:"submitted"`
	Notice    string       `json:"notice,omitempty"`
	State     wizard.State `json:"state"`
}

type slotsResp struct {
	Date      string   `json:"date"`
	Available bool     `json:"available"`
	Times     []string `json:"times"`
}

func (h *BookingHandler) getWizard(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, s.Wizard.Snapshot())
}

func (h *BookingHandler) getDraft(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	d := s.Booking.Current()
	s.Unlock()
	if d == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *BookingHandler) listIssues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wizard.Issues)
}

// GET /booking/slots?date=YYYY-MM-DD
func (h *BookingHandler) listSlots(w http.ResponseWriter, r *http.Request) {
	day, err := wizard.ParseDate(r.URL.Query().Get("date"), h.Location)
	if err != nil {
		respondInvalid(w, r, wizard.KeyDateUnavailable)
		return
	}
	resp := slotsResp{Date: day.Format(wizard.DateLayout), Times: []string{}}
	if wizard.DateAllowed(day, h.now(), h.Location) {
		resp.Available = true
		resp.Times = wizard.TimeSlots()
	}
	writeJSON(w, http.StatusOK, resp)
}

// withWizard runs fn under the session lock and answers with the wizard state.
func (h *BookingHandler) withWizard(w http.ResponseWriter, r *http.Request, fn func(*wizard.Wizard) error) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	if err := fn(s.Wizard); err != nil {
		respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Wizard.Snapshot())
}

func (h *BookingHandler) selectDevice(w http.ResponseWriter, r *http.Request) {
	var req deviceReq
	if !decode(w, r, &req) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		if err := wz.SelectBrand(req.Brand); err != nil {
			return err
		}
		if req.Model == "" {
			return nil
		}
		return wz.SelectModel(req.Model)
	})
}

func (h *BookingHandler) selectIssue(w http.ResponseWriter, r *http.Request) {
	var req issueReq
	if !decode(w, r, &req) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.SelectIssue(req.Issue) })
}

func (h *BookingHandler) selectDate(w http.ResponseWriter, r *http.Request) {
	var req dateReq
	if !decode(w, r, &req) {
		return
	}
	day, err := wizard.ParseDate(req.Date, h.Location)
	if err != nil {
		respondInvalid(w, r, wizard.KeyDateUnavailable)
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.SelectDate(day) })
}

func (h *BookingHandler) selectTime(w http.ResponseWriter, r *http.Request) {
	var req timeReq
	if !decode(w, r, &req) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.SelectTime(req.Time) })
}

func (h *BookingHandler) setDetails(w http.ResponseWriter, r *http.Request) {
	var req detailsReq
	if !decode(w, r, &req) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		wz.SetDetails(req.Name, req.Phone, req.Email, req.Notes)
		return nil
	})
}

// POST /booking/next advances the wizard; on the last step it submits the booking and
// blocks for the simulated delay.
func (h *BookingHandler) next(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	submitted, err := s.Wizard.Next(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	resp := nextResp{Submitted: submitted, State: s.Wizard.Snapshot()}
	if submitted {
		resp.Notice = locale.T(localeFrom(r.Context()), keyBookingSubmitted)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) back(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		wz.Back()
		return nil
	})
}

// DELETE /booking drops the wizard form and any uncommitted draft.
func (h *BookingHandler) reset(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	s.Wizard.Reset()
	s.Booking.Clear()
	writeJSON(w, http.StatusOK, s.Wizard.Snapshot())
}
