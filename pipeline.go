package tutorsite

import (
	"fmt"

	"github.com/npatters/tutorsite/views"
)

// SubmitResult is the tagged outcome of a form submission, so the handler
// can tell "nothing happened" apart from "saved but the notification
// failed" instead of collapsing both into a generic failure.
type SubmitResult struct {
	BookingID int64 // set when a booking row was written
	Persisted bool
	Notified  bool
	Err       error // the persistence or transport failure, nil when Notified
}

// submitContact sends the contact notification. Nothing is persisted; a
// transport failure is the whole story.
func (a *App) submitContact(form ContactForm) SubmitResult {
	body := fmt.Sprintf(`New contact form submission

Name: %s
Company: %s
Email: %s
Reason: %s

Message:
%s
`, form.Name, form.Company, form.Email, form.Reason, form.Message)

	if err := a.Mailer.Send("Portfolio contact form", body, form.Email); err != nil {
		return SubmitResult{Err: err}
	}
	return SubmitResult{Notified: true}
}

// submitBooking persists the booking, then sends the notification. A
// notify failure after a successful insert leaves the row in place and is
// reported as Persisted && !Notified so the caller can word the flash
// honestly.
func (a *App) submitBooking(form BookingForm) SubmitResult {
	id, err := a.Store.InsertBooking(views.Booking{
		Name:           form.Name,
		Level:          form.Level,
		ExamBoard:      form.ExamBoard,
		Email:          form.Email,
		PreferredTimes: form.PreferredTimes,
		Message:        form.Message,
	})
	if err != nil {
		return SubmitResult{Err: err}
	}

	body := fmt.Sprintf(`New tutoring booking request

Name: %s
Level: %s
Exam board: %s
Email: %s
Preferred times: %s

Message:
%s
`, form.Name, form.Level, form.ExamBoard, form.Email, form.PreferredTimes, form.Message)

	if err := a.Mailer.Send("Tutoring booking request", body, form.Email); err != nil {
		return SubmitResult{BookingID: id, Persisted: true, Err: err}
	}
	return SubmitResult{BookingID: id, Persisted: true, Notified: true}
}
