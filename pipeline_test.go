package tutorsite

import (
	"errors"
	"strings"
	"testing"

	"github.com/npatters/tutorsite/views"
)

type stubMessage struct {
	Subject string
	Body    string
	ReplyTo string
}

// stubMailer records sends, or fails every send when err is set.
type stubMailer struct {
	sent []stubMessage
	err  error
}

func (m *stubMailer) Send(subject, body, replyTo string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, stubMessage{Subject: subject, Body: body, ReplyTo: replyTo})
	return nil
}

func newTestApp(t *testing.T, mailer Mailer) *App {
	t.Helper()
	return &App{
		Store:  setupTestStore(t),
		Mailer: mailer,
	}
}

func validBookingForm() BookingForm {
	return BookingForm{
		Name:           "Sam",
		Level:          "alevel",
		ExamBoard:      "AQA",
		Email:          "sam@example.com",
		PreferredTimes: "Weekday evenings",
		Message:        "Help with mechanics please.",
	}
}

func TestSubmitBookingPersistsAndNotifies(t *testing.T) {
	mailer := &stubMailer{}
	a := newTestApp(t, mailer)

	res := a.submitBooking(validBookingForm())
	if !res.Persisted || !res.Notified || res.Err != nil {
		t.Fatalf("result = %+v, want persisted and notified", res)
	}

	bookings, err := a.Store.ListBookings()
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("booking count = %d, want 1", len(bookings))
	}
	if bookings[0].Status != views.StatusPending {
		t.Errorf("Status = %q, want %q", bookings[0].Status, views.StatusPending)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent count = %d, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.Subject != "Tutoring booking request" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.ReplyTo != "sam@example.com" {
		t.Errorf("ReplyTo = %q", msg.ReplyTo)
	}
	if !strings.Contains(msg.Body, "Sam") || !strings.Contains(msg.Body, "alevel") {
		t.Errorf("body missing booking details: %q", msg.Body)
	}
}

func TestSubmitBookingKeepsRecordOnNotifyFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("connection refused")}
	a := newTestApp(t, mailer)

	res := a.submitBooking(validBookingForm())
	if !res.Persisted {
		t.Fatal("booking should be persisted despite notify failure")
	}
	if res.Notified {
		t.Fatal("result should not claim notification succeeded")
	}
	if res.Err == nil {
		t.Fatal("result should carry the transport error")
	}

	bookings, err := a.Store.ListBookings()
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("booking count = %d, want 1 (record retained)", len(bookings))
	}
	if bookings[0].ID != res.BookingID {
		t.Errorf("BookingID = %d, want %d", res.BookingID, bookings[0].ID)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("sent count = %d, want 0", len(mailer.sent))
	}
}

func TestSubmitContactNotifiesWithoutPersisting(t *testing.T) {
	mailer := &stubMailer{}
	a := newTestApp(t, mailer)

	res := a.submitContact(ContactForm{
		Name:    "Robin",
		Company: "Acme",
		Email:   "robin@example.com",
		Reason:  "Collaboration",
		Message: "Hello there.",
	})
	if !res.Notified || res.Persisted || res.Err != nil {
		t.Fatalf("result = %+v, want notified only", res)
	}

	bookings, err := a.Store.ListBookings()
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("contact submission persisted %d bookings", len(bookings))
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent count = %d, want 1", len(mailer.sent))
	}
	if mailer.sent[0].ReplyTo != "robin@example.com" {
		t.Errorf("ReplyTo = %q", mailer.sent[0].ReplyTo)
	}
}

func TestSubmitContactFailsWhenMailNotConfigured(t *testing.T) {
	// A real SMTPMailer with no credentials fails before any network I/O.
	a := newTestApp(t, NewSMTPMailer(SMTPConfig{}))

	res := a.submitContact(ContactForm{
		Name:    "Robin",
		Email:   "robin@example.com",
		Reason:  "Hello",
		Message: "Hi.",
	})
	if res.Notified || res.Persisted {
		t.Fatalf("result = %+v, want complete failure", res)
	}
	if !errors.Is(res.Err, ErrMailNotConfigured) {
		t.Errorf("Err = %v, want ErrMailNotConfigured", res.Err)
	}

	bookings, err := a.Store.ListBookings()
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("persisted %d records, want 0", len(bookings))
	}
}
