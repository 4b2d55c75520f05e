package tutorsite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/npatters/tutorsite/views"
)

// handleHome serves the landing page with the contact form.
func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.Config.Site, views.ContactFormData{}, takeFlashes(c), CsrfToken(c)))
}

// handleContactSubmit runs the contact pipeline: validate, notify, redirect
// with a flash (PRG). Validation failures re-render the form in place.
func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	var form ContactForm
	fieldErrs, err := a.bindAndValidate(c, &form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		data := views.ContactFormData{
			Name:    form.Name,
			Company: form.Company,
			Email:   form.Email,
			Reason:  form.Reason,
			Message: form.Message,
			Errors:  fieldErrs,
		}
		return Render(c, views.Home(a.Config.Site, data, nil, CsrfToken(c)))
	}

	res := a.submitContact(form)
	if !res.Notified {
		c.Logger().Errorf("contact form email failed: %v", res.Err)
		if err := addFlash(c, "error", "Sorry, your message could not be sent right now."); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/#contact-form")
	}
	if err := addFlash(c, "success", "Thanks! Your message has been sent. I will get back to you."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/#contact-form")
}

// handleTutoring serves the tutoring page with the booking form.
func (a *App) handleTutoring(c echo.Context) error {
	return Render(c, views.Tutoring(a.Config.Site, views.BookingFormData{}, takeFlashes(c), CsrfToken(c)))
}

// handleBookingSubmit runs the booking pipeline: validate, persist, notify,
// redirect with a flash. A notification failure after the booking row was
// written keeps the row and says so, rather than pretending nothing
// happened.
func (a *App) handleBookingSubmit(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	var form BookingForm
	fieldErrs, err := a.bindAndValidate(c, &form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		data := views.BookingFormData{
			Name:           form.Name,
			Level:          form.Level,
			ExamBoard:      form.ExamBoard,
			Email:          form.Email,
			PreferredTimes: form.PreferredTimes,
			Message:        form.Message,
			Errors:         fieldErrs,
		}
		return Render(c, views.Tutoring(a.Config.Site, data, nil, CsrfToken(c)))
	}

	res := a.submitBooking(form)
	switch {
	case res.Notified:
		if err := addFlash(c, "success", "Thanks! Your booking request has been sent."); err != nil {
			return err
		}
	case res.Persisted:
		c.Logger().Errorf("booking %d saved but notification failed: %v", res.BookingID, res.Err)
		if err := addFlash(c, "error", "Your booking was saved, but the confirmation email could not be sent. I will still be in touch."); err != nil {
			return err
		}
	default:
		c.Logger().Errorf("booking could not be saved: %v", res.Err)
		if err := addFlash(c, "error", "Sorry, your booking could not be processed."); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, "/tutoring#booking-form")
}

// handleBlog lists published articles ordered by card position.
func (a *App) handleBlog(c echo.Context) error {
	articles, err := a.Store.ListPublishedArticles()
	if err != nil {
		return err
	}
	return Render(c, views.Blog(a.Config.Site, articles))
}

// handleAdminBookings lists all bookings, most recent first.
func (a *App) handleAdminBookings(c echo.Context) error {
	bookings, err := a.Store.ListBookings()
	if err != nil {
		return err
	}
	return Render(c, views.AdminBookings(a.Config.Site, bookings, takeFlashes(c), CsrfToken(c)))
}

func (a *App) handleBookingConfirm(c echo.Context) error {
	return a.setBookingStatus(c, views.StatusConfirmed, "Booking confirmed.")
}

func (a *App) handleBookingCancel(c echo.Context) error {
	return a.setBookingStatus(c, views.StatusCancelled, "Booking cancelled.")
}

func (a *App) setBookingStatus(c echo.Context, status, message string) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := a.Store.UpdateBookingStatus(id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	if err := addFlash(c, "success", message); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/bookings")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: " + a.Config.Site.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

// httpErrorHandler renders styled 404/500 pages instead of Echo's JSON.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
