package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing render func as a templ.Component.
func component(render func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string { return html.EscapeString(s) }

// layout writes the shared document shell around a page body.
func layout(buf *bytes.Buffer, cfg SiteConfig, title string, flashes []Flash, body func(*bytes.Buffer)) {
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/>")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	buf.WriteString("<title>" + esc(title) + " | " + esc(cfg.Name) + "</title>")
	if cfg.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(cfg.Description) + `"/>`)
	}
	buf.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
	buf.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(cfg) + `</script>`)
	buf.WriteString("</head><body><header><nav>")
	buf.WriteString(`<a href="/">` + esc(cfg.Name) + `</a>`)
	buf.WriteString(`<a href="/tutoring">Tutoring</a>`)
	buf.WriteString(`<a href="/blog">Blog</a>`)
	buf.WriteString(`<a href="/#contact-form">Contact</a>`)
	buf.WriteString("</nav></header><main>")
	writeFlashes(buf, flashes)
	body(buf)
	buf.WriteString("</main><footer><p>&copy; " + esc(cfg.Author) + "</p></footer></body></html>")
}

func writeFlashes(buf *bytes.Buffer, flashes []Flash) {
	for _, f := range flashes {
		buf.WriteString(`<div class="flash flash-` + esc(f.Kind) + `" role="status">` + esc(f.Message) + `</div>`)
	}
}

func writeFieldError(buf *bytes.Buffer, errs map[string]string, field string) {
	if msg, ok := errs[field]; ok {
		buf.WriteString(`<p class="field-error">` + esc(msg) + `</p>`)
	}
}

func csrfInput(buf *bytes.Buffer, token string) {
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(token) + `"/>`)
}

// Home renders the landing page with the contact form.
func Home(cfg SiteConfig, form ContactFormData, flashes []Flash, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, cfg, "Home", flashes, func(buf *bytes.Buffer) {
			buf.WriteString("<section id=\"intro\"><h1>" + esc(cfg.Name) + "</h1>")
			if cfg.Description != "" {
				buf.WriteString("<p>" + esc(cfg.Description) + "</p>")
			}
			buf.WriteString("</section>")
			buf.WriteString(`<section id="contact-form"><h2>Get in touch</h2>`)
			buf.WriteString(`<form method="post" action="/">`)
			csrfInput(buf, csrfToken)
			buf.WriteString(`<label>Name <input name="name" value="` + esc(form.Name) + `"/></label>`)
			writeFieldError(buf, form.Errors, "name")
			buf.WriteString(`<label>Company <input name="company" value="` + esc(form.Company) + `"/></label>`)
			writeFieldError(buf, form.Errors, "company")
			buf.WriteString(`<label>Email <input name="email" value="` + esc(form.Email) + `"/></label>`)
			writeFieldError(buf, form.Errors, "email")
			buf.WriteString(`<label>Reason <input name="reason" value="` + esc(form.Reason) + `"/></label>`)
			writeFieldError(buf, form.Errors, "reason")
			buf.WriteString(`<label>Message <textarea name="message">` + esc(form.Message) + `</textarea></label>`)
			writeFieldError(buf, form.Errors, "message")
			buf.WriteString(`<button type="submit">Send message</button></form></section>`)
		})
	})
}

// Tutoring renders the tutoring page with the booking form.
func Tutoring(cfg SiteConfig, form BookingFormData, flashes []Flash, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, cfg, "Tutoring", flashes, func(buf *bytes.Buffer) {
			buf.WriteString("<section><h1>Tutoring</h1></section>")
			buf.WriteString(`<section id="booking-form"><h2>Book a session</h2>`)
			buf.WriteString(`<form method="post" action="/tutoring">`)
			csrfInput(buf, csrfToken)
			buf.WriteString(`<label>Name <input name="name" value="` + esc(form.Name) + `"/></label>`)
			writeFieldError(buf, form.Errors, "name")
			buf.WriteString(`<label>Level <select name="level">`)
			for _, level := range []string{"gcse", "alevel", "other"} {
				buf.WriteString(`<option value="` + level + `"`)
				if form.Level == level {
					buf.WriteString(" selected")
				}
				buf.WriteString(">" + esc(levelLabel(level)) + "</option>")
			}
			buf.WriteString("</select></label>")
			writeFieldError(buf, form.Errors, "level")
			buf.WriteString(`<label>Exam board <input name="exam_board" value="` + esc(form.ExamBoard) + `"/></label>`)
			writeFieldError(buf, form.Errors, "exam_board")
			buf.WriteString(`<label>Email <input name="email" value="` + esc(form.Email) + `"/></label>`)
			writeFieldError(buf, form.Errors, "email")
			buf.WriteString(`<label>Preferred times <input name="preferred_times" value="` + esc(form.PreferredTimes) + `"/></label>`)
			writeFieldError(buf, form.Errors, "preferred_times")
			buf.WriteString(`<label>Message <textarea name="message">` + esc(form.Message) + `</textarea></label>`)
			writeFieldError(buf, form.Errors, "message")
			buf.WriteString(`<button type="submit">Request booking</button></form></section>`)
		})
	})
}

func levelLabel(level string) string {
	switch level {
	case "gcse":
		return "GCSE"
	case "alevel":
		return "A Level"
	default:
		return "Other"
	}
}

// Blog renders published articles ordered by card position.
func Blog(cfg SiteConfig, articles []Article) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, cfg, "Blog", nil, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Blog</h1>")
			for _, a := range articles {
				buf.WriteString(`<article id="` + esc(a.Slug) + `">`)
				buf.WriteString(`<script type="application/ld+json">` + BlogPostingJsonLD(cfg, a) + `</script>`)
				buf.WriteString("<h2>" + esc(a.Title) + "</h2>")
				if a.Meta != "" {
					buf.WriteString(`<p class="meta">` + esc(a.Meta) + `</p>`)
				}
				if a.ReadTime != "" {
					buf.WriteString(`<p class="read-time">` + esc(a.ReadTime) + `</p>`)
				}
				if a.Summary != "" {
					buf.WriteString(`<p class="summary">` + esc(a.Summary) + `</p>`)
				}
				var body bytes.Buffer
				renderBody(&body, a.Content)
				buf.Write(body.Bytes())
				buf.WriteString("</article>")
			}
		})
	})
}

// AdminBookings renders the booking list, most recent first, with
// confirm/cancel actions per row.
func AdminBookings(cfg SiteConfig, bookings []Booking, flashes []Flash, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, cfg, "Bookings", flashes, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Bookings</h1>")
			buf.WriteString("<table><thead><tr><th>When</th><th>Name</th><th>Level</th><th>Exam board</th><th>Email</th><th>Preferred times</th><th>Message</th><th>Status</th><th></th></tr></thead><tbody>")
			for _, b := range bookings {
				id := strconv.FormatInt(b.ID, 10)
				buf.WriteString("<tr>")
				buf.WriteString("<td>" + esc(FormatDate(b.CreatedAt)) + "</td>")
				buf.WriteString("<td>" + esc(b.Name) + "</td>")
				buf.WriteString("<td>" + esc(levelLabel(b.Level)) + "</td>")
				buf.WriteString("<td>" + esc(b.ExamBoard) + "</td>")
				buf.WriteString("<td>" + esc(b.Email) + "</td>")
				buf.WriteString("<td>" + esc(b.PreferredTimes) + "</td>")
				buf.WriteString("<td>" + esc(b.Message) + "</td>")
				buf.WriteString(`<td class="status-` + esc(b.Status) + `">` + esc(b.Status) + "</td>")
				buf.WriteString("<td>")
				if b.Status == StatusPending {
					buf.WriteString(`<form method="post" action="/admin/bookings/` + id + `/confirm">`)
					csrfInput(buf, csrfToken)
					buf.WriteString(`<button type="submit">Confirm</button></form>`)
					buf.WriteString(`<form method="post" action="/admin/bookings/` + id + `/cancel">`)
					csrfInput(buf, csrfToken)
					buf.WriteString(`<button type="submit">Cancel</button></form>`)
				}
				buf.WriteString("</td></tr>")
			}
			buf.WriteString("</tbody></table>")
		})
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, cfg, "Not found", nil, func(buf *bytes.Buffer) {
			buf.WriteString(`<h1>Page not found</h1><p><a href="/">Back to the start</a></p>`)
		})
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, cfg, "Something went wrong", nil, func(buf *bytes.Buffer) {
			buf.WriteString(`<h1>Something went wrong</h1><p>Please try again in a moment.</p>`)
		})
	})
}
