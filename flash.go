package tutorsite

import (
	"encoding/gob"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/npatters/tutorsite/views"
)

const sessionName = "tutorsite_session"

func init() {
	// Flashes are stored in the gob-encoded session cookie.
	gob.Register(views.Flash{})
}

// addFlash queues a one-shot status message for the next rendered page.
func addFlash(c echo.Context, kind, message string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(views.Flash{Kind: kind, Message: message})
	return sess.Save(c.Request(), c.Response())
}

// takeFlashes returns queued flash messages and clears them from the
// session. A broken session cookie just means no flashes.
func takeFlashes(c echo.Context) []views.Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil
	}
	flashes := make([]views.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(views.Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
