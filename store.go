package tutorsite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/npatters/tutorsite/views"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database and provides CRUD operations for blog
// articles and tutoring bookings.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy_timeout so writers wait
	// instead of returning SQLITE_BUSY, synchronous=NORMAL is safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    card_position INTEGER NOT NULL,
    title TEXT NOT NULL,
    meta TEXT NOT NULL DEFAULT '',
    summary TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    read_time TEXT NOT NULL DEFAULT '',
    published INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS bookings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    level TEXT NOT NULL,
    exam_board TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    preferred_times TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    created_at TEXT NOT NULL
);
`)
	return err
}

// timeFormat is how timestamps are stored; RFC 3339 sorts lexicographically
// so ORDER BY created_at works without parsing.
const timeFormat = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// --- Articles ---

// ArticleSpec is one entry in the hardcoded content list reconciled against
// the store by the seeding workflow. ReadTime is intentionally absent: it is
// always derived from Content on write.
type ArticleSpec struct {
	Slug         string
	CardPosition int
	Title        string
	Meta         string
	Summary      string
	Content      string
	Published    bool
}

// UpsertArticles reconciles specs against the articles table keyed by slug,
// in a single transaction committed at the end of the batch. An existing
// slug is overwritten in place (id and created_at preserved, updated_at
// refreshed); a missing slug is inserted. Running the batch twice with the
// same specs leaves the table in the same observable state.
func (s *Store) UpsertArticles(specs ...ArticleSpec) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := formatTime(time.Now())
	for _, spec := range specs {
		if err := upsertArticle(tx, spec, now); err != nil {
			return fmt.Errorf("upsert article %q: %w", spec.Slug, err)
		}
	}
	return tx.Commit()
}

func upsertArticle(tx *sql.Tx, spec ArticleSpec, now string) error {
	readTime := EstimateReadTime(spec.Content)
	published := 0
	if spec.Published {
		published = 1
	}

	var id int64
	err := tx.QueryRow(`SELECT id FROM articles WHERE slug = ?`, spec.Slug).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`INSERT INTO articles (slug, card_position, title, meta, summary, content, read_time, published, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			spec.Slug, spec.CardPosition, spec.Title, spec.Meta, spec.Summary, spec.Content, readTime, published, now, now)
		return err
	case err != nil:
		return err
	default:
		_, err = tx.Exec(`UPDATE articles SET card_position = ?, title = ?, meta = ?, summary = ?, content = ?, read_time = ?, published = ?, updated_at = ? WHERE id = ?`,
			spec.CardPosition, spec.Title, spec.Meta, spec.Summary, spec.Content, readTime, published, now, id)
		return err
	}
}

// ClearArticles deletes every article unconditionally. Used when resetting
// content during development; the seeding workflow itself never calls it.
func (s *Store) ClearArticles() error {
	_, err := s.db.Exec(`DELETE FROM articles`)
	return err
}

const articleColumns = `id, slug, card_position, title, meta, summary, content, read_time, published, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (views.Article, error) {
	var a views.Article
	var published int
	var createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.Slug, &a.CardPosition, &a.Title, &a.Meta, &a.Summary, &a.Content, &a.ReadTime, &published, &createdAt, &updatedAt)
	if err != nil {
		return views.Article{}, err
	}
	a.Published = published == 1
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return a, nil
}

// GetArticle returns a single article by id.
func (s *Store) GetArticle(id int64) (views.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

// GetArticleBySlug returns a single article by slug regardless of published status.
func (s *Store) GetArticleBySlug(slug string) (views.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug)
	return scanArticle(row)
}

// ListPublishedArticles returns published articles ordered by card position.
func (s *Store) ListPublishedArticles() ([]views.Article, error) {
	return s.queryArticles(`SELECT ` + articleColumns + ` FROM articles WHERE published = 1 ORDER BY card_position`)
}

// ListAllArticles returns every article (published and drafts) ordered by card position.
func (s *Store) ListAllArticles() ([]views.Article, error) {
	return s.queryArticles(`SELECT ` + articleColumns + ` FROM articles ORDER BY card_position`)
}

func (s *Store) queryArticles(query string, args ...any) ([]views.Article, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []views.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// --- Bookings ---

// InsertBooking stores a new booking with status pending and returns its id.
func (s *Store) InsertBooking(b views.Booking) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO bookings (name, level, exam_board, email, preferred_times, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Name, b.Level, b.ExamBoard, b.Email, b.PreferredTimes, b.Message, views.StatusPending, formatTime(time.Now()))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const bookingColumns = `id, name, level, exam_board, email, preferred_times, message, status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (views.Booking, error) {
	var b views.Booking
	var createdAt string
	err := row.Scan(&b.ID, &b.Name, &b.Level, &b.ExamBoard, &b.Email, &b.PreferredTimes, &b.Message, &b.Status, &createdAt)
	if err != nil {
		return views.Booking{}, err
	}
	b.CreatedAt = parseTime(createdAt)
	return b, nil
}

// GetBooking returns a single booking by id.
func (s *Store) GetBooking(id int64) (views.Booking, error) {
	row := s.db.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	return scanBooking(row)
}

// ListBookings returns all bookings, most recent first.
func (s *Store) ListBookings() ([]views.Booking, error) {
	return s.queryBookings(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`)
}

// ListRecentBookings returns the most recent bookings up to limit.
func (s *Store) ListRecentBookings(limit int) ([]views.Booking, error) {
	return s.queryBookings(`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

// ListBookingsByStatus returns bookings with the given status, most recent first.
func (s *Store) ListBookingsByStatus(status string) ([]views.Booking, error) {
	return s.queryBookings(`SELECT `+bookingColumns+` FROM bookings WHERE status = ? ORDER BY created_at DESC, id DESC`, status)
}

// ListBookingsByLevel returns bookings for the given level, most recent first.
func (s *Store) ListBookingsByLevel(level string) ([]views.Booking, error) {
	return s.queryBookings(`SELECT `+bookingColumns+` FROM bookings WHERE level = ? ORDER BY created_at DESC, id DESC`, level)
}

// ListBookingsByEmail returns bookings submitted with the given email, most recent first.
func (s *Store) ListBookingsByEmail(email string) ([]views.Booking, error) {
	return s.queryBookings(`SELECT `+bookingColumns+` FROM bookings WHERE email = ? ORDER BY created_at DESC, id DESC`, email)
}

func (s *Store) queryBookings(query string, args ...any) ([]views.Booking, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []views.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateBookingStatus sets a booking's status. It returns ErrNotFound when
// no booking has the given id.
func (s *Store) UpdateBookingStatus(id int64, status string) error {
	res, err := s.db.Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBooking removes a booking by id. No handler calls this; it exists
// for manual cleanup from a sqlite shell or future admin tooling.
func (s *Store) DeleteBooking(id int64) error {
	_, err := s.db.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	return err
}
