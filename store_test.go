package tutorsite

import (
	"path/filepath"
	"testing"

	"github.com/npatters/tutorsite/views"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSpec(slug string, position int) ArticleSpec {
	return ArticleSpec{
		Slug:         slug,
		CardPosition: position,
		Title:        "Title for " + slug,
		Meta:         "Topic • Testing",
		Summary:      "Summary for " + slug,
		Content:      "Some short article content.",
		Published:    true,
	}
}

func TestUpsertInsertsArticle(t *testing.T) {
	s := setupTestStore(t)

	if err := s.UpsertArticles(testSpec("first-article", 1)); err != nil {
		t.Fatalf("UpsertArticles failed: %v", err)
	}

	got, err := s.GetArticleBySlug("first-article")
	if err != nil {
		t.Fatalf("GetArticleBySlug failed: %v", err)
	}
	if got.Title != "Title for first-article" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.CardPosition != 1 {
		t.Errorf("CardPosition = %d, want 1", got.CardPosition)
	}
	if got.ReadTime != "1 min read" {
		t.Errorf("ReadTime = %q, want %q", got.ReadTime, "1 min read")
	}
	if !got.Published {
		t.Error("Published should be true")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	s := setupTestStore(t)

	if err := s.UpsertArticles(testSpec("update-me", 2)); err != nil {
		t.Fatalf("UpsertArticles failed: %v", err)
	}
	before, err := s.GetArticleBySlug("update-me")
	if err != nil {
		t.Fatalf("GetArticleBySlug failed: %v", err)
	}

	updated := testSpec("update-me", 5)
	updated.Title = "New Title"
	updated.Content = "hi"
	if err := s.UpsertArticles(updated); err != nil {
		t.Fatalf("UpsertArticles update failed: %v", err)
	}

	after, err := s.GetArticleBySlug("update-me")
	if err != nil {
		t.Fatalf("GetArticleBySlug failed: %v", err)
	}
	if after.ID != before.ID {
		t.Errorf("ID changed on update: %d -> %d", before.ID, after.ID)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
	if after.Title != "New Title" {
		t.Errorf("Title = %q, want %q", after.Title, "New Title")
	}
	if after.CardPosition != 5 {
		t.Errorf("CardPosition = %d, want 5", after.CardPosition)
	}
	if after.ReadTime != "1 min read" {
		t.Errorf("ReadTime = %q, want recomputed %q", after.ReadTime, "1 min read")
	}

	all, err := s.ListAllArticles()
	if err != nil {
		t.Fatalf("ListAllArticles failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("article count = %d, want 1 (no duplicate)", len(all))
	}
}

func TestUpsertRecomputesReadTime(t *testing.T) {
	s := setupTestStore(t)

	long := testSpec("long-read", 2)
	long.Content = words(201)
	if err := s.UpsertArticles(long); err != nil {
		t.Fatalf("UpsertArticles failed: %v", err)
	}
	got, err := s.GetArticleBySlug("long-read")
	if err != nil {
		t.Fatalf("GetArticleBySlug failed: %v", err)
	}
	if got.ReadTime != "2 min read" {
		t.Errorf("ReadTime = %q, want %q", got.ReadTime, "2 min read")
	}

	short := testSpec("long-read", 5)
	short.Content = "hi"
	if err := s.UpsertArticles(short); err != nil {
		t.Fatalf("UpsertArticles failed: %v", err)
	}
	got, err = s.GetArticleBySlug("long-read")
	if err != nil {
		t.Fatalf("GetArticleBySlug failed: %v", err)
	}
	if got.CardPosition != 5 {
		t.Errorf("CardPosition = %d, want 5", got.CardPosition)
	}
	if got.ReadTime != "1 min read" {
		t.Errorf("ReadTime = %q, want %q", got.ReadTime, "1 min read")
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	s := setupTestStore(t)

	specs := []ArticleSpec{testSpec("a", 1), testSpec("b", 2)}
	if err := s.UpsertArticles(specs...); err != nil {
		t.Fatalf("first UpsertArticles failed: %v", err)
	}
	first, err := s.ListAllArticles()
	if err != nil {
		t.Fatalf("ListAllArticles failed: %v", err)
	}

	if err := s.UpsertArticles(specs...); err != nil {
		t.Fatalf("second UpsertArticles failed: %v", err)
	}
	second, err := s.ListAllArticles()
	if err != nil {
		t.Fatalf("ListAllArticles failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("article count changed: %d -> %d", len(first), len(second))
	}
	for i := range first {
		f, g := first[i], second[i]
		if f.ID != g.ID || f.Slug != g.Slug || f.Title != g.Title || f.Meta != g.Meta ||
			f.Summary != g.Summary || f.Content != g.Content || f.ReadTime != g.ReadTime ||
			f.Published != g.Published || f.CardPosition != g.CardPosition {
			t.Errorf("article %q changed after re-run: %+v vs %+v", f.Slug, f, g)
		}
		if !f.CreatedAt.Equal(g.CreatedAt) {
			t.Errorf("article %q CreatedAt changed after re-run", f.Slug)
		}
	}
}

func TestClearArticles(t *testing.T) {
	s := setupTestStore(t)

	if err := s.UpsertArticles(testSpec("a", 1), testSpec("b", 2)); err != nil {
		t.Fatalf("UpsertArticles failed: %v", err)
	}
	if err := s.ClearArticles(); err != nil {
		t.Fatalf("ClearArticles failed: %v", err)
	}
	got, err := s.ListAllArticles()
	if err != nil {
		t.Fatalf("ListAllArticles failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("article count after clear = %d, want 0", len(got))
	}
}

func TestListPublishedArticlesOrderAndFilter(t *testing.T) {
	s := setupTestStore(t)

	draft := testSpec("draft", 1)
	draft.Published = false
	specs := []ArticleSpec{
		testSpec("third", 3),
		draft,
		testSpec("second", 2),
		testSpec("fourth", 4),
	}
	if err := s.UpsertArticles(specs...); err != nil {
		t.Fatalf("UpsertArticles failed: %v", err)
	}

	got, err := s.ListPublishedArticles()
	if err != nil {
		t.Fatalf("ListPublishedArticles failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("published count = %d, want 3", len(got))
	}
	for i, a := range got {
		if !a.Published {
			t.Errorf("unpublished article %q in published listing", a.Slug)
		}
		if i > 0 && got[i-1].CardPosition > a.CardPosition {
			t.Errorf("card positions not ascending: %d before %d", got[i-1].CardPosition, a.CardPosition)
		}
	}
	if got[0].Slug != "second" {
		t.Errorf("first published article = %q, want %q", got[0].Slug, "second")
	}
}

func TestGetArticleNotFound(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetArticleBySlug("nope"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetArticle(99); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func testBooking(name, level, email string) views.Booking {
	return views.Booking{
		Name:           name,
		Level:          level,
		ExamBoard:      "AQA",
		Email:          email,
		PreferredTimes: "Weekday evenings",
		Message:        "Looking for help before the summer exams.",
	}
}

func TestInsertAndGetBooking(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.InsertBooking(testBooking("Sam", "alevel", "sam@example.com"))
	if err != nil {
		t.Fatalf("InsertBooking failed: %v", err)
	}

	got, err := s.GetBooking(id)
	if err != nil {
		t.Fatalf("GetBooking failed: %v", err)
	}
	if got.Name != "Sam" || got.Level != "alevel" || got.Email != "sam@example.com" {
		t.Errorf("booking fields wrong: %+v", got)
	}
	if got.Status != views.StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, views.StatusPending)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestListBookingsMostRecentFirst(t *testing.T) {
	s := setupTestStore(t)

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.InsertBooking(testBooking(name, "gcse", name+"@example.com")); err != nil {
			t.Fatalf("InsertBooking failed: %v", err)
		}
	}

	got, err := s.ListBookings()
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("booking count = %d, want 3", len(got))
	}
	if got[0].Name != "third" || got[2].Name != "first" {
		t.Errorf("bookings not in recency order: %q ... %q", got[0].Name, got[2].Name)
	}

	recent, err := s.ListRecentBookings(2)
	if err != nil {
		t.Fatalf("ListRecentBookings failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Name != "third" {
		t.Errorf("ListRecentBookings = %+v", recent)
	}
}

func TestBookingFilters(t *testing.T) {
	s := setupTestStore(t)

	id1, err := s.InsertBooking(testBooking("Alma", "alevel", "alma@example.com"))
	if err != nil {
		t.Fatalf("InsertBooking failed: %v", err)
	}
	if _, err := s.InsertBooking(testBooking("Gus", "gcse", "gus@example.com")); err != nil {
		t.Fatalf("InsertBooking failed: %v", err)
	}
	if err := s.UpdateBookingStatus(id1, views.StatusConfirmed); err != nil {
		t.Fatalf("UpdateBookingStatus failed: %v", err)
	}

	confirmed, err := s.ListBookingsByStatus(views.StatusConfirmed)
	if err != nil {
		t.Fatalf("ListBookingsByStatus failed: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != id1 {
		t.Errorf("ListBookingsByStatus(confirmed) = %+v", confirmed)
	}

	gcse, err := s.ListBookingsByLevel("gcse")
	if err != nil {
		t.Fatalf("ListBookingsByLevel failed: %v", err)
	}
	if len(gcse) != 1 || gcse[0].Name != "Gus" {
		t.Errorf("ListBookingsByLevel(gcse) = %+v", gcse)
	}

	byEmail, err := s.ListBookingsByEmail("alma@example.com")
	if err != nil {
		t.Fatalf("ListBookingsByEmail failed: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].Name != "Alma" {
		t.Errorf("ListBookingsByEmail = %+v", byEmail)
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	s := setupTestStore(t)

	if err := s.UpdateBookingStatus(42, views.StatusCancelled); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.InsertBooking(testBooking("Del", "other", "del@example.com"))
	if err != nil {
		t.Fatalf("InsertBooking failed: %v", err)
	}
	if err := s.DeleteBooking(id); err != nil {
		t.Fatalf("DeleteBooking failed: %v", err)
	}
	if _, err := s.GetBooking(id); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
