package tutorsite

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/npatters/tutorsite/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves an RSS 2.0 feed of published articles.
func (a *App) handleFeed(c echo.Context) error {
	articles, err := a.Store.ListPublishedArticles()
	if err != nil {
		return err
	}
	return a.renderRSS(c, articles)
}

func (a *App) renderRSS(c echo.Context, articles []views.Article) error {
	base := a.Config.Site.URL
	items := make([]rssItem, 0, len(articles))
	for _, art := range articles {
		articleURL := base + "/blog#" + art.Slug
		items = append(items, rssItem{
			Title:       art.Title,
			Link:        articleURL,
			Description: art.Summary,
			PubDate:     art.CreatedAt.Format(time.RFC1123Z),
			GUID:        articleURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Site.Name,
			Link:        base,
			Description: a.Config.Site.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
