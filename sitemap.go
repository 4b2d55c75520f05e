package tutorsite

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap serves the sitemap: the static pages plus the blog page,
// stamped with the most recent article update.
func (a *App) handleSitemap(c echo.Context) error {
	articles, err := a.Store.ListPublishedArticles()
	if err != nil {
		return err
	}
	base := a.Config.Site.URL
	urls := []sitemapURL{
		{Loc: base + "/"},
		{Loc: base + "/tutoring"},
	}
	blogURL := sitemapURL{Loc: base + "/blog"}
	for _, art := range articles {
		mod := art.UpdatedAt.Format("2006-01-02")
		if mod > blogURL.LastMod {
			blogURL.LastMod = mod
		}
	}
	urls = append(urls, blogURL)

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
