package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Route paths used for link generation
const (
	pathCheckins          = "/api/v1/checkins"
	pathMyCheckins        = "/api/v1/checkins/me"
	pathMyStatistics      = "/api/v1/checkins/me/statistics"
	pathMyCheckinsV2      = "/api/v2/checkins/me"
	pathAdvancedAnalytics = "/api/v2/checkins/me/advanced-analytics"
)

// absoluteURL resolves path against the request's scheme and host
func absoluteURL(c *gin.Context, path string, query url.Values) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: path}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func link(c *gin.Context, rel, method, path string) models.Link {
	return models.Link{Href: absoluteURL(c, path, nil), Rel: rel, Method: method}
}

// checkinLinks are attached to a single check-in resource
func checkinLinks(c *gin.Context, id string, created bool) []models.Link {
	links := []models.Link{
		link(c, "self", http.MethodGet, pathCheckins+"/"+id),
		link(c, "list", http.MethodGet, pathMyCheckins),
	}
	if created {
		links = append(links, link(c, "statistics", http.MethodGet, pathMyStatistics))
	}
	return links
}

// paginationLinks builds self, first, previous, next and last links for a
// page. previous and next only appear when such a page exists. The date
// filter is carried through.
func paginationLinks[T any](c *gin.Context, path string, page models.Page[T], filter models.CheckinFilter) []models.Link {
	pageLink := func(rel string, number int) models.Link {
		q := url.Values{}
		q.Set("page_number", strconv.Itoa(number))
		q.Set("page_size", strconv.Itoa(page.PageSize))
		if filter.Start != nil {
			q.Set("start_date", filter.Start.String())
		}
		if filter.End != nil {
			q.Set("end_date", filter.End.String())
		}
		return models.Link{Href: absoluteURL(c, path, q), Rel: rel, Method: http.MethodGet}
	}

	last := page.TotalPages
	if last < 1 {
		last = 1
	}

	links := []models.Link{
		pageLink("self", page.PageNumber),
		pageLink("first", 1),
	}
	if page.HasPrevious() {
		links = append(links, pageLink("previous", page.PageNumber-1))
	}
	if page.HasNext() {
		links = append(links, pageLink("next", page.PageNumber+1))
	}
	links = append(links, pageLink("last", last))

	return links
}
