package utils

import "fmt"

// PageLink describes one pagination control for the listing view.
// URL is nil when the control is disabled (prev on page 1, next on the last page).
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Pagination carries the metadata the listing view needs to render page controls.
type Pagination struct {
	CurrentPage int        `json:"current_page"`
	LastPage    int        `json:"last_page"`
	PerPage     int        `json:"per_page"`
	Total       int64      `json:"total"`
	Links       []PageLink `json:"links"`
}

// NewPagination builds pagination metadata for the given page of a result set.
// LastPage is at least 1 even when the set is empty.
func NewPagination(page, perPage int, total int64) Pagination {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	links := make([]PageLink, 0, lastPage+2)

	prev := PageLink{Label: "&laquo; Previous"}
	if page > 1 {
		prev.URL = pageURL(page - 1)
	}
	links = append(links, prev)

	for p := 1; p <= lastPage; p++ {
		links = append(links, PageLink{
			URL:    pageURL(p),
			Label:  fmt.Sprintf("%d", p),
			Active: p == page,
		})
	}

	next := PageLink{Label: "Next &raquo;"}
	if page < lastPage {
		next.URL = pageURL(page + 1)
	}
	links = append(links, next)

	return Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		Links:       links,
	}
}

func pageURL(page int) *string {
	u := fmt.Sprintf("?page=%d", page)
	return &u
}
