package listview

import "fmt"

// Page sizes are fixed per screen
const (
	CounsellorPageSize = 5
	WithdrawalPageSize = 7
)

// Page is a clamped window into a filtered collection; Start and End
// are slice bounds over the filtered items
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Start      int `json:"-"`
	End        int `json:"-"`
}

// Paginate computes the page window for `totalItems` items; a page
// outside [1, totalPages] is clamped rather than rejected, and an
// empty collection yields a single empty page
func Paginate(totalItems, page, size int) Page {
	if size < 1 {
		size = 1
	}
	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	end := start + size
	if end > totalItems {
		end = totalItems
	}
	return Page{
		Number:     page,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// RangeLabel renders the "Showing X to Y of Z" line under a table
func (p Page) RangeLabel() string {
	if p.TotalItems == 0 {
		return "Showing 0 of 0 results"
	}
	return fmt.Sprintf("Showing %d to %d of %d results", p.Start+1, p.End, p.TotalItems)
}

// State tracks the current page of one list view across input
// changes: a change of search term or status filter resets the page
// to 1, while a pure collection refresh only clamps it into the new
// bounds
type State struct {
	page        int
	lastFilters string
}

func (s *State) Apply(search, status string, totalItems, size int) Page {
	filters := fmt.Sprintf("%s|%s", search, status)
	if s.page == 0 || filters != s.lastFilters {
		s.page = 1
		s.lastFilters = filters
	}
	page := Paginate(totalItems, s.page, size)
	s.page = page.Number
	return page
}

// Jump moves to an explicitly requested page under the given
// filters, clamped into bounds
func (s *State) Jump(search, status string, page, totalItems, size int) Page {
	s.lastFilters = fmt.Sprintf("%s|%s", search, status)
	result := Paginate(totalItems, page, size)
	s.page = result.Number
	return result
}
