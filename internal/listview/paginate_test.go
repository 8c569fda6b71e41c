package listview

import "testing"

func TestPaginateTotalPages(t *testing.T) {
	cases := []struct {
		totalItems int
		size       int
		want       int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{14, 7, 2},
		{15, 7, 3},
	}
	for _, c := range cases {
		page := Paginate(c.totalItems, 1, c.size)
		if page.TotalPages != c.want {
			t.Errorf("Paginate(%d, 1, %d): expected %d pages, got %d", c.totalItems, c.size, c.want, page.TotalPages)
		}
	}
}

func TestPageSlicesSumToCollection(t *testing.T) {
	for _, totalItems := range []int{0, 1, 4, 5, 12, 35, 36} {
		for _, size := range []int{1, 5, 7} {
			totalPages := Paginate(totalItems, 1, size).TotalPages
			sum := 0
			for pageNumber := 1; pageNumber <= totalPages; pageNumber++ {
				page := Paginate(totalItems, pageNumber, size)
				sum += page.End - page.Start
			}
			if sum != totalItems {
				t.Errorf("n=%d size=%d: page slices sum to %d", totalItems, size, sum)
			}
		}
	}
}

func TestPaginateClampsOutOfBoundsPages(t *testing.T) {
	low := Paginate(12, -3, 5)
	if low.Number != 1 {
		t.Errorf("expected page < 1 to clamp to 1, got %d", low.Number)
	}
	high := Paginate(12, 99, 5)
	if high.Number != 3 {
		t.Errorf("expected page > totalPages to clamp to 3, got %d", high.Number)
	}
	if high.Start != 10 || high.End != 12 {
		t.Errorf("expected the last page to show items 10..12, got [%d:%d]", high.Start, high.End)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(0, 1, 7)
	if page.TotalPages != 1 || page.Start != 0 || page.End != 0 {
		t.Errorf("expected a single empty page, got %+v", page)
	}
	if page.RangeLabel() != "Showing 0 of 0 results" {
		t.Errorf("unexpected range label: %s", page.RangeLabel())
	}
}

func TestStateResetsOnFilterChange(t *testing.T) {
	var state State

	page := state.Apply("", "all", 40, 5)
	if page.Number != 1 {
		t.Fatalf("expected the initial page to be 1, got %d", page.Number)
	}

	page = state.Jump("", "all", 4, 40, 5)
	if page.Number != 4 {
		t.Fatalf("expected to land on page 4, got %d", page.Number)
	}

	// same filters, refreshed collection: page survives
	page = state.Apply("", "all", 40, 5)
	if page.Number != 4 {
		t.Errorf("expected an unchanged filter identity to keep the page, got %d", page.Number)
	}

	// new search term: back to page 1
	page = state.Apply("jane", "all", 3, 5)
	if page.Number != 1 {
		t.Errorf("expected a search change to reset the page, got %d", page.Number)
	}
}

func TestStateClampsWhenCollectionShrinks(t *testing.T) {
	var state State
	state.Apply("", "all", 40, 5)
	state.Jump("", "all", 8, 40, 5)

	// refresh shrinks the collection below the current page
	page := state.Apply("", "all", 11, 5)
	if page.Number != 3 {
		t.Errorf("expected the page to clamp to the new bounds, got %d", page.Number)
	}
}
