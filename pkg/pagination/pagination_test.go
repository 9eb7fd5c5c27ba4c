package pagination

import "testing"

func TestPage(t *testing.T) {
	items := make([]int, 0, 120)
	for i := 0; i < 120; i++ {
		items = append(items, i)
	}

	result := Page(items, &PaginationParams{Page: 2, PerPage: 50})
	if len(result.Items) != 50 {
		t.Fatalf("page 2 holds %d items, want 50", len(result.Items))
	}
	if result.Items[0] != 50 {
		t.Errorf("page 2 starts at %d, want 50", result.Items[0])
	}
	p := result.Pagination
	if p.Total != 120 || p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
		t.Errorf("unexpected pagination meta: %+v", p)
	}
}

func TestPageOutOfRange(t *testing.T) {
	result := Page([]string{"a", "b"}, &PaginationParams{Page: 9, PerPage: 50})
	if result.Items == nil || len(result.Items) != 0 {
		t.Errorf("out-of-range page = %v, want empty slice", result.Items)
	}
}

func TestParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: -3, PerPage: 10000}
	p.Validate()
	if p.Page != 1 || p.PerPage != 500 {
		t.Errorf("Validate() = %+v, want page 1 per_page 500", p)
	}
}
