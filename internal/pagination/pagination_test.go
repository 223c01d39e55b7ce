package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		page     int
		pageSize int
	}{
		{name: "zero_values", in: PageRequest{}, page: 1, pageSize: DefaultPageSize},
		{name: "kept", in: PageRequest{Page: 3, PageSize: 5}, page: 3, pageSize: 5},
		{name: "capped", in: PageRequest{Page: 1, PageSize: 500}, page: 1, pageSize: MaxPageSize},
		{name: "negative", in: PageRequest{Page: -2, PageSize: -1}, page: 1, pageSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Defaults()
			if req.Page != tt.page || req.PageSize != tt.pageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", req.Page, req.PageSize, tt.page, tt.pageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	req := PageRequest{Page: 3, PageSize: 20}
	if got := req.Offset(); got != 40 {
		t.Errorf("expected offset 40, got %d", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 20, 41)
	if resp.Data == nil {
		t.Error("expected empty slice, got nil")
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}

	empty := NewPageResponse([]int{}, 1, 20, 0)
	if empty.TotalPages != 0 {
		t.Errorf("expected 0 pages, got %d", empty.TotalPages)
	}
}
