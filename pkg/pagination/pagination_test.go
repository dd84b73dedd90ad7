package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, 0},
		{"explicit", "limit=50&offset=10", 50, 10},
		{"capped at max", "limit=500", MaxLimit, 0},
		{"invalid values", "limit=abc&offset=-5", DefaultLimit, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromContext(ctxWithQuery(tt.query))
			if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("got %d/%d, want %d/%d", p.Limit, p.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 10, 3, 0)
	if !r.HasMore {
		t.Error("expected HasMore with 10 total and 3 returned")
	}
	r = NewResponse([]int{1}, 1, 20, 0)
	if r.HasMore {
		t.Error("did not expect HasMore with all rows returned")
	}
}

func TestParamsSQL(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}
	if got := p.SQL(); got != "LIMIT 20 OFFSET 40" {
		t.Errorf("SQL() = %q", got)
	}
	if p.NextOffset() != 60 {
		t.Errorf("NextOffset() = %d, want 60", p.NextOffset())
	}
	if !p.HasNext(100) || p.HasNext(60) {
		t.Error("HasNext boundaries wrong")
	}
}
