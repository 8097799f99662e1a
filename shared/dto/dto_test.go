package dto_test

import (
	"fitbook/shared/constant"
	"fitbook/shared/dto"
	"fitbook/shared/failure"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "start_time",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "start_time",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with limit above the maximum",
			queryParams: map[string]string{
				"limit": "5000",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.MaxValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "name",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "name",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestQueryParams_SetDefaultSort(t *testing.T) {
	q := dto.QueryParams{}
	q.SetDefaultSort("start_time", dto.SortDirAsc)

	if q.SortBy != "start_time" || q.SortDir != dto.SortDirAsc {
		t.Errorf("expected start_time ASC, got %s %s", q.SortBy, q.SortDir)
	}

	q = dto.QueryParams{SortBy: "name", SortDir: dto.SortDirDesc}
	q.SetDefaultSort("start_time", dto.SortDirAsc)

	if q.SortBy != "name" || q.SortDir != dto.SortDirDesc {
		t.Errorf("expected explicit ordering to be kept, got %s %s", q.SortBy, q.SortDir)
	}
}

func TestQueryParams_CacheSuffix(t *testing.T) {
	q := dto.QueryParams{Page: 2, Limit: 5, SortBy: "start_time", SortDir: dto.SortDirAsc}

	if got := q.CacheSuffix(); got != "page=2:limit=5:sort=start_time:ASC" {
		t.Errorf("unexpected cache suffix %s", got)
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	asOf := time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "strictly greater",
			filter:    dto.Filter{Field: "start_time", Operator: dto.FilterOperatorGreater, Value: asOf, Table: "classes"},
			wantWhere: "classes.start_time > :start_time",
			wantArgs:  map[string]any{"start_time": asOf},
		},
		{
			name:      "equal with arg name",
			filter:    dto.Filter{Field: "client_email", ArgName: "email", Operator: dto.FilterOperatorEq, Value: "a@b.co", Table: "bookings"},
			wantWhere: "bookings.client_email = :email",
			wantArgs:  map[string]any{"email": "a@b.co"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, value := range tt.wantArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []dto.Clause{
			dto.Filter{Field: "class_id", Operator: dto.FilterOperatorEq, Value: "c1", Table: "bookings"},
			dto.Filter{Field: "client_email", Operator: dto.FilterOperatorEq, Value: "a@b.co", Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(bookings.class_id = :class_id AND bookings.client_email = :client_email)"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}

	empty := dto.FilterGroup{}
	if where, _ := empty.GetWhereClause(); where != "" {
		t.Errorf("expected empty clause, got %q", where)
	}
}

func TestFilterGroup_GetWhereClauseNested(t *testing.T) {
	asOf := time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC)

	group := dto.FilterGroup{
		Filters: []dto.Clause{
			dto.Filter{Field: "start_time", Operator: dto.FilterOperatorGreater, Value: asOf, Table: "classes"},
			dto.Filter{Field: "name", Operator: "between", Value: "ignored"},
			dto.FilterGroup{
				Filters: []dto.Clause{
					dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "c1", Table: "classes"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(classes.start_time > :start_time AND (classes.id = :id))"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}

	if len(args) != 2 || args["id"] != "c1" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestLocationFromRequest(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("failed to load zone: %v", err)
	}

	tests := []struct {
		name     string
		query    string
		fallback *time.Location
		expected string
		wantMsg  string
	}{
		{name: "IANA zone", query: "?timezone=America/New_York", fallback: time.UTC, expected: "America/New_York"},
		{name: "IST alias", query: "?timezone=IST", fallback: time.UTC, expected: "Asia/Kolkata"},
		{name: "empty uses fallback", query: "", fallback: kolkata, expected: "Asia/Kolkata"},
		{name: "empty value uses fallback", query: "?timezone=", fallback: time.UTC, expected: "UTC"},
		{name: "unknown zone", query: "?timezone=Mars/Olympus", fallback: time.UTC, wantMsg: "timezone must be a valid IANA timezone name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/classes"+tt.query, nil)

			loc, err := dto.LocationFromRequest(req, tt.fallback)

			if tt.wantMsg != "" {
				if failure.GetCode(err) != http.StatusBadRequest {
					t.Errorf("expected bad request, got %v", err)
				}

				if failure.GetMessage(err) != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, failure.GetMessage(err))
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if loc.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, loc.String())
			}
		})
	}
}
