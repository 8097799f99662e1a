package dto

import (
	"fitbook/shared/constant"
	"fitbook/shared/failure"
	"fitbook/shared/timezone"
	"fitbook/shared/validator"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// It's recommended to call this method with `defaultRequest` set to true if data is large
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// This will set default values for Page, Limit, SortBy, and SortDir if they are not provided in the request.
// If `defaultRequest` is false, it will only populate the fields that are present in the request.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = min(limitInt, constant.MaxValueLimit)
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// SetDefaultSort fills the ordering when the request did not name one.
func (q *QueryParams) SetDefaultSort(sortBy, sortDir string) {
	if q.SortBy == "" {
		q.SortBy = sortBy
	}

	if q.SortDir == "" {
		q.SortDir = sortDir
	}
}

// CacheSuffix renders the params as a stable cache key fragment.
func (q *QueryParams) CacheSuffix() string {
	return fmt.Sprintf("page=%d:limit=%d:sort=%s:%s", q.Page, q.Limit, q.SortBy, q.SortDir)
}

type timezoneQuery struct {
	Timezone string `json:"timezone" validate:"omitempty,timezone_name"`
}

// LocationFromRequest resolves the timezone query parameter. An empty parameter selects
// fallback; an unknown zone is a bad request.
func LocationFromRequest(r *http.Request, fallback *time.Location) (*time.Location, error) {
	query := timezoneQuery{Timezone: r.URL.Query().Get(constant.RequestParamTimezone)}
	if err := validator.ValidateStruct(&query); err != nil {
		return nil, err //nolint:wrapcheck
	}

	loc, err := timezone.Resolve(query.Timezone, fallback)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	return loc, nil
}
