// SPDX-License-Identifier: GPL-3.0-only

package messages

import (
	"relay-server/models"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// DefaultMaxLimit caps a single page unless overridden via MESSAGES_MAX_LIMIT.
	DefaultMaxLimit = 100
)

// ErrInvalidPagination is returned when page or limit is not an integer. It is
// carried by a ValidationError so the boundary maps it to a 400 like any other
// input-shape failure.
var ErrInvalidPagination = &ValidationError{Message: "page and limit must be integers"}

// ListRequest is a normalized, range-clamped query descriptor. It is built
// fresh per read request and exposes no mutators.
type ListRequest struct {
	status string
	page   int
	limit  int
}

// NewListRequest normalizes already-typed parameters. A status outside
// {"sent","read"} silently coerces to "" (no filter); page and limit clamp to
// a minimum of 1, and limit additionally caps at maxLimit when positive.
func NewListRequest(status string, page, limit, maxLimit int) ListRequest {
	if status != string(models.StatusSent) && status != string(models.StatusRead) {
		status = ""
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return ListRequest{status: status, page: page, limit: limit}
}

// ParseListRequest builds a ListRequest from raw query strings. Empty page and
// limit take their defaults; non-integer input fails with ErrInvalidPagination.
func ParseListRequest(status, page, limit string, maxLimit int) (ListRequest, error) {
	pageNum := DefaultPage
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return ListRequest{}, ErrInvalidPagination
		}
		pageNum = n
	}
	limitNum := DefaultLimit
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return ListRequest{}, ErrInvalidPagination
		}
		limitNum = n
	}
	return NewListRequest(status, pageNum, limitNum, maxLimit), nil
}

// Status is the effective filter: "" means all statuses.
func (r ListRequest) Status() string { return r.status }

func (r ListRequest) Page() int { return r.page }

func (r ListRequest) Limit() int { return r.limit }

// Offset is the number of leading rows the query skips.
func (r ListRequest) Offset() int { return (r.page - 1) * r.limit }
