// ================================
// internal/models/location.go - File locator request/response types
// ================================

package models

import (
	"fmt"
	"net/http"
)

// NoPosition marks an absent line or column.
const NoPosition = -1

// Encoding names the wire form a LocationRequest arrived in.
type Encoding string

const (
	EncodingQuery Encoding = "query" // GET ?file=&line=&column=
	EncodingJSON  Encoding = "json"  // POST {"file":..,"line":..,"column":..}
	EncodingPath  Encoding = "path"  // GET /api/file/<path>:line:column
)

// LocationRequest is the transport-independent form of a locate call.
// An empty File makes the request malformed regardless of the other fields.
type LocationRequest struct {
	File              string   `json:"file"`
	RelativeToProject bool     `json:"-"`
	Line              int      `json:"line"`
	Column            int      `json:"column"`
	Encoding          Encoding `json:"-"`
}

// NewLocationRequest returns a request with line and column unset.
func NewLocationRequest(file string) LocationRequest {
	return LocationRequest{File: file, Line: NoPosition, Column: NoPosition}
}

// HasLine reports whether a usable line hint was supplied.
func (r LocationRequest) HasLine() bool { return r.Line >= 0 }

// HasColumn reports whether a usable column hint was supplied.
func (r LocationRequest) HasColumn() bool { return r.Column >= 0 }

// ResolvedLocation is built fresh for every request.
type ResolvedLocation struct {
	AbsolutePath string `json:"absolute_path"`
	Exists       bool   `json:"exists"`
	IsExcluded   bool   `json:"is_excluded"`
}

// Outcome is the terminal decision for a locate call.
type Outcome int

const (
	OutcomeBadRequest Outcome = iota
	OutcomeNotFound
	OutcomeOK
)

// HTTPStatus maps the outcome onto the three statuses the endpoint emits.
func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeOK:
		return http.StatusOK
	case OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeBadRequest:
		return "bad_request"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Navigation is handed to the navigation collaborator once a file has been
// located. It is also the body of a 200 response.
type Navigation struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Excluded bool   `json:"excluded"`
}
