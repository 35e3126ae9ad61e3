package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the HTTP response has already been written and
// the handler should return.
//
// Example usage:
//
//	var req SyncItemsRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Sync items"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, ErrMsgBodyTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, CodeInvalidBody, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		code, fields := FormatValidationError(err)
		respondFieldErrors(w, code, fields)
		return err
	}

	return nil
}

// queryReader parses typed query parameters and collects parse failures
// by parameter name
type queryReader struct {
	values url.Values
	errs   map[string]string
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{values: r.URL.Query(), errs: make(map[string]string)}
}

// String returns the trimmed parameter, or "" when absent
func (q *queryReader) String(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

// Int returns the parameter, or def when absent
func (q *queryReader) Int(name string, def int) int {
	v := q.OptionalInt(name)
	if v == nil {
		return def
	}
	return *v
}

// OptionalInt returns nil when the parameter is absent
func (q *queryReader) OptionalInt(name string) *int {
	raw := q.String(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs[name] = "Must be an integer"
		return nil
	}
	return &v
}

// OptionalFloat returns nil when the parameter is absent
func (q *queryReader) OptionalFloat(name string) *float64 {
	raw := q.String(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		q.errs[name] = "Must be a number"
		return nil
	}
	return &v
}

// bindQuery reports parse failures first, then runs struct validation on
// the populated params. It returns false once a response has been written.
func bindQuery(w http.ResponseWriter, r *http.Request, q *queryReader, params any) bool {
	if len(q.errs) > 0 {
		logger.FromContext(r.Context()).Warn("Rejected query parameters", "fields", q.errs)
		respondFieldErrors(w, CodeInvalidParameter, q.errs)
		return false
	}
	if err := GetValidator().ValidateStruct(params); err != nil {
		code, fields := FormatValidationError(err)
		logger.FromContext(r.Context()).Warn("Rejected query parameters", "fields", fields)
		respondFieldErrors(w, code, fields)
		return false
	}
	return true
}

// pathInt parses a positive integer chi URL parameter. It returns false
// once a response has been written.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		respondFieldErrors(w, CodeInvalidParameter, map[string]string{
			name: fmt.Sprintf(ErrMsgInvalidPathParam, name),
		})
		return 0, false
	}
	return v, true
}
