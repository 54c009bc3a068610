package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/matryer/way"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/ptr"
	"github.com/hicampus/hicampus/validator"
)

const maxBodySize = 1 << 20

var (
	errBadRequest         = errs.NewInvalidArgumentError("", "malformed request body")
	errInvalidAuthHeader  = errs.NewUnauthenticatedError("invalid authorization header")
	errRouteNotFound      = errs.NewNotFoundError("route not found")
	errServiceUnavailable = errors.New("service unavailable")
)

type errRespBody struct {
	Error  string              `json:"error"`
	Kind   errs.Kind           `json:"kind,omitempty"`
	Field  *string             `json:"field,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func (h *handler) respond(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		h.respondErr(w, fmt.Errorf("could not json marshal http response body: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, context.Canceled) {
		_ = level.Error(h.logger).Log("msg", "could not write down http response", "err", err)
	}
}

func (h *handler) respondErr(w http.ResponseWriter, err error) {
	statusCode := err2code(err)
	if statusCode >= http.StatusInternalServerError {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, errServiceUnavailable) {
			_ = level.Error(h.logger).Log("err", err)
		}
		h.respond(w, errRespBody{Error: strings.ToLower(http.StatusText(statusCode))}, statusCode)
		return
	}

	h.respond(w, errBody(err), statusCode)
}

func errBody(err error) errRespBody {
	if v, ok := errors.AsType[*validator.Validator](err); ok {
		body := errRespBody{
			Error:  v.Error(),
			Kind:   errs.KindInvalidArgument,
			Fields: v.Errors,
		}
		if fields := v.Fields(); len(fields) != 0 {
			body.Error = v.First(fields[0])
			body.Field = &fields[0]
		}
		return body
	}

	if e, ok := errors.AsType[*errs.Error](err); ok {
		return errRespBody{
			Error: e.Message,
			Kind:  e.Kind,
			Field: e.Field,
		}
	}

	return errRespBody{Error: err.Error()}
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, errServiceUnavailable) {
		return http.StatusServiceUnavailable
	}

	if _, ok := errors.AsType[*validator.Validator](err); ok {
		return http.StatusBadRequest
	}

	e, ok := errors.AsType[*errs.Error](err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch e.Kind {
	case errs.KindInvalidArgument, errs.KindFailedPrecondition:
		return http.StatusBadRequest
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyExists:
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	defer r.Body.Close()

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return errBadRequest
	}

	return nil
}

func paramID(ctx context.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(way.Param(ctx, name), 10, 64)
	if err != nil || v <= 0 {
		return 0, errs.NewInvalidArgumentError(name, "invalid "+name)
	}
	return v, nil
}

func queryUint(r *http.Request, name string) (*uint, error) {
	q := r.URL.Query()
	if !q.Has(name) {
		return nil, nil
	}

	v, err := strconv.ParseUint(q.Get(name), 10, 64)
	if err != nil {
		return nil, errs.NewInvalidArgumentError(name, "invalid "+name)
	}

	return ptr.From(uint(v)), nil
}
