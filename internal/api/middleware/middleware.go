package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleError writes err as a JSON ErrorResponse with the given status.
func HandleError(logger *zerolog.Logger, resp *restful.Response, err error, status int) {
	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	}); writeErr != nil {
		logger.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// NewLogger returns a filter that logs one line per request once the chain
// has run.
func NewLogger(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()
		chain.ProcessFilter(req, resp)

		event := logger.Info()
		if resp.StatusCode() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", req.Request.Method).
			Str("path", req.Request.URL.Path).
			Int("status", resp.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// NewRecoverPanic returns a filter that turns a panicking handler into a
// 500 response.
func NewRecoverPanic(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("path", req.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")
				HandleError(logger, resp, fmt.Errorf("internal server error"), http.StatusInternalServerError)
			}
		}()
		chain.ProcessFilter(req, resp)
	}
}
