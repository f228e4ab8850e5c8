package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/aoc2022/internal/api/middleware"
	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/runner"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

// MaxBodyBytes caps the size of a solve request body.
const MaxBodyBytes = 1 << 20

type Handler struct {
	runner *runner.Runner
	logger *zerolog.Logger
}

func NewHandler(runner *runner.Runner, logger *zerolog.Logger) *Handler {
	return &Handler{
		runner: runner,
		logger: logger,
	}
}

// POST /api/v1/days/{day}/parts/{part}
// Body: SolveBody
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	day, err := pathInt(req, "day")
	if err != nil {
		middleware.HandleError(h.logger, resp, err, http.StatusBadRequest)
		return
	}
	part, err := pathInt(req, "part")
	if err != nil {
		middleware.HandleError(h.logger, resp, err, http.StatusBadRequest)
		return
	}

	req.Request.Body = http.MaxBytesReader(resp.ResponseWriter, req.Request.Body, MaxBodyBytes)

	var body SolveBody
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(h.logger, resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().Int("day", day).Int("part", part).Int("input_bytes", len(body.Input)).Msg("Start solve")

	result, err := h.runner.Solve(req.Request.Context(), models.SolveRequest{
		Day:   day,
		Part:  part,
		Input: body.Input,
	})
	if err != nil {
		middleware.HandleError(h.logger, resp, err, StatusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/days
func (h *Handler) ListDays(req *restful.Request, resp *restful.Response) {
	entries := h.runner.Registry().Days()
	days := make([]models.DayInfo, 0, len(entries))
	for _, e := range entries {
		days = append(days, models.DayInfo{Day: e.Day, Title: e.Title, Examples: len(e.Examples)})
	}

	resp.WriteHeaderAndEntity(http.StatusOK, days)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// StatusFor maps a solve error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, puzzle.ErrOutOfRange), errors.Is(err, puzzle.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, puzzle.ErrUnsupported):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func pathInt(req *restful.Request, name string) (int, error) {
	raw := req.PathParameter(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", puzzle.ErrOutOfRange, name, raw)
	}
	return n, nil
}
