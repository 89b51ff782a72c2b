// Package v1 implements the version 1 HTTP API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	aoc "github.com/ankarhem/advent-of-code"
	"github.com/ankarhem/advent-of-code/application/service"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	parser "github.com/ankarhem/advent-of-code/infrastructure/almanac"
	"github.com/ankarhem/advent-of-code/infrastructure/api/jsonapi"
	"github.com/ankarhem/advent-of-code/infrastructure/api/middleware"
	"github.com/ankarhem/advent-of-code/infrastructure/api/v1/dto"
)

// maxAlmanacBytes bounds the request body of a solve call.
const maxAlmanacBytes = 4 << 20

// SolveRouter handles solve API endpoints.
type SolveRouter struct {
	client *aoc.Client
	logger *slog.Logger
}

// NewSolveRouter creates a new SolveRouter.
func NewSolveRouter(client *aoc.Client) *SolveRouter {
	return &SolveRouter{client: client, logger: client.Logger()}
}

// Routes returns the chi router for solve endpoints.
func (r *SolveRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", r.Solve)
	return router
}

// Solve handles POST /api/v1/solve.
func (r *SolveRouter) Solve(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.SolveRequest
	if err := json.NewDecoder(io.LimitReader(req.Body, maxAlmanacBytes)).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}
	if strings.TrimSpace(body.Almanac) == "" {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "almanac is required", nil), r.logger)
		return
	}

	modes, err := parseModes(body.Mode)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	name, err := documentName(body.Format)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	alm, err := parser.Decode(name, []byte(body.Almanac), r.client.PipelineOptions()...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	record := body.Record || r.client.RecordsRuns()
	resources := make([]jsonapi.Resource, 0, len(modes))
	for _, mode := range modes {
		answer, err := r.client.Solve(ctx, alm, mode)
		if err != nil {
			middleware.WriteError(w, req, err, r.logger)
			return
		}

		attrs := answerAttributes(answer)
		if record {
			saved, err := r.client.Record(ctx, []byte(body.Almanac), answer)
			if errors.Is(err, aoc.ErrNoDatabase) {
				middleware.WriteError(w, req, middleware.NewAPIError(http.StatusConflict, "run history is not configured", err), r.logger)
				return
			}
			if err != nil {
				middleware.WriteError(w, req, err, r.logger)
				return
			}
			attrs.RunID = saved.ID()
		}
		resources = append(resources, jsonapi.NewResource("answer", string(mode), attrs))
	}

	if len(resources) == 1 {
		middleware.WriteJSON(w, http.StatusOK, jsonapi.One(resources[0]))
		return
	}
	middleware.WriteJSON(w, http.StatusOK, jsonapi.Many(resources, nil))
}

func parseModes(s string) ([]almanac.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return almanac.Modes(), nil
	default:
		mode, err := almanac.ParseMode(s)
		if err != nil {
			return nil, err
		}
		return []almanac.Mode{mode}, nil
	}
}

func documentName(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "txt":
		return "almanac.txt", nil
	case "yaml", "yml":
		return "almanac.yaml", nil
	default:
		return "", middleware.NewAPIError(http.StatusBadRequest, fmt.Sprintf("unknown format %q", format), nil)
	}
}

func answerAttributes(a service.Answer) dto.AnswerAttributes {
	attrs := dto.AnswerAttributes{
		Mode:       string(a.Mode()),
		Part:       a.Part(),
		Units:      a.Units(),
		Workers:    a.Workers(),
		DurationMS: milliseconds(a.Duration()),
	}
	if minimum, found := a.Minimum(); found {
		attrs.Minimum = &minimum
		attrs.Found = true
	}
	return attrs
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
