package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	aoc "github.com/ankarhem/advent-of-code"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/repository"
	"github.com/ankarhem/advent-of-code/domain/run"
	"github.com/ankarhem/advent-of-code/infrastructure/api/jsonapi"
	"github.com/ankarhem/advent-of-code/infrastructure/api/middleware"
	"github.com/ankarhem/advent-of-code/infrastructure/api/v1/dto"
)

// Pagination bounds for run listings.
const (
	defaultRunsLimit = 20
	maxRunsLimit     = 500
)

// RunsRouter handles run history endpoints.
type RunsRouter struct {
	client *aoc.Client
	logger *slog.Logger
}

// NewRunsRouter creates a new RunsRouter.
func NewRunsRouter(client *aoc.Client) *RunsRouter {
	return &RunsRouter{client: client, logger: client.Logger()}
}

// Routes returns the chi router for run endpoints.
func (r *RunsRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.List)
	router.Get("/{id}", r.Get)
	return router
}

// List handles GET /api/v1/runs.
func (r *RunsRouter) List(w http.ResponseWriter, req *http.Request) {
	if r.client.Runs == nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusNotFound, "run history is not configured", nil), r.logger)
		return
	}

	limit := defaultRunsLimit
	if s := req.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "limit must be a positive integer", err), r.logger)
			return
		}
		limit = min(n, maxRunsLimit)
	}

	var opts []repository.Option
	if s := req.URL.Query().Get("mode"); s != "" {
		mode, err := almanac.ParseMode(s)
		if err != nil {
			middleware.WriteError(w, req, err, r.logger)
			return
		}
		opts = append(opts, run.WithMode(mode))
	}

	runs, err := r.client.Runs.List(req.Context(), limit, opts...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	resources := make([]jsonapi.Resource, len(runs))
	for i, rn := range runs {
		resources[i] = runResource(rn)
	}
	middleware.WriteJSON(w, http.StatusOK, jsonapi.Many(resources, jsonapi.Meta{"limit": limit}))
}

// Get handles GET /api/v1/runs/{id}.
func (r *RunsRouter) Get(w http.ResponseWriter, req *http.Request) {
	if r.client.Runs == nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusNotFound, "run history is not configured", nil), r.logger)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "invalid run id", err), r.logger)
		return
	}

	rn, err := r.client.Runs.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, jsonapi.One(runResource(rn)))
}

func runResource(rn run.Run) jsonapi.Resource {
	attrs := dto.RunAttributes{
		Year:       rn.Year(),
		Day:        rn.Day(),
		Mode:       string(rn.Mode()),
		Part:       rn.Part(),
		Digest:     rn.Digest(),
		Workers:    rn.Workers(),
		DurationMS: milliseconds(rn.Duration()),
		CreatedAt:  rn.CreatedAt(),
	}
	if minimum, found := rn.Answer(); found {
		attrs.Minimum = &minimum
		attrs.Found = true
	}
	return jsonapi.NewResource("run", strconv.FormatInt(rn.ID(), 10), attrs)
}
