package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/golazo-app/golazo-api/internal/usecase"
)

type Handler struct {
	matchService      *usecase.MatchService
	tournamentService *usecase.TournamentService
	detailService     *usecase.DetailService
	warmupService     *usecase.WarmupService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	tournamentService *usecase.TournamentService,
	detailService *usecase.DetailService,
	warmupService *usecase.WarmupService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:      matchService,
		tournamentService: tournamentService,
		detailService:     detailService,
		warmupService:     warmupService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments := h.tournamentService.List(ctx)

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByDate")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		writeError(ctx, w, fmt.Errorf("%w: date query parameter is required", usecase.ErrInvalidInput))
		return
	}

	matches, err := h.matchService.ListByDate(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	rawID := r.PathValue("matchID")
	matchID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || matchID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: match id must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	detail, err := h.detailService.GetMatchDetail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

type warmMatchesRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) RunWarmMatchesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmMatchesJob")
	defer span.End()

	var req warmMatchesRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body", usecase.ErrInvalidInput))
		return
	}
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON body", usecase.ErrInvalidInput))
			return
		}
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}
	if req.Date == "" {
		req.Date = time.Now().UTC().Format("2006-01-02")
	}

	result, err := h.warmupService.WarmDate(ctx, req.Date)
	if err != nil {
		h.logger.WarnContext(ctx, "warm matches job failed", "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
