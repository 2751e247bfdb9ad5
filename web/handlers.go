package web

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"lottotrack/analysis"
	"lottotrack/metrics"
	"lottotrack/service"
	"lottotrack/validation"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

// Handler serves the JSON API
type Handler struct {
	users     service.UserService
	lotto     service.LottoService
	stats     service.StatService
	recommend service.RecommendService
	sessions  *SessionManager
	health    HealthChecker
}

// NewHandler creates the API handler
func NewHandler(users service.UserService, lotto service.LottoService, stats service.StatService, recommend service.RecommendService, sessions *SessionManager, health HealthChecker) *Handler {
	return &Handler{
		users:     users,
		lotto:     lotto,
		stats:     stats,
		recommend: recommend,
		sessions:  sessions,
		health:    health,
	}
}

// Health reports liveness and database reachability
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Healthy(r.Context()); err != nil {
			log.WithError(err).Warn("Health check failed")
			respondError(w, http.StatusServiceUnavailable, CodeStorage, "Database unreachable")
			return
		}
	}
	respondData(w, http.StatusOK, map[string]string{"state": "ok"})
}

// Signup creates an account and starts a session for it
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.sessions.SetSessionCookie(w, user); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, toUserDTO(user))
}

// Login checks credentials and starts a session
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.sessions.SetSessionCookie(w, user); err != nil {
		respondServiceError(w, r, err)
		return
	}

	log.WithFields(log.Fields{
		"userID":  user.ID,
		"isAdmin": user.IsAdmin(),
	}).Info("User logged in")
	respondData(w, http.StatusOK, toUserDTO(user))
}

// Logout ends the session
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.sessions.ClearSessionCookie(w)
	respondData(w, http.StatusOK, messageDTO{Message: "Logged out"})
}

// Me returns the logged-in account
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	user, err := h.users.GetUser(r.Context(), session.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toUserDTO(user))
}

// Draws returns one page of draw history
func (h *Handler) Draws(w http.ResponseWriter, r *http.Request) {
	page := getIntParam(r, "page", 1)

	result, err := h.lotto.GetPaginatedDraws(r.Context(), page)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toDrawPageDTO(result))
}

// Statistics returns the sorted number statistics
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listing, err := h.stats.ListStatistics(r.Context(), query.Get("sort"), query.Get("order"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     listing,
		Metadata: Metadata{Timestamp: time.Now(), Warning: listing.Warning},
	})
}

// Recommendation returns six numbers the caller has not picked before
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	rec, err := h.recommend.Recommend(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrInsufficientCandidates):
			metrics.RecordRecommendation("insufficient")
		case errors.Is(err, analysis.ErrStatsUnavailable):
			metrics.RecordRecommendation("unavailable")
		default:
			metrics.RecordRecommendation("error")
		}
		respondServiceError(w, r, err)
		return
	}

	metrics.RecordRecommendation("ok")
	respondData(w, http.StatusOK, recommendationDTO{
		Numbers:    toBalls(rec.Numbers),
		Candidates: rec.Candidates,
	})
}

// ListPicks returns the caller's picks, newest first
func (h *Handler) ListPicks(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	picks, err := h.lotto.ListPicks(r.Context(), session.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toPickDTOs(picks))
}

// SavePick stores a pick for the caller
func (h *Handler) SavePick(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	numbers, ok := decodePickNumbers(w, r)
	if !ok {
		return
	}

	pick, err := h.lotto.SavePick(r.Context(), session.UserID, numbers)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, toPickDTO(*pick))
}

// DeletePick removes one of the caller's picks
func (h *Handler) DeletePick(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	pickID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || pickID <= 0 {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "Invalid pick ID")
		return
	}

	if err := h.lotto.DeletePick(r.Context(), session.UserID, pickID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, messageDTO{Message: "Pick deleted"})
}

// Analyze scores a pick against the draw history
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	numbers, ok := decodePickNumbers(w, r)
	if !ok {
		metrics.RecordAnalysis("invalid")
		return
	}

	result, err := h.lotto.AnalyzePick(r.Context(), numbers)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidPick) {
			metrics.RecordAnalysis("invalid")
		}
		respondServiceError(w, r, err)
		return
	}

	if result.Failed {
		metrics.RecordAnalysis("fallback")
	} else {
		metrics.RecordAnalysis("ok")
	}
	respondData(w, http.StatusOK, result)
}

// AdminStatistics returns the number of stored stat rows
func (h *Handler) AdminStatistics(w http.ResponseWriter, r *http.Request) {
	count, err := h.stats.CountStatistics(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]int{"stat_count": count})
}

// RefreshStatistics recomputes the number statistics
func (h *Handler) RefreshStatistics(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	summary, err := h.stats.RefreshStatistics(r.Context(), session.Username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, summary)
}

type pickRequest struct {
	Numbers []json.Number `json:"numbers"`
}

// decodePickNumbers reads {"numbers": [...]} and rejects values that are not
// whole numbers. Range and count are checked by the service.
func decodePickNumbers(w http.ResponseWriter, r *http.Request) ([]int, bool) {
	var req pickRequest
	if !decodeJSON(w, r, &req) {
		return nil, false
	}

	numbers := make([]int, len(req.Numbers))
	for i, raw := range req.Numbers {
		n, err := raw.Int64()
		if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
			respondError(w, http.StatusBadRequest, CodeValidation,
				fmt.Sprintf("numbers must be whole numbers, got %q", raw.String()))
			return nil, false
		}
		numbers[i] = int(n)
	}
	return numbers, true
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
