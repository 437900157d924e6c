package controllers

import (
	"net/http"
	"presence/internal/aggregation"
	"presence/internal/models"
	"presence/internal/providers"
	"presence/internal/services"
	"strconv"

	json "github.com/goccy/go-json"
)

const userIDParam = "user_id"

type ApiController struct {
	logger  providers.Logger
	service services.PresenceServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.PresenceServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

// getUserID reads the user id path segment. A missing or non-numeric id is
// reported as not ok and answered like an unknown user.
func getUserID(r *http.Request) (int, bool) {
	raw := r.PathValue(userIDParam)
	if raw == "" {
		return 0, false
	}
	id, err := models.ParseUserID(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// responseKey scopes a cache key to the dataset generation, so a response
// computed from an older dataset is never served after a reload.
func (ac *ApiController) responseKey(name string) (string, error) {
	gen, err := ac.service.Generation()
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(gen, 10) + ":" + name, nil
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, name string, compute func() (any, error)) {
	cacheKey, err := ac.responseKey(name)
	if err != nil {
		ac.logger.Errorf(providers.TypeApi, "Unable to serve %s: %s", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.logger.Errorf(providers.TypeApi, "Unable to serve %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSON(w, gson)
}

func (ac *ApiController) serveUserView(w http.ResponseWriter, r *http.Request, name string, view func(int) ([]aggregation.Row, error)) {
	userID, ok := getUserID(r)
	if !ok {
		ac.logger.Debugf(providers.TypeApi, "%s: invalid user id %q", name, r.PathValue(userIDParam))
		writeJSON(w, []byte("[]"))
		return
	}
	ac.serveFromCacheOrCompute(w, name+":"+strconv.Itoa(userID), func() (any, error) {
		return view(userID)
	})
}

// Users lists users for the dashboard dropdown.
func (ac *ApiController) Users(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "users", func() (any, error) {
		return ac.service.Users()
	})
}

// MeanTimeWeekday returns the mean presence time of a user grouped by weekday.
func (ac *ApiController) MeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	ac.serveUserView(w, r, "mean_time_weekday", ac.service.MeanTimeWeekday)
}

// PresenceWeekday returns the total presence time of a user grouped by weekday.
func (ac *ApiController) PresenceWeekday(w http.ResponseWriter, r *http.Request) {
	ac.serveUserView(w, r, "presence_weekday", ac.service.PresenceWeekday)
}

// PresenceStartEnd returns the mean start and end of work per weekday.
func (ac *ApiController) PresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	ac.serveUserView(w, r, "presence_start_end", ac.service.PresenceStartEnd)
}
