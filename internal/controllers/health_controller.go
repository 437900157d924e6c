package controllers

import (
	"fmt"
	"net/http"
	"presence/internal/refresh/interfaces"
	"presence/internal/services"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	service   services.PresenceServiceInterface
	scheduler interfaces.SchedulerInterface
	startTime time.Time
}

type healthResponse struct {
	Status          string  `json:"status"`
	Uptime          string  `json:"uptime"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	Users           int     `json:"users"`
	CacheEntries    int     `json:"cache_entries"`
	MetadataRefresh string  `json:"metadata_refresh,omitempty"`
	MetadataError   string  `json:"metadata_error,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// Health reports 503 when the presence source cannot be loaded.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		MetadataError: hc.scheduler.LastError(),
	}
	if last := hc.scheduler.LastRefresh(); !last.IsZero() {
		resp.MetadataRefresh = last.Format(time.RFC3339)
	}

	status := http.StatusOK
	data, err := hc.service.GetData()
	if err != nil {
		status = http.StatusServiceUnavailable
		resp.Status = "error"
		resp.Error = err.Error()
	} else {
		resp.Users = len(data)
	}
	resp.CacheEntries = hc.service.CacheEntries()

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.PresenceServiceInterface, scheduler interfaces.SchedulerInterface) *HealthController {
	return &HealthController{
		service:   service,
		scheduler: scheduler,
		startTime: time.Now(),
	}
}
