package ideas

import (
	"errors"
	"log/slog"
	"net/http"

	"shortsgenix/httputil"
	"shortsgenix/youtube"
)

// Error messages returned to clients.
const (
	msgURLRequired   = "URL is required"
	msgInvalidURL    = "Invalid YouTube channel URL"
	msgNotFound      = "Channel not found"
	msgQuotaExceeded = "YouTube API quota exceeded or invalid API key"
	msgInternal      = "Failed to generate ideas"
)

// Handler serves the idea endpoint.
type Handler struct {
	Pipeline *Pipeline
}

type generateRequest struct {
	URL string `json:"url" validate:"required"`
}

// HandleGenerate accepts {"url": "..."} and responds with generated ideas.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, msgURLRequired)
		return
	}

	res, err := h.Pipeline.Run(r.Context(), req.URL)
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "generate ideas", "url", req.URL, "err", err)
		} else {
			slog.InfoContext(r.Context(), "generate ideas rejected", "url", req.URL, "status", status, "err", err)
		}
		httputil.WriteError(w, status, msg)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ideas":      res.Ideas,
		"niche":      res.Niche,
		"video_type": res.VideoType,
		"channel":    res.Channel.Title,
	})
}

// statusFor maps pipeline errors to a status code and client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, youtube.ErrInvalidURL):
		return http.StatusBadRequest, msgInvalidURL
	case errors.Is(err, youtube.ErrChannelNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, youtube.ErrQuotaExceeded):
		return http.StatusForbidden, msgQuotaExceeded
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
