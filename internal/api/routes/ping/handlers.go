// Package ping contains handlers for pinging the server
package ping

import (
	"net/http"

	"github.com/mign0n/foodgram-project/internal/env"
	mJson "github.com/mign0n/foodgram-project/internal/json"
)

type PingResponse struct {
	Status string `json:"status"`
}

// HandlePing godoc
//
//	@Summary	Ping endpoint.
//	@Tags		Ping
//
//	@Produce	json
//	@Success	200	{object}	PingResponse
//	@Router		/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := mJson.Write(w, PingResponse{Status: "ok"}); err != nil {
		env.EnvFromCtx(r.Context()).Logger.ErrorContext(r.Context(), "failed to write response")
	}
}
