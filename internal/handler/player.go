// Package handler exposes the read-only HTTP API over the grant
// ledger: player lookups and the leaderboard.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/ledger"
)

// playerParams carries the validated path parameters for player routes
type playerParams struct {
	DiscordID string `validate:"required,snowflake"`
}

// PlayerResponse is the player payload including the owned items
type PlayerResponse struct {
	Player domain.Player `json:"player"`
	Items  []domain.Item `json:"items"`
}

// HandleGetPlayer returns a player's score and collection
func HandleGetPlayer(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := playerParams{DiscordID: chi.URLParam(r, "discordID")}
		if err := GetValidator().ValidateStruct(params); err != nil {
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		player, err := svc.GetPlayer(r.Context(), params.DiscordID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			if status >= http.StatusInternalServerError {
				slog.Error("Failed to get player", "error", err)
			}
			respondError(w, status, msg)
			return
		}

		items, err := svc.GetOwnedItems(r.Context(), params.DiscordID)
		if err != nil {
			slog.Error("Failed to get owned items", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: PlayerResponse{
			Player: *player,
			Items:  items,
		}})
	}
}

// HandleGetLeaderboard returns the top players by score
func HandleGetLeaderboard(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			limit = parsed
		}

		players, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			slog.Error("Failed to get leaderboard", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		if players == nil {
			players = []domain.Player{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: players})
	}
}
