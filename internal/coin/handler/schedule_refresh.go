package handler

import (
	"errors"
	"net/http"
	"strings"

	"valens/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ScheduleRefreshResponse struct {
	RefreshID string `json:"refresh_id"`
}

func (h *Handler) ScheduleRefresh(w http.ResponseWriter, r *http.Request) {
	address := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "address")))

	if err := h.validator.ValidateAddress(address); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	refreshID, err := h.service.ScheduleRefresh(r.Context(), address)
	if err != nil {
		if errors.Is(err, domain.ErrCoinNotFound) {
			writeError(w, http.StatusNotFound, "coin not found")
			return
		}
		msg := "refresh wasn't scheduled"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ScheduleRefresh", "address": address}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusAccepted, ScheduleRefreshResponse{
		RefreshID: refreshID.String(),
	})
}
