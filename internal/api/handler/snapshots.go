package handler

import (
	"net/http"

	"github.com/vfg2006/backoffice-api/internal/scheduler"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/log"
)

// RunSnapshotRefresh dispara manualmente o reaquecimento das visões do
// dashboard, fora do agendamento da cron
func RunSnapshotRefresh(service *scheduler.SnapshotRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reaquecimento não disponível", nil)
			return
		}

		log.ForContext(r.Context()).Info("snapshots: reaquecimento manual disparado")
		service.TriggerManualRefresh()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Reaquecimento das visões iniciado",
		})
	})
}

func GetSnapshotStatus(service *scheduler.SnapshotRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reaquecimento não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.GetStatus())
	})
}
