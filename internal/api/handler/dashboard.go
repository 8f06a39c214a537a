package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/analyzing"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/log"
)

// RevenueKPIs retorna os indicadores de receita do topo do dashboard.
// O filtro de moeda vem no parâmetro currency; ausente equivale a ALL.
func RevenueKPIs(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currency := r.URL.Query().Get("currency")

		kpis, err := service.RevenueKPIs(r.Context(), currency)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao calcular KPIs de receita")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, kpis)
	})
}

func MonthlyRevenue(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series, err := service.MonthlyRevenue(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao montar a série mensal de receita")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, series)
	})
}

func OrderStatuses(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.OrderStatuses(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao montar o histograma de status")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}

func ProductRatings(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buckets, err := service.ProductRatings(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao montar o histograma de avaliações")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, buckets)
	})
}

// TopProducts retorna o ranking de produtos. Parâmetros: metric
// (revenue | qty, padrão revenue) e limit (padrão da configuração).
func TopProducts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metric := domain.TopProductMetric(r.URL.Query().Get("metric"))

		var limit int
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		ranking, err := service.TopProducts(r.Context(), metric, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao montar o ranking de produtos")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, ranking)
	})
}

func CustomerContinents(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		distribution, err := service.CustomerContinents(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao montar a distribuição por continente")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, distribution)
	})
}
