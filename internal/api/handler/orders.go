package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/storeclient"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/ordering"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/log"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderList lista pedidos paginados. Filtros: status, customerId,
// paymentMethod, dateFrom/dateTo (ISO-8601, limites inclusivos), page,
// limit, sort e order.
func OrderList(service ordering.Orderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.OrderListFilters{
			Sort:  query.Get("sort"),
			Order: query.Get("order"),
		}

		if raw := query.Get("status"); raw != "" {
			status := domain.OrderStatus(raw)
			filters.Status = &status
		}
		if raw := query.Get("customerId"); raw != "" {
			customerID, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro customerId inválido", nil)
				return
			}
			filters.CustomerID = &customerID
		}
		if raw := query.Get("paymentMethod"); raw != "" {
			filters.PaymentMethod = &raw
		}
		if raw := query.Get("dateFrom"); raw != "" {
			filters.DateFrom = &raw
		}
		if raw := query.Get("dateTo"); raw != "" {
			filters.DateTo = &raw
		}
		if raw := query.Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page inválido", nil)
				return
			}
			filters.Page = page
		}
		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			filters.Limit = limit
		}

		page, err := service.List(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("orders: erro ao listar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

// OrderSearch aplica a busca livre (parâmetro q) sobre o conjunto completo
// de pedidos. Consultas superadas por digitação mais recente respondem 204.
func OrderSearch(service ordering.Orderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results, err := service.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			if errors.Is(err, ordering.ErrSearchSuperseded) {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("orders: erro na busca livre")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, results)
	})
}

func OrderDetail(service ordering.Orderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderIDFromPath(w, r)
		if !ok {
			return
		}

		detail, err := service.Detail(r.Context(), id)
		if err != nil {
			if errors.Is(err, storeclient.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Pedido não encontrado", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("orderId", id).Error("orders: erro ao buscar detalhe do pedido")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, detail)
	})
}

func UpdateOrderStatus(service ordering.Orderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderIDFromPath(w, r)
		if !ok {
			return
		}

		var req UpdateOrderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		order, err := service.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, "Status de pedido inválido", nil)
			case errors.Is(err, storeclient.ErrNotFound):
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Pedido não encontrado", nil)
			default:
				log.ForContext(r.Context()).WithError(err).WithField("orderId", id).Error("orders: erro ao atualizar status")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, order)
	})
}

func orderIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de pedido inválido", nil)
		return 0, false
	}

	return id, true
}
