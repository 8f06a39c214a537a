package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/storeclient"
	"github.com/vfg2006/backoffice-api/internal/usecases/customering"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/log"
)

// CustomerList aplica a busca livre (parâmetro q) sobre a coleção completa
// de clientes; sem consulta, lista todos. Consultas superadas respondem 204.
func CustomerList(service customering.Customerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			if errors.Is(err, customering.ErrSearchSuperseded) {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("customers: erro na busca de clientes")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, customers)
	})
}

// CustomerDetail retorna o cliente com o histórico de pedidos dele
func CustomerDetail(service customering.Customerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de cliente inválido", nil)
			return
		}

		detail, err := service.Detail(r.Context(), id)
		if err != nil {
			if errors.Is(err, storeclient.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Cliente não encontrado", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("customerId", id).Error("customers: erro ao buscar detalhe do cliente")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, detail)
	})
}

func CreateCustomer(service customering.Customerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var customer storedomain.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.Create(r.Context(), &customer)
		if err != nil {
			if errors.Is(err, customering.ErrMissingName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("customers: erro ao criar cliente")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}
