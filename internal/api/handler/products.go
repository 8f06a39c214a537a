package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/storeclient"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/log"
)

// ProductList lista produtos paginados. Filtros: q (busca livre por nome
// ou SKU), category, active, lowStock, page, limit, sort e order.
func ProductList(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.ProductListFilters{
			Search:   query.Get("q"),
			Category: query.Get("category"),
			LowStock: query.Get("lowStock") == "true",
			Sort:     query.Get("sort"),
			Order:    query.Get("order"),
		}

		if raw := query.Get("active"); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro active inválido", nil)
				return
			}
			filters.Active = &active
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
			if errors.Is(err, cataloging.ErrSearchSuperseded) {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("products: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

func ProductDetail(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		product, err := service.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, storeclient.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto não encontrado", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("productId", id).Error("products: erro ao buscar produto")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func CreateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product storedomain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.Create(r.Context(), &product)
		if err != nil {
			if errors.Is(err, cataloging.ErrMissingName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do produto é obrigatório", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("products: erro ao criar produto")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o data store", nil)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}
