package controllers

import (
	"net/http"
	"strings"

	"github.com/aselbek/bazar-backend/api/middleware"
	"github.com/aselbek/bazar-backend/api/responses"
	"github.com/aselbek/bazar-backend/api/validators"
	productsvc "github.com/aselbek/bazar-backend/internal/products"
	"github.com/aselbek/bazar-backend/pkg/enums"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
	"github.com/aselbek/bazar-backend/pkg/logger"
	"github.com/aselbek/bazar-backend/pkg/pagination"
)

const maxSearchLen = 128

// ProductList is the filter/search/order/page listing endpoint.
func ProductList(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		params, err := parseListParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), params, middleware.LocaleFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func parseListParams(r *http.Request) (productsvc.ListParams, error) {
	var params productsvc.ListParams
	var err error

	if params.SubCategory, err = validators.ParseQueryInt64Ptr(r, "sub_category"); err != nil {
		return params, err
	}
	if params.PriceGTE, err = validators.ParseQueryInt64Ptr(r, "product_price__gte"); err != nil {
		return params, err
	}
	if params.PriceLT, err = validators.ParseQueryInt64Ptr(r, "product_price__lt"); err != nil {
		return params, err
	}

	params.Search = validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLen)

	if raw := strings.TrimSpace(r.URL.Query().Get("ordering")); raw != "" {
		ordering, err := enums.ParseProductOrdering(raw)
		if err != nil {
			return params, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid ordering").
				WithDetails(map[string]any{"ordering": "must be one of product_price, -product_price, create_date, -create_date"})
		}
		params.Ordering = ordering
	}

	page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
	if err != nil {
		return params, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", 10, 1, 100)
	if err != nil {
		return params, err
	}
	params.Page = pagination.Params{Page: page, Limit: limit}

	return params, nil
}

// ProductDetail returns the full product document.
func ProductDetail(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := pathID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id, middleware.LocaleFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
