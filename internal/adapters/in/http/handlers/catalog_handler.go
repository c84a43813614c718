// internal/adapters/in/http/handlers/catalog_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "campusink/internal/application/usecase"
	"campusink/internal/domain/common"
)

// CatalogHandler serves GET /catalog/ and GET /catalog/{id}.
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeError(w, common.Processing("catalog handler is not configured", nil))
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/catalog"), "/")

	if id == "" {
		items, err := h.uc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, map[string]any{"products": items})
		return
	}

	p, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"product": p})
}
