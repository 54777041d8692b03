package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/internal/core/port"
)

// GET  v1/products            criteria in query params (200 OK, 500)
// GET  v1/products/suggest?q= (200 OK)
// POST v1/products/bulk JSON  (200 OK, 400 Bad request)
// GET  v1/categories          (200 OK, 500)

type CatalogHandler struct {
	searcher  port.ProductSearcher
	suggester port.ProductSuggester
	mutator   port.BulkMutator
}

func RegisterCatalog(
	mux *http.ServeMux,
	searcher port.ProductSearcher,
	suggester port.ProductSuggester,
	mutator port.BulkMutator,
) {
	h := CatalogHandler{searcher, suggester, mutator}
	mux.HandleFunc("GET /v1/products", h.SearchProducts)
	mux.HandleFunc("GET /v1/products/suggest", h.SuggestProducts)
	mux.HandleFunc("POST /v1/products/bulk", h.BulkProducts)
}

func (h CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.SearchProducts"
	log := slog.With("op", op)

	c := parseCriteria(r.URL.Query())

	res, err := h.searcher.Search(r.Context(), c)
	if err != nil {
		http.Error(w, "search failed", http.StatusInternalServerError)
		log.Error("failed to search products", "err", err)
		return
	}

	writeJSON(w, log, toSearchResponse(res))
}

func (h CatalogHandler) SuggestProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.SuggestProducts"
	log := slog.With("op", op)

	ss, err := h.suggester.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "suggest failed", http.StatusInternalServerError)
		log.Error("failed to suggest", "err", err)
		return
	}

	out := make([]Suggestion, len(ss))
	for i, s := range ss {
		out[i] = Suggestion{Text: s.Text, Type: s.Kind, Highlight: s.Highlight}
	}
	writeJSON(w, log, out)
}

func (h CatalogHandler) BulkProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.BulkProducts"
	log := slog.With("op", op)

	var req BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	res, err := h.mutator.ApplyBulk(r.Context(), domain.BulkRequest{
		Action:     req.Action,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		if isBadBatch(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Warn("rejected bulk request", "err", err)
			return
		}
		http.Error(w, "bulk mutation failed", http.StatusInternalServerError)
		log.Error("failed to apply bulk mutation", "err", err)
		return
	}

	writeJSON(w, log, BulkResponse{
		SuccessCount: res.SuccessCount,
		FailCount:    res.FailCount,
	})
}

func isBadBatch(err error) bool {
	return errors.Is(err, domain.ErrUnknownAction) ||
		errors.Is(err, domain.ErrEmptyBatch) ||
		errors.Is(err, domain.ErrBatchTooLarge)
}

type CategoriesHandler struct {
	lister port.CategoryLister
}

func RegisterCategories(mux *http.ServeMux, lister port.CategoryLister) {
	h := CategoriesHandler{lister}
	mux.HandleFunc("GET /v1/categories", h.ListCategories)
}

func (h CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.ListCategories"
	log := slog.With("op", op)

	cs, err := h.lister.ListCategories(r.Context())
	if err != nil {
		http.Error(w, "listing failed", http.StatusInternalServerError)
		log.Error("failed to list categories", "err", err)
		return
	}

	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category{ID: c.ID, Name: c.Name, Description: c.Description}
	}
	writeJSON(w, log, out)
}

type SessionHandler struct {
	notices *SessionNotices
}

func RegisterSession(mux *http.ServeMux, notices *SessionNotices) {
	h := SessionHandler{notices}
	mux.HandleFunc("POST /v1/session/image-failures", h.PostImageFailure)
}

// PostImageFailure is the beacon the UI sends when a product image
// fails to load. The response tells the caller whether to show the
// one-time "images are failing" notice.
func (h SessionHandler) PostImageFailure(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.PostImageFailure"
	log := slog.With("op", op)

	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	writeJSON(w, log, ImageFailureResponse{
		Notify: h.notices.Observe(sessionID),
	})
}

// parseCriteria maps query params onto criteria. Absent, empty and
// unparsable values contribute no constraint; paging is clamped to the
// caller-side bounds before the engine runs.
func parseCriteria(q url.Values) domain.Criteria {
	c := domain.Criteria{
		SearchText:  q.Get("search"),
		Category:    q.Get("category"),
		Brand:       q.Get("brand"),
		Status:      q.Get("status"),
		Material:    q.Get("material"),
		Color:       q.Get("color"),
		EANCode:     q.Get("ean_code"),
		BarcodeType: q.Get("barcode_type"),
		SortBy:      q.Get("sort_by"),
		SortDir:     q.Get("sort_dir"),
	}

	c.MinWeight = floatParam(q, "min_weight")
	c.MaxWeight = floatParam(q, "max_weight")
	c.MinDesi = floatParam(q, "min_desi")
	c.MaxDesi = floatParam(q, "max_desi")
	c.MinWarranty = intParam(q, "min_warranty")
	c.MaxWarranty = intParam(q, "max_warranty")

	c.HasImage = boolParam(q, "has_image")
	c.HasEAN = boolParam(q, "has_ean")
	c.HasBarcode = boolParam(q, "has_barcode")

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page >= 1 {
		c.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil && size >= 1 {
		c.PageSize = min(size, domain.MaxPageSize)
	}

	return c
}

func floatParam(q url.Values, name string) *float64 {
	if v, err := strconv.ParseFloat(q.Get(name), 64); err == nil {
		return &v
	}
	return nil
}

func intParam(q url.Values, name string) *int {
	if v, err := strconv.Atoi(q.Get(name)); err == nil {
		return &v
	}
	return nil
}

func boolParam(q url.Values, name string) *bool {
	if v, err := strconv.ParseBool(q.Get(name)); err == nil {
		return &v
	}
	return nil
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
