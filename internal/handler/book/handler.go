package book

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/z-bookstore/backend/internal/logging"
	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/catalog"
	"github.com/zhouzirui/z-bookstore/backend/pkg/utils"
)

// Handler 图书JSON接口的HTTP处理器
type Handler struct {
	catalog *catalog.Service
}

// New 创建图书接口处理器
func New(svc *catalog.Service) *Handler {
	return &Handler{catalog: svc}
}

// RegisterRoutes 注册图书相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/books", h.handleListBooks)
	r.Get("/books/{id}", h.handleGetBook)
}

// handleListBooks 列出所有图书
func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.List(r.Context())
	if err != nil {
		h.respondLoadError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, books)
}

// handleGetBook 返回单本图书及推荐
func (h *Handler) handleGetBook(w http.ResponseWriter, r *http.Request) {
	detail, ok, err := h.catalog.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondLoadError(w, r, err)
		return
	}
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "book not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, detail)
}

func (h *Handler) respondLoadError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, book.ErrDataSource) {
		utils.RespondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Msg("book api: request failed")
	utils.RespondError(w, http.StatusInternalServerError, "internal error")
}
