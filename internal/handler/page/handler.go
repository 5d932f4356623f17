package page

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/z-bookstore/backend/internal/logging"
	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/catalog"
	"github.com/zhouzirui/z-bookstore/backend/internal/view"
	"github.com/zhouzirui/z-bookstore/backend/pkg/utils"
)

// Cards 决定各页面使用的卡片样式
type Cards struct {
	// Index 用于首页列表
	Index view.CardRenderer
	// Sample 用于 /sample 列表以及详情页的推荐区
	Sample view.CardRenderer
}

// DefaultCards 首页用普通卡片，sample 页用商城风格卡片
func DefaultCards() Cards {
	return Cards{Index: view.PlainCard, Sample: view.MarketplaceCard}
}

// CardsFor 按名称解析卡片样式，未知名称返回错误
func CardsFor(index, sample string) (Cards, error) {
	indexCards, err := view.NewCardRenderer(index)
	if err != nil {
		return Cards{}, fmt.Errorf("index cards: %w", err)
	}
	sampleCards, err := view.NewCardRenderer(sample)
	if err != nil {
		return Cards{}, fmt.Errorf("sample cards: %w", err)
	}
	return Cards{Index: indexCards, Sample: sampleCards}, nil
}

// Handler 服务端渲染页面的HTTP处理器
type Handler struct {
	catalog *catalog.Service
	index   view.CatalogView
	sample  view.CatalogView
	detail  view.DetailView
}

// New 创建页面处理器
func New(svc *catalog.Service, cards Cards) *Handler {
	return &Handler{
		catalog: svc,
		index:   view.CatalogView{Cards: cards.Index},
		sample:  view.CatalogView{Cards: cards.Sample},
		detail:  view.DetailView{Cards: cards.Sample},
	}
}

// RegisterRoutes 注册页面路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/sample", h.handleSample)
	r.Get("/sample/books/{id}", h.handleDetail)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, h.index, view.CatalogPage{Heading: "本の一覧"})
}

func (h *Handler) handleSample(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, h.sample, view.CatalogPage{
		Heading:  "マーケットプレイス風の本の一覧",
		BackLink: &view.Link{Href: "/", Label: "通常のカードで見る"},
	})
}

func (h *Handler) renderListing(w http.ResponseWriter, r *http.Request, v view.CatalogView, page view.CatalogPage) {
	books, err := h.catalog.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	page.Books = books

	var buf bytes.Buffer
	if err := v.Render(&buf, page); err != nil {
		h.renderError(w, r, err)
		return
	}
	utils.RespondHTML(w, http.StatusOK, &buf)
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, ok, err := h.catalog.Detail(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if !ok {
		if err := view.RenderNotFound(&buf, id); err != nil {
			h.renderError(w, r, err)
			return
		}
		utils.RespondHTML(w, http.StatusNotFound, &buf)
		return
	}

	if err := h.detail.Render(&buf, detail.Book, detail.Recommendations); err != nil {
		h.renderError(w, r, err)
		return
	}
	utils.RespondHTML(w, http.StatusOK, &buf)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	event := logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path)
	if errors.Is(err, book.ErrDataSource) {
		event.Msg("page: catalog unavailable")
	} else {
		event.Msg("page: render failed")
	}

	var buf bytes.Buffer
	if renderErr := view.RenderError(&buf); renderErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	utils.RespondHTML(w, http.StatusInternalServerError, &buf)
}
