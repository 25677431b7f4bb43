package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/centurialsign/sgpg-api/internal/cache"
	domain "github.com/centurialsign/sgpg-api/internal/domain/order"
	"github.com/centurialsign/sgpg-api/internal/domain/stats"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/httperr"
	"github.com/centurialsign/sgpg-api/internal/httpresp"
	"github.com/centurialsign/sgpg-api/internal/models"
)

const activityFeedLimit = 10

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	repo  domain.Repository
	cache *cache.StatsCache
}

func NewDashboardHandler(repo domain.Repository, statsCache *cache.StatsCache) *DashboardHandler {
	return &DashboardHandler{repo: repo, cache: statsCache}
}

// ======================================================
// STATS
// ======================================================

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx); ok {
		httpresp.OK(c, cached)
		return
	}

	orders, err := h.repo.ListOrders(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar ordens.")
		return
	}

	summary := stats.Compute(orders)
	h.cache.Set(ctx, summary)

	httpresp.OK(c, summary)
}

// ======================================================
// ATIVIDADES RECENTES
// ======================================================

// Activity prefere a trilha real de mudanças de status; instalações
// antigas sem trilha caem no feed heurístico sobre as próprias ordens.
func (h *DashboardHandler) Activity(c *gin.Context) {
	ctx := c.Request.Context()

	history, err := h.repo.ListRecentHistory(ctx, activityFeedLimit)
	if err == nil && len(history) > 0 {
		httpresp.List(c, stats.FromHistory(history))
		return
	}

	orders, err := h.repo.ListOrders(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar ordens.")
		return
	}

	httpresp.List(c, stats.BuildFeed(orders, activityFeedLimit))
}

// ======================================================
// URGENTES
// ======================================================

func (h *DashboardHandler) Urgent(c *gin.Context) {
	orders, err := h.repo.ListOrders(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar ordens.")
		return
	}

	urgent := make([]models.ServiceOrder, 0)
	for i := range orders {
		o := &orders[i]
		if o.Priority != workflow.PriorityUrgente {
			continue
		}
		if o.Status == workflow.StatusConcluido || o.Status == workflow.StatusCancelado {
			continue
		}
		urgent = append(urgent, *o)
	}

	httpresp.List(c, urgent)
}
