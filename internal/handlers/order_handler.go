package handlers

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"

	_ "github.com/chai2010/webp"
	"github.com/gin-gonic/gin"

	"github.com/centurialsign/sgpg-api/internal/audit"
	"github.com/centurialsign/sgpg-api/internal/cache"
	domain "github.com/centurialsign/sgpg-api/internal/domain/order"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/httperr"
	"github.com/centurialsign/sgpg-api/internal/httpresp"
	"github.com/centurialsign/sgpg-api/internal/middleware"
	"github.com/centurialsign/sgpg-api/internal/models"
	"github.com/centurialsign/sgpg-api/internal/payments"
	"github.com/centurialsign/sgpg-api/internal/storage"
	ucorder "github.com/centurialsign/sgpg-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	repo     domain.Repository
	createUC *ucorder.CreateOrder
	updateUC *ucorder.UpdateOrder
	statusUC *ucorder.ChangeStatus
	deleteUC *ucorder.DeleteOrder
	cache    *cache.StatsCache
	artwork  *storage.ArtworkStorage
	payments *payments.MercadoPago
	audit    *audit.Dispatcher
}

func NewOrderHandler(
	repo domain.Repository,
	createUC *ucorder.CreateOrder,
	updateUC *ucorder.UpdateOrder,
	statusUC *ucorder.ChangeStatus,
	deleteUC *ucorder.DeleteOrder,
	statsCache *cache.StatsCache,
	artwork *storage.ArtworkStorage,
	mp *payments.MercadoPago,
	dispatcher *audit.Dispatcher,
) *OrderHandler {
	return &OrderHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		statusUC: statusUC,
		deleteUC: deleteUC,
		cache:    statsCache,
		artwork:  artwork,
		payments: mp,
		audit:    dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	ClientID            *string  `json:"client_id"`
	ProductType         string   `json:"product_type"`
	Priority            string   `json:"priority"`
	Quantity            int      `json:"quantity"`
	UnitPrice           float64  `json:"unit_price"`
	EstimatedDelivery   string   `json:"estimated_delivery"` // YYYY-MM-DD
	Notes               string   `json:"notes"`
	DesignerName        string   `json:"designer_name"`
	ProductionChecklist []string `json:"production_checklist"`
	AssignedTo          *string  `json:"assigned_to"`
}

type UpdateOrderRequest struct {
	Title               *string  `json:"title,omitempty"`
	Description         *string  `json:"description,omitempty"`
	ClientID            *string  `json:"client_id,omitempty"`
	ProductType         *string  `json:"product_type,omitempty"`
	Priority            *string  `json:"priority,omitempty"`
	Quantity            *int     `json:"quantity,omitempty"`
	UnitPrice           *float64 `json:"unit_price,omitempty"`
	EstimatedDelivery   *string  `json:"estimated_delivery,omitempty"`
	ActualDelivery      *string  `json:"actual_delivery,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
	DesignerName        *string  `json:"designer_name,omitempty"`
	ProductionChecklist []string `json:"production_checklist,omitempty"`
	AssignedTo          *string  `json:"assigned_to,omitempty"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "order_not_found":
		httperr.NotFound(c, code, "OS não encontrada.")
	case "transition_not_allowed":
		httperr.Conflict(c, code, "Transição de status não permitida.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Status inválido.")
	case "invalid_product_type":
		httperr.BadRequest(c, code, "Tipo de produto inválido.")
	case "invalid_priority":
		httperr.BadRequest(c, code, "Prioridade inválida.")
	case "invalid_quantity":
		httperr.BadRequest(c, code, "Quantidade inválida.")
	case "invalid_unit_price":
		httperr.BadRequest(c, code, "Preço unitário inválido.")
	case "title_required":
		httperr.BadRequest(c, code, "Título é obrigatório.")
	default:
		httperr.Internal(c, code, "Erro interno.")
	}
}

// ======================================================
// LIST
// ======================================================

// Busca e filtros rodam pós-fetch, como as telas fazem.
func (h *OrderHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	statusFilter := strings.TrimSpace(c.Query("status"))
	productFilter := strings.TrimSpace(c.Query("product_type"))

	if statusFilter != "" && !workflow.Status(statusFilter).Valid() {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}
	if productFilter != "" && !workflow.ProductType(productFilter).Valid() {
		httperr.BadRequest(c, "invalid_product_type", "Tipo de produto inválido.")
		return
	}

	orders, err := h.repo.ListOrders(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar ordens.")
		return
	}

	filtered := make([]models.ServiceOrder, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if !o.MatchesSearch(query) {
			continue
		}
		if statusFilter != "" && o.Status != workflow.Status(statusFilter) {
			continue
		}
		if productFilter != "" && o.ProductType != workflow.ProductType(productFilter) {
			continue
		}
		filtered = append(filtered, *o)
	}

	httpresp.List(c, filtered)
}

// ======================================================
// GET
// ======================================================

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.repo.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "order_not_found", "OS não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    o,
		"progress": workflow.ProgressFraction(o.Status),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	estimated, err := parseDate(req.EstimatedDelivery)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data prevista inválida.")
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), ucorder.CreateOrderInput{
		Title:               req.Title,
		Description:         req.Description,
		ClientID:            req.ClientID,
		ProductType:         workflow.ProductType(req.ProductType),
		Priority:            workflow.Priority(req.Priority),
		Quantity:            req.Quantity,
		UnitPrice:           req.UnitPrice,
		EstimatedDelivery:   estimated,
		Notes:               req.Notes,
		DesignerName:        req.DesignerName,
		ProductionChecklist: req.ProductionChecklist,
		CreatedBy:           &userID,
		AssignedTo:          req.AssignedTo,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, o)
}

// ======================================================
// UPDATE
// ======================================================

func (h *OrderHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucorder.UpdateOrderInput{
		Title:               req.Title,
		Description:         req.Description,
		ClientID:            req.ClientID,
		Quantity:            req.Quantity,
		UnitPrice:           req.UnitPrice,
		Notes:               req.Notes,
		DesignerName:        req.DesignerName,
		ProductionChecklist: req.ProductionChecklist,
		AssignedTo:          req.AssignedTo,
	}

	if req.ProductType != nil {
		pt := workflow.ProductType(*req.ProductType)
		in.ProductType = &pt
	}
	if req.Priority != nil {
		p := workflow.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.EstimatedDelivery != nil {
		t, err := parseDate(*req.EstimatedDelivery)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data prevista inválida.")
			return
		}
		in.EstimatedDelivery = t
	}
	if req.ActualDelivery != nil {
		t, err := parseDate(*req.ActualDelivery)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de entrega inválida.")
			return
		}
		in.ActualDelivery = t
	}

	o, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), in, &userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, o)
}

// ======================================================
// CHANGE STATUS
// ======================================================

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	o, err := h.statusUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		workflow.Status(req.Status),
		&userID,
		req.Notes,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	next, _ := workflow.NextStatus(o.Status)
	c.JSON(http.StatusOK, gin.H{
		"order":       o,
		"next_status": next,
		"progress":    workflow.ProgressFraction(o.Status),
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *OrderHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id"), &userID); err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS HISTORY
// ======================================================

func (h *OrderHandler) History(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.repo.GetOrderByID(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, "order_not_found", "OS não encontrada.")
		return
	}

	items, err := h.repo.ListStatusHistory(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// ARTE (UPLOAD DE PROVA)
// ======================================================

func (h *OrderHandler) UploadArt(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if !h.artwork.Enabled() {
		httperr.ServiceUnavailable(c, "artwork_storage_disabled", "Armazenamento de artes não configurado.")
		return
	}

	o, err := h.repo.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "order_not_found", "OS não encontrada.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de arte é obrigatório.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo de imagem inválido.")
		return
	}

	key := fmt.Sprintf("artes/os-%d-%d.webp", o.OsNumber, time.Now().Unix())

	url, err := h.artwork.UploadPreview(c.Request.Context(), key, img)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_art", "Erro ao enviar arte.")
		return
	}

	o.ArtworkURL = url
	if err := h.repo.UpdateOrder(c.Request.Context(), o); err != nil {
		httperr.Internal(c, "failed_to_update_order", "Erro ao salvar OS.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "os_art_uploaded",
		Entity:   "service_order",
		EntityID: &o.ID,
		Metadata: map[string]any{"key": key},
	})

	c.JSON(http.StatusOK, o)
}

// ======================================================
// LINK DE PAGAMENTO
// ======================================================

func (h *OrderHandler) CreatePaymentLink(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if !h.payments.Enabled() {
		httperr.ServiceUnavailable(c, "payments_disabled", "Pagamentos não configurados.")
		return
	}

	o, err := h.repo.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "order_not_found", "OS não encontrada.")
		return
	}

	if o.Status == workflow.StatusCancelado {
		httperr.BadRequest(c, "order_cancelled", "OS cancelada não gera cobrança.")
		return
	}

	link, err := h.payments.CreateLink(c.Request.Context(), o)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment_link", "Erro ao gerar link de pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_link_created",
		Entity:   "service_order",
		EntityID: &o.ID,
		Metadata: map[string]any{"preference_id": link.PreferenceID},
	})

	c.JSON(http.StatusCreated, link)
}
