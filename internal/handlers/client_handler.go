package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/centurialsign/sgpg-api/internal/audit"
	"github.com/centurialsign/sgpg-api/internal/httperr"
	"github.com/centurialsign/sgpg-api/internal/httpresp"
	"github.com/centurialsign/sgpg-api/internal/middleware"
	"github.com/centurialsign/sgpg-api/internal/models"
	"github.com/centurialsign/sgpg-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	CpfCnpj string `json:"cpf_cnpj"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Notes   string `json:"notes"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	CpfCnpj *string `json:"cpf_cnpj,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

// A busca roda pós-fetch, como a tela faz: a coleção de uma
// gráfica cabe inteira na memória.
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	var clients []models.Client
	if err := h.db.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	if query != "" {
		filtered := make([]models.Client, 0, len(clients))
		for i := range clients {
			if clients[i].MatchesSearch(query) {
				filtered = append(filtered, clients[i])
			}
		}
		clients = filtered
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.CpfCnpj != "" && !validators.IsCpfCnpjValid(req.CpfCnpj) {
		httperr.BadRequest(c, "invalid_cpf_cnpj", "CPF/CNPJ inválido.")
		return
	}

	client := models.Client{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		CpfCnpj: req.CpfCnpj,
		Address: req.Address,
		City:    req.City,
		State:   strings.ToUpper(req.State),
		Notes:   req.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "name_required", "Nome é obrigatório.")
			return
		}
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.CpfCnpj != nil {
		if *req.CpfCnpj != "" && !validators.IsCpfCnpjValid(*req.CpfCnpj) {
			httperr.BadRequest(c, "invalid_cpf_cnpj", "CPF/CNPJ inválido.")
			return
		}
		client.CpfCnpj = *req.CpfCnpj
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.State != nil {
		client.State = strings.ToUpper(*req.State)
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, client)
}
