package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tallermotors/autoservice-api/internal/cache"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
	"github.com/tallermotors/autoservice-api/internal/httpresp"
	"github.com/tallermotors/autoservice-api/internal/pagination"
	ucClient "github.com/tallermotors/autoservice-api/internal/usecase/client"
	"github.com/tallermotors/autoservice-api/internal/validators"
)

const clientsCollection = "clients"

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	create *ucClient.CreateClient
	update *ucClient.UpdateClient
	remove *ucClient.DeleteClient
	get    *ucClient.GetClient
	list   *ucClient.ListClients
	cache  *cache.Cache
}

func NewClientHandler(
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	remove *ucClient.DeleteClient,
	get *ucClient.GetClient,
	list *ucClient.ListClients,
	c *cache.Cache,
) *ClientHandler {
	return &ClientHandler{
		create: create,
		update: update,
		remove: remove,
		get:    get,
		list:   list,
		cache:  c,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
}

// UpdateClientRequest is a partial body: absent keys stay untouched.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
	Age      *int    `json:"age"`
}

// ======================================================
// LIST (GET /clients)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	key := h.cache.Key(ctx, clientsCollection, c.Request.URL.RequestURI())
	if b, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	clients, summary, err := h.list.Execute(ctx, ucClient.ListClientsInput{
		Filter: domain.ClientFilter{
			Name:  c.Query("name"),
			Email: c.Query("email"),
		},
		Page: pagination.FromQuery(c),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	env := httpresp.Envelope{
		Success:    true,
		Data:       clients,
		Pagination: &summary,
	}

	if b, err := json.Marshal(env); err == nil {
		h.cache.Set(ctx, key, b)
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, env)
}

// ======================================================
// GET (GET /clients/:id)
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	key := h.cache.Key(ctx, clientsCollection, c.Request.URL.RequestURI())
	if b, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	client, err := h.get.Execute(ctx, c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	env := httpresp.Envelope{Success: true, Data: client}
	if b, err := json.Marshal(env); err == nil {
		h.cache.Set(ctx, key, b)
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, env)
}

// ======================================================
// CREATE (POST /clients)
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if errs := validators.ValidateClientCreate(
		req.Name, req.Email, req.Password, req.Phone, req.Age,
	); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	client, err := h.create.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Bump(c.Request.Context(), clientsCollection)
	httpresp.Created(c, "client created", client)
}

// ======================================================
// UPDATE (PUT /clients/:id)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if errs := validators.ValidateClientUpdate(
		req.Name, req.Email, req.Password, req.Phone, req.Age,
	); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	client, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucClient.UpdateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Bump(c.Request.Context(), clientsCollection)
	httpresp.OK(c, "client updated", client)
}

// ======================================================
// DELETE (DELETE /clients/:id, guarded)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Bump(c.Request.Context(), clientsCollection)
	httpresp.OK(c, "client deleted", nil)
}
