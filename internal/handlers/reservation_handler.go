package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tallermotors/autoservice-api/internal/cache"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
	"github.com/tallermotors/autoservice-api/internal/httpresp"
	"github.com/tallermotors/autoservice-api/internal/pagination"
	ucReservation "github.com/tallermotors/autoservice-api/internal/usecase/reservation"
	"github.com/tallermotors/autoservice-api/internal/validators"
)

const reservationsCollection = "reservations"

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create       *ucReservation.CreateReservation
	update       *ucReservation.UpdateReservation
	remove       *ucReservation.DeleteReservation
	get          *ucReservation.GetReservation
	list         *ucReservation.ListReservations
	listByClient *ucReservation.ListReservationsByClient
	cache        *cache.Cache
}

func NewReservationHandler(
	create *ucReservation.CreateReservation,
	update *ucReservation.UpdateReservation,
	remove *ucReservation.DeleteReservation,
	get *ucReservation.GetReservation,
	list *ucReservation.ListReservations,
	listByClient *ucReservation.ListReservationsByClient,
	c *cache.Cache,
) *ReservationHandler {
	return &ReservationHandler{
		create:       create,
		update:       update,
		remove:       remove,
		get:          get,
		list:         list,
		listByClient: listByClient,
		cache:        c,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ClientID      string    `json:"clientId"`
	Vehicle       string    `json:"vehicle"`
	ServiceType   string    `json:"serviceType"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Notes         string    `json:"notes"`
}

// UpdateReservationRequest is a partial body: absent keys stay untouched.
type UpdateReservationRequest struct {
	ClientID      *string    `json:"clientId"`
	Vehicle       *string    `json:"vehicle"`
	ServiceType   *string    `json:"serviceType"`
	Status        *string    `json:"status"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Notes         *string    `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

// parseDateBound accepts RFC 3339 or a plain date. A bare end-of-range date
// is inclusive, so it resolves to the last instant of that day.
func parseDateBound(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func reservationFilterFromQuery(c *gin.Context) (domain.ReservationFilter, bool) {
	var filter domain.ReservationFilter

	if raw := c.Query("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid clientId filter")
			return filter, false
		}
		filter.ClientID = &id
	}

	filter.Status = c.Query("status")
	filter.Service = c.Query("service")

	start, err := parseDateBound(c.Query("startDate"), false)
	if err != nil {
		httperr.BadRequest(c, "invalid startDate filter")
		return filter, false
	}
	filter.StartDate = start

	end, err := parseDateBound(c.Query("endDate"), true)
	if err != nil {
		httperr.BadRequest(c, "invalid endDate filter")
		return filter, false
	}
	filter.EndDate = end

	return filter, true
}

func (h *ReservationHandler) respondList(
	c *gin.Context,
	key string,
	reservations any,
	summary pagination.Summary,
) {
	env := httpresp.Envelope{
		Success:    true,
		Data:       reservations,
		Pagination: &summary,
	}

	if b, err := json.Marshal(env); err == nil {
		h.cache.Set(c.Request.Context(), key, b)
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, env)
}

// ======================================================
// LIST (GET /reservations)
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	key := h.cache.Key(ctx, reservationsCollection, c.Request.URL.RequestURI())
	if b, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	filter, ok := reservationFilterFromQuery(c)
	if !ok {
		return
	}

	reservations, summary, err := h.list.Execute(ctx, ucReservation.ListReservationsInput{
		Filter: filter,
		Page:   pagination.FromQuery(c),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.respondList(c, key, reservations, summary)
}

// ======================================================
// LIST BY CLIENT (GET /reservations/client/:clientId)
// ======================================================

func (h *ReservationHandler) ListByClient(c *gin.Context) {
	ctx := c.Request.Context()

	key := h.cache.Key(ctx, reservationsCollection, c.Request.URL.RequestURI())
	if b, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	reservations, summary, err := h.listByClient.Execute(
		ctx,
		c.Param("clientId"),
		pagination.FromQuery(c),
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.respondList(c, key, reservations, summary)
}

// ======================================================
// GET (GET /reservations/:id)
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	key := h.cache.Key(ctx, reservationsCollection, c.Request.URL.RequestURI())
	if b, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	res, err := h.get.Execute(ctx, c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	env := httpresp.Envelope{Success: true, Data: res}
	if b, err := json.Marshal(env); err == nil {
		h.cache.Set(ctx, key, b)
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, env)
}

// ======================================================
// CREATE (POST /reservations)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if errs := validators.ValidateReservationCreate(
		req.Vehicle, req.ServiceType, req.Status, req.Notes,
	); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		ClientID:      req.ClientID,
		Vehicle:       req.Vehicle,
		ServiceType:   req.ServiceType,
		Status:        req.Status,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Bump(c.Request.Context(), reservationsCollection)
	httpresp.Created(c, "reservation created", res)
}

// ======================================================
// UPDATE (PUT /reservations/:id)
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if errs := validators.ValidateReservationUpdate(
		req.Vehicle, req.ServiceType, req.Status, req.Notes,
	); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	res, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucReservation.UpdateReservationInput{
		ClientID:      req.ClientID,
		Vehicle:       req.Vehicle,
		ServiceType:   req.ServiceType,
		Status:        req.Status,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Bump(c.Request.Context(), reservationsCollection)
	httpresp.OK(c, "reservation updated", res)
}

// ======================================================
// DELETE (DELETE /reservations/:id, unguarded)
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Bump(c.Request.Context(), reservationsCollection)
	httpresp.OK(c, "reservation deleted", nil)
}
