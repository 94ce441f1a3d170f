package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tallermotors/autoservice-api/internal/audit"
	"github.com/tallermotors/autoservice-api/internal/cache"
	"github.com/tallermotors/autoservice-api/internal/handlers"
	infraRepo "github.com/tallermotors/autoservice-api/internal/infra/repository"
	"github.com/tallermotors/autoservice-api/internal/integrity"
	ucClient "github.com/tallermotors/autoservice-api/internal/usecase/client"
	ucReservation "github.com/tallermotors/autoservice-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Cache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewReservationGormRepository(db)
	engine := integrity.New(repo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createClientUC := ucClient.NewCreateClient(repo, engine, auditDispatcher)
	updateClientUC := ucClient.NewUpdateClient(repo, engine, auditDispatcher)
	deleteClientUC := ucClient.NewDeleteClient(repo, engine, auditDispatcher)
	getClientUC := ucClient.NewGetClient(repo)
	listClientsUC := ucClient.NewListClients(repo)

	createReservationUC := ucReservation.NewCreateReservation(repo, engine, auditDispatcher)
	updateReservationUC := ucReservation.NewUpdateReservation(repo, engine, auditDispatcher)
	deleteReservationUC := ucReservation.NewDeleteReservation(repo, auditDispatcher)
	getReservationUC := ucReservation.NewGetReservation(repo)
	listReservationsUC := ucReservation.NewListReservations(repo)
	listByClientUC := ucReservation.NewListReservationsByClient(repo, engine)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		createClientUC,
		updateClientUC,
		deleteClientUC,
		getClientUC,
		listClientsUC,
		c,
	)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
		getReservationUC,
		listReservationsUC,
		listByClientUC,
		c,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.POST("", clientHandler.Create)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationHandler.List)
		reservations.GET("/client/:clientId", reservationHandler.ListByClient)
		reservations.GET("/:id", reservationHandler.Get)
		reservations.POST("", reservationHandler.Create)
		reservations.PUT("/:id", reservationHandler.Update)
		reservations.DELETE("/:id", reservationHandler.Delete)
	}
}
