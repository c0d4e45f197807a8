package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ListUserReservations(c *ginext.Context)
	ListSeatReservations(c *ginext.Context)
	SeatsOverview(c *ginext.Context)
	SeatsOverviewInTimeSlot(c *ginext.Context)
	AddBlackout(c *ginext.Context)
	UpdateSeat(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, adminOnly ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.GET("/seats/overview", h.SeatsOverview)
		api.GET("/seats/overview/timeslot", h.SeatsOverviewInTimeSlot)
		api.GET("/seats/:id/reservations", h.ListSeatReservations)

		// Authenticated
		authed := api.Group("", auth)
		{
			authed.POST("/reservations", h.CreateReservation)
			authed.DELETE("/reservations/:id", h.CancelReservation)
			authed.GET("/users/reservations", h.ListUserReservations)

			admin := authed.Group("", adminOnly)
			{
				admin.POST("/blackouts", h.AddBlackout)
				admin.POST("/seats/info", h.UpdateSeat)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
