package main

import (
	"github.com/gin-gonic/gin"
	"vendorhub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	merchantHandler     *handlers.MerchantHandler
	bookingHandler      *handlers.BookingHandler
	reservationHandler  *handlers.ReservationHandler
	serviceOrderHandler *handlers.ServiceOrderHandler
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Merchant onboarding and administration
		merchants := v1.Group("/merchants")
		{
			merchants.POST("", d.merchantHandler.Register)
			merchants.GET("/:id", d.merchantHandler.Get)
			merchants.PUT("/:id", d.merchantHandler.UpdateProfile)
			merchants.GET("/:id/checklist", d.merchantHandler.GetChecklist)
			merchants.POST("/:id/submit", d.merchantHandler.Submit)
			merchants.POST("/:id/transition", d.merchantHandler.Transition)
			merchants.GET("/:id/transitions", d.merchantHandler.AllowedTransitions)
			merchants.GET("/:id/timeline", d.merchantHandler.Timeline)

			merchants.GET("/:id/bookings", d.bookingHandler.ListByMerchant)
			merchants.GET("/:id/reservations", d.reservationHandler.ListByMerchant)
			merchants.GET("/:id/service-orders", d.serviceOrderHandler.ListByMerchant)
		}

		// Booking workflow
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", d.bookingHandler.Create)
			bookings.GET("/:id", d.bookingHandler.Get)
			bookings.POST("/:id/transition", d.bookingHandler.Transition)
		}

		// Reservation workflow
		reservations := v1.Group("/reservations")
		{
			reservations.POST("", d.reservationHandler.Create)
			reservations.GET("/:id", d.reservationHandler.Get)
			reservations.POST("/:id/transition", d.reservationHandler.Transition)
		}

		// Service order workflow
		serviceOrders := v1.Group("/service-orders")
		{
			serviceOrders.POST("", d.serviceOrderHandler.Create)
			serviceOrders.GET("/:id", d.serviceOrderHandler.Get)
			serviceOrders.POST("/:id/transition", d.serviceOrderHandler.Transition)
		}
	}
}
