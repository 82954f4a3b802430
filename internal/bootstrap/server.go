package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kletskov/flightbooking/api"
	"github.com/kletskov/flightbooking/config"
	"github.com/kletskov/flightbooking/internal/service/booking"
	"github.com/kletskov/flightbooking/internal/service/ticket"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, bookingSvc booking.BookingUseCase, ticketSvc ticket.TicketUseCase) error {
	router := newRouter(cfg, bookingSvc, ticketSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, bookingSvc booking.BookingUseCase, ticketSvc ticket.TicketUseCase) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	group := router.Group("/api/booking")
	api.NewBookingHandler(bookingSvc).Register(group)
	api.NewTicketHandler(ticketSvc).Register(group)

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/booking.swagger.json"),
		)))
	}

	return router
}
