package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tripbooking/api"
	"tripbooking/config"

	"github.com/gin-gonic/gin"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Trips        *api.ResourceHandler
	Destinations *api.ResourceHandler
	Customers    *api.CustomerHandler
	Meetings     *api.ResourceHandler
	Bookings     *api.ResourceHandler
	Upload       *api.UploadHandler
}

// NewRouter assembles the full route table. Subresources hang under /trip
// as the clients expect; upload is independent of the database entirely.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = h.Upload.MaxUploadSize()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	trip := router.Group("/trip")
	h.Destinations.Register(trip.Group("/destinations"))
	h.Customers.Register(trip.Group("/customers"))
	h.Meetings.Register(trip.Group("/meetings"))
	h.Bookings.Register(trip.Group("/bookings"))
	h.Trips.Register(trip)

	h.Upload.Register(router.Group("/upload"))

	return router
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
