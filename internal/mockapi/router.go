package mockapi

import (
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the mock API router over the given store
func NewRouter(store *Store) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.GET("/trains", func(c *gin.Context) {
			c.JSON(200, store.Trains())
		})

		api.POST("/trains/:id/reserve", func(c *gin.Context) {
			var input struct {
				Name           string `json:"name" binding:"required"`
				PassengerCount int    `json:"passengerCount" binding:"required,min=1"`
			}

			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}

			err := store.Reserve(c.Param("id"), input.Name, input.PassengerCount)
			switch {
			case errors.Is(err, ErrTrainNotFound):
				c.JSON(404, gin.H{"error": "Train not found!"})
			case errors.Is(err, ErrNotEnoughSeats):
				c.JSON(400, gin.H{"error": "Not enough seats available!"})
			case err != nil:
				c.JSON(500, gin.H{"error": "Internal server error"})
			default:
				c.JSON(200, gin.H{"success": true, "message": "Reservation successful!"})
			}
		})
	}

	return r
}
