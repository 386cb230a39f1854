package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/railbook/railbook-backend/internal/models"
	"github.com/railbook/railbook-backend/internal/services"
	"gorm.io/gorm"
)

// GetTrains retrieves all trains, served from the Redis cache when fresh
func GetTrains(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if trains, err := services.GetCachedTrainList(c.Request.Context()); err == nil {
			c.JSON(200, trains)
			return
		}

		var trains []models.Train
		if err := db.Order("train_number ASC").Find(&trains).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch trains"})
			return
		}

		if err := services.CacheTrainList(c.Request.Context(), trains); err != nil {
			log.Printf("Failed to cache train list: %v", err)
		}

		c.JSON(200, trains)
	}
}

// SearchTrains finds trains by source and destination station substring match
func SearchTrains(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := strings.TrimSpace(c.Query("from"))
		to := strings.TrimSpace(c.Query("to"))

		if from == "" || to == "" {
			c.JSON(400, gin.H{"error": "Both 'from' and 'to' query parameters are required"})
			return
		}

		var trains []models.Train
		if err := db.
			Where("source_station ILIKE ?", "%"+from+"%").
			Where("destination_station ILIKE ?", "%"+to+"%").
			Order("departure_time ASC").
			Find(&trains).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to search trains"})
			return
		}

		c.JSON(200, trains)
	}
}

// GetTrainDetails retrieves a single train with its occupancy figure
func GetTrainDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainID := c.Param("id")

		if train, err := services.GetCachedTrain(c.Request.Context(), parseUint(trainID)); err == nil {
			c.JSON(200, trainDetailsResponse(train))
			return
		}

		var train models.Train
		if err := db.First(&train, trainID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Train not found"})
			return
		}

		if err := services.CacheTrain(c.Request.Context(), &train); err != nil {
			log.Printf("Failed to cache train %d: %v", train.ID, err)
		}

		c.JSON(200, trainDetailsResponse(&train))
	}
}

func trainDetailsResponse(train *models.Train) gin.H {
	occupancy := 0
	if train.TotalSeats > 0 {
		occupancy = (train.TotalSeats - train.AvailableSeats) * 100 / train.TotalSeats
	}

	return gin.H{
		"train":            train,
		"occupancyPercent": occupancy,
		"soldOut":          train.IsSoldOut(),
	}
}
