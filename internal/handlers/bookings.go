package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/railbook/railbook-backend/internal/models"
	"github.com/railbook/railbook-backend/internal/reservations"
	"github.com/railbook/railbook-backend/internal/services"
	"gorm.io/gorm"
)

// writeReservationError maps core reservation errors to HTTP responses
func writeReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservations.ErrTrainNotFound):
		c.JSON(404, gin.H{"error": "Train not found"})
	case errors.Is(err, reservations.ErrBookingNotFound):
		c.JSON(404, gin.H{"error": "Booking not found"})
	case errors.Is(err, reservations.ErrInsufficientCapacity):
		c.JSON(409, gin.H{"error": "Not enough seats available"})
	case errors.Is(err, reservations.ErrInvalidTransition):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, reservations.ErrNotOwner):
		c.JSON(403, gin.H{"error": "Unauthorized"})
	case errors.Is(err, reservations.ErrInvalidInput):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, reservations.ErrCapacityOverflow):
		log.Printf("Capacity overflow surfaced to handler: %v", err)
		c.JSON(500, gin.H{"error": "Internal inventory error"})
	default:
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}

// notifySeatChange invalidates the train cache and pushes the new available
// count to connected clients after a capacity mutation
func notifySeatChange(ctx context.Context, hub *services.Hub, trainID uint, availableSeats int) {
	if err := services.InvalidateTrainCache(ctx, trainID); err != nil {
		log.Printf("Failed to invalidate cache for train %d: %v", trainID, err)
	}
	hub.SendSeatAvailabilityUpdate(trainID, availableSeats)
}

// CreateBooking reserves a seat and creates a confirmed booking
func CreateBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			TrainID         uint   `json:"trainId" binding:"required"`
			PassengerName   string `json:"passengerName" binding:"required"`
			PassengerAge    int    `json:"passengerAge" binding:"required,min=1,max=120"`
			PassengerGender string `json:"passengerGender" binding:"required,oneof=male female other"`
			TravelDate      string `json:"travelDate" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		booking, remaining, err := reservations.Reserve(db, reservations.ReserveInput{
			TrainID:         input.TrainID,
			UserID:          userId,
			PassengerName:   input.PassengerName,
			PassengerAge:    input.PassengerAge,
			PassengerGender: input.PassengerGender,
			TravelDate:      input.TravelDate,
		})
		if err != nil {
			writeReservationError(c, err)
			return
		}

		notifySeatChange(c.Request.Context(), hub, booking.TrainID, remaining)

		c.JSON(201, gin.H{
			"booking":        booking,
			"availableSeats": remaining,
		})
	}
}

// GetUserBookings retrieves the current user's bookings, newest first
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		status := c.Query("status")

		query := db.Where("user_id = ?", userId).
			Preload("Train").
			Order("created_at DESC")

		if status != "" {
			if status != string(models.BookingStatusConfirmed) && status != string(models.BookingStatusCancelled) {
				c.JSON(400, gin.H{"error": "status must be 'confirmed' or 'cancelled'"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var bookings []models.Booking
		if err := query.Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(200, bookings)
	}
}

// GetBookingStatus retrieves detailed booking information
func GetBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := parseUint(c.Param("id"))
		userId := c.GetUint("userId")

		var booking models.Booking
		if err := db.Preload("Train").First(&booking, bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, gin.H{
			"id":            booking.ID,
			"status":        booking.Status,
			"passengerName": booking.PassengerName,
			"seatNumber":    booking.SeatNumber,
			"travelDate":    booking.TravelDate,
			"amount":        booking.Amount,
			"bookedAt":      booking.CreatedAt,
			"train": gin.H{
				"id":                 booking.Train.ID,
				"trainNumber":        booking.Train.TrainNumber,
				"trainName":          booking.Train.TrainName,
				"sourceStation":      booking.Train.SourceStation,
				"destinationStation": booking.Train.DestinationStation,
				"departureTime":      booking.Train.DepartureTime,
				"arrivalTime":        booking.Train.ArrivalTime,
			},
		})
	}
}

// UpdateBooking edits passenger details of a confirmed booking
func UpdateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := parseUint(c.Param("id"))
		userId := c.GetUint("userId")

		var input struct {
			PassengerName   *string `json:"passengerName"`
			PassengerAge    *int    `json:"passengerAge"`
			PassengerGender *string `json:"passengerGender"`
			TravelDate      *string `json:"travelDate"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		booking, err := reservations.Update(db, bookingId, userId, reservations.UpdateInput{
			PassengerName:   input.PassengerName,
			PassengerAge:    input.PassengerAge,
			PassengerGender: input.PassengerGender,
			TravelDate:      input.TravelDate,
		})
		if err != nil {
			writeReservationError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}

// CancelBooking cancels a confirmed booking and releases its seat
func CancelBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := parseUint(c.Param("id"))
		userId := c.GetUint("userId")

		remaining, err := reservations.Cancel(db, bookingId, userId)
		if err != nil {
			writeReservationError(c, err)
			return
		}

		var booking models.Booking
		if err := db.First(&booking, bookingId).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to reload booking"})
			return
		}

		notifySeatChange(c.Request.Context(), hub, booking.TrainID, remaining)
		hub.SendBookingStatusUpdate(userId, services.BookingStatusUpdate{
			BookingID: booking.ID,
			TrainID:   booking.TrainID,
			Status:    string(booking.Status),
		})

		c.JSON(200, gin.H{
			"message":        "Booking cancelled",
			"booking":        booking,
			"availableSeats": remaining,
		})
	}
}

// DeleteBooking permanently removes a cancelled booking
func DeleteBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := parseUint(c.Param("id"))
		userId := c.GetUint("userId")

		if err := reservations.Delete(db, bookingId, userId); err != nil {
			writeReservationError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": "Booking deleted"})
	}
}

// PayBooking is a payment stub; no payment gateway is integrated
func PayBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := parseUint(c.Param("id"))
		userId := c.GetUint("userId")

		var booking models.Booking
		if err := db.First(&booking, bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if !booking.IsConfirmed() {
			c.JSON(409, gin.H{"error": "Only confirmed bookings can be paid"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Payment gateway not integrated. Booking remains confirmed.",
			"amount":  booking.Amount,
		})
	}
}
