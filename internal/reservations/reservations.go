package reservations

import (
	"errors"
	"fmt"
	"time"

	"github.com/railbook/railbook-backend/internal/models"
	"gorm.io/gorm"
)

// ReserveInput carries the validated passenger details for a new booking.
type ReserveInput struct {
	TrainID         uint
	UserID          uint
	PassengerName   string
	PassengerAge    int
	PassengerGender string
	TravelDate      string
}

// UpdateInput carries the editable fields of a confirmed booking. Nil fields
// are left unchanged.
type UpdateInput struct {
	PassengerName   *string
	PassengerAge    *int
	PassengerGender *string
	TravelDate      *string
}

func validGender(g string) bool {
	return g == "male" || g == "female" || g == "other"
}

func validTravelDate(d string) error {
	date, err := time.Parse("2006-01-02", d)
	if err != nil {
		return fmt.Errorf("%w: travel date must be YYYY-MM-DD", ErrInvalidInput)
	}
	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return fmt.Errorf("%w: travel date must not be in the past", ErrInvalidInput)
	}
	return nil
}

func (in ReserveInput) validate() error {
	if in.PassengerName == "" {
		return fmt.Errorf("%w: passenger name is required", ErrInvalidInput)
	}
	if in.PassengerAge < 1 || in.PassengerAge > 120 {
		return fmt.Errorf("%w: passenger age must be between 1 and 120", ErrInvalidInput)
	}
	if !validGender(in.PassengerGender) {
		return fmt.Errorf("%w: passenger gender must be male, female or other", ErrInvalidInput)
	}
	return validTravelDate(in.TravelDate)
}

// nextSeatNumber assigns the next sequential seat label for a train and travel
// date. It must run inside the same transaction that decremented the train
// row: the row lock taken by the decrement serializes label assignment, so two
// passengers can never receive the same seat for the same train and date.
func nextSeatNumber(tx *gorm.DB, trainID uint, travelDate string) (string, error) {
	var highest int64
	err := tx.Model(&models.Booking{}).
		Where("train_id = ? AND travel_date = ?", trainID, travelDate).
		Select("COALESCE(MAX(CAST(SUBSTRING(seat_number FROM 2) AS INTEGER)), 0)").
		Scan(&highest).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("S%d", highest+1), nil
}

// Reserve creates a confirmed booking and takes one seat from the train's
// inventory. Both writes happen in a single transaction: if the booking insert
// fails the decrement rolls back with it, and if the train is sold out no
// booking is created.
func Reserve(db *gorm.DB, in ReserveInput) (*models.Booking, int, error) {
	if err := in.validate(); err != nil {
		return nil, 0, err
	}

	var booking models.Booking
	var remaining int

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tryDecrement(tx, in.TrainID, 1); err != nil {
			return err
		}

		var train models.Train
		if err := tx.First(&train, in.TrainID).Error; err != nil {
			return err
		}

		seatNumber, err := nextSeatNumber(tx, in.TrainID, in.TravelDate)
		if err != nil {
			return err
		}

		booking = models.Booking{
			UserID:          in.UserID,
			TrainID:         in.TrainID,
			PassengerName:   in.PassengerName,
			PassengerAge:    in.PassengerAge,
			PassengerGender: in.PassengerGender,
			SeatNumber:      seatNumber,
			TravelDate:      in.TravelDate,
			Amount:          train.Price,
			Status:          models.BookingStatusConfirmed,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		remaining = train.AvailableSeats
		booking.Train = train
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &booking, remaining, nil
}

// Cancel moves a confirmed booking to cancelled and returns its seat to the
// train's inventory. Cancelling an already-cancelled booking fails with
// ErrInvalidTransition so a seat can never be released twice.
func Cancel(db *gorm.DB, bookingID, userID uint) (int, error) {
	var remaining int

	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.UserID != userID {
			return ErrNotOwner
		}

		// Guarded status flip: a concurrent cancel of the same booking loses
		// the race here and reports ErrInvalidTransition instead of releasing
		// the seat a second time.
		result := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
			Update("status", models.BookingStatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		if err := increment(tx, booking.TrainID, 1); err != nil {
			return err
		}

		available, err := availableSeats(tx, booking.TrainID)
		if err != nil {
			return err
		}
		remaining = available
		return nil
	})
	if err != nil {
		return 0, err
	}

	return remaining, nil
}

// Delete permanently removes a cancelled booking. Confirmed bookings must be
// cancelled first so the seat they hold is returned through the one path that
// accounts for it.
func Delete(db *gorm.DB, bookingID, userID uint) error {
	var booking models.Booking
	if err := db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if booking.UserID != userID {
		return ErrNotOwner
	}
	if booking.Status != models.BookingStatusCancelled {
		return ErrInvalidTransition
	}

	return db.Unscoped().Delete(&booking).Error
}

// Update edits the passenger details of a confirmed booking. Capacity and the
// assigned seat are untouched.
func Update(db *gorm.DB, bookingID, userID uint, in UpdateInput) (*models.Booking, error) {
	updates := map[string]interface{}{}

	if in.PassengerName != nil {
		if *in.PassengerName == "" {
			return nil, fmt.Errorf("%w: passenger name is required", ErrInvalidInput)
		}
		updates["passenger_name"] = *in.PassengerName
	}
	if in.PassengerAge != nil {
		if *in.PassengerAge < 1 || *in.PassengerAge > 120 {
			return nil, fmt.Errorf("%w: passenger age must be between 1 and 120", ErrInvalidInput)
		}
		updates["passenger_age"] = *in.PassengerAge
	}
	if in.PassengerGender != nil {
		if !validGender(*in.PassengerGender) {
			return nil, fmt.Errorf("%w: passenger gender must be male, female or other", ErrInvalidInput)
		}
		updates["passenger_gender"] = *in.PassengerGender
	}
	if in.TravelDate != nil {
		if err := validTravelDate(*in.TravelDate); err != nil {
			return nil, err
		}
		updates["travel_date"] = *in.TravelDate
	}

	var booking models.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.UserID != userID {
			return ErrNotOwner
		}
		if booking.Status != models.BookingStatusConfirmed {
			return ErrInvalidTransition
		}

		if len(updates) == 0 {
			return tx.Preload("Train").First(&booking, bookingID).Error
		}

		// Guarded, column-limited write: a cancel that committed after the
		// read above makes this a no-op instead of resurrecting the booking
		// with a full-row rewrite.
		result := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		return tx.Preload("Train").First(&booking, bookingID).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
