package reservations

import (
	"errors"
	"log"

	"github.com/railbook/railbook-backend/internal/models"
	"gorm.io/gorm"
)

// GetCapacity returns the total and available seat counts for a train.
func GetCapacity(db *gorm.DB, trainID uint) (total int, available int, err error) {
	var train models.Train
	if err := db.Select("total_seats", "available_seats").First(&train, trainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrTrainNotFound
		}
		return 0, 0, err
	}
	return train.TotalSeats, train.AvailableSeats, nil
}

// tryDecrement takes n seats from the train's available count. The check and
// the decrement are a single conditional UPDATE, so concurrent callers on the
// same train serialize on the row lock and can never oversell.
func tryDecrement(tx *gorm.DB, trainID uint, n int) error {
	result := tx.Model(&models.Train{}).
		Where("id = ? AND available_seats >= ?", trainID, n).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", n))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish an unknown train from a sold-out one
		var train models.Train
		if err := tx.Select("id").First(&train, trainID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrainNotFound
			}
			return err
		}
		return ErrInsufficientCapacity
	}

	return nil
}

// increment returns n seats to the train's available count. The update is
// clamped so available_seats can never exceed total_seats; hitting the clamp
// means a seat was released twice, which aborts the enclosing transaction.
func increment(tx *gorm.DB, trainID uint, n int) error {
	result := tx.Model(&models.Train{}).
		Where("id = ? AND available_seats + ? <= total_seats", trainID, n).
		UpdateColumn("available_seats", gorm.Expr("available_seats + ?", n))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var train models.Train
		if err := tx.Select("id").First(&train, trainID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrainNotFound
			}
			return err
		}
		log.Printf("INTEGRITY VIOLATION: releasing %d seat(s) on train %d would exceed total capacity", n, trainID)
		return ErrCapacityOverflow
	}

	return nil
}

// availableSeats reads the current available count inside the transaction so
// callers can return the count that reflects the mutation they just applied.
func availableSeats(tx *gorm.DB, trainID uint) (int, error) {
	var train models.Train
	if err := tx.Select("available_seats").First(&train, trainID).Error; err != nil {
		return 0, err
	}
	return train.AvailableSeats, nil
}
