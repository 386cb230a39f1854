package database

import (
	"github.com/railbook/railbook-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Train{},
		&models.Booking{},
	)
	if err != nil {
		return err
	}

	// The database enforces the capacity invariant as a last line of defense:
	// the application never issues an update that could violate it, but a
	// manual edit to the trains table should fail rather than corrupt counts.
	db.Exec(`ALTER TABLE trains DROP CONSTRAINT IF EXISTS trains_available_seats_check`)
	if err := db.Exec(`ALTER TABLE trains ADD CONSTRAINT trains_available_seats_check CHECK (available_seats >= 0 AND available_seats <= total_seats)`).Error; err != nil {
		return err
	}

	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`)
	if err := db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check CHECK (status IN ('confirmed', 'cancelled'))`).Error; err != nil {
		return err
	}

	return SeedTrains(db)
}

// SeedTrains inserts the default trains so a fresh database has inventory to
// sell. Existing trains are left untouched.
func SeedTrains(db *gorm.DB) error {
	trains := []models.Train{
		{
			TrainNumber:        "12301",
			TrainName:          "Rajdhani Express",
			SourceStation:      "New Delhi",
			DestinationStation: "Mumbai Central",
			DepartureTime:      "08:00",
			ArrivalTime:        "12:00",
			TotalSeats:         50,
			AvailableSeats:     50,
			Price:              1500,
		},
		{
			TrainNumber:        "12002",
			TrainName:          "Shatabdi Express",
			SourceStation:      "New Delhi",
			DestinationStation: "Bhopal",
			DepartureTime:      "10:00",
			ArrivalTime:        "15:00",
			TotalSeats:         40,
			AvailableSeats:     40,
			Price:              1200,
		},
		{
			TrainNumber:        "12951",
			TrainName:          "Mumbai Rajdhani",
			SourceStation:      "Mumbai Central",
			DestinationStation: "New Delhi",
			DepartureTime:      "17:00",
			ArrivalTime:        "08:30",
			TotalSeats:         60,
			AvailableSeats:     60,
			Price:              1800,
		},
	}

	for _, train := range trains {
		result := db.Where(models.Train{TrainNumber: train.TrainNumber}).FirstOrCreate(&train)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
