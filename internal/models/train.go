package models

import (
	"gorm.io/gorm"
)

type Train struct {
	gorm.Model
	TrainNumber        string  `json:"trainNumber" gorm:"column:train_number;unique;not null"`
	TrainName          string  `json:"trainName" gorm:"column:train_name;not null"`
	SourceStation      string  `json:"sourceStation" gorm:"column:source_station;not null"`
	DestinationStation string  `json:"destinationStation" gorm:"column:destination_station;not null"`
	DepartureTime      string  `json:"departureTime" gorm:"column:departure_time;not null"`
	ArrivalTime        string  `json:"arrivalTime" gorm:"column:arrival_time;not null"`
	TotalSeats         int     `json:"totalSeats" gorm:"column:total_seats;not null"`
	AvailableSeats     int     `json:"availableSeats" gorm:"column:available_seats;not null"`
	Price              float64 `json:"price" gorm:"column:price;not null"`
}

// TableName specifies the table name
func (Train) TableName() string {
	return "trains"
}

// IsSoldOut reports whether the train has no seats left to sell
func (t *Train) IsSoldOut() bool {
	return t.AvailableSeats <= 0
}
