package models

import (
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	gorm.Model
	UserID          uint          `json:"userId" gorm:"not null;index"`
	User            User          `json:"-"`
	TrainID         uint          `json:"trainId" gorm:"not null;index"`
	Train           Train         `json:"train"`
	PassengerName   string        `json:"passengerName" gorm:"not null"`
	PassengerAge    int           `json:"passengerAge" gorm:"not null"`
	PassengerGender string        `json:"passengerGender" gorm:"not null"`
	SeatNumber      string        `json:"seatNumber" gorm:"not null"`
	TravelDate      string        `json:"travelDate" gorm:"not null"`
	Amount          float64       `json:"amount" gorm:"not null"`
	Status          BookingStatus `json:"status" gorm:"not null;default:'confirmed'"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// IsConfirmed reports whether the booking still holds a seat
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}
