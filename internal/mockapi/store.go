// Package mockapi is the legacy local-development stand-in for the real
// backend: an in-memory train list with a reserve endpoint. It exists so the
// front-end can be developed without Postgres or Redis running and is not part
// of the production path.
package mockapi

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrTrainNotFound  = errors.New("train not found")
	ErrNotEnoughSeats = errors.New("not enough seats available")
)

type Train struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Seats     int    `json:"seats"`
}

type Reservation struct {
	TrainID        string `json:"trainId"`
	Name           string `json:"name"`
	PassengerCount int    `json:"passengerCount"`
	Time           string `json:"time"`
}

// Store holds the mock data. A single mutex serializes mutations; the mock
// store has no other consistency machinery.
type Store struct {
	mu           sync.Mutex
	trains       []Train
	reservations []Reservation
}

// NewStore returns a store seeded with the default trains
func NewStore() *Store {
	return &Store{
		trains: []Train{
			{ID: "1", Name: "Rajdhani Express", Departure: "08:00", Arrival: "12:00", Seats: 50},
			{ID: "2", Name: "Shatabdi Express", Departure: "10:00", Arrival: "15:00", Seats: 40},
		},
	}
}

// Trains returns a snapshot of the train list
func (s *Store) Trains() []Train {
	s.mu.Lock()
	defer s.mu.Unlock()

	trains := make([]Train, len(s.trains))
	copy(trains, s.trains)
	return trains
}

// Reserve decrements a train's seat count and records the reservation. The
// check and decrement happen under the store lock, so concurrent reservations
// cannot oversell.
func (s *Store) Reserve(trainID, name string, passengerCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var train *Train
	for i := range s.trains {
		if s.trains[i].ID == trainID {
			train = &s.trains[i]
			break
		}
	}

	if train == nil {
		return ErrTrainNotFound
	}
	if train.Seats < passengerCount {
		return ErrNotEnoughSeats
	}

	train.Seats -= passengerCount
	s.reservations = append(s.reservations, Reservation{
		TrainID:        trainID,
		Name:           name,
		PassengerCount: passengerCount,
		Time:           time.Now().Format(time.RFC3339),
	})

	return nil
}

// Reservations returns a snapshot of all recorded reservations
func (s *Store) Reservations() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := make([]Reservation, len(s.reservations))
	copy(reservations, s.reservations)
	return reservations
}
