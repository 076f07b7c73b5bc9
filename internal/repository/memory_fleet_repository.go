package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okgaadi/fleet-api/internal/domain"
)

// memoryVehicleRepository is the in-process fallback VehicleRepository
type memoryVehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle
	order    []string
}

// NewMemoryVehicleRepository creates an in-memory VehicleRepository
func NewMemoryVehicleRepository() VehicleRepository {
	return &memoryVehicleRepository{vehicles: make(map[string]*domain.Vehicle)}
}

func (r *memoryVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := *vehicle
	if _, ok := r.vehicles[v.ID]; !ok {
		r.order = append(r.order, v.ID)
	}
	r.vehicles[v.ID] = &v
	return nil
}

func (r *memoryVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Vehicle, 0, len(r.vehicles))
	for _, id := range r.order {
		if vehicle, ok := r.vehicles[id]; ok {
			v := *vehicle
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *memoryVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v := *vehicle
	return &v, nil
}

func (r *memoryVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return domain.ErrNotFound
	}
	v := *vehicle
	r.vehicles[v.ID] = &v
	return nil
}

func (r *memoryVehicleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

// memoryTripRepository is the in-process fallback TripRepository
type memoryTripRepository struct {
	mu    sync.RWMutex
	trips []*domain.Trip
}

// NewMemoryTripRepository creates an in-memory TripRepository
func NewMemoryTripRepository() TripRepository {
	return &memoryTripRepository{}
}

func (r *memoryTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := *trip
	r.trips = append(r.trips, &t)
	return nil
}

func (r *memoryTripRepository) List(ctx context.Context) ([]*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Trip, 0, len(r.trips))
	for _, trip := range r.trips {
		t := *trip
		out = append(out, &t)
	}
	return out, nil
}

// memoryAlertRepository is the in-process fallback AlertRepository
type memoryAlertRepository struct {
	mu     sync.RWMutex
	alerts map[string]*domain.Alert
}

// NewMemoryAlertRepository creates an in-memory AlertRepository
func NewMemoryAlertRepository() AlertRepository {
	return &memoryAlertRepository{alerts: make(map[string]*domain.Alert)}
}

func (r *memoryAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := *alert
	r.alerts[a.ID] = &a
	return nil
}

func (r *memoryAlertRepository) List(ctx context.Context) ([]*domain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Alert, 0, len(r.alerts))
	for _, alert := range r.alerts {
		a := *alert
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *memoryAlertRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert, ok := r.alerts[id]
	if !ok {
		return domain.ErrNotFound
	}
	alert.Read = true
	return nil
}

func (r *memoryAlertRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.alerts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.alerts, id)
	return nil
}
