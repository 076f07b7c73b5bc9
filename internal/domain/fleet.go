package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by id-keyed repository operations when no record
// matches the given identifier.
var ErrNotFound = errors.New("record not found")

// Telemetry holds the latest sensor snapshot reported by a vehicle.
type Telemetry struct {
	EngineTemp  float64 `json:"engineTemp" bson:"engineTemp"`
	Speed       float64 `json:"speed" bson:"speed"`
	RPM         float64 `json:"rpm" bson:"rpm"`
	FuelLevel   float64 `json:"fuelLevel" bson:"fuelLevel"`
	OilPressure float64 `json:"oilPressure" bson:"oilPressure"`
}

// Vehicle represents a fleet vehicle. Driver and route identifiers are
// free-form references; no cross-entity integrity is enforced.
type Vehicle struct {
	ID                    string     `json:"id" bson:"_id"`
	Name                  string     `json:"name" bson:"name"`
	Type                  string     `json:"type" bson:"type"`
	Status                string     `json:"status" bson:"status"` // active, maintenance, etc.
	HealthScore           int        `json:"healthScore" bson:"healthScore"`
	BreakdownRisk         int        `json:"breakdownRisk" bson:"breakdownRisk"`
	TelemetryCompleteness int        `json:"telemetryCompleteness" bson:"telemetryCompleteness"`
	Location              string     `json:"location" bson:"location"`
	Driver                string     `json:"driver,omitempty" bson:"driver,omitempty"`
	LastMaintenance       string     `json:"lastMaintenance,omitempty" bson:"lastMaintenance,omitempty"`
	NextMaintenance       string     `json:"nextMaintenance,omitempty" bson:"nextMaintenance,omitempty"`
	Telemetry             *Telemetry `json:"telemetry,omitempty" bson:"telemetry,omitempty"`
	Anomalies             []string   `json:"anomalies" bson:"anomalies"`
	TotalTrips            int        `json:"totalTrips" bson:"totalTrips"`
	TotalKm               int        `json:"totalKm" bson:"totalKm"`
}

// Trip represents a single haul.
type Trip struct {
	ID              string     `json:"id" bson:"_id"`
	Route           string     `json:"route" bson:"route"`
	Vehicle         string     `json:"vehicle" bson:"vehicle"`
	Driver          string     `json:"driver" bson:"driver"`
	Status          string     `json:"status" bson:"status"` // in-progress, completed, etc.
	LoadWeight      int        `json:"loadWeight" bson:"loadWeight"`
	StartTime       time.Time  `json:"startTime" bson:"startTime"`
	ExpectedEnd     time.Time  `json:"expectedEnd" bson:"expectedEnd"`
	ActualEnd       *time.Time `json:"actualEnd,omitempty" bson:"actualEnd,omitempty"`
	BreakdownRisk   int        `json:"breakdownRisk" bson:"breakdownRisk"`
	AIConfidence    int        `json:"aiConfidence" bson:"aiConfidence"`
	PredictedIssues []string   `json:"predictedIssues" bson:"predictedIssues"`
	Progress        int        `json:"progress" bson:"progress"`
}

// Alert represents a telemetry alert raised against a vehicle, trip or route.
type Alert struct {
	ID        string    `json:"id" bson:"_id"`
	Type      string    `json:"type" bson:"type"` // critical, warning, info
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Read      bool      `json:"read" bson:"read"`
	Vehicle   string    `json:"vehicle,omitempty" bson:"vehicle,omitempty"`
	Trip      string    `json:"trip,omitempty" bson:"trip,omitempty"`
	Route     string    `json:"route,omitempty" bson:"route,omitempty"`
}
