package seed

import (
	"time"

	"github.com/okgaadi/fleet-api/internal/domain"
)

// FullVehicles returns the richer vehicle records written by the explicit
// durable-store seeding tool, including telemetry snapshots and maintenance
// windows.
func FullVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{
			ID: "VH001", Name: "Tata Ultra T.7", Type: "Heavy Truck", Status: "active",
			HealthScore: 87, BreakdownRisk: 23, TelemetryCompleteness: 95,
			Location: "Mumbai Depot", Driver: "DRV001",
			LastMaintenance: "2025-06-15", NextMaintenance: "2025-08-15",
			Telemetry: &domain.Telemetry{EngineTemp: 82, Speed: 65, RPM: 2200, FuelLevel: 78, OilPressure: 45},
			Anomalies: []string{"High RPM fluctuation"},
			TotalTrips: 234, TotalKm: 45620,
		},
		{
			ID: "VH002", Name: "Ashok Leyland 3118", Type: "Medium Truck", Status: "active",
			HealthScore: 92, BreakdownRisk: 12, TelemetryCompleteness: 98,
			Location: "Delhi Hub", Driver: "DRV002",
			LastMaintenance: "2025-07-01", NextMaintenance: "2025-09-01",
			Telemetry: &domain.Telemetry{EngineTemp: 78, Speed: 70, RPM: 2100, FuelLevel: 85, OilPressure: 48},
			Anomalies: []string{},
			TotalTrips: 189, TotalKm: 38450,
		},
		{
			ID: "VH003", Name: "Mahindra Blazo X", Type: "Heavy Truck", Status: "maintenance",
			HealthScore: 45, BreakdownRisk: 78, TelemetryCompleteness: 67,
			Location: "Bangalore Service",
			LastMaintenance: "2025-05-20", NextMaintenance: "2025-07-20",
			Telemetry: &domain.Telemetry{EngineTemp: 95, Speed: 0, RPM: 0, FuelLevel: 34, OilPressure: 32},
			Anomalies: []string{"Engine overheating", "Low oil pressure", "Sensor malfunction"},
			TotalTrips: 312, TotalKm: 67890,
		},
		{
			ID: "VH004", Name: "BharatBenz 2823R", Type: "Heavy Truck", Status: "active",
			HealthScore: 95, BreakdownRisk: 8, TelemetryCompleteness: 99,
			Location: "Chennai Depot", Driver: "DRV003",
			LastMaintenance: "2025-07-10", NextMaintenance: "2025-09-10",
			Telemetry: &domain.Telemetry{EngineTemp: 76, Speed: 68, RPM: 2050, FuelLevel: 92, OilPressure: 50},
			Anomalies: []string{},
			TotalTrips: 156, TotalKm: 32100,
		},
		{
			ID: "VH005", Name: "Eicher Pro 6031", Type: "Medium Truck", Status: "active",
			HealthScore: 71, BreakdownRisk: 35, TelemetryCompleteness: 82,
			Location: "Pune Hub", Driver: "DRV004",
			LastMaintenance: "2025-06-05", NextMaintenance: "2025-08-05",
			Telemetry: &domain.Telemetry{EngineTemp: 88, Speed: 62, RPM: 2300, FuelLevel: 56, OilPressure: 42},
			Anomalies: []string{"Irregular fuel consumption"},
			TotalTrips: 267, TotalKm: 54320,
		},
	}
}

// FullTrips returns the demo trip records for the durable-store seeder.
func FullTrips() []*domain.Trip {
	now := time.Now().UTC()
	actualEnd := now.Add(-19 * time.Hour)
	return []*domain.Trip{
		{
			ID: "TRP001", Route: "RT001", Vehicle: "VH001", Driver: "DRV001",
			Status: "in-progress", LoadWeight: 18000,
			StartTime: now.Add(-5 * time.Hour), ExpectedEnd: now.Add(20 * time.Hour),
			BreakdownRisk: 23, AIConfidence: 87,
			PredictedIssues: []string{"High RPM under load"}, Progress: 45,
		},
		{
			ID: "TRP002", Route: "RT002", Vehicle: "VH002", Driver: "DRV002",
			Status: "in-progress", LoadWeight: 12000,
			StartTime: now.Add(-2 * time.Hour), ExpectedEnd: now.Add(5 * time.Hour),
			BreakdownRisk: 12, AIConfidence: 94,
			PredictedIssues: []string{}, Progress: 68,
		},
		{
			ID: "TRP003", Route: "RT004", Vehicle: "VH005", Driver: "DRV004",
			Status: "completed", LoadWeight: 9000,
			StartTime: now.Add(-24 * time.Hour), ExpectedEnd: now.Add(-20 * time.Hour),
			ActualEnd:     &actualEnd,
			BreakdownRisk: 35, AIConfidence: 76,
			PredictedIssues: []string{"Driver fatigue risk"}, Progress: 100,
		},
	}
}

// FullAlerts returns the demo alert records for the durable-store seeder.
func FullAlerts() []*domain.Alert {
	now := time.Now().UTC()
	return []*domain.Alert{
		{
			ID: "ALR001", Type: "critical", Title: "High Breakdown Risk",
			Message:   "Vehicle VH003 shows 78% breakdown probability",
			Timestamp: now.Add(-30 * time.Minute), Read: false, Vehicle: "VH003",
		},
		{
			ID: "ALR002", Type: "warning", Title: "Low AI Confidence",
			Message:   "Trip TRP003 prediction confidence below 80%",
			Timestamp: now.Add(-2 * time.Hour), Read: false, Trip: "TRP003",
		},
		{
			ID: "ALR003", Type: "info", Title: "Maintenance Due",
			Message:   "Vehicle VH001 maintenance scheduled in 5 days",
			Timestamp: now.Add(-5 * time.Hour), Read: true, Vehicle: "VH001",
		},
	}
}
