package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Driver{},
		&models.Truck{},
		&models.VehicleSet{},
		&models.InspectionRequest{},
		&models.InspectionPhoto{},
	))

	return db
}

var truckSeq int

// createTestTruck persists a truck of the given category with a unique plate
// and chassis.
func createTestTruck(t *testing.T, db *gorm.DB, category string) *models.Truck {
	t.Helper()

	truckSeq++
	svc := NewTruckService(repositories.NewTruckRepository(db))

	truck, err := svc.CreateTruck(models.Truck{
		Plate:           fmt.Sprintf("ABC%04d", truckSeq%10000),
		Chassis:         fmt.Sprintf("9BWZZZ377VT%06d", truckSeq),
		Model:           "FH 540",
		Brand:           "Volvo",
		Year:            2020,
		Type:            "Cavalo Mecânico",
		VehicleCategory: category,
	})
	require.NoError(t, err)
	return truck
}

func createTestDriver(t *testing.T, db *gorm.DB, name string) *models.Driver {
	t.Helper()

	truckSeq++
	svc := NewDriverService(repositories.NewDriverRepository(db))

	driver, err := svc.CreateDriver(models.Driver{
		Name: name,
		CPF:  fmt.Sprintf("%011d", truckSeq),
	})
	require.NoError(t, err)
	return driver
}

func newVehicleSetService(db *gorm.DB) *VehicleSetService {
	return NewVehicleSetService(
		repositories.NewVehicleSetRepository(db),
		repositories.NewTruckRepository(db),
	)
}

// newInspectionService wires an inspection service against the test database
// with photos under a per-test temp dir and no outgoing mail.
func newInspectionService(t *testing.T, db *gorm.DB) *InspectionRequestService {
	t.Helper()

	return NewInspectionRequestService(
		db,
		repositories.NewInspectionRequestRepository(db),
		repositories.NewTruckRepository(db),
		repositories.NewVehicleSetRepository(db),
		repositories.NewDriverRepository(db),
		NewPhotoService(t.TempDir()),
		nil,
	)
}

func strPtr(s string) *string {
	return &s
}
