package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"frotavistoria-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Driver{},
		&models.Truck{},
		&models.VehicleSet{},
		&models.InspectionRequest{},
		&models.InspectionPhoto{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

// addDatabaseConstraints enforces at the storage layer what the services
// pre-check in application code, so two concurrent requests cannot both pass
// the check and both write. Errors from already-existing constraints are
// logged and ignored.
func addDatabaseConstraints(db *gorm.DB) error {
	// Enum checks mirroring the model validation
	if err := db.Exec("ALTER TABLE trucks ADD CONSTRAINT ck_trucks_vehicle_category CHECK (vehicle_category IN ('cavalo', 'carreta', 'dolly'))").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for trucks: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE vehicle_sets ADD CONSTRAINT ck_vehicle_sets_type CHECK (type IN ('cavalo', 'carreta', 'conjugado', 'bitrem', 'dolly_semi_reboque'))").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for vehicle_sets: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE inspection_requests ADD CONSTRAINT ck_inspection_requests_status CHECK (status IN ('awaiting_submission', 'awaiting_review', 'approved', 'rejected'))").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for inspection_requests status: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE inspection_requests ADD CONSTRAINT ck_inspection_requests_fuel_level CHECK (fuel_level IS NULL OR (fuel_level >= 0 AND fuel_level <= 100))").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for inspection_requests fuel_level: %v\n", err)
	}

	// A vehicle can appear in at most one set per slot column. The
	// cross-column exclusivity is still checked by the service.
	if err := db.Exec("ALTER TABLE vehicle_sets ADD CONSTRAINT uk_vehicle_sets_cavalo UNIQUE (cavalo_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for vehicle_sets cavalo_id: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE vehicle_sets ADD CONSTRAINT uk_vehicle_sets_carreta UNIQUE (carreta_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for vehicle_sets carreta_id: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE vehicle_sets ADD CONSTRAINT uk_vehicle_sets_dolly UNIQUE (dolly_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for vehicle_sets dolly_id: %v\n", err)
	}

	return nil
}
