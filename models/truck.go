package models

import (
	"time"

	"frotavistoria-api/utils"
)

// Vehicle categories. The domain keeps the Portuguese fleet terms:
// cavalo = tractor unit, carreta = trailer, dolly = converter dolly.
const (
	CategoryCavalo  = "cavalo"
	CategoryCarreta = "carreta"
	CategoryDolly   = "dolly"
)

var VehicleCategories = []string{CategoryCavalo, CategoryCarreta, CategoryDolly}

// Truck is a single registered vehicle. Despite the name it covers every
// unit in the fleet, including unpowered ones; the category tells them apart.
type Truck struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	Plate           string    `json:"plate" gorm:"uniqueIndex;not null;size:10"`
	Chassis         string    `json:"chassis" gorm:"uniqueIndex;not null;size:17"`
	Model           string    `json:"model" gorm:"not null;size:100"`
	Brand           string    `json:"brand" gorm:"not null;size:100"`
	Year            int       `json:"year" gorm:"not null"`
	Type            string    `json:"type" gorm:"not null;size:100"` // legacy free-text label (Caminhão Baú, Carreta...)
	VehicleCategory string    `json:"vehicle_category" gorm:"not null;size:20;index"`
	Photo           *string   `json:"photo" gorm:"size:500"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TruckPatch carries a partial update. Nil fields are left untouched.
type TruckPatch struct {
	Plate           *string `json:"plate"`
	Chassis         *string `json:"chassis"`
	Model           *string `json:"model"`
	Brand           *string `json:"brand"`
	Year            *int    `json:"year"`
	Type            *string `json:"type"`
	VehicleCategory *string `json:"vehicle_category"`
	Photo           *string `json:"photo"`
}

// Apply merges the patch into a copy of the truck and returns it. The
// receiver is never mutated; callers revalidate the merged snapshot.
func (p TruckPatch) Apply(t Truck) Truck {
	if p.Plate != nil {
		t.Plate = *p.Plate
	}
	if p.Chassis != nil {
		t.Chassis = *p.Chassis
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.Brand != nil {
		t.Brand = *p.Brand
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.VehicleCategory != nil {
		t.VehicleCategory = *p.VehicleCategory
	}
	if p.Photo != nil {
		t.Photo = p.Photo
	}
	return t
}

func (t *Truck) Validate() error {
	if !utils.IsValidPlate(t.Plate) {
		return utils.NewValidationError("Placa inválida. Use o formato: ABC1234 ou ABC1D23")
	}
	if !utils.IsValidChassis(t.Chassis) {
		return utils.NewValidationError("Número do chassi deve ter 17 caracteres")
	}
	if len(t.Model) < 2 {
		return utils.NewValidationError("Modelo é obrigatório")
	}
	if len(t.Brand) < 2 {
		return utils.NewValidationError("Marca é obrigatória")
	}
	if !utils.IsValidYear(t.Year) {
		return utils.NewValidationError("Ano inválido")
	}
	if t.Type == "" {
		return utils.NewValidationError("Tipo de caminhão é obrigatório")
	}
	if !IsVehicleCategory(t.VehicleCategory) {
		return utils.NewValidationError("Categoria do veículo é obrigatória (cavalo, carreta ou dolly)")
	}
	return nil
}

func IsVehicleCategory(category string) bool {
	for _, c := range VehicleCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (t *Truck) IsCavalo() bool {
	return t.VehicleCategory == CategoryCavalo
}

func (t *Truck) IsCarreta() bool {
	return t.VehicleCategory == CategoryCarreta
}

func (t *Truck) IsDolly() bool {
	return t.VehicleCategory == CategoryDolly
}
