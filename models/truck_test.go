package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frotavistoria-api/utils"
)

func validTruck() Truck {
	return Truck{
		Plate:           "ABC1234",
		Chassis:         "9BWZZZ377VT004251",
		Model:           "FH 540",
		Brand:           "Volvo",
		Year:            2020,
		Type:            "Cavalo Mecânico",
		VehicleCategory: CategoryCavalo,
	}
}

func TestTruckValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Truck)
		wantErr bool
	}{
		{name: "valid legacy plate", mutate: func(tr *Truck) {}},
		{name: "valid mercosul plate", mutate: func(tr *Truck) { tr.Plate = "ABC1D23" }},
		{name: "lowercase plate", mutate: func(tr *Truck) { tr.Plate = "abc1234" }, wantErr: true},
		{name: "short plate", mutate: func(tr *Truck) { tr.Plate = "AB1234" }, wantErr: true},
		{name: "chassis too short", mutate: func(tr *Truck) { tr.Chassis = "12345" }, wantErr: true},
		{name: "chassis too long", mutate: func(tr *Truck) { tr.Chassis = "9BWZZZ377VT0042511" }, wantErr: true},
		{name: "model too short", mutate: func(tr *Truck) { tr.Model = "F" }, wantErr: true},
		{name: "brand too short", mutate: func(tr *Truck) { tr.Brand = "V" }, wantErr: true},
		{name: "year before 1950", mutate: func(tr *Truck) { tr.Year = 1949 }, wantErr: true},
		{name: "year 1950 boundary", mutate: func(tr *Truck) { tr.Year = 1950 }},
		{name: "next year boundary", mutate: func(tr *Truck) { tr.Year = time.Now().Year() + 1 }},
		{name: "year too far ahead", mutate: func(tr *Truck) { tr.Year = time.Now().Year() + 2 }, wantErr: true},
		{name: "missing legacy type", mutate: func(tr *Truck) { tr.Type = "" }, wantErr: true},
		{name: "bad category", mutate: func(tr *Truck) { tr.VehicleCategory = "caminhao" }, wantErr: true},
		{name: "carreta category", mutate: func(tr *Truck) { tr.VehicleCategory = CategoryCarreta }},
		{name: "dolly category", mutate: func(tr *Truck) { tr.VehicleCategory = CategoryDolly }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truck := validTruck()
			tt.mutate(&truck)

			err := truck.Validate()
			if tt.wantErr {
				assert.True(t, utils.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTruckCategoryHelpers(t *testing.T) {
	truck := validTruck()
	assert.True(t, truck.IsCavalo())
	assert.False(t, truck.IsCarreta())
	assert.False(t, truck.IsDolly())
}

func TestTruckPatchApply(t *testing.T) {
	original := validTruck()
	newPlate := "XYZ9A88"
	newYear := 2022

	patch := TruckPatch{Plate: &newPlate, Year: &newYear}
	updated := patch.Apply(original)

	assert.Equal(t, "ABC1234", original.Plate)
	assert.Equal(t, "XYZ9A88", updated.Plate)
	assert.Equal(t, 2022, updated.Year)
	assert.Equal(t, original.Chassis, updated.Chassis)
}
