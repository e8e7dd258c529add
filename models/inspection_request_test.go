package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frotavistoria-api/utils"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusAwaitingSubmission, StatusAwaitingReview, true},
		{StatusAwaitingReview, StatusApproved, true},
		{StatusAwaitingReview, StatusRejected, true},

		{StatusAwaitingSubmission, StatusApproved, false},
		{StatusAwaitingSubmission, StatusRejected, false},
		{StatusAwaitingReview, StatusAwaitingSubmission, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusAwaitingReview, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusAwaitingSubmission, false},

		{"unknown", StatusApproved, false},
		{StatusAwaitingReview, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusApproved))
	assert.True(t, IsTerminalStatus(StatusRejected))
	assert.False(t, IsTerminalStatus(StatusAwaitingSubmission))
	assert.False(t, IsTerminalStatus(StatusAwaitingReview))
	assert.False(t, IsTerminalStatus("unknown"))
}

func TestParseVehicleTarget(t *testing.T) {
	truckID := strPtr("truck-1")
	setID := strPtr("set-1")
	empty := strPtr("")

	t.Run("single vehicle", func(t *testing.T) {
		target, err := ParseVehicleTarget(truckID, nil)
		assert.NoError(t, err)
		assert.Equal(t, TargetSingle, target.Kind())
		assert.Equal(t, "truck-1", target.ID())
	})

	t.Run("vehicle set", func(t *testing.T) {
		target, err := ParseVehicleTarget(nil, setID)
		assert.NoError(t, err)
		assert.Equal(t, TargetSet, target.Kind())
		assert.Equal(t, "set-1", target.ID())
	})

	t.Run("both set", func(t *testing.T) {
		_, err := ParseVehicleTarget(truckID, setID)
		assert.True(t, utils.IsValidationError(err))
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := ParseVehicleTarget(nil, nil)
		assert.True(t, utils.IsValidationError(err))
	})

	t.Run("empty strings count as absent", func(t *testing.T) {
		_, err := ParseVehicleTarget(empty, empty)
		assert.True(t, utils.IsValidationError(err))
	})
}

func TestInspectionResultValidate(t *testing.T) {
	valid := InspectionResult{
		Mileage:          1000,
		FuelLevel:        50,
		BrakeCondition:   "good",
		GeneralCondition: "good",
	}

	tests := []struct {
		name    string
		mutate  func(*InspectionResult)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *InspectionResult) {}},
		{name: "fuel level zero", mutate: func(r *InspectionResult) { r.FuelLevel = 0 }},
		{name: "fuel level hundred", mutate: func(r *InspectionResult) { r.FuelLevel = 100 }},
		{name: "fuel level above hundred", mutate: func(r *InspectionResult) { r.FuelLevel = 100.01 }, wantErr: true},
		{name: "fuel level negative", mutate: func(r *InspectionResult) { r.FuelLevel = -1 }, wantErr: true},
		{name: "mileage zero", mutate: func(r *InspectionResult) { r.Mileage = 0 }, wantErr: true},
		{name: "mileage negative", mutate: func(r *InspectionResult) { r.Mileage = -10 }, wantErr: true},
		{name: "missing brake condition", mutate: func(r *InspectionResult) { r.BrakeCondition = "" }, wantErr: true},
		{name: "missing general condition", mutate: func(r *InspectionResult) { r.GeneralCondition = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valid
			tt.mutate(&result)

			err := result.Validate()
			if tt.wantErr {
				assert.True(t, utils.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInspectionRequestValidate(t *testing.T) {
	truckID := strPtr("truck-1")

	t.Run("valid", func(t *testing.T) {
		r := InspectionRequest{TruckID: truckID, DriverID: "driver-1", Status: StatusAwaitingSubmission}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing driver", func(t *testing.T) {
		r := InspectionRequest{TruckID: truckID, Status: StatusAwaitingSubmission}
		assert.True(t, utils.IsValidationError(r.Validate()))
	})

	t.Run("missing target", func(t *testing.T) {
		r := InspectionRequest{DriverID: "driver-1", Status: StatusAwaitingSubmission}
		assert.True(t, utils.IsValidationError(r.Validate()))
	})

	t.Run("bad status", func(t *testing.T) {
		r := InspectionRequest{TruckID: truckID, DriverID: "driver-1", Status: "pending"}
		assert.True(t, utils.IsValidationError(r.Validate()))
	})
}

func TestInspectionRequestTarget(t *testing.T) {
	setID := strPtr("set-1")
	r := InspectionRequest{VehicleSetID: setID}

	target := r.Target()

	assert.Equal(t, TargetSet, target.Kind())
	assert.Equal(t, "set-1", target.ID())

	var blank InspectionRequest
	assert.True(t, blank.Target().IsZero())
}
