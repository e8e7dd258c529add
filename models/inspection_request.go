package models

import (
	"time"

	"frotavistoria-api/utils"
)

// Inspection request statuses. The lifecycle keeps the two waiting phases
// explicit instead of overloading a single "pending" value: a request is
// first waiting for the driver to fill the form, then waiting for staff to
// approve or reject the submission.
const (
	StatusAwaitingSubmission = "awaiting_submission"
	StatusAwaitingReview     = "awaiting_review"
	StatusApproved           = "approved"
	StatusRejected           = "rejected"
)

// statusTransitions is the allowed transition graph. Terminal states map to
// an empty list.
var statusTransitions = map[string][]string{
	StatusAwaitingSubmission: {StatusAwaitingReview},
	StatusAwaitingReview:     {StatusApproved, StatusRejected},
	StatusApproved:           {},
	StatusRejected:           {},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to string) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func IsTerminalStatus(status string) bool {
	allowed, ok := statusTransitions[status]
	return ok && len(allowed) == 0
}

// InspectionRequest is one solicited vehicle inspection, addressed by an
// unguessable token. It targets either a single truck or a vehicle set,
// never both. Result fields stay nil until the driver submits.
type InspectionRequest struct {
	ID            string  `json:"id" gorm:"primaryKey;size:191"`
	TruckID       *string `json:"truck_id" gorm:"size:191;index"`
	VehicleSetID  *string `json:"vehicle_set_id" gorm:"size:191;index"`
	DriverID      string  `json:"driver_id" gorm:"not null;size:191;index"`
	Token         string  `json:"token" gorm:"uniqueIndex;not null;size:64"`
	Status        string  `json:"status" gorm:"not null;size:30;index"`

	InspectionDate   *time.Time `json:"inspection_date"`
	Mileage          *int       `json:"mileage"`
	FuelLevel        *float64   `json:"fuel_level"`
	BrakeCondition   *string    `json:"brake_condition" gorm:"size:50"`
	GeneralCondition *string    `json:"general_condition" gorm:"size:50"`
	Observations     *string    `json:"observations" gorm:"size:2000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Truck      *Truck            `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
	VehicleSet *VehicleSet       `json:"vehicle_set,omitempty" gorm:"foreignKey:VehicleSetID"`
	Driver     *Driver           `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Photos     []InspectionPhoto `json:"photos,omitempty" gorm:"foreignKey:InspectionRequestID"`
}

// InspectionPhoto is one stored photo path owned by a request.
type InspectionPhoto struct {
	ID                  string    `json:"id" gorm:"primaryKey;size:191"`
	InspectionRequestID string    `json:"inspection_request_id" gorm:"not null;size:191;index"`
	PhotoPath           string    `json:"photo_path" gorm:"not null;size:500"`
	CreatedAt           time.Time `json:"created_at"`
}

// TargetKind discriminates the two inspection targets.
type TargetKind int

const (
	TargetSingle TargetKind = iota + 1
	TargetSet
)

// VehicleTarget is the "single truck or vehicle set" choice as a value that
// can only hold one of the two. Construct via NewSingleTarget/NewSetTarget.
type VehicleTarget struct {
	kind TargetKind
	id   string
}

func NewSingleTarget(truckID string) VehicleTarget {
	return VehicleTarget{kind: TargetSingle, id: truckID}
}

func NewSetTarget(vehicleSetID string) VehicleTarget {
	return VehicleTarget{kind: TargetSet, id: vehicleSetID}
}

func (t VehicleTarget) Kind() TargetKind { return t.kind }
func (t VehicleTarget) ID() string       { return t.id }

func (t VehicleTarget) IsZero() bool {
	return t.kind == 0 || t.id == ""
}

// ParseVehicleTarget builds a target from the two nullable id fields used on
// the wire, enforcing that exactly one is set.
func ParseVehicleTarget(truckID, vehicleSetID *string) (VehicleTarget, error) {
	hasTruck := truckID != nil && *truckID != ""
	hasSet := vehicleSetID != nil && *vehicleSetID != ""

	switch {
	case hasTruck && hasSet:
		return VehicleTarget{}, utils.NewValidationError("Informe apenas o caminhão ou o conjunto de veículos, não ambos")
	case hasTruck:
		return NewSingleTarget(*truckID), nil
	case hasSet:
		return NewSetTarget(*vehicleSetID), nil
	default:
		return VehicleTarget{}, utils.NewValidationError("ID do caminhão ou conjunto de veículos é obrigatório")
	}
}

// Target reconstructs the sum type from the stored columns.
func (r *InspectionRequest) Target() VehicleTarget {
	if r.VehicleSetID != nil && *r.VehicleSetID != "" {
		return NewSetTarget(*r.VehicleSetID)
	}
	if r.TruckID != nil && *r.TruckID != "" {
		return NewSingleTarget(*r.TruckID)
	}
	return VehicleTarget{}
}

// InspectionResult carries the fields the driver fills in on submission.
type InspectionResult struct {
	Mileage          int      `json:"mileage"`
	FuelLevel        float64  `json:"fuel_level"`
	BrakeCondition   string   `json:"brake_condition"`
	GeneralCondition string   `json:"general_condition"`
	Observations     *string  `json:"observations"`
}

func (res *InspectionResult) Validate() error {
	if !utils.IsValidMileage(res.Mileage) {
		return utils.NewValidationError("Quilometragem deve ser maior que zero")
	}
	if !utils.IsValidFuelLevel(res.FuelLevel) {
		return utils.NewValidationError("Nível de combustível deve estar entre 0 e 100")
	}
	if res.BrakeCondition == "" {
		return utils.NewValidationError("Condição dos freios é obrigatória")
	}
	if res.GeneralCondition == "" {
		return utils.NewValidationError("Condição geral é obrigatória")
	}
	return nil
}

func (r *InspectionRequest) Validate() error {
	if _, err := ParseVehicleTarget(r.TruckID, r.VehicleSetID); err != nil {
		return err
	}
	if r.DriverID == "" {
		return utils.NewValidationError("ID do motorista é obrigatório")
	}
	if _, ok := statusTransitions[r.Status]; !ok {
		return utils.NewValidationError("Status inválido")
	}
	return nil
}

// Submitted reports whether the driver has already filled the inspection.
func (r *InspectionRequest) Submitted() bool {
	return r.InspectionDate != nil
}
