package models

import (
	"strings"
	"time"

	"frotavistoria-api/utils"
)

// Vehicle set types. Each type dictates which slots must be filled and
// which must stay empty (see slotRules below).
const (
	SetTypeCavalo           = "cavalo"             // solo tractor
	SetTypeCarreta          = "carreta"            // solo trailer
	SetTypeConjugado        = "conjugado"          // tractor + trailer
	SetTypeBitrem           = "bitrem"             // tractor + trailer + dolly
	SetTypeDollySemiReboque = "dolly_semi_reboque" // dolly coupling a semi-trailer
)

var VehicleSetTypes = []string{
	SetTypeCavalo,
	SetTypeCarreta,
	SetTypeConjugado,
	SetTypeBitrem,
	SetTypeDollySemiReboque,
}

// VehicleSet is a named combination of up to three registered vehicles
// operated together.
type VehicleSet struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Type        string    `json:"type" gorm:"not null;size:30"`
	CavaloID    *string   `json:"cavalo_id" gorm:"size:191;index"`
	CarretaID   *string   `json:"carreta_id" gorm:"size:191;index"`
	DollyID     *string   `json:"dolly_id" gorm:"size:191;index"`
	Description *string   `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Cavalo  *Truck `json:"cavalo,omitempty" gorm:"foreignKey:CavaloID"`
	Carreta *Truck `json:"carreta,omitempty" gorm:"foreignKey:CarretaID"`
	Dolly   *Truck `json:"dolly,omitempty" gorm:"foreignKey:DollyID"`
}

type VehicleSetPatch struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	CavaloID    *string `json:"cavalo_id"`
	CarretaID   *string `json:"carreta_id"`
	DollyID     *string `json:"dolly_id"`
	Description *string `json:"description"`
}

// Apply merges the patch into a copy of the set. A slot patched to the empty
// string clears the slot; this is how a type change drops a vehicle.
func (p VehicleSetPatch) Apply(vs VehicleSet) VehicleSet {
	if p.Name != nil {
		vs.Name = *p.Name
	}
	if p.Type != nil {
		vs.Type = *p.Type
	}
	if p.CavaloID != nil {
		vs.CavaloID = normalizeSlot(p.CavaloID)
	}
	if p.CarretaID != nil {
		vs.CarretaID = normalizeSlot(p.CarretaID)
	}
	if p.DollyID != nil {
		vs.DollyID = normalizeSlot(p.DollyID)
	}
	if p.Description != nil {
		vs.Description = p.Description
	}
	return vs
}

func normalizeSlot(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// slotRule says, for one set type, whether each slot is required. A slot
// that is not required must be empty.
type slotRule struct {
	cavalo  bool
	carreta bool
	dolly   bool
}

var slotRules = map[string]slotRule{
	SetTypeCavalo:           {cavalo: true},
	SetTypeCarreta:          {carreta: true},
	SetTypeConjugado:        {cavalo: true, carreta: true},
	SetTypeBitrem:           {cavalo: true, carreta: true, dolly: true},
	SetTypeDollySemiReboque: {carreta: true, dolly: true},
}

func (vs *VehicleSet) Validate() error {
	if len(strings.TrimSpace(vs.Name)) < 2 {
		return utils.NewValidationError("Nome do conjunto é obrigatório")
	}

	rule, ok := slotRules[vs.Type]
	if !ok {
		return utils.NewValidationError("Tipo de conjunto inválido. Use: cavalo, carreta, conjugado, bitrem ou dolly_semi_reboque")
	}

	if err := checkSlot(rule.cavalo, vs.CavaloID, "cavalo"); err != nil {
		return err
	}
	if err := checkSlot(rule.carreta, vs.CarretaID, "carreta"); err != nil {
		return err
	}
	if err := checkSlot(rule.dolly, vs.DollyID, "dolly"); err != nil {
		return err
	}

	// No vehicle may occupy two slots of the same set.
	seen := map[string]bool{}
	for _, id := range vs.VehicleIDs() {
		if seen[id] {
			return utils.NewValidationError("O mesmo veículo não pode ocupar duas posições no conjunto")
		}
		seen[id] = true
	}

	return nil
}

func checkSlot(required bool, id *string, slot string) error {
	filled := id != nil && *id != ""
	if required && !filled {
		return utils.NewValidationError("ID do " + slot + " é obrigatório para conjuntos deste tipo")
	}
	if !required && filled {
		return utils.NewValidationError("Conjunto deste tipo não deve ter " + slot + " associado")
	}
	return nil
}

// VehicleIDs returns the ids of every filled slot.
func (vs *VehicleSet) VehicleIDs() []string {
	var ids []string
	for _, id := range []*string{vs.CavaloID, vs.CarretaID, vs.DollyID} {
		if id != nil && *id != "" {
			ids = append(ids, *id)
		}
	}
	return ids
}

// DisplayPlate picks the plate shown for the whole set, preferring the
// tractor, then the trailer, then the dolly. Used to namespace photo storage.
func (vs *VehicleSet) DisplayPlate() string {
	for _, v := range []*Truck{vs.Cavalo, vs.Carreta, vs.Dolly} {
		if v != nil && v.Plate != "" {
			return v.Plate
		}
	}
	return ""
}

func IsVehicleSetType(t string) bool {
	_, ok := slotRules[t]
	return ok
}

// TypeDescription returns the human-readable label for the set type.
func (vs *VehicleSet) TypeDescription() string {
	descriptions := map[string]string{
		SetTypeCavalo:           "Cavalo Mecânico",
		SetTypeCarreta:          "Carreta/Reboque",
		SetTypeConjugado:        "Conjunto Conjugado (Cavalo + Carreta)",
		SetTypeBitrem:           "Bitrem (Cavalo + Carreta + Dolly)",
		SetTypeDollySemiReboque: "Dolly + Semi-Reboque",
	}
	if d, ok := descriptions[vs.Type]; ok {
		return d
	}
	return vs.Type
}
