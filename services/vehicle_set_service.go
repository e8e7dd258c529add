package services

import (
	"github.com/google/uuid"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/utils"
)

type VehicleSetService struct {
	vehicleSetRepo *repositories.VehicleSetRepository
	truckRepo      *repositories.TruckRepository
}

func NewVehicleSetService(vehicleSetRepo *repositories.VehicleSetRepository, truckRepo *repositories.TruckRepository) *VehicleSetService {
	return &VehicleSetService{
		vehicleSetRepo: vehicleSetRepo,
		truckRepo:      truckRepo,
	}
}

func (s *VehicleSetService) CreateVehicleSet(set models.VehicleSet) (*models.VehicleSet, error) {
	set.ID = uuid.New().String()

	if err := set.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateVehicleSet(&set, ""); err != nil {
		return nil, err
	}

	if err := s.vehicleSetRepo.Create(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *VehicleSetService) UpdateVehicleSet(id string, patch models.VehicleSetPatch) (*models.VehicleSet, error) {
	existing, err := s.vehicleSetRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*existing)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	// The set's own vehicles must not conflict with themselves on re-save.
	if err := s.validateVehicleSet(&updated, id); err != nil {
		return nil, err
	}

	if err := s.vehicleSetRepo.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *VehicleSetService) DeleteVehicleSet(id string) error {
	if _, err := s.vehicleSetRepo.FindByID(id); err != nil {
		return err
	}
	return s.vehicleSetRepo.Delete(id)
}

func (s *VehicleSetService) GetVehicleSet(id string) (*models.VehicleSet, error) {
	return s.vehicleSetRepo.FindByID(id)
}

// GetVehicleSetWithDetails loads the set with each slot's vehicle record
// denormalized for display.
func (s *VehicleSetService) GetVehicleSetWithDetails(id string) (*models.VehicleSet, error) {
	return s.vehicleSetRepo.FindByIDWithVehicles(id)
}

func (s *VehicleSetService) SearchVehicleSets(filters repositories.VehicleSetFilters) ([]models.VehicleSet, error) {
	return s.vehicleSetRepo.FindAll(filters)
}

// GetAvailableVehiclesByCategory lists vehicles of the category not used by
// any other set, for the slot pickers. excludeSetID keeps a set's own
// vehicles visible while editing it.
func (s *VehicleSetService) GetAvailableVehiclesByCategory(category, excludeSetID string) ([]models.Truck, error) {
	if !models.IsVehicleCategory(category) {
		return nil, utils.NewValidationError("Categoria de veículo inválida (cavalo, carreta ou dolly)")
	}
	return s.truckRepo.FindAvailableByCategory(category, excludeSetID)
}

func (s *VehicleSetService) GetAvailableCavalos(excludeSetID string) ([]models.Truck, error) {
	return s.GetAvailableVehiclesByCategory(models.CategoryCavalo, excludeSetID)
}

func (s *VehicleSetService) GetAvailableCarretas(excludeSetID string) ([]models.Truck, error) {
	return s.GetAvailableVehiclesByCategory(models.CategoryCarreta, excludeSetID)
}

func (s *VehicleSetService) GetAvailableDollys(excludeSetID string) ([]models.Truck, error) {
	return s.GetAvailableVehiclesByCategory(models.CategoryDolly, excludeSetID)
}

// validateVehicleSet runs the cross-entity checks for every filled slot:
// the vehicle must exist, carry the slot's category, and not belong to a
// different set. The field-level rules have already run by this point.
func (s *VehicleSetService) validateVehicleSet(set *models.VehicleSet, excludeSetID string) error {
	slots := []struct {
		id       *string
		category string
		notFound string
		mismatch string
		inUse    string
	}{
		{set.CavaloID, models.CategoryCavalo, "Cavalo não encontrado", "O veículo selecionado como cavalo deve ser da categoria \"cavalo\"", "Este cavalo já está sendo usado em outro conjunto"},
		{set.CarretaID, models.CategoryCarreta, "Carreta não encontrada", "O veículo selecionado como carreta deve ser da categoria \"carreta\"", "Esta carreta já está sendo usada em outro conjunto"},
		{set.DollyID, models.CategoryDolly, "Dolly não encontrado", "O veículo selecionado como dolly deve ser da categoria \"dolly\"", "Este dolly já está sendo usado em outro conjunto"},
	}

	for _, slot := range slots {
		if slot.id == nil || *slot.id == "" {
			continue
		}

		vehicle, err := s.truckRepo.FindByID(*slot.id)
		if err != nil {
			if utils.IsNotFoundError(err) {
				return utils.NewNotFoundError(slot.notFound)
			}
			return err
		}
		if vehicle.VehicleCategory != slot.category {
			return utils.NewValidationError(slot.mismatch)
		}

		inUse, err := s.vehicleSetRepo.IsVehicleInUse(vehicle.ID, excludeSetID)
		if err != nil {
			return err
		}
		if inUse {
			return utils.NewConflictError(slot.inUse)
		}
	}

	return nil
}
