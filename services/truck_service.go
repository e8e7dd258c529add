package services

import (
	"github.com/google/uuid"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/utils"
)

type TruckService struct {
	truckRepo *repositories.TruckRepository
}

func NewTruckService(truckRepo *repositories.TruckRepository) *TruckService {
	return &TruckService{truckRepo: truckRepo}
}

func (s *TruckService) CreateTruck(truck models.Truck) (*models.Truck, error) {
	truck.ID = uuid.New().String()

	if err := truck.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(&truck, ""); err != nil {
		return nil, err
	}

	if err := s.truckRepo.Create(&truck); err != nil {
		return nil, err
	}
	return &truck, nil
}

func (s *TruckService) UpdateTruck(id string, patch models.TruckPatch) (*models.Truck, error) {
	existing, err := s.truckRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*existing)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(&updated, id); err != nil {
		return nil, err
	}

	if err := s.truckRepo.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TruckService) DeleteTruck(id string) error {
	if _, err := s.truckRepo.FindByID(id); err != nil {
		return err
	}
	return s.truckRepo.Delete(id)
}

func (s *TruckService) GetTruck(id string) (*models.Truck, error) {
	return s.truckRepo.FindByID(id)
}

func (s *TruckService) GetTruckByPlate(plate string) (*models.Truck, error) {
	truck, err := s.truckRepo.FindByPlate(plate)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, utils.NewNotFoundError("Caminhão não encontrado")
	}
	return truck, nil
}

func (s *TruckService) SearchTrucks(filters repositories.TruckFilters) ([]models.Truck, error) {
	return s.truckRepo.FindAll(filters)
}

// checkUniqueness rejects a plate or chassis already registered to a
// different vehicle. The storage unique indexes back this pre-check up
// against concurrent writers.
func (s *TruckService) checkUniqueness(truck *models.Truck, excludeID string) error {
	byPlate, err := s.truckRepo.FindByPlate(truck.Plate)
	if err != nil {
		return err
	}
	if byPlate != nil && byPlate.ID != excludeID {
		return utils.NewConflictError("Já existe um caminhão cadastrado com esta placa")
	}

	byChassis, err := s.truckRepo.FindByChassis(truck.Chassis)
	if err != nil {
		return err
	}
	if byChassis != nil && byChassis.ID != excludeID {
		return utils.NewConflictError("Já existe um caminhão cadastrado com este chassi")
	}

	return nil
}
