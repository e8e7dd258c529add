package services

import (
	"github.com/google/uuid"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
)

type DriverService struct {
	driverRepo *repositories.DriverRepository
}

func NewDriverService(driverRepo *repositories.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

func (s *DriverService) CreateDriver(driver models.Driver) (*models.Driver, error) {
	driver.ID = uuid.New().String()

	if err := driver.Validate(); err != nil {
		return nil, err
	}

	if err := s.driverRepo.Create(&driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) UpdateDriver(id string, patch models.DriverPatch) (*models.Driver, error) {
	existing, err := s.driverRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*existing)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.driverRepo.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *DriverService) DeleteDriver(id string) error {
	if _, err := s.driverRepo.FindByID(id); err != nil {
		return err
	}
	return s.driverRepo.Delete(id)
}

func (s *DriverService) GetDriver(id string) (*models.Driver, error) {
	return s.driverRepo.FindByID(id)
}

func (s *DriverService) SearchDrivers(filters repositories.DriverFilters) ([]models.Driver, error) {
	return s.driverRepo.FindAll(filters)
}
