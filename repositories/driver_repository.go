package repositories

import (
	"errors"

	"gorm.io/gorm"

	"frotavistoria-api/models"
	"frotavistoria-api/utils"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(driver *models.Driver) error {
	if err := r.db.Create(driver).Error; err != nil {
		return utils.NewStorageError("falha ao salvar motorista", err)
	}
	return nil
}

func (r *DriverRepository) Update(driver *models.Driver) error {
	if err := r.db.Save(driver).Error; err != nil {
		return utils.NewStorageError("falha ao atualizar motorista", err)
	}
	return nil
}

func (r *DriverRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Driver{}, "id = ?", id).Error; err != nil {
		return utils.NewStorageError("falha ao excluir motorista", err)
	}
	return nil
}

func (r *DriverRepository) FindByID(id string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.First(&driver, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("Motorista não encontrado")
		}
		return nil, utils.NewStorageError("falha ao buscar motorista", err)
	}
	return &driver, nil
}

type DriverFilters struct {
	Name string
	CPF  string
}

func (r *DriverRepository) FindAll(filters DriverFilters) ([]models.Driver, error) {
	query := r.db.Model(&models.Driver{})

	if filters.Name != "" {
		query = query.Where("name LIKE ?", "%"+filters.Name+"%")
	}
	if filters.CPF != "" {
		query = query.Where("cpf LIKE ?", "%"+filters.CPF+"%")
	}

	var drivers []models.Driver
	if err := query.Order("name ASC").Find(&drivers).Error; err != nil {
		return nil, utils.NewStorageError("falha ao listar motoristas", err)
	}
	return drivers, nil
}
