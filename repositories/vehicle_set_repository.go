package repositories

import (
	"errors"

	"gorm.io/gorm"

	"frotavistoria-api/models"
	"frotavistoria-api/utils"
)

type VehicleSetRepository struct {
	db *gorm.DB
}

func NewVehicleSetRepository(db *gorm.DB) *VehicleSetRepository {
	return &VehicleSetRepository{db: db}
}

func (r *VehicleSetRepository) Create(set *models.VehicleSet) error {
	if err := r.db.Create(set).Error; err != nil {
		return utils.NewStorageError("falha ao salvar conjunto de veículos", err)
	}
	return nil
}

func (r *VehicleSetRepository) Update(set *models.VehicleSet) error {
	if err := r.db.Save(set).Error; err != nil {
		return utils.NewStorageError("falha ao atualizar conjunto de veículos", err)
	}
	return nil
}

func (r *VehicleSetRepository) Delete(id string) error {
	if err := r.db.Delete(&models.VehicleSet{}, "id = ?", id).Error; err != nil {
		return utils.NewStorageError("falha ao excluir conjunto de veículos", err)
	}
	return nil
}

func (r *VehicleSetRepository) FindByID(id string) (*models.VehicleSet, error) {
	var set models.VehicleSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("Conjunto de veículos não encontrado")
		}
		return nil, utils.NewStorageError("falha ao buscar conjunto de veículos", err)
	}
	return &set, nil
}

// FindByIDWithVehicles loads the set with the vehicle of each filled slot.
func (r *VehicleSetRepository) FindByIDWithVehicles(id string) (*models.VehicleSet, error) {
	var set models.VehicleSet
	err := r.db.
		Preload("Cavalo").
		Preload("Carreta").
		Preload("Dolly").
		First(&set, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("Conjunto de veículos não encontrado")
		}
		return nil, utils.NewStorageError("falha ao buscar conjunto de veículos", err)
	}
	return &set, nil
}

type VehicleSetFilters struct {
	Name string
	Type string
}

func (r *VehicleSetRepository) FindAll(filters VehicleSetFilters) ([]models.VehicleSet, error) {
	query := r.db.Model(&models.VehicleSet{}).
		Preload("Cavalo").
		Preload("Carreta").
		Preload("Dolly")

	if filters.Name != "" {
		query = query.Where("name LIKE ?", "%"+filters.Name+"%")
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}

	var sets []models.VehicleSet
	if err := query.Order("created_at DESC").Find(&sets).Error; err != nil {
		return nil, utils.NewStorageError("falha ao listar conjuntos de veículos", err)
	}
	return sets, nil
}

// IsVehicleInUse reports whether the vehicle occupies any slot of a set
// other than excludeSetID. Scans all three slot columns.
func (r *VehicleSetRepository) IsVehicleInUse(vehicleID, excludeSetID string) (bool, error) {
	query := r.db.Model(&models.VehicleSet{}).
		Where("cavalo_id = ? OR carreta_id = ? OR dolly_id = ?", vehicleID, vehicleID, vehicleID)
	if excludeSetID != "" {
		query = query.Where("id != ?", excludeSetID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, utils.NewStorageError("falha ao verificar uso do veículo", err)
	}
	return count > 0, nil
}
