package repositories

import (
	"errors"

	"gorm.io/gorm"

	"frotavistoria-api/models"
	"frotavistoria-api/utils"
)

type TruckRepository struct {
	db *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(truck *models.Truck) error {
	if err := r.db.Create(truck).Error; err != nil {
		return utils.NewStorageError("falha ao salvar caminhão", err)
	}
	return nil
}

func (r *TruckRepository) Update(truck *models.Truck) error {
	if err := r.db.Save(truck).Error; err != nil {
		return utils.NewStorageError("falha ao atualizar caminhão", err)
	}
	return nil
}

func (r *TruckRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Truck{}, "id = ?", id).Error; err != nil {
		return utils.NewStorageError("falha ao excluir caminhão", err)
	}
	return nil
}

func (r *TruckRepository) FindByID(id string) (*models.Truck, error) {
	var truck models.Truck
	if err := r.db.First(&truck, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("Caminhão não encontrado")
		}
		return nil, utils.NewStorageError("falha ao buscar caminhão", err)
	}
	return &truck, nil
}

func (r *TruckRepository) FindByPlate(plate string) (*models.Truck, error) {
	var truck models.Truck
	if err := r.db.First(&truck, "plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, utils.NewStorageError("falha ao buscar caminhão por placa", err)
	}
	return &truck, nil
}

func (r *TruckRepository) FindByChassis(chassis string) (*models.Truck, error) {
	var truck models.Truck
	if err := r.db.First(&truck, "chassis = ?", chassis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, utils.NewStorageError("falha ao buscar caminhão por chassi", err)
	}
	return &truck, nil
}

// TruckFilters narrows FindAll results. Empty fields are ignored.
type TruckFilters struct {
	Plate           string
	Chassis         string
	Brand           string
	Model           string
	VehicleCategory string
}

func (r *TruckRepository) FindAll(filters TruckFilters) ([]models.Truck, error) {
	query := r.db.Model(&models.Truck{})

	if filters.Plate != "" {
		query = query.Where("plate LIKE ?", "%"+filters.Plate+"%")
	}
	if filters.Chassis != "" {
		query = query.Where("chassis LIKE ?", "%"+filters.Chassis+"%")
	}
	if filters.Brand != "" {
		query = query.Where("brand LIKE ?", "%"+filters.Brand+"%")
	}
	if filters.Model != "" {
		query = query.Where("model LIKE ?", "%"+filters.Model+"%")
	}
	if filters.VehicleCategory != "" {
		query = query.Where("vehicle_category = ?", filters.VehicleCategory)
	}

	var trucks []models.Truck
	if err := query.Order("created_at DESC").Find(&trucks).Error; err != nil {
		return nil, utils.NewStorageError("falha ao listar caminhões", err)
	}
	return trucks, nil
}

// FindAvailableByCategory returns every vehicle of the category that is not
// referenced by any slot of another vehicle set. excludeSetID lets an update
// keep the set's own vehicles selectable.
func (r *TruckRepository) FindAvailableByCategory(category, excludeSetID string) ([]models.Truck, error) {
	sub := r.db.Model(&models.VehicleSet{}).
		Select("id").
		Where("cavalo_id = trucks.id OR carreta_id = trucks.id OR dolly_id = trucks.id")
	if excludeSetID != "" {
		sub = sub.Where("id != ?", excludeSetID)
	}

	var trucks []models.Truck
	err := r.db.Model(&models.Truck{}).
		Where("vehicle_category = ?", category).
		Where("NOT EXISTS (?)", sub).
		Order("plate ASC").
		Find(&trucks).Error
	if err != nil {
		return nil, utils.NewStorageError("falha ao listar veículos disponíveis", err)
	}
	return trucks, nil
}
