package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"frotavistoria-api/models"
	"frotavistoria-api/utils"
)

type InspectionRequestRepository struct {
	db *gorm.DB
}

func NewInspectionRequestRepository(db *gorm.DB) *InspectionRequestRepository {
	return &InspectionRequestRepository{db: db}
}

func (r *InspectionRequestRepository) Create(request *models.InspectionRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return utils.NewStorageError("falha ao salvar solicitação de vistoria", err)
	}
	return nil
}

func (r *InspectionRequestRepository) Update(request *models.InspectionRequest) error {
	if err := r.db.Save(request).Error; err != nil {
		return utils.NewStorageError("falha ao atualizar solicitação de vistoria", err)
	}
	return nil
}

func (r *InspectionRequestRepository) FindByID(id string) (*models.InspectionRequest, error) {
	return r.findOne("id = ?", id)
}

func (r *InspectionRequestRepository) FindByToken(token string) (*models.InspectionRequest, error) {
	return r.findOne("token = ?", token)
}

func (r *InspectionRequestRepository) findOne(cond string, arg string) (*models.InspectionRequest, error) {
	var request models.InspectionRequest
	err := r.db.
		Preload("Truck").
		Preload("VehicleSet").
		Preload("VehicleSet.Cavalo").
		Preload("VehicleSet.Carreta").
		Preload("VehicleSet.Dolly").
		Preload("Driver").
		Preload("Photos").
		First(&request, cond, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("Solicitação de vistoria não encontrada")
		}
		return nil, utils.NewStorageError("falha ao buscar solicitação de vistoria", err)
	}
	return &request, nil
}

// InspectionRequestFilters narrows the listing. Plate and DriverName are
// substring matches; Plate is checked against the single vehicle's plate and
// every slot plate of a targeted set.
type InspectionRequestFilters struct {
	Status       string
	TruckID      string
	VehicleSetID string
	DriverID     string
	Plate        string
	DriverName   string
}

// FindAll lists submitted requests only: rows still awaiting the driver's
// submission carry no inspection data and are excluded from the review view.
func (r *InspectionRequestRepository) FindAll(filters InspectionRequestFilters) ([]models.InspectionRequest, error) {
	query := r.db.Model(&models.InspectionRequest{}).
		Preload("Truck").
		Preload("VehicleSet").
		Preload("VehicleSet.Cavalo").
		Preload("VehicleSet.Carreta").
		Preload("VehicleSet.Dolly").
		Preload("Driver").
		Preload("Photos").
		Where("inspection_requests.inspection_date IS NOT NULL")

	if filters.Status != "" {
		query = query.Where("inspection_requests.status = ?", filters.Status)
	}
	if filters.TruckID != "" {
		query = query.Where("inspection_requests.truck_id = ?", filters.TruckID)
	}
	if filters.VehicleSetID != "" {
		query = query.Where("inspection_requests.vehicle_set_id = ?", filters.VehicleSetID)
	}
	if filters.DriverID != "" {
		query = query.Where("inspection_requests.driver_id = ?", filters.DriverID)
	}

	if filters.Plate != "" {
		pattern := "%" + filters.Plate + "%"
		query = query.
			Joins("LEFT JOIN trucks single_truck ON single_truck.id = inspection_requests.truck_id").
			Joins("LEFT JOIN vehicle_sets target_set ON target_set.id = inspection_requests.vehicle_set_id").
			Joins("LEFT JOIN trucks set_cavalo ON set_cavalo.id = target_set.cavalo_id").
			Joins("LEFT JOIN trucks set_carreta ON set_carreta.id = target_set.carreta_id").
			Joins("LEFT JOIN trucks set_dolly ON set_dolly.id = target_set.dolly_id").
			Where("single_truck.plate LIKE ? OR set_cavalo.plate LIKE ? OR set_carreta.plate LIKE ? OR set_dolly.plate LIKE ?",
				pattern, pattern, pattern, pattern)
	}

	if filters.DriverName != "" {
		query = query.
			Joins("LEFT JOIN drivers request_driver ON request_driver.id = inspection_requests.driver_id").
			Where("request_driver.name LIKE ?", "%"+filters.DriverName+"%")
	}

	var requests []models.InspectionRequest
	if err := query.Order("inspection_requests.created_at DESC").Find(&requests).Error; err != nil {
		return nil, utils.NewStorageError("falha ao listar solicitações de vistoria", err)
	}
	return requests, nil
}

// FindAwaitingSubmissionOlderThan returns requests the driver has not filled
// in yet whose creation predates the cutoff, with the driver preloaded.
// Used by the reminder job.
func (r *InspectionRequestRepository) FindAwaitingSubmissionOlderThan(cutoff time.Time) ([]models.InspectionRequest, error) {
	var requests []models.InspectionRequest
	err := r.db.
		Preload("Driver").
		Where("status = ? AND created_at < ?", models.StatusAwaitingSubmission, cutoff).
		Find(&requests).Error
	if err != nil {
		return nil, utils.NewStorageError("falha ao buscar vistorias pendentes de preenchimento", err)
	}
	return requests, nil
}

// UpdateStatusIf moves the request from expected to next in one guarded
// statement, so two concurrent reviewers cannot both finalize. Returns
// whether a row changed.
func (r *InspectionRequestRepository) UpdateStatusIf(id, expected, next string) (bool, error) {
	res := r.db.Model(&models.InspectionRequest{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", next)
	if res.Error != nil {
		return false, utils.NewStorageError("falha ao atualizar status da vistoria", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *InspectionRequestRepository) AddPhoto(photo *models.InspectionPhoto) error {
	if err := r.db.Create(photo).Error; err != nil {
		return utils.NewStorageError("falha ao salvar foto da vistoria", err)
	}
	return nil
}

func (r *InspectionRequestRepository) GetPhotos(requestID string) ([]string, error) {
	var photos []models.InspectionPhoto
	err := r.db.
		Where("inspection_request_id = ?", requestID).
		Order("created_at ASC").
		Find(&photos).Error
	if err != nil {
		return nil, utils.NewStorageError("falha ao buscar fotos da vistoria", err)
	}

	paths := make([]string, 0, len(photos))
	for _, p := range photos {
		paths = append(paths, p.PhotoPath)
	}
	return paths, nil
}

// AllPhotoPaths returns every stored photo path. Used by the orphan cleanup
// job to decide which files on disk are still referenced.
func (r *InspectionRequestRepository) AllPhotoPaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&models.InspectionPhoto{}).
		Pluck("photo_path", &paths).Error
	if err != nil {
		return nil, utils.NewStorageError("falha ao listar fotos de vistoria", err)
	}
	return paths, nil
}
