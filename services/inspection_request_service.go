package services

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/utils"
)

// InspectionRequestService drives the two-phase inspection lifecycle:
// staff create a tokenized request, the driver fills it in through the
// public link, staff approve or reject the submission.
type InspectionRequestService struct {
	db             *gorm.DB
	requestRepo    *repositories.InspectionRequestRepository
	truckRepo      *repositories.TruckRepository
	vehicleSetRepo *repositories.VehicleSetRepository
	driverRepo     *repositories.DriverRepository
	photoService   *PhotoService
	emailService   *EmailService
}

func NewInspectionRequestService(
	db *gorm.DB,
	requestRepo *repositories.InspectionRequestRepository,
	truckRepo *repositories.TruckRepository,
	vehicleSetRepo *repositories.VehicleSetRepository,
	driverRepo *repositories.DriverRepository,
	photoService *PhotoService,
	emailService *EmailService,
) *InspectionRequestService {
	return &InspectionRequestService{
		db:             db,
		requestRepo:    requestRepo,
		truckRepo:      truckRepo,
		vehicleSetRepo: vehicleSetRepo,
		driverRepo:     driverRepo,
		photoService:   photoService,
		emailService:   emailService,
	}
}

// generateToken returns 64 hex characters of cryptographically secure
// randomness. Uniqueness is additionally guarded by the token's unique
// index at the storage layer.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", utils.NewStorageError("falha ao gerar token", err)
	}
	return hex.EncodeToString(buf), nil
}

// CreateRequest opens a new inspection for the driver and target. The
// driver gets the public link by email when an address is on file.
func (s *InspectionRequestService) CreateRequest(driverID string, target models.VehicleTarget) (*models.InspectionRequest, error) {
	if target.IsZero() {
		return nil, utils.NewValidationError("ID do caminhão ou conjunto de veículos é obrigatório")
	}

	driver, err := s.driverRepo.FindByID(driverID)
	if err != nil {
		return nil, err
	}

	request := models.InspectionRequest{
		ID:       uuid.New().String(),
		DriverID: driver.ID,
		Status:   models.StatusAwaitingSubmission,
	}

	switch target.Kind() {
	case models.TargetSingle:
		truck, err := s.truckRepo.FindByID(target.ID())
		if err != nil {
			return nil, err
		}
		request.TruckID = &truck.ID
	case models.TargetSet:
		set, err := s.vehicleSetRepo.FindByID(target.ID())
		if err != nil {
			return nil, err
		}
		request.VehicleSetID = &set.ID
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	request.Token = token

	if err := request.Validate(); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Create(&request); err != nil {
		return nil, err
	}

	if s.emailService != nil && driver.Email != nil && *driver.Email != "" {
		if err := s.emailService.SendInspectionLink(*driver.Email, driver.Name, request.Token); err != nil {
			log.Printf("Failed to send inspection link to %s: %v", *driver.Email, err)
		}
	}

	return &request, nil
}

// FindByToken is the public lookup behind the driver-facing form. The token
// is the only credential.
func (s *InspectionRequestService) FindByToken(token string) (*models.InspectionRequest, error) {
	return s.requestRepo.FindByToken(token)
}

// SubmitInspection records the driver's answers and photos and moves the
// request to awaiting_review. A request can be submitted exactly once; the
// row update and the photo rows commit in one transaction.
func (s *InspectionRequestService) SubmitInspection(token string, result models.InspectionResult, photos []PhotoUpload) (*models.InspectionRequest, error) {
	request, err := s.requestRepo.FindByToken(token)
	if err != nil {
		return nil, err
	}

	if request.Submitted() {
		return nil, utils.NewConflictError("Esta vistoria já foi preenchida")
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	if !models.CanTransition(request.Status, models.StatusAwaitingReview) {
		return nil, utils.NewConflictError("Esta vistoria não pode mais ser preenchida")
	}

	now := time.Now()
	request.InspectionDate = &now
	request.Mileage = &result.Mileage
	request.FuelLevel = &result.FuelLevel
	request.BrakeCondition = &result.BrakeCondition
	request.GeneralCondition = &result.GeneralCondition
	request.Observations = result.Observations
	request.Status = models.StatusAwaitingReview

	// Files hit the disk first so the photo rows only ever reference
	// existing files. If the transaction fails the files are orphaned and
	// removed, best effort, right here (the cleanup job catches stragglers).
	photoPaths, err := s.photoService.Save(request.ID, photos, s.displayPlate(request))
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := repositories.NewInspectionRequestRepository(tx)

		if err := txRepo.Update(request); err != nil {
			return err
		}
		for _, path := range photoPaths {
			photo := models.InspectionPhoto{
				ID:                  uuid.New().String(),
				InspectionRequestID: request.ID,
				PhotoPath:           path,
			}
			if err := txRepo.AddPhoto(&photo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		for _, path := range photoPaths {
			s.photoService.Delete(path)
		}
		return nil, err
	}

	return s.requestRepo.FindByID(request.ID)
}

// displayPlate picks the plate used to namespace the photo directory:
// the single vehicle's plate, or the set's tractor-first display plate.
func (s *InspectionRequestService) displayPlate(request *models.InspectionRequest) string {
	if request.Truck != nil {
		return request.Truck.Plate
	}
	if request.VehicleSet != nil {
		return request.VehicleSet.DisplayPlate()
	}
	return ""
}

// UpdateStatus approves or rejects a submitted inspection. Only those two
// values are accepted, and only from awaiting_review.
func (s *InspectionRequestService) UpdateStatus(id, status string) (*models.InspectionRequest, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, utils.NewValidationError("Status inválido")
	}

	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(request.Status, status) {
		if request.Status == models.StatusAwaitingSubmission {
			return nil, utils.NewConflictError("Esta vistoria ainda não foi preenchida pelo motorista")
		}
		return nil, utils.NewConflictError("Esta vistoria já foi finalizada")
	}

	changed, err := s.requestRepo.UpdateStatusIf(id, request.Status, status)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Another reviewer finalized it between our read and the update.
		return nil, utils.NewConflictError("Esta vistoria já foi finalizada")
	}
	return s.requestRepo.FindByID(id)
}

func (s *InspectionRequestService) ListRequests(filters repositories.InspectionRequestFilters) ([]models.InspectionRequest, error) {
	return s.requestRepo.FindAll(filters)
}

func (s *InspectionRequestService) GetPhotos(requestID string) ([]string, error) {
	if _, err := s.requestRepo.FindByID(requestID); err != nil {
		return nil, err
	}
	return s.requestRepo.GetPhotos(requestID)
}

// SendPendingReminders re-mails the public link for requests still awaiting
// submission after the grace period. Called from the scheduler.
func (s *InspectionRequestService) SendPendingReminders(olderThan time.Duration) error {
	if s.emailService == nil {
		return nil
	}

	requests, err := s.requestRepo.FindAwaitingSubmissionOlderThan(time.Now().Add(-olderThan))
	if err != nil {
		return err
	}

	for _, request := range requests {
		if request.Driver == nil || request.Driver.Email == nil || *request.Driver.Email == "" {
			continue
		}
		if err := s.emailService.SendInspectionReminder(*request.Driver.Email, request.Driver.Name, request.Token); err != nil {
			log.Printf("Failed to send inspection reminder for request %s: %v", request.ID, err)
		}
	}

	return nil
}
