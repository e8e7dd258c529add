package controllers

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/services"
	"frotavistoria-api/utils"
)

const (
	maxPhotoCount = 10
	maxPhotoSize  = 5 * 1024 * 1024 // 5MB per file
)

type InspectionRequestController struct {
	inspectionService *services.InspectionRequestService
}

func NewInspectionRequestController(inspectionService *services.InspectionRequestService) *InspectionRequestController {
	return &InspectionRequestController{inspectionService: inspectionService}
}

type CreateInspectionRequestBody struct {
	DriverID     string  `json:"driver_id" binding:"required"`
	TruckID      *string `json:"truck_id"`
	VehicleSetID *string `json:"vehicle_set_id"`
}

func (ic *InspectionRequestController) CreateRequest(c *gin.Context) {
	var req CreateInspectionRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	target, err := models.ParseVehicleTarget(req.TruckID, req.VehicleSetID)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	request, err := ic.inspectionService.CreateRequest(req.DriverID, target)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"message":        "Solicitação de vistoria criada com sucesso",
		"request":        request,
		"inspection_url": "/inspection/" + request.Token,
	})
}

// GetRequestByToken is the public lookup behind the driver-facing form.
func (ic *InspectionRequestController) GetRequestByToken(c *gin.Context) {
	request, err := ic.inspectionService.FindByToken(c.Param("token"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, request)
}

// SubmitInspection takes the multipart form from the public link: the result
// fields plus up to ten photos.
func (ic *InspectionRequestController) SubmitInspection(c *gin.Context) {
	result, err := parseInspectionResult(c)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	photos, err := parsePhotoUploads(c)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	request, err := ic.inspectionService.SubmitInspection(c.Param("token"), result, photos)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Vistoria submetida com sucesso",
		"request": request,
	})
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

func (ic *InspectionRequestController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	request, err := ic.inspectionService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Status da vistoria atualizado com sucesso", request)
}

func (ic *InspectionRequestController) ListRequests(c *gin.Context) {
	requests, err := ic.inspectionService.ListRequests(repositories.InspectionRequestFilters{
		Status:       c.Query("status"),
		TruckID:      c.Query("truck_id"),
		VehicleSetID: c.Query("vehicle_set_id"),
		DriverID:     c.Query("driver_id"),
		Plate:        c.Query("plate"),
		DriverName:   c.Query("driver_name"),
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, requests)
}

func (ic *InspectionRequestController) GetPhotos(c *gin.Context) {
	photos, err := ic.inspectionService.GetPhotos(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, photos)
}

func parseInspectionResult(c *gin.Context) (models.InspectionResult, error) {
	var result models.InspectionResult

	mileage, err := strconv.Atoi(c.PostForm("mileage"))
	if err != nil {
		return result, utils.NewValidationError("Quilometragem inválida")
	}

	fuelLevel, err := strconv.ParseFloat(c.PostForm("fuel_level"), 64)
	if err != nil {
		return result, utils.NewValidationError("Nível de combustível inválido")
	}

	result.Mileage = mileage
	result.FuelLevel = fuelLevel
	result.BrakeCondition = c.PostForm("brake_condition")
	result.GeneralCondition = c.PostForm("general_condition")

	if obs := c.PostForm("observations"); obs != "" {
		result.Observations = &obs
	}

	return result, nil
}

func parsePhotoUploads(c *gin.Context) ([]services.PhotoUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, utils.NewValidationError("Formulário multipart inválido")
	}

	files := form.File["photos"]
	if len(files) > maxPhotoCount {
		return nil, utils.NewValidationError("Máximo de 10 fotos por vistoria")
	}

	uploads := make([]services.PhotoUpload, 0, len(files))
	for _, file := range files {
		if file.Size > maxPhotoSize {
			return nil, utils.NewValidationError("Cada foto deve ter no máximo 5MB")
		}
		if !isImageUpload(file) {
			return nil, utils.NewValidationError("Apenas imagens são permitidas")
		}

		data, err := readUpload(file)
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, services.PhotoUpload{
			Data:         data,
			OriginalName: file.Filename,
		})
	}

	return uploads, nil
}

func isImageUpload(file *multipart.FileHeader) bool {
	return strings.HasPrefix(file.Header.Get("Content-Type"), "image/")
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, utils.NewStorageError("falha ao ler foto enviada", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, utils.NewStorageError("falha ao ler foto enviada", err)
	}
	return data, nil
}
