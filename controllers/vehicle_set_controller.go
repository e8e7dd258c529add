package controllers

import (
	"github.com/gin-gonic/gin"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/services"
	"frotavistoria-api/utils"
)

type VehicleSetController struct {
	vehicleSetService *services.VehicleSetService
}

func NewVehicleSetController(vehicleSetService *services.VehicleSetService) *VehicleSetController {
	return &VehicleSetController{vehicleSetService: vehicleSetService}
}

type CreateVehicleSetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	CavaloID    *string `json:"cavalo_id"`
	CarretaID   *string `json:"carreta_id"`
	DollyID     *string `json:"dolly_id"`
	Description *string `json:"description"`
}

func (vc *VehicleSetController) CreateVehicleSet(c *gin.Context) {
	var req CreateVehicleSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	set, err := vc.vehicleSetService.CreateVehicleSet(models.VehicleSet{
		Name:        req.Name,
		Type:        req.Type,
		CavaloID:    req.CavaloID,
		CarretaID:   req.CarretaID,
		DollyID:     req.DollyID,
		Description: req.Description,
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendCreated(c, "Conjunto de veículos criado com sucesso", set)
}

func (vc *VehicleSetController) UpdateVehicleSet(c *gin.Context) {
	var patch models.VehicleSetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	set, err := vc.vehicleSetService.UpdateVehicleSet(c.Param("id"), patch)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Conjunto de veículos atualizado com sucesso", set)
}

func (vc *VehicleSetController) DeleteVehicleSet(c *gin.Context) {
	if err := vc.vehicleSetService.DeleteVehicleSet(c.Param("id")); err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Conjunto de veículos excluído com sucesso", nil)
}

func (vc *VehicleSetController) GetVehicleSet(c *gin.Context) {
	set, err := vc.vehicleSetService.GetVehicleSetWithDetails(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, set)
}

func (vc *VehicleSetController) GetVehicleSets(c *gin.Context) {
	sets, err := vc.vehicleSetService.SearchVehicleSets(repositories.VehicleSetFilters{
		Name: c.Query("name"),
		Type: c.Query("type"),
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, sets)
}

func (vc *VehicleSetController) GetAvailableCavalos(c *gin.Context) {
	vc.sendAvailable(c, models.CategoryCavalo)
}

func (vc *VehicleSetController) GetAvailableCarretas(c *gin.Context) {
	vc.sendAvailable(c, models.CategoryCarreta)
}

func (vc *VehicleSetController) GetAvailableDollys(c *gin.Context) {
	vc.sendAvailable(c, models.CategoryDolly)
}

func (vc *VehicleSetController) sendAvailable(c *gin.Context, category string) {
	vehicles, err := vc.vehicleSetService.GetAvailableVehiclesByCategory(category, c.Query("excludeSetId"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, vehicles)
}
