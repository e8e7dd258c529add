package controllers

import (
	"github.com/gin-gonic/gin"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/services"
	"frotavistoria-api/utils"
)

type TruckController struct {
	truckService *services.TruckService
}

func NewTruckController(truckService *services.TruckService) *TruckController {
	return &TruckController{truckService: truckService}
}

type CreateTruckRequest struct {
	Plate           string  `json:"plate" binding:"required"`
	Chassis         string  `json:"chassis" binding:"required"`
	Model           string  `json:"model" binding:"required"`
	Brand           string  `json:"brand" binding:"required"`
	Year            int     `json:"year" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	VehicleCategory string  `json:"vehicle_category" binding:"required"`
	Photo           *string `json:"photo"`
}

func (tc *TruckController) CreateTruck(c *gin.Context) {
	var req CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	truck, err := tc.truckService.CreateTruck(models.Truck{
		Plate:           req.Plate,
		Chassis:         req.Chassis,
		Model:           req.Model,
		Brand:           req.Brand,
		Year:            req.Year,
		Type:            req.Type,
		VehicleCategory: req.VehicleCategory,
		Photo:           req.Photo,
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendCreated(c, "Caminhão cadastrado com sucesso", truck)
}

func (tc *TruckController) UpdateTruck(c *gin.Context) {
	var patch models.TruckPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	truck, err := tc.truckService.UpdateTruck(c.Param("id"), patch)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Caminhão atualizado com sucesso", truck)
}

func (tc *TruckController) DeleteTruck(c *gin.Context) {
	if err := tc.truckService.DeleteTruck(c.Param("id")); err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Caminhão excluído com sucesso", nil)
}

func (tc *TruckController) GetTruck(c *gin.Context) {
	truck, err := tc.truckService.GetTruck(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, truck)
}

func (tc *TruckController) GetTrucks(c *gin.Context) {
	trucks, err := tc.truckService.SearchTrucks(repositories.TruckFilters{
		Plate:           c.Query("plate"),
		Chassis:         c.Query("chassis"),
		Brand:           c.Query("brand"),
		Model:           c.Query("model"),
		VehicleCategory: c.Query("vehicle_category"),
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, trucks)
}
