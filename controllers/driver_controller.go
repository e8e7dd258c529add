package controllers

import (
	"github.com/gin-gonic/gin"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/services"
	"frotavistoria-api/utils"
)

type DriverController struct {
	driverService *services.DriverService
}

func NewDriverController(driverService *services.DriverService) *DriverController {
	return &DriverController{driverService: driverService}
}

type CreateDriverRequest struct {
	Name  string  `json:"name" binding:"required"`
	CPF   string  `json:"cpf" binding:"required"`
	Email *string `json:"email"`
	Photo *string `json:"photo"`
}

func (dc *DriverController) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	driver, err := dc.driverService.CreateDriver(models.Driver{
		Name:  req.Name,
		CPF:   req.CPF,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendCreated(c, "Motorista cadastrado com sucesso", driver)
}

func (dc *DriverController) UpdateDriver(c *gin.Context) {
	var patch models.DriverPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	driver, err := dc.driverService.UpdateDriver(c.Param("id"), patch)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Motorista atualizado com sucesso", driver)
}

func (dc *DriverController) DeleteDriver(c *gin.Context) {
	if err := dc.driverService.DeleteDriver(c.Param("id")); err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, "Motorista excluído com sucesso", nil)
}

func (dc *DriverController) GetDriver(c *gin.Context) {
	driver, err := dc.driverService.GetDriver(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, driver)
}

func (dc *DriverController) GetDrivers(c *gin.Context) {
	drivers, err := dc.driverService.SearchDrivers(repositories.DriverFilters{
		Name: c.Query("name"),
		CPF:  c.Query("cpf"),
	})
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(200, drivers)
}
