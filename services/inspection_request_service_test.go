package services

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/utils"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func validResult() models.InspectionResult {
	return models.InspectionResult{
		Mileage:          152000,
		FuelLevel:        75.5,
		BrakeCondition:   "bom",
		GeneralCondition: "regular",
		Observations:     strPtr("Pneu dianteiro gasto"),
	}
}

func TestCreateRequestForSingleVehicle(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	request, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truck.ID))
	require.NoError(t, err)

	assert.Equal(t, models.StatusAwaitingSubmission, request.Status)
	assert.Regexp(t, tokenPattern, request.Token)
	assert.Nil(t, request.InspectionDate)
	assert.Nil(t, request.Mileage)

	found, err := svc.FindByToken(request.Token)
	require.NoError(t, err)
	assert.Equal(t, request.ID, found.ID)
	require.NotNil(t, found.Truck)
	assert.Equal(t, truck.Plate, found.Truck.Plate)
	require.NotNil(t, found.Driver)
	assert.Equal(t, "João da Silva", found.Driver.Name)
}

func TestCreateRequestForVehicleSet(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "Maria Souza")
	cavalo := createTestTruck(t, db, models.CategoryCavalo)
	carreta := createTestTruck(t, db, models.CategoryCarreta)

	set, err := newVehicleSetService(db).CreateVehicleSet(models.VehicleSet{
		Name:      "Conjunto Norte",
		Type:      models.SetTypeConjugado,
		CavaloID:  &cavalo.ID,
		CarretaID: &carreta.ID,
	})
	require.NoError(t, err)

	request, err := svc.CreateRequest(driver.ID, models.NewSetTarget(set.ID))
	require.NoError(t, err)
	assert.Nil(t, request.TruckID)
	require.NotNil(t, request.VehicleSetID)
	assert.Equal(t, set.ID, *request.VehicleSetID)

	found, err := svc.FindByToken(request.Token)
	require.NoError(t, err)
	require.NotNil(t, found.VehicleSet)
	require.NotNil(t, found.VehicleSet.Cavalo)
	assert.Equal(t, cavalo.Plate, found.VehicleSet.DisplayPlate())
}

func TestCreateRequestRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	_, err := svc.CreateRequest("does-not-exist", models.NewSingleTarget(truck.ID))
	assert.True(t, utils.IsNotFoundError(err))

	_, err = svc.CreateRequest(driver.ID, models.NewSingleTarget("does-not-exist"))
	assert.True(t, utils.IsNotFoundError(err))

	_, err = svc.CreateRequest(driver.ID, models.VehicleTarget{})
	assert.True(t, utils.IsValidationError(err))
}

func TestFindByTokenUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	_, err := svc.FindByToken(strings.Repeat("0", 64))
	assert.True(t, utils.IsNotFoundError(err))
}

func TestSubmitInspection(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	request, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truck.ID))
	require.NoError(t, err)

	photos := []PhotoUpload{{Data: []byte("fake-jpeg"), OriginalName: "frente.jpg"}}
	submitted, err := svc.SubmitInspection(request.Token, validResult(), photos)
	require.NoError(t, err)

	assert.Equal(t, models.StatusAwaitingReview, submitted.Status)
	require.NotNil(t, submitted.InspectionDate)
	require.NotNil(t, submitted.Mileage)
	assert.Equal(t, 152000, *submitted.Mileage)
	require.NotNil(t, submitted.FuelLevel)
	assert.Equal(t, 75.5, *submitted.FuelLevel)
	require.NotNil(t, submitted.BrakeCondition)
	assert.Equal(t, "bom", *submitted.BrakeCondition)

	require.Len(t, submitted.Photos, 1)
	path := submitted.Photos[0].PhotoPath
	assert.True(t, strings.HasPrefix(path, "/api/uploads/inspections/"+truck.Plate+"/"))

	rel := strings.TrimPrefix(path, "/api/uploads/")
	_, err = os.Stat(filepath.Join(svc.photoService.BaseDir(), filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestSubmitInspectionTwice(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	request, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truck.ID))
	require.NoError(t, err)

	_, err = svc.SubmitInspection(request.Token, validResult(), nil)
	require.NoError(t, err)

	second := validResult()
	second.Mileage = 999999
	_, err = svc.SubmitInspection(request.Token, second, nil)
	assert.True(t, utils.IsConflictError(err))
	assert.EqualError(t, err, "Esta vistoria já foi preenchida")

	// The first submission stays untouched.
	found, err := svc.FindByToken(request.Token)
	require.NoError(t, err)
	require.NotNil(t, found.Mileage)
	assert.Equal(t, 152000, *found.Mileage)
	assert.Equal(t, models.StatusAwaitingReview, found.Status)
}

func TestSubmitInspectionRejectsInvalidResult(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	request, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truck.ID))
	require.NoError(t, err)

	bad := validResult()
	bad.FuelLevel = 150
	_, err = svc.SubmitInspection(request.Token, bad, nil)
	assert.True(t, utils.IsValidationError(err))

	found, err := svc.FindByToken(request.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAwaitingSubmission, found.Status)
	assert.Nil(t, found.InspectionDate)
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	request, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truck.ID))
	require.NoError(t, err)

	// Approval before the driver submits is refused.
	_, err = svc.UpdateStatus(request.ID, models.StatusApproved)
	assert.True(t, utils.IsConflictError(err))
	assert.EqualError(t, err, "Esta vistoria ainda não foi preenchida pelo motorista")

	_, err = svc.SubmitInspection(request.Token, validResult(), nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(request.ID, models.StatusAwaitingReview)
	assert.True(t, utils.IsValidationError(err))

	approved, err := svc.UpdateStatus(request.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	// Terminal states never change again.
	_, err = svc.UpdateStatus(request.ID, models.StatusRejected)
	assert.True(t, utils.IsConflictError(err))
	assert.EqualError(t, err, "Esta vistoria já foi finalizada")
}

func TestListRequestsExcludesUnsubmitted(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truckA := createTestTruck(t, db, models.CategoryCavalo)
	truckB := createTestTruck(t, db, models.CategoryCavalo)

	submitted, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truckA.ID))
	require.NoError(t, err)
	_, err = svc.CreateRequest(driver.ID, models.NewSingleTarget(truckB.ID))
	require.NoError(t, err)

	_, err = svc.SubmitInspection(submitted.Token, validResult(), nil)
	require.NoError(t, err)

	requests, err := svc.ListRequests(repositories.InspectionRequestFilters{})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, submitted.ID, requests[0].ID)
}

func TestListRequestsPlateFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truckA := createTestTruck(t, db, models.CategoryCavalo)
	truckB := createTestTruck(t, db, models.CategoryCavalo)

	requestA, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truckA.ID))
	require.NoError(t, err)
	requestB, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truckB.ID))
	require.NoError(t, err)

	_, err = svc.SubmitInspection(requestA.Token, validResult(), nil)
	require.NoError(t, err)
	_, err = svc.SubmitInspection(requestB.Token, validResult(), nil)
	require.NoError(t, err)

	requests, err := svc.ListRequests(repositories.InspectionRequestFilters{Plate: truckA.Plate})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, requestA.ID, requests[0].ID)

	requests, err = svc.ListRequests(repositories.InspectionRequestFilters{Status: models.StatusAwaitingReview})
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestGetPhotos(t *testing.T) {
	db := setupTestDB(t)
	svc := newInspectionService(t, db)

	driver := createTestDriver(t, db, "João da Silva")
	truck := createTestTruck(t, db, models.CategoryCavalo)

	request, err := svc.CreateRequest(driver.ID, models.NewSingleTarget(truck.ID))
	require.NoError(t, err)

	photos := []PhotoUpload{
		{Data: []byte("a"), OriginalName: "frente.jpg"},
		{Data: []byte("b"), OriginalName: "lateral.png"},
	}
	_, err = svc.SubmitInspection(request.Token, validResult(), photos)
	require.NoError(t, err)

	paths, err := svc.GetPhotos(request.ID)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	_, err = svc.GetPhotos("does-not-exist")
	assert.True(t, utils.IsNotFoundError(err))
}
