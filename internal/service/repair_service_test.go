package service_test

import (
	"context"
	"testing"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRepairSvc() (service.RepairService, *stubRepairRepo, *stubCustomerRepo, *stubUserRepo) {
	repairRepo := newStubRepairRepo()
	customerRepo := newStubCustomerRepo()
	userRepo := newStubUserRepo()
	return service.NewRepairService(repairRepo, customerRepo, userRepo), repairRepo, customerRepo, userRepo
}

func openOrder(t *testing.T, svc service.RepairService, customerRepo *stubCustomerRepo) *dto.RepairOrderResponse {
	t.Helper()
	customer := seedCustomer(customerRepo, "Luis Paredes", "45781236")
	resp, err := svc.Create(context.Background(), dto.CreateRepairOrderRequest{
		CustomerID:    customer.ID.String(),
		Device:        "iPhone 12",
		ReportedIssue: "screen cracked after a fall",
	})
	require.NoError(t, err)
	require.Equal(t, model.RepairReceived, resp.Status)
	return resp
}

func TestCreateRepairOrder_CustomerNotFound(t *testing.T) {
	svc, _, _, _ := buildRepairSvc()

	_, err := svc.Create(context.Background(), dto.CreateRepairOrderRequest{
		CustomerID:    uuid.New().String(),
		Device:        "iPhone 12",
		ReportedIssue: "does not power on",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestRepairOrder_FullLifecycle(t *testing.T) {
	svc, repairRepo, customerRepo, _ := buildRepairSvc()
	order := openOrder(t, svc, customerRepo)
	id := uuid.MustParse(order.ID)

	for _, status := range []string{
		model.RepairDiagnosed,
		model.RepairInRepair,
		model.RepairReady,
		model.RepairDelivered,
	} {
		resp, err := svc.UpdateStatus(context.Background(), id, status)
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
	}

	stored, _ := repairRepo.FindByID(context.Background(), id)
	require.NotNil(t, stored.DeliveredAt)
}

func TestRepairOrder_SkippingStatesRejected(t *testing.T) {
	svc, _, customerRepo, _ := buildRepairSvc()
	order := openOrder(t, svc, customerRepo)

	// RECEIVED → READY skips two states
	_, err := svc.UpdateStatus(context.Background(), uuid.MustParse(order.ID), model.RepairReady)
	require.Error(t, err)
	assert.Equal(t, apperror.InvalidInput, apperror.KindOf(err))
}

func TestRepairOrder_CancelFromNonTerminal(t *testing.T) {
	svc, _, customerRepo, _ := buildRepairSvc()
	order := openOrder(t, svc, customerRepo)
	id := uuid.MustParse(order.ID)

	_, err := svc.UpdateStatus(context.Background(), id, model.RepairDiagnosed)
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(context.Background(), id, model.RepairCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.RepairCancelled, resp.Status)

	// Terminal: nothing moves a cancelled order
	_, err = svc.UpdateStatus(context.Background(), id, model.RepairInRepair)
	require.Error(t, err)
}

func TestRepairOrder_CancelAfterDeliveryRejected(t *testing.T) {
	svc, _, customerRepo, _ := buildRepairSvc()
	order := openOrder(t, svc, customerRepo)
	id := uuid.MustParse(order.ID)

	for _, status := range []string{model.RepairDiagnosed, model.RepairInRepair, model.RepairReady, model.RepairDelivered} {
		_, err := svc.UpdateStatus(context.Background(), id, status)
		require.NoError(t, err)
	}

	_, err := svc.UpdateStatus(context.Background(), id, model.RepairCancelled)
	require.Error(t, err)
	assert.Equal(t, apperror.InvalidInput, apperror.KindOf(err))
}

func TestUpdateRepairOrder_AssignTechnician(t *testing.T) {
	svc, _, customerRepo, userRepo := buildRepairSvc()
	order := openOrder(t, svc, customerRepo)
	tech := seedUser(userRepo, "Jorge Mamani", model.RoleTechnician)

	tid := tech.ID.String()
	cost := decimal.NewFromFloat(85.00)
	diagnosis := "display assembly needs replacement"
	resp, err := svc.Update(context.Background(), uuid.MustParse(order.ID), dto.UpdateRepairOrderRequest{
		Diagnosis:     &diagnosis,
		TechnicianID:  &tid,
		EstimatedCost: &cost,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.TechnicianID)
	assert.Equal(t, tid, *resp.TechnicianID)
	require.NotNil(t, resp.TechnicianName)
	assert.Equal(t, "Jorge Mamani", *resp.TechnicianName)
	require.NotNil(t, resp.EstimatedCost)
	assert.True(t, cost.Equal(*resp.EstimatedCost))
}

func TestUpdateRepairOrder_UnknownTechnician(t *testing.T) {
	svc, _, customerRepo, _ := buildRepairSvc()
	order := openOrder(t, svc, customerRepo)

	ghost := uuid.New().String()
	_, err := svc.Update(context.Background(), uuid.MustParse(order.ID), dto.UpdateRepairOrderRequest{
		TechnicianID: &ghost,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}
