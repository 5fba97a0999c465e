package service_test

import (
	"context"
	"testing"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_DuplicateDocument(t *testing.T) {
	customerRepo := newStubCustomerRepo()
	svc := service.NewCustomerService(customerRepo)
	seedCustomer(customerRepo, "Luis Paredes", "45781236")

	_, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:       "Luis P. (duplicate)",
		DocumentID: "45781236",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.Conflict, apperror.KindOf(err))
}

func TestCustomer_DeactivateKeepsRecord(t *testing.T) {
	customerRepo := newStubCustomerRepo()
	svc := service.NewCustomerService(customerRepo)
	c := seedCustomer(customerRepo, "Maria Quispe", "72315468")

	require.NoError(t, svc.Deactivate(context.Background(), c.ID))

	// Soft delete: the row stays for sale/repair history
	got, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUpdateCustomer_PartialPatch(t *testing.T) {
	customerRepo := newStubCustomerRepo()
	svc := service.NewCustomerService(customerRepo)
	c := seedCustomer(customerRepo, "Maria Quispe", "72315468")

	phone := "+51 912345678"
	resp, err := svc.Update(context.Background(), c.ID, dto.UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, phone, *resp.Phone)
	assert.Equal(t, "Maria Quispe", resp.Name)
	assert.Equal(t, "72315468", resp.DocumentID)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := service.NewCustomerService(newStubCustomerRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}
