package service

import (
	"context"
	"time"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
)

type RepairService interface {
	Create(ctx context.Context, req dto.CreateRepairOrderRequest) (*dto.RepairOrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RepairOrderResponse, error)
	List(ctx context.Context, filter dto.RepairFilter) (*dto.RepairListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRepairOrderRequest) (*dto.RepairOrderResponse, error)
	// UpdateStatus advances the order through the status machine; invalid
	// transitions are rejected.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.RepairOrderResponse, error)
}

type repairService struct {
	repo         repository.RepairOrderRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

func NewRepairService(repo repository.RepairOrderRepository, customerRepo repository.CustomerRepository, userRepo repository.UserRepository) RepairService {
	return &repairService{repo: repo, customerRepo: customerRepo, userRepo: userRepo}
}

func (s *repairService) Create(ctx context.Context, req dto.CreateRepairOrderRequest) (*dto.RepairOrderResponse, error) {
	cid, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, apperror.Newf(apperror.InvalidInput, "invalid customer_id: %s", req.CustomerID)
	}
	customer, err := s.customerRepo.FindByID(ctx, cid)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "customer %s not found", cid)
	}

	order := &model.RepairOrder{
		CustomerID:    customer.ID,
		Device:        req.Device,
		SerialNumber:  req.SerialNumber,
		ReportedIssue: req.ReportedIssue,
		Status:        model.RepairReceived,
	}

	if req.TechnicianID != nil {
		tid, err := uuid.Parse(*req.TechnicianID)
		if err != nil {
			return nil, apperror.Newf(apperror.InvalidInput, "invalid technician_id: %s", *req.TechnicianID)
		}
		tech, err := s.userRepo.FindByID(ctx, tid)
		if err != nil {
			return nil, apperror.Newf(apperror.NotFound, "technician %s not found", tid)
		}
		order.TechnicianID = &tech.ID
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.Customer = customer
	return repairToResponse(order), nil
}

func (s *repairService) Get(ctx context.Context, id uuid.UUID) (*dto.RepairOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "repair order %s not found", id)
	}
	return repairToResponse(order), nil
}

func (s *repairService) List(ctx context.Context, filter dto.RepairFilter) (*dto.RepairListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *repairToResponse(&orders[i]))
	}
	return &dto.RepairListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *repairService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRepairOrderRequest) (*dto.RepairOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "repair order %s not found", id)
	}

	if req.Diagnosis != nil {
		order.Diagnosis = req.Diagnosis
	}
	if req.EstimatedCost != nil {
		order.EstimatedCost = req.EstimatedCost
	}
	if req.TechnicianID != nil {
		tid, err := uuid.Parse(*req.TechnicianID)
		if err != nil {
			return nil, apperror.Newf(apperror.InvalidInput, "invalid technician_id: %s", *req.TechnicianID)
		}
		tech, err := s.userRepo.FindByID(ctx, tid)
		if err != nil {
			return nil, apperror.Newf(apperror.NotFound, "technician %s not found", tid)
		}
		order.TechnicianID = &tech.ID
		order.Technician = tech
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return repairToResponse(order), nil
}

func (s *repairService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.RepairOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "repair order %s not found", id)
	}
	if !model.CanTransition(order.Status, status) {
		return nil, apperror.Newf(apperror.InvalidInput, "cannot move repair order from %s to %s", order.Status, status)
	}
	order.Status = status
	if status == model.RepairDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return repairToResponse(order), nil
}

func repairToResponse(o *model.RepairOrder) *dto.RepairOrderResponse {
	resp := &dto.RepairOrderResponse{
		ID:            o.ID.String(),
		CustomerID:    o.CustomerID.String(),
		Device:        o.Device,
		SerialNumber:  o.SerialNumber,
		ReportedIssue: o.ReportedIssue,
		Diagnosis:     o.Diagnosis,
		Status:        o.Status,
		EstimatedCost: o.EstimatedCost,
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if o.Customer != nil {
		resp.CustomerName = o.Customer.Name
	}
	if o.TechnicianID != nil {
		tid := o.TechnicianID.String()
		resp.TechnicianID = &tid
	}
	if o.Technician != nil {
		resp.TechnicianName = &o.Technician.Name
	}
	if o.DeliveredAt != nil {
		d := o.DeliveredAt.Format("2006-01-02T15:04:05Z")
		resp.DeliveredAt = &d
	}
	return resp
}
