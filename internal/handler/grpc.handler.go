package handler

import (
	"context"

	"customer-service/genproto/customerpb"
	"customer-service/internal/domain"
	"customer-service/pkg/xerrors"

	"go.uber.org/zap"
)

type GRPCCustomerHandler struct {
	customerpb.UnimplementedCustomerServiceServer
	svc    AccountService
	logger *zap.Logger
}

func NewGRPCCustomerHandler(svc AccountService, logger *zap.Logger) *GRPCCustomerHandler {
	return &GRPCCustomerHandler{svc: svc, logger: logger}
}

func (h *GRPCCustomerHandler) CreateCustomer(ctx context.Context, req *customerpb.CreateCustomerRequest) (*customerpb.CustomerResponse, error) {
	result, err := h.svc.Create(ctx, &domain.CreateAccountRequest{
		Name:      req.GetName(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		Phone:     req.GetPhone(),
		Address:   req.GetAddress(),
		AvatarURL: req.GetAvatarUrl(),
	})
	if err != nil {
		return nil, h.fail(err)
	}
	return toProto(result), nil
}

func (h *GRPCCustomerHandler) GetCustomers(ctx context.Context, _ *customerpb.GetCustomersRequest) (*customerpb.GetCustomersResponse, error) {
	result, err := h.svc.Get(ctx)
	if err != nil {
		return nil, h.fail(err)
	}

	customers := make([]*customerpb.CustomerResponse, 0, len(result))
	for _, c := range result {
		customers = append(customers, toProto(c))
	}
	return &customerpb.GetCustomersResponse{Customers: customers}, nil
}

func (h *GRPCCustomerHandler) GetCustomerByEmail(ctx context.Context, req *customerpb.GetCustomerByEmailRequest) (*customerpb.CustomerResponse, error) {
	result, err := h.svc.GetByEmail(ctx, req.GetEmail())
	if err != nil {
		return nil, h.fail(err)
	}
	return toProto(result), nil
}

func (h *GRPCCustomerHandler) DeleteCustomer(ctx context.Context, req *customerpb.DeleteCustomerRequest) (*customerpb.DeleteCustomerResponse, error) {
	if _, err := h.svc.Delete(ctx, req.GetEmail()); err != nil {
		return nil, h.fail(err)
	}
	return &customerpb.DeleteCustomerResponse{Message: "Customer deleted successfully"}, nil
}

func (h *GRPCCustomerHandler) GetCustomerCredentials(ctx context.Context, req *customerpb.GetCustomerCredentialsRequest) (*customerpb.CustomerCredentialsResponse, error) {
	creds, err := h.svc.Credentials(ctx, req.GetEmail())
	if err != nil {
		return nil, h.fail(err)
	}
	return &customerpb.CustomerCredentialsResponse{
		Email:        creds.Email,
		PasswordHash: creds.PasswordHash,
		Role:         string(creds.Role),
		Status:       string(creds.Status),
		IsDeleted:    creds.IsDeleted,
	}, nil
}

func (h *GRPCCustomerHandler) fail(err error) error {
	e := xerrors.Normalize(err)
	switch e.Kind {
	case xerrors.KindServiceFailure, xerrors.KindWriteFailed, xerrors.KindUnavailable, xerrors.KindUnknown:
		h.logger.Error("rpc failed", zap.String("kind", string(e.Kind)), zap.Error(err))
	}
	return xerrors.GRPCStatus(e).Err()
}

func toProto(a *domain.AccountResponse) *customerpb.CustomerResponse {
	return &customerpb.CustomerResponse{
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(a.Role),
		Status:    string(a.Status),
		Phone:     a.Phone,
		Address:   a.Address,
		AvatarUrl: a.AvatarURL,
		IsDeleted: a.IsDeleted,
	}
}
