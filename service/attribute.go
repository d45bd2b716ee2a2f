package service

import (
	"Couture/dao"
	"Couture/models"
	"Couture/types"
	"context"
	"strings"
)

var _ IAttributeService = (*AttributeService)(nil)

type IAttributeService interface {
	List(ctx context.Context) ([]*models.ProductAttribute, error)
	Create(ctx context.Context, req *types.AttributeRequest) (*models.ProductAttribute, error)
}

type AttributeService struct {
	AttributeRepo *dao.Attribute
}

func (s *AttributeService) List(ctx context.Context) ([]*models.ProductAttribute, error) {
	return s.AttributeRepo.List(ctx)
}

func (s *AttributeService) Create(ctx context.Context, req *types.AttributeRequest) (*models.ProductAttribute, error) {
	attrType := strings.TrimSpace(req.Type)
	if attrType == "" {
		attrType = "text"
	}
	attr := &models.ProductAttribute{Name: strings.TrimSpace(req.Name), Type: attrType}
	if err := s.AttributeRepo.Create(ctx, attr); err != nil {
		return nil, dao.Duplicate(err, "Attribute already exists")
	}
	return attr, nil
}
