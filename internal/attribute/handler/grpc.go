package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

var _ catalogv1.AttributeServiceServer = (*GRPCHandler)(nil)

type GRPCHandler struct {
	uc     attribute.UseCase
	logger logger.ZapLogger
}

func NewGRPCHandler(uc attribute.UseCase, log logger.ZapLogger) *GRPCHandler {
	return &GRPCHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *GRPCHandler) FindAttributes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var filters dto.AttributeFilters
	if err := catalogv1.Decode(req, &filters); err != nil {
		return nil, catalogv1.Status(err)
	}

	result, err := h.uc.FindAttributes(ctx, filters)
	if err != nil {
		if apperror.HTTPStatus(err) >= 500 {
			h.logger.Error("failed to find attributes", zap.Error(err))
		}
		return nil, catalogv1.Status(err)
	}

	resp, err := catalogv1.Encode(result)
	if err != nil {
		h.logger.Error("failed to encode attributes", zap.Error(err))
		return nil, catalogv1.Status(err)
	}
	return resp, nil
}
