package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

var _ catalogv1.CategoryServiceServer = (*GRPCHandler)(nil)

type GRPCHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewGRPCHandler(uc category.UseCase, log logger.ZapLogger) *GRPCHandler {
	return &GRPCHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *GRPCHandler) GetCategoryTree(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.TreeRequest
	if err := catalogv1.Decode(req, &in); err != nil {
		return nil, catalogv1.Status(err)
	}

	tree, err := h.uc.BuildTree(ctx, in.IncludeCounts)
	if err != nil {
		if apperror.HTTPStatus(err) >= 500 {
			h.logger.Error("failed to build category tree", zap.Error(err))
		}
		return nil, catalogv1.Status(err)
	}

	resp, err := catalogv1.Encode(dto.TreeResponse{Data: tree})
	if err != nil {
		h.logger.Error("failed to encode category tree", zap.Error(err))
		return nil, catalogv1.Status(err)
	}
	return resp, nil
}
