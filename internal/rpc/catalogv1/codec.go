package catalogv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
)

// Decode fills dst from a Struct request through its JSON form.
func Decode(req *structpb.Struct, dst any) error {
	if req == nil {
		return nil
	}
	data, err := protojson.Marshal(req)
	if err != nil {
		return apperror.ValidationWrap("malformed request", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return apperror.ValidationWrap("malformed request", err)
	}
	return nil
}

// Encode converts any JSON-encodable object into a Struct response.
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return structpb.NewStruct(fields)
}

// Status maps a catalog error onto a gRPC status, hiding server-side details.
func Status(err error) error {
	if err == nil {
		return nil
	}
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return status.Error(codes.InvalidArgument, apperror.PublicMessage(err))
	case apperror.KindNotFound:
		return status.Error(codes.NotFound, apperror.PublicMessage(err))
	default:
		return status.Error(codes.Internal, apperror.PublicMessage(err))
	}
}
