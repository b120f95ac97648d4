package utils

import (
	"encoding/json"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TypeUrl(src proto.Message) string {
	a, err := anypb.New(src)
	if err != nil {
		logger.Log.Error(err)
		return ""
	}
	return a.GetTypeUrl()
}

func ToAny(msg proto.Message) *anypb.Any {
	data, err := anypb.New(msg)
	if err != nil {
		logger.Log.Error(err)
		return nil
	}
	return data
}

// ToStruct 把带 json tag 的结构体转成 structpb.Struct
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FromStruct ToStruct 的逆操作
func FromStruct(s *structpb.Struct, v any) error {
	data, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
