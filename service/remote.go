package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type handler func(*Engine, context.Context, *structpb.Struct) (*structpb.Struct, error)

// Engine 算番服务, 无状态, 可并发调用
type Engine struct {
	component.Base
	rule     *mahjong.Rule
	handlers map[string]handler
}

// NewEngine rule 为 nil 时使用默认规则
func NewEngine(rule *mahjong.Rule) *Engine {
	if rule == nil {
		rule = mahjong.DefaultRule()
	}
	return &Engine{
		rule:     rule,
		handlers: make(map[string]handler),
	}
}

// Init 组件初始化
func (e *Engine) Init() {
	e.handlers["evaluate"] = (*Engine).Evaluate
	e.handlers["shanten"] = (*Engine).Shanten
	e.handlers["waits"] = (*Engine).Waits
}

func recoverPanic(err *error) {
	if r := recover(); r != nil {
		logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		*err = fmt.Errorf("internal error: %v", r)
	}
}

// Message 按 op 字段分发
func (e *Engine) Message(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	op, _ := stringField(req, "op")
	h, ok := e.handlers[op]
	if !ok {
		return nil, fmt.Errorf("invalid op %q", op)
	}
	return h(e, ctx, req)
}

// Dispatch 处理 anypb 包装的请求, 内容须为 structpb.Struct
func (e *Engine) Dispatch(ctx context.Context, req *anypb.Any) (*anypb.Any, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if req.GetTypeUrl() != utils.TypeUrl(&structpb.Struct{}) {
		return nil, fmt.Errorf("invalid request type %s", req.GetTypeUrl())
	}
	msg := &structpb.Struct{}
	if err := req.UnmarshalTo(msg); err != nil {
		return nil, err
	}
	rsp, err := e.Message(ctx, msg)
	if err != nil {
		return nil, err
	}
	ack := utils.ToAny(rsp)
	if ack == nil {
		return nil, errors.New("pack ack failed")
	}
	return ack, nil
}

// Evaluate 和了手牌的最高得点
func (e *Engine) Evaluate(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	logger.Log.Infof("evaluate %v", req.AsMap())

	h, err := decodeHand(req)
	if err != nil {
		return nil, err
	}
	sc, err := decodeContext(req, e.rule)
	if err != nil {
		return nil, err
	}
	result, err := mahjong.EvaluateHand(h, sc)
	if err != nil {
		return nil, err
	}
	return utils.ToStruct(newEvaluateAck(result))
}

// Shanten 13 张手牌的向听数
func (e *Engine) Shanten(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	logger.Log.Infof("shanten %v", req.AsMap())

	h, err := decodeHand(req)
	if err != nil {
		return nil, err
	}
	n, kind, err := mahjong.Shanten(h)
	if err != nil {
		return nil, err
	}
	return utils.ToStruct(&shantenAck{Shanten: n, Kind: kind.String()})
}

// Waits 13 张手牌的和了牌
func (e *Engine) Waits(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	logger.Log.Infof("waits %v", req.AsMap())

	h, err := decodeHand(req)
	if err != nil {
		return nil, err
	}
	waits, err := mahjong.Waits(h)
	if err != nil {
		return nil, err
	}
	ack := &waitsAck{Waits: make([]string, 0, len(waits))}
	for _, t := range waits {
		ack.Waits = append(ack.Waits, t.String())
	}
	return utils.ToStruct(ack)
}
