package service

import (
	"fmt"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"google.golang.org/protobuf/types/known/structpb"
)

func stringField(req *structpb.Struct, key string) (string, bool) {
	v, ok := req.GetFields()[key]
	if !ok {
		return "", false
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false
	}
	return s.StringValue, true
}

func boolField(req *structpb.Struct, key string, def bool) bool {
	v, ok := req.GetFields()[key]
	if !ok {
		return def
	}
	return v.GetBoolValue()
}

func windField(req *structpb.Struct, key string) (mahjong.Wind, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return mahjong.WindEast, nil
	}
	n := v.GetNumberValue()
	if n != float64(int(n)) || n < 0 || n >= float64(mahjong.WindEnd) {
		return mahjong.WindEast, fmt.Errorf("%s: invalid wind %v", key, n)
	}
	return mahjong.Wind(n), nil
}

// tilesField 解析字符串列表, 每项为一组牌表示法
func tilesField(req *structpb.Struct, key string) ([]mahjong.Tile, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, nil
	}
	var tiles []mahjong.Tile
	for _, item := range v.GetListValue().GetValues() {
		ts, err := mahjong.ParseTiles(item.GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		tiles = append(tiles, ts...)
	}
	return tiles, nil
}

func decodeHand(req *structpb.Struct) (*mahjong.Hand, error) {
	notation, ok := stringField(req, "hand")
	if !ok {
		return nil, fmt.Errorf("missing hand")
	}
	h, err := mahjong.ParseHand(notation)
	if err != nil {
		return nil, err
	}
	h.Tsumo = boolField(req, "tsumo", h.Tsumo)
	return h, nil
}

// decodeContext 场况字段, 宝牌以指示牌给出
func decodeContext(req *structpb.Struct, rule *mahjong.Rule) (*mahjong.ScoringContext, error) {
	round, err := windField(req, "round_wind")
	if err != nil {
		return nil, err
	}
	seat, err := windField(req, "seat_wind")
	if err != nil {
		return nil, err
	}
	riichiName, _ := stringField(req, "riichi")
	riichi, err := mahjong.ParseRiichiState(riichiName)
	if err != nil {
		return nil, err
	}

	indicators, err := tilesField(req, "dora_indicators")
	if err != nil {
		return nil, err
	}
	dora, err := mahjong.DoraFromIndicators(indicators)
	if err != nil {
		return nil, err
	}
	indicators, err = tilesField(req, "ura_indicators")
	if err != nil {
		return nil, err
	}
	ura, err := mahjong.DoraFromIndicators(indicators)
	if err != nil {
		return nil, err
	}

	return &mahjong.ScoringContext{
		RoundWind: round,
		SeatWind:  seat,
		Riichi:    riichi,
		Ippatsu:   boolField(req, "ippatsu", false),
		Rinshan:   boolField(req, "rinshan", false),
		Chankan:   boolField(req, "chankan", false),
		Haitei:    boolField(req, "haitei", false),
		Houtei:    boolField(req, "houtei", false),
		Blessing:  boolField(req, "blessing", false),
		Dora:      dora,
		UraDora:   ura,
		Rule:      rule,
	}, nil
}

type evaluateAck struct {
	mahjong.Summary
	Wait   string   `json:"wait"`
	Melds  []string `json:"melds"`
	Head   string   `json:"head,omitempty"`
	Finish string   `json:"finish"`
	Tsumo  bool     `json:"tsumo"`
}

func newEvaluateAck(r *mahjong.Result) *evaluateAck {
	ack := &evaluateAck{
		Summary: r.Point.Summary(),
		Wait:    r.Hand.Wait.String(),
		Finish:  r.Hand.Finish.String(),
		Tsumo:   r.Hand.Tsumo,
	}
	for _, m := range r.Hand.Melds {
		ack.Melds = append(ack.Melds, mahjong.TilesString(m.Tiles()))
	}
	if r.Hand.Head != mahjong.TileNull {
		ack.Head = r.Hand.Head.String()
	}
	return ack
}

type shantenAck struct {
	Shanten int    `json:"shanten"`
	Kind    string `json:"kind"`
}

type waitsAck struct {
	Waits []string `json:"waits"`
}
