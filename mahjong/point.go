package mahjong

import (
	"cmp"
)

// 满贯以上的档位
type Limit int

const (
	LimitNone         Limit = iota
	LimitMangan             // 满贯
	LimitHaneman            // 跳满
	LimitBaiman             // 倍满
	LimitSanbaiman          // 三倍满
	LimitKazoeYakuman       // 累计役满
	LimitYakuman            // 役满
)

var limitNames = []string{"", "満貫", "跳満", "倍満", "三倍満", "数え役満", "役満"}

func (l Limit) String() string {
	if l < 0 || int(l) >= len(limitNames) {
		return ""
	}
	return limitNames[l]
}

const (
	ManganBasePoint  = 2000
	YakumanBasePoint = 8000
)

// 按番数由高到低匹配
var limitBands = []struct {
	minFan int
	limit  Limit
	base   int
}{
	{13, LimitKazoeYakuman, 8000},
	{11, LimitSanbaiman, 6000},
	{8, LimitBaiman, 4000},
	{6, LimitHaneman, 3000},
	{5, LimitMangan, 2000},
}

func (l Limit) basePoint() int {
	for _, b := range limitBands {
		if b.limit == l {
			return b.base
		}
	}
	return 0
}

// Point 一种拆解的得点
type Point struct {
	YakumanCount int
	BasePoint    int
	Fan          int
	Fu           int
	Dora         int // 已计入 Fan
	Yaku         YakuSet
	Yakuman      YakumanSet
	Concealed    bool
	Limit        Limit
}

// HasYaku 至少有一个役 (宝牌不算)
func (p Point) HasYaku() bool {
	return p.YakumanCount > 0 || p.Yaku != 0
}

// Compare 依次比较役满倍数, 基本点, 番, 符, 役
func Compare(a, b Point) int {
	return cmp.Or(
		cmp.Compare(a.YakumanCount, b.YakumanCount),
		cmp.Compare(a.BasePoint, b.BasePoint),
		cmp.Compare(a.Fan, b.Fan),
		cmp.Compare(a.Fu, b.Fu),
		cmp.Compare(a.Yaku, b.Yaku),
		cmp.Compare(a.Yakuman, b.Yakuman),
	)
}

func (p Point) Less(o Point) bool {
	return Compare(p, o) < 0
}

func basePoint(fan, fu int) int {
	if fan >= 5 {
		return ManganBasePoint
	}
	return min(fu<<(fan+2), ManganBasePoint)
}

// limitFor 番符对应的档位
func limitFor(fan, fu int, rule *Rule) Limit {
	for _, b := range limitBands {
		if fan < b.minFan {
			continue
		}
		if b.limit == LimitKazoeYakuman && !rule.KazoeYakuman {
			return LimitSanbaiman
		}
		return b.limit
	}
	if rule.KiriageMangan && ((fan == 4 && fu == 30) || (fan == 3 && fu == 60)) {
		return LimitMangan
	}
	return LimitNone
}

// PointFromFanFu 仅由番符计算, 用于查表
func PointFromFanFu(fan, fu int, rule *Rule) Point {
	if rule == nil {
		rule = DefaultRule()
	}
	p := Point{Fan: fan, Fu: fu}
	p.settle(rule)
	return p
}

// settle 由番符定基本点与档位
func (p *Point) settle(rule *Rule) {
	p.BasePoint = basePoint(p.Fan, p.Fu)
	p.Limit = limitFor(p.Fan, p.Fu, rule)
	if p.Limit == LimitNone && p.BasePoint >= ManganBasePoint {
		p.Limit = LimitMangan
	}
	if p.Limit == LimitMangan {
		p.BasePoint = ManganBasePoint
	}
}

// Payment 各种和了方式的支付
type Payment struct {
	DealerTsumo          int `json:"dealer_tsumo"`            // 亲自摸, 每家
	DealerRon            int `json:"dealer_ron"`              // 亲荣和
	NonDealerTsumoChild  int `json:"non_dealer_tsumo_child"`  // 子自摸, 子家支付
	NonDealerTsumoDealer int `json:"non_dealer_tsumo_dealer"` // 子自摸, 亲家支付
	NonDealerRon         int `json:"non_dealer_ron"`          // 子荣和
}

// Total 和了者所得
func (p Payment) Total(dealer, tsumo bool) int {
	switch {
	case dealer && tsumo:
		return p.DealerTsumo * 3
	case dealer:
		return p.DealerRon
	case tsumo:
		return p.NonDealerTsumoChild*2 + p.NonDealerTsumoDealer
	default:
		return p.NonDealerRon
	}
}

func roundUp100(x int) int {
	return (x + 99) / 100 * 100
}

// payBase 支付计算用的基本点
func (p Point) payBase() int {
	switch {
	case p.YakumanCount > 0:
		return YakumanBasePoint * p.YakumanCount
	case p.Limit != LimitNone:
		return p.Limit.basePoint()
	default:
		return p.BasePoint
	}
}

func (p Point) Payment() Payment {
	b := p.payBase()
	return Payment{
		DealerTsumo:          roundUp100(b * 2),
		DealerRon:            roundUp100(b * 6),
		NonDealerTsumoChild:  roundUp100(b),
		NonDealerTsumoDealer: roundUp100(b * 2),
		NonDealerRon:         roundUp100(b * 4),
	}
}

func (p Point) DealerTsumo() int { return p.Payment().DealerTsumo }
func (p Point) DealerRon() int   { return p.Payment().DealerRon }

// NonDealerTsumo 返回 (子家支付, 亲家支付)
func (p Point) NonDealerTsumo() (int, int) {
	pay := p.Payment()
	return pay.NonDealerTsumoChild, pay.NonDealerTsumoDealer
}

func (p Point) NonDealerRon() int { return p.Payment().NonDealerRon }
