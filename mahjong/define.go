package mahjong

// 牌种
type Kind int

const (
	KindMan   Kind = iota // 萬子
	KindPin               // 筒子
	KindSou               // 索子
	KindHonor             // 字牌
	KindEnd
)

var kindSuffix = [KindEnd]byte{'m', 'p', 's', 'z'}

// 每个牌种的点数上限
var NumCountByKind = [KindEnd]int{9, 9, 9, 7}

const (
	TileCount     = 34 // 牌的种类数
	TileCopies    = 4  // 每种牌的张数
	HandTileCount = 13 // 听牌时的手牌张数
	MeldCount     = 4  // 标准和牌面子数
	PairCount     = 7  // 七对子对子数
)

// 风
type Wind int

const (
	WindEast  Wind = iota // 东
	WindSouth             // 南
	WindWest              // 西
	WindNorth             // 北
	WindEnd
)

// 立直状态
type RiichiState int

const (
	RiichiNone   RiichiState = iota // 未立直
	RiichiSingle                    // 立直
	RiichiDouble                    // 两立直
)

func (r RiichiState) String() string {
	switch r {
	case RiichiSingle:
		return "single"
	case RiichiDouble:
		return "double"
	default:
		return "none"
	}
}

// ParseRiichiState 解析 none/single/double
func ParseRiichiState(s string) (RiichiState, error) {
	switch s {
	case "", "none":
		return RiichiNone, nil
	case "single":
		return RiichiSingle, nil
	case "double":
		return RiichiDouble, nil
	}
	return RiichiNone, newError(KindParse, "unknown riichi state %q", s)
}

// 和牌形
type WaitShape int

const (
	WaitRyanmen WaitShape = iota // 两面
	WaitKanchan                  // 嵌张
	WaitPenchan                  // 边张
	WaitShanpon                  // 双碰
	WaitTanki                    // 单骑
	WaitChiitoi                  // 七对子
	WaitKokushi                  // 国士无双
)

var waitShapeNames = []string{"ryanmen", "kanchan", "penchan", "shanpon", "tanki", "chiitoi", "kokushi"}

func (w WaitShape) String() string {
	if w < 0 || int(w) >= len(waitShapeNames) {
		return "unknown"
	}
	return waitShapeNames[w]
}

// Fu 听牌形符
func (w WaitShape) Fu() int {
	switch w {
	case WaitKanchan, WaitPenchan, WaitTanki:
		return 2
	case WaitChiitoi:
		return 5
	default:
		return 0
	}
}

// IsSpecial 七对子或国士
func (w WaitShape) IsSpecial() bool {
	return w == WaitChiitoi || w == WaitKokushi
}

// 向听类型
type ShantenKind int

const (
	ShantenKindNormal  ShantenKind = iota // 一般形
	ShantenKindChiitoi                    // 七对子
	ShantenKindKokushi                    // 国士无双
)

func (k ShantenKind) String() string {
	switch k {
	case ShantenKindChiitoi:
		return "chiitoi"
	case ShantenKindKokushi:
		return "kokushi"
	default:
		return "normal"
	}
}

// ShantenNone 该形不可能完成
const ShantenNone = 99
