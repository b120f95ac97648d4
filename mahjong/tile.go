package mahjong

import (
	"strconv"
	"strings"
)

// Tile 牌编码: kind*9 + (num-1), 取值 [0, 34)
type Tile int32

const TileNull Tile = -1

var (
	TileEast  = MustTile(KindHonor, 1) // 东
	TileSouth = MustTile(KindHonor, 2) // 南
	TileWest  = MustTile(KindHonor, 3) // 西
	TileNorth = MustTile(KindHonor, 4) // 北
	TileWhite = MustTile(KindHonor, 5) // 白
	TileGreen = MustTile(KindHonor, 6) // 發
	TileRed   = MustTile(KindHonor, 7) // 中
)

// Encode 由牌种和点数得到编码
func Encode(kind Kind, num int) (Tile, error) {
	if kind < KindMan || kind >= KindEnd {
		return TileNull, newError(KindInvalidTile, "kind %d out of range", kind)
	}
	if num < 1 || num > NumCountByKind[kind] {
		return TileNull, newError(KindInvalidTile, "num %d out of range for %c", num, kindSuffix[kind])
	}
	return Tile(int(kind)*9 + num - 1), nil
}

// MustTile 用于常量表, 参数非法时 panic
func MustTile(kind Kind, num int) Tile {
	t, err := Encode(kind, num)
	if err != nil {
		panic(err)
	}
	return t
}

// Decode 编码的逆运算
func (t Tile) Decode() (Kind, int, error) {
	if !t.IsValid() {
		return 0, 0, newError(KindInvalidTile, "tile %d out of range", int32(t))
	}
	return t.Kind(), t.Num(), nil
}

func (t Tile) IsValid() bool {
	return t >= 0 && t < TileCount
}

// Kind 调用方需保证 t 合法
func (t Tile) Kind() Kind {
	return Kind(t / 9)
}

func (t Tile) Num() int {
	return int(t%9) + 1
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && t.Kind() == KindHonor
}

func (t Tile) IsNumber() bool { // 数牌
	return t.IsValid() && t.Kind() != KindHonor
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsNumber() && (t.Num() == 1 || t.Num() == 9)
}

func (t Tile) IsTerminalOrHonor() bool { // 幺九牌
	return t.IsHonor() || t.IsTerminal()
}

func (t Tile) IsSimple() bool { // 中张牌
	return t.IsNumber() && !t.IsTerminal()
}

func (t Tile) IsWind() bool {
	return t.IsHonor() && t.Num() <= 4
}

func (t Tile) IsDragon() bool { // 三元牌
	return t.IsHonor() && t.Num() >= 5
}

// IsGreen 绿一色可用的牌: 23468索与發
func (t Tile) IsGreen() bool {
	if !t.IsValid() {
		return false
	}
	switch t.Kind() {
	case KindSou:
		switch t.Num() {
		case 2, 3, 4, 6, 8:
			return true
		}
	case KindHonor:
		return t == TileGreen
	}
	return false
}

func (t Tile) String() string {
	if !t.IsValid() {
		return "-"
	}
	return strconv.Itoa(t.Num()) + string(kindSuffix[t.Kind()])
}

// Name 显示用的日文名
func (t Tile) Name() string {
	if !t.IsValid() {
		return ""
	}
	if t.IsHonor() {
		return honorNames[t.Num()-1]
	}
	return strconv.Itoa(t.Num()) + kindNames[t.Kind()]
}

var kindNames = [KindHonor]string{"萬", "筒", "索"}
var honorNames = []string{"東", "南", "西", "北", "白", "發", "中"}

func TilesString(tiles []Tile) string {
	var sb strings.Builder
	for i, t := range tiles {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// NextDora 由宝牌指示牌得到宝牌
func NextDora(indicator Tile) (Tile, error) {
	kind, num, err := indicator.Decode()
	if err != nil {
		return TileNull, err
	}
	switch {
	case kind != KindHonor:
		num = num%9 + 1
	case num <= 4:
		num = num%4 + 1
	default:
		num = (num-5+1)%3 + 5
	}
	return Encode(kind, num)
}

// Tile 该风对应的字牌
func (w Wind) Tile() (Tile, error) {
	if w < WindEast || w >= WindEnd {
		return TileNull, newError(KindInvalidTile, "wind %d out of range", int(w))
	}
	return Encode(KindHonor, int(w)+1)
}
