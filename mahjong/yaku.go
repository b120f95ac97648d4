package mahjong

import (
	"math/bits"
	"strings"
)

// Yaku 役, 按序号存入 YakuSet
type Yaku int

const (
	YakuRiichi         Yaku = iota // 立直
	YakuIppatsu                    // 一发
	YakuMenzenTsumo                // 门前清自摸和
	YakuTanyao                     // 断幺九
	YakuPinfu                      // 平和
	YakuIipeikou                   // 一杯口
	YakuRoundEast                  // 场风 东
	YakuRoundSouth                 // 场风 南
	YakuRoundWest                  // 场风 西
	YakuRoundNorth                 // 场风 北
	YakuSeatEast                   // 自风 东
	YakuSeatSouth                  // 自风 南
	YakuSeatWest                   // 自风 西
	YakuSeatNorth                  // 自风 北
	YakuHaku                       // 白
	YakuHatsu                      // 发
	YakuChun                       // 中
	YakuRinshan                    // 岭上开花
	YakuChankan                    // 抢杠
	YakuHaitei                     // 海底摸月
	YakuHoutei                     // 河底捞鱼
	YakuSanshoku                   // 三色同顺
	YakuIttsu                      // 一气通贯
	YakuChanta                     // 混全带幺九
	YakuChiitoitsu                 // 七对子
	YakuToitoi                     // 对对和
	YakuSanankou                   // 三暗刻
	YakuHonroutou                  // 混老头
	YakuSanshokuDoukou             // 三色同刻
	YakuSankantsu                  // 三杠子
	YakuShousangen                 // 小三元
	YakuDoubleRiichi               // 两立直
	YakuHonitsu                    // 混一色
	YakuJunchan                    // 纯全带幺九
	YakuRyanpeikou                 // 二杯口
	YakuChinitsu                   // 清一色
	YakuCount
)

type yakuInfo struct {
	closed int // 门前番数
	open   int // 副露番数, 0 为门前限定
	name   string
	en     string
}

var yakuTable = [YakuCount]yakuInfo{
	YakuRiichi:         {1, 0, "立直", "Riichi"},
	YakuIppatsu:        {1, 0, "一発", "Ippatsu"},
	YakuMenzenTsumo:    {1, 0, "門前清自摸和", "Menzen Tsumo"},
	YakuTanyao:         {1, 1, "断么九", "Tanyao"},
	YakuPinfu:          {1, 0, "平和", "Pinfu"},
	YakuIipeikou:       {1, 0, "一盃口", "Iipeikou"},
	YakuRoundEast:      {1, 1, "場風牌・東", "Round Wind East"},
	YakuRoundSouth:     {1, 1, "場風牌・南", "Round Wind South"},
	YakuRoundWest:      {1, 1, "場風牌・西", "Round Wind West"},
	YakuRoundNorth:     {1, 1, "場風牌・北", "Round Wind North"},
	YakuSeatEast:       {1, 1, "自風牌・東", "Seat Wind East"},
	YakuSeatSouth:      {1, 1, "自風牌・南", "Seat Wind South"},
	YakuSeatWest:       {1, 1, "自風牌・西", "Seat Wind West"},
	YakuSeatNorth:      {1, 1, "自風牌・北", "Seat Wind North"},
	YakuHaku:           {1, 1, "役牌・白", "Haku"},
	YakuHatsu:          {1, 1, "役牌・發", "Hatsu"},
	YakuChun:           {1, 1, "役牌・中", "Chun"},
	YakuRinshan:        {1, 1, "嶺上開花", "Rinshan Kaihou"},
	YakuChankan:        {1, 1, "搶槓", "Chankan"},
	YakuHaitei:         {1, 1, "海底摸月", "Haitei Raoyue"},
	YakuHoutei:         {1, 1, "河底撈魚", "Houtei Raoyui"},
	YakuSanshoku:       {2, 1, "三色同順", "Sanshoku Doujun"},
	YakuIttsu:          {2, 1, "一気通貫", "Ittsu"},
	YakuChanta:         {2, 1, "混全帯么九", "Chanta"},
	YakuChiitoitsu:     {2, 0, "七対子", "Chiitoitsu"},
	YakuToitoi:         {2, 2, "対々和", "Toitoi"},
	YakuSanankou:       {2, 2, "三暗刻", "Sanankou"},
	YakuHonroutou:      {2, 2, "混老頭", "Honroutou"},
	YakuSanshokuDoukou: {2, 2, "三色同刻", "Sanshoku Doukou"},
	YakuSankantsu:      {2, 2, "三槓子", "Sankantsu"},
	YakuShousangen:     {2, 2, "小三元", "Shousangen"},
	YakuDoubleRiichi:   {2, 0, "ダブル立直", "Double Riichi"},
	YakuHonitsu:        {3, 2, "混一色", "Honitsu"},
	YakuJunchan:        {3, 2, "純全帯么九", "Junchan"},
	YakuRyanpeikou:     {3, 0, "二盃口", "Ryanpeikou"},
	YakuChinitsu:       {6, 5, "清一色", "Chinitsu"},
}

func (y Yaku) valid() bool {
	return y >= 0 && y < YakuCount
}

// Fan 番数, 副露时取食下后的值 (门前限定役为 0)
func (y Yaku) Fan(concealed bool) int {
	if !y.valid() {
		return 0
	}
	if concealed {
		return yakuTable[y].closed
	}
	return yakuTable[y].open
}

// Name 日文役名
func (y Yaku) Name() string {
	if !y.valid() {
		return ""
	}
	return yakuTable[y].name
}

func (y Yaku) String() string {
	if !y.valid() {
		return "Unknown"
	}
	return yakuTable[y].en
}

// YakuSet 役的位集
type YakuSet uint64

func (s YakuSet) Has(y Yaku) bool      { return s&(1<<y) != 0 }
func (s YakuSet) Add(y Yaku) YakuSet    { return s | 1<<y }
func (s YakuSet) Remove(y Yaku) YakuSet { return s &^ (1 << y) }
func (s YakuSet) Len() int              { return bits.OnesCount64(uint64(s)) }

func NewYakuSet(yaku ...Yaku) YakuSet {
	var s YakuSet
	for _, y := range yaku {
		s = s.Add(y)
	}
	return s
}

// List 按序号升序
func (s YakuSet) List() []Yaku {
	var list []Yaku
	for y := Yaku(0); y < YakuCount; y++ {
		if s.Has(y) {
			list = append(list, y)
		}
	}
	return list
}

// Fan 役番合计
func (s YakuSet) Fan(concealed bool) int {
	fan := 0
	for _, y := range s.List() {
		fan += y.Fan(concealed)
	}
	return fan
}

// Names 显示名, 食下役带 ↓
func (s YakuSet) Names(concealed bool) []string {
	var names []string
	for _, y := range s.List() {
		name := y.Name()
		if !concealed && y.Fan(false) < y.Fan(true) {
			name += "↓"
		}
		names = append(names, name)
	}
	return names
}

func (s YakuSet) String() string {
	var parts []string
	for _, y := range s.List() {
		parts = append(parts, y.String())
	}
	return strings.Join(parts, "|")
}

// Normalize 去掉被上位役包含的役, 重复调用结果不变
func (s YakuSet) Normalize() YakuSet {
	if s.Has(YakuChinitsu) {
		s = s.Remove(YakuHonitsu)
	}
	if s.Has(YakuRyanpeikou) {
		s = s.Remove(YakuIipeikou)
	}
	if s.Has(YakuJunchan) {
		s = s.Remove(YakuChanta)
	}
	if s.Has(YakuHonroutou) {
		s = s.Remove(YakuChanta)
	}
	return s
}

// Yakuman 役满
type Yakuman int

const (
	YakumanKokushi     Yakuman = iota // 国士无双
	YakumanSuuankou                   // 四暗刻
	YakumanDaisangen                  // 大三元
	YakumanTsuuiisou                  // 字一色
	YakumanShousuushii                // 小四喜
	YakumanDaisuushii                 // 大四喜
	YakumanRyuuiisou                  // 绿一色
	YakumanChinroutou                 // 清老头
	YakumanSuukantsu                  // 四杠子
	YakumanChuuren                    // 九莲宝灯
	YakumanTenhou                     // 天和
	YakumanChiihou                    // 地和
	YakumanCount
)

var yakumanTable = [YakumanCount]struct {
	name string
	en   string
}{
	YakumanKokushi:     {"国士無双", "Kokushi Musou"},
	YakumanSuuankou:    {"四暗刻", "Suuankou"},
	YakumanDaisangen:   {"大三元", "Daisangen"},
	YakumanTsuuiisou:   {"字一色", "Tsuuiisou"},
	YakumanShousuushii: {"小四喜", "Shousuushii"},
	YakumanDaisuushii:  {"大四喜", "Daisuushii"},
	YakumanRyuuiisou:   {"緑一色", "Ryuuiisou"},
	YakumanChinroutou:  {"清老頭", "Chinroutou"},
	YakumanSuukantsu:   {"四槓子", "Suukantsu"},
	YakumanChuuren:     {"九蓮宝燈", "Chuuren Poutou"},
	YakumanTenhou:      {"天和", "Tenhou"},
	YakumanChiihou:     {"地和", "Chiihou"},
}

func (y Yakuman) valid() bool {
	return y >= 0 && y < YakumanCount
}

// Count 役满倍数, 现有役满均计一倍
func (y Yakuman) Count() int {
	if !y.valid() {
		return 0
	}
	return 1
}

func (y Yakuman) Name() string {
	if !y.valid() {
		return ""
	}
	return yakumanTable[y].name
}

func (y Yakuman) String() string {
	if !y.valid() {
		return "Unknown"
	}
	return yakumanTable[y].en
}

// YakumanSet 役满位集
type YakumanSet uint32

func (s YakumanSet) Has(y Yakuman) bool         { return s&(1<<y) != 0 }
func (s YakumanSet) Add(y Yakuman) YakumanSet    { return s | 1<<y }
func (s YakumanSet) Remove(y Yakuman) YakumanSet { return s &^ (1 << y) }

func NewYakumanSet(yakuman ...Yakuman) YakumanSet {
	var s YakumanSet
	for _, y := range yakuman {
		s = s.Add(y)
	}
	return s
}

func (s YakumanSet) List() []Yakuman {
	var list []Yakuman
	for y := Yakuman(0); y < YakumanCount; y++ {
		if s.Has(y) {
			list = append(list, y)
		}
	}
	return list
}

func (s YakumanSet) Count() int {
	count := 0
	for _, y := range s.List() {
		count += y.Count()
	}
	return count
}

func (s YakumanSet) Names() []string {
	var names []string
	for _, y := range s.List() {
		names = append(names, y.Name())
	}
	return names
}

func (s YakumanSet) String() string {
	var parts []string
	for _, y := range s.List() {
		parts = append(parts, y.String())
	}
	return strings.Join(parts, "|")
}
