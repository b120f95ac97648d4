package mahjong

import (
	"slices"
	"strings"
)

// Bucket 每种牌的张数
type Bucket [TileCount]uint8

func (b *Bucket) Add(tiles ...Tile) {
	for _, t := range tiles {
		b[t]++
	}
}

func (b *Bucket) Count(t Tile) int {
	return int(b[t])
}

func (b *Bucket) Sum() int {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	return sum
}

// First 第一张存在的牌, 空时返回 TileNull
func (b *Bucket) First() Tile {
	for i, c := range b {
		if c > 0 {
			return Tile(i)
		}
	}
	return TileNull
}

func (b *Bucket) Tiles() []Tile {
	tiles := make([]Tile, 0, HandTileCount)
	for i, c := range b {
		for range c {
			tiles = append(tiles, Tile(i))
		}
	}
	return tiles
}

// String 以 "123m456p" 形式输出
func (b *Bucket) String() string {
	var sb strings.Builder
	for kind := KindMan; kind < KindEnd; kind++ {
		written := false
		for num := 1; num <= NumCountByKind[kind]; num++ {
			t := Tile(int(kind)*9 + num - 1)
			for range b[t] {
				sb.WriteByte(byte('0' + num))
				written = true
			}
		}
		if written {
			sb.WriteByte(kindSuffix[kind])
		}
	}
	return sb.String()
}

// Hand 待判定的手牌: 13 张 (暗牌 + 副露), 另有和了牌
type Hand struct {
	Bucket Bucket
	Melds  []Meld
	Finish Tile // TileNull 表示枚举所有和了牌
	Tsumo  bool
}

func NewHand(tiles []Tile, melds []Meld, finish Tile, tsumo bool) (*Hand, error) {
	h := &Hand{Melds: slices.Clone(melds), Finish: finish, Tsumo: tsumo}
	for _, t := range tiles {
		if !t.IsValid() {
			return nil, newError(KindInvalidTile, "tile %d out of range", int32(t))
		}
		h.Bucket.Add(t)
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate 检查张数与牌的合法性
func (h *Hand) Validate() error {
	if h.Finish != TileNull && !h.Finish.IsValid() {
		return newError(KindInvalidTile, "finishing tile %d out of range", int32(h.Finish))
	}
	if len(h.Melds) > MeldCount {
		return newError(KindInvalidHand, "%d melds", len(h.Melds))
	}
	if total := h.Bucket.Sum() + 3*len(h.Melds); total != HandTileCount {
		return newError(KindInvalidHand, "hand holds %d tiles, want %d", total, HandTileCount)
	}

	all := h.Bucket
	for _, m := range h.Melds {
		if !m.Tile.IsValid() {
			return newError(KindInvalidTile, "meld tile %d out of range", int32(m.Tile))
		}
		if m.Kind.IsSequential() && (m.Tile.IsHonor() || m.Tile.Num() > 7) {
			return newError(KindInvalidHand, "run cannot start at %s", m.Tile)
		}
		if m.Kind.IsPair() {
			return newError(KindInvalidHand, "pair marker %s in hand melds", m.Tile)
		}
		all.Add(m.Tiles()...)
	}
	if h.Finish != TileNull {
		all.Add(h.Finish)
	}
	for i, c := range all {
		if c > TileCopies {
			return newError(KindInvalidHand, "%d copies of %s", c, Tile(i))
		}
	}
	return nil
}

func (h *Hand) Clone() *Hand {
	c := *h
	c.Melds = slices.Clone(h.Melds)
	return &c
}

// IsConcealed 所有副露均为暗杠
func (h *Hand) IsConcealed() bool {
	for _, m := range h.Melds {
		if !m.Kind.IsConcealed() {
			return false
		}
	}
	return true
}

func (h *Hand) String() string {
	var sb strings.Builder
	sb.WriteString(h.Bucket.String())
	for _, m := range h.Melds {
		sb.WriteByte(' ')
		sb.WriteString(meldNotation(m))
	}
	if h.Finish != TileNull {
		sb.WriteByte(' ')
		sb.WriteString(h.Finish.String())
	}
	return sb.String()
}
