package mahjong

import (
	"strings"
	"unicode/utf8"
)

// 副露标记
var meldMarkers = map[byte]MeldKind{
	'C': MeldChi,
	'P': MeldPon,
	'A': MeldClosedKan,
	'M': MeldOpenKan,
}

var meldMarkerNames = map[MeldKind]string{
	MeldChi:       "C",
	MeldPon:       "P",
	MeldClosedKan: "A",
	MeldOpenKan:   "M",
}

var suffixToKind = map[byte]Kind{
	'm': KindMan,
	'p': KindPin,
	's': KindSou,
	'z': KindHonor,
}

func meldNotation(m Meld) string {
	var sb strings.Builder
	sb.WriteString(meldMarkerNames[m.Kind])
	for _, t := range m.Tiles() {
		sb.WriteByte(byte('0' + t.Num()))
	}
	sb.WriteByte(kindSuffix[m.Tile.Kind()])
	return sb.String()
}

// meldDigitsValid 副露组只写锚点, 或写全顺子/刻子/杠
func meldDigitsValid(marker MeldKind, digits []int) bool {
	switch len(digits) {
	case 1:
		return true
	case 3:
		if marker == MeldChi {
			return digits[1] == digits[0]+1 && digits[2] == digits[0]+2
		}
		return marker == MeldPon && sameDigits(digits)
	case 4:
		return marker.IsKan() && sameDigits(digits)
	}
	return false
}

func sameDigits(digits []int) bool {
	for _, d := range digits {
		if d != digits[0] {
			return false
		}
	}
	return true
}

type notationItem struct {
	tile   Tile
	marker MeldKind
	meld   bool
}

// scanNotation 扫描 "123m 456p P111z" 形式的串, 标记作用于紧随的一组
func scanNotation(s string, allowMarkers bool) ([]notationItem, error) {
	if !utf8.ValidString(s) {
		return nil, newError(KindParse, "invalid utf-8")
	}
	var (
		items   []notationItem
		digits  []int
		marker  MeldKind
		pending bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return nil, newError(KindParse, "non-ascii character at %d", i)
		}
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c >= '1' && c <= '9':
			digits = append(digits, int(c-'0'))
			continue
		}

		if kind, ok := meldMarkers[c]; ok && allowMarkers {
			if pending || len(digits) > 0 {
				return nil, newError(KindParse, "unexpected marker %q at %d", c, i)
			}
			marker, pending = kind, true
			continue
		}

		kind, ok := suffixToKind[c]
		if !ok {
			return nil, newError(KindParse, "unknown character %q at %d", c, i)
		}
		if len(digits) == 0 {
			return nil, newError(KindParse, "suit %q without digits at %d", c, i)
		}
		if pending {
			if !meldDigitsValid(marker, digits) {
				return nil, newError(KindParse, "bad %s meld digits at %d", marker, i)
			}
			t, err := Encode(kind, digits[0])
			if err != nil {
				return nil, newError(KindParse, "bad meld at %d", i).WithCause(err)
			}
			items = append(items, notationItem{tile: t, marker: marker, meld: true})
			pending = false
		} else {
			for _, n := range digits {
				t, err := Encode(kind, n)
				if err != nil {
					return nil, newError(KindParse, "bad tile at %d", i).WithCause(err)
				}
				items = append(items, notationItem{tile: t})
			}
		}
		digits = digits[:0]
	}
	if len(digits) > 0 {
		return nil, newError(KindParse, "digits without suit")
	}
	if pending {
		return nil, newError(KindParse, "dangling meld marker")
	}
	if len(items) == 0 {
		return nil, newError(KindParse, "empty notation")
	}
	return items, nil
}

// ParseTiles 解析无副露的牌串, 保持书写顺序
func ParseTiles(s string) ([]Tile, error) {
	items, err := scanNotation(s, false)
	if err != nil {
		return nil, err
	}
	tiles := make([]Tile, len(items))
	for i, it := range items {
		tiles[i] = it.tile
	}
	return tiles, nil
}

// ParseTile 解析单张牌, 如 "5z"
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return TileNull, err
	}
	if len(tiles) != 1 {
		return TileNull, newError(KindParse, "%q is not a single tile", s)
	}
	return tiles[0], nil
}

// ParseHand 解析手牌表示法. 共 14 张时最后一张暗牌为和了牌, 13 张时和了牌未定.
func ParseHand(s string) (*Hand, error) {
	items, err := scanNotation(s, true)
	if err != nil {
		return nil, err
	}

	h := &Hand{Finish: TileNull, Tsumo: true}
	var free []Tile
	for _, it := range items {
		if !it.meld {
			free = append(free, it.tile)
			continue
		}
		if it.marker == MeldChi && (it.tile.IsHonor() || it.tile.Num() > 7) {
			return nil, newError(KindParse, "chi cannot start at %s", it.tile)
		}
		h.Melds = append(h.Melds, Meld{Kind: it.marker, Tile: it.tile})
	}

	switch len(free) + 3*len(h.Melds) {
	case HandTileCount + 1:
		h.Finish = free[len(free)-1]
		free = free[:len(free)-1]
	case HandTileCount:
	default:
		return nil, newError(KindParse, "%d tiles in %q", len(free)+3*len(h.Melds), s)
	}
	h.Bucket.Add(free...)

	if err := h.Validate(); err != nil {
		return nil, newError(KindParse, "invalid hand %q", s).WithCause(err)
	}
	return h, nil
}
