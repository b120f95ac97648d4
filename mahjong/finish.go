package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// FinishedHand 和了形的一种拆解
type FinishedHand struct {
	Wait   WaitShape
	Melds  []Meld
	Head   Tile // 七对子为 TileNull
	Finish Tile
	Tsumo  bool
}

// IsConcealed 门前
func (f *FinishedHand) IsConcealed() bool {
	for _, m := range f.Melds {
		if !m.Kind.IsConcealed() {
			return false
		}
	}
	return true
}

// Tiles 和了时的全部牌, 含杠的第四张
func (f *FinishedHand) Tiles() []Tile {
	tiles := make([]Tile, 0, 18)
	for _, m := range f.Melds {
		tiles = append(tiles, m.Tiles()...)
	}
	if f.Head != TileNull {
		tiles = append(tiles, f.Head, f.Head)
	}
	if f.Wait == WaitKokushi {
		// 国士: 其余 12 种幺九各一张
		for _, t := range terminalsAndHonors {
			if t != f.Head {
				tiles = append(tiles, t)
			}
		}
	}
	slices.Sort(tiles)
	return tiles
}

// searcher 在手牌副本上做原地增减回溯
type searcher struct {
	hand    *Hand
	bucket  Bucket
	melds   []Meld
	head    Tile
	results []FinishedHand
}

func newSearcher(h *Hand) *searcher {
	return &searcher{
		hand:   h,
		bucket: h.Bucket,
		melds:  slices.Clone(h.Melds),
		head:   TileNull,
	}
}

func (s *searcher) emit(wait WaitShape, finish Tile, last Meld, hasLast bool) {
	melds := slices.Clone(s.melds)
	if hasLast {
		melds = append(melds, last)
	}
	s.results = append(s.results, FinishedHand{
		Wait:   wait,
		Melds:  melds,
		Head:   s.head,
		Finish: finish,
		Tsumo:  s.hand.Tsumo,
	})
}

func (s *searcher) inconsistent(format string, args ...any) error {
	err := newError(KindInternalConsistency, format, args...).
		WithContext("bucket", s.bucket.String()).
		WithContext("melds", slices.Clone(s.melds)).
		WithContext("head", s.head.String()).
		WithContext("finish", s.hand.Finish.String())
	logger.Log.WithFields(err.Context).Errorf("decomposition search: %s", err.Message)
	return err
}

// search 以 start 为下界递归取面子; tanki 为真时剩余的一张作雀头
func (s *searcher) search(tanki bool, start Tile) error {
	if tanki && len(s.melds) == MeldCount {
		if s.bucket.Sum() != 1 {
			return s.inconsistent("%d tiles left after four melds", s.bucket.Sum())
		}
		last := s.bucket.First()
		if s.hand.Finish == TileNull || s.hand.Finish == last {
			s.head = last
			s.emit(WaitTanki, last, Meld{}, false)
			s.head = TileNull
		}
		return nil
	}
	if !tanki && len(s.melds) == MeldCount-1 {
		if s.bucket.Sum() != 2 {
			return s.inconsistent("%d tiles left after three melds with head", s.bucket.Sum())
		}
		p1 := s.bucket.First()
		s.bucket[p1]--
		p2 := s.bucket.First()
		s.bucket[p1]++
		if s.hand.Finish != TileNull {
			s.checkFinish(p1, p2, s.hand.Finish)
		} else {
			for t := Tile(0); t < TileCount; t++ {
				s.checkFinish(p1, p2, t)
			}
		}
		return nil
	}

	for t := start; t < TileCount; t++ {
		if s.bucket[t] >= 3 {
			s.bucket[t] -= 3
			s.melds = append(s.melds, Meld{Kind: MeldTriplet, Tile: t})
			err := s.search(tanki, t)
			s.melds = s.melds[:len(s.melds)-1]
			s.bucket[t] += 3
			if err != nil {
				return err
			}
		}
		if t.IsNumber() && t.Num() <= 7 && s.bucket[t] > 0 && s.bucket[t+1] > 0 && s.bucket[t+2] > 0 {
			s.bucket[t]--
			s.bucket[t+1]--
			s.bucket[t+2]--
			s.melds = append(s.melds, Meld{Kind: MeldSequence, Tile: t})
			err := s.search(tanki, t)
			s.melds = s.melds[:len(s.melds)-1]
			s.bucket[t]++
			s.bucket[t+1]++
			s.bucket[t+2]++
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// checkFinish 判定剩余两张 p1 <= p2 与和了牌 fin 能否组成面子
func (s *searcher) checkFinish(p1, p2, fin Tile) {
	if p1 == p2 && p2 == fin {
		kind := MeldTriplet
		if !s.hand.Tsumo {
			kind = MeldTripletRon
		}
		s.emit(WaitShanpon, fin, Meld{Kind: kind, Tile: fin}, true)
		return
	}
	if p1.IsHonor() || p2.IsHonor() || fin.IsHonor() {
		return
	}
	if p1.Kind() != p2.Kind() || p1.Kind() != fin.Kind() {
		return
	}

	n1, n2, nf := p1.Num(), p2.Num(), fin.Num()
	switch {
	case (n1 == 1 && n2 == 2 && nf == 3) || (nf == 7 && n1 == 8 && n2 == 9):
		s.emit(WaitPenchan, fin, Meld{Kind: MeldSequence, Tile: min(p1, fin)}, true)
	case n1+1 == nf && nf+1 == n2:
		s.emit(WaitKanchan, fin, Meld{Kind: MeldSequence, Tile: p1}, true)
	case n1+1 == n2 && (nf+1 == n1 || n2+1 == nf):
		s.emit(WaitRyanmen, fin, Meld{Kind: MeldSequence, Tile: min(p1, fin)}, true)
	}
}

// FinishPatterns 枚举全部和了拆解: 七对子, 国士, 先定雀头, 单骑
func FinishPatterns(h *Hand) ([]FinishedHand, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	var results []FinishedHand
	results = append(results, finishChiitoi(h)...)
	results = append(results, finishKokushi(h)...)

	s := newSearcher(h)
	for t := Tile(0); t < TileCount; t++ {
		if s.bucket[t] < 2 {
			continue
		}
		s.bucket[t] -= 2
		s.head = t
		err := s.search(false, 0)
		s.head = TileNull
		s.bucket[t] += 2
		if err != nil {
			return nil, err
		}
	}
	if err := s.search(true, 0); err != nil {
		return nil, err
	}
	return append(results, s.results...), nil
}

// IsComplete 手牌加和了牌能否和了
func IsComplete(h *Hand) (bool, error) {
	if h.Finish == TileNull {
		return false, newError(KindInvalidHand, "finishing tile not set")
	}
	patterns, err := FinishPatterns(h)
	if err != nil {
		return false, err
	}
	return len(patterns) > 0, nil
}

// Waits 13 张手牌的全部和了牌, 忽略 h.Finish
func Waits(h *Hand) ([]Tile, error) {
	probe := h.Clone()
	probe.Finish = TileNull
	patterns, err := FinishPatterns(probe)
	if err != nil {
		return nil, err
	}
	var waits []Tile
	for _, p := range patterns {
		waits = append(waits, p.Finish)
	}
	slices.Sort(waits)
	return slices.Compact(waits), nil
}
