package mahjong

// checkShantenHand 13 张 (副露按 3 张计)
func checkShantenHand(h *Hand) error {
	if total := h.Bucket.Sum() + 3*len(h.Melds); total != HandTileCount {
		return newError(KindInvalidHand, "shanten needs %d tiles, got %d", HandTileCount, total)
	}
	return nil
}

// ShantenKokushi 国士无双向听数, 有副露时为 ShantenNone
func ShantenKokushi(h *Hand) (int, error) {
	if err := checkShantenHand(h); err != nil {
		return ShantenNone, err
	}
	if len(h.Melds) > 0 {
		return ShantenNone, nil
	}
	kinds, double := 0, 0
	for _, t := range terminalsAndHonors {
		switch c := h.Bucket.Count(t); {
		case c >= 2:
			kinds++
			double = 1
		case c == 1:
			kinds++
		}
	}
	return 13 - kinds - double, nil
}

// ShantenChiitoi 七对子向听数, 有副露时为 ShantenNone
func ShantenChiitoi(h *Hand) (int, error) {
	if err := checkShantenHand(h); err != nil {
		return ShantenNone, err
	}
	if len(h.Melds) > 0 {
		return ShantenNone, nil
	}
	pairs, kinds := 0, 0
	for _, c := range h.Bucket {
		if c > 0 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	return PairCount - 1 - pairs + max(0, PairCount-kinds), nil
}

// shantenCalc 一般形搜索: 面子计 2, 搭子计 1, 搭子数不超过剩余面子数
type shantenCalc struct {
	bucket Bucket
}

func (c *shantenCalc) progress(melds, partials int) int {
	return melds*2 + min(partials, MeldCount-melds)
}

func (c *shantenCalc) doPick(melds, partials int, start Tile) int {
	best := c.progress(melds, partials)
	for t := start; t < TileCount; t++ {
		if c.bucket[t] == 0 {
			continue
		}
		best = max(best, c.pickTriplet(melds, partials, t))
		best = max(best, c.pickPair(melds, partials, t))
		if t.IsHonor() {
			continue
		}
		best = max(best, c.pickRun(melds, partials, t))
		best = max(best, c.pickAdjacent(melds, partials, t))
		best = max(best, c.pickGapped(melds, partials, t))
	}
	return best
}

func (c *shantenCalc) pickTriplet(melds, partials int, t Tile) int {
	if c.bucket[t] < 3 {
		return 0
	}
	c.bucket[t] -= 3
	v := c.doPick(melds+1, partials, t)
	c.bucket[t] += 3
	return v
}

func (c *shantenCalc) pickPair(melds, partials int, t Tile) int {
	if c.bucket[t] < 2 {
		return 0
	}
	c.bucket[t] -= 2
	v := c.doPick(melds, partials+1, t)
	c.bucket[t] += 2
	return v
}

func (c *shantenCalc) pickRun(melds, partials int, t Tile) int {
	if t.Num() > 7 || c.bucket[t+1] == 0 || c.bucket[t+2] == 0 {
		return 0
	}
	c.bucket[t]--
	c.bucket[t+1]--
	c.bucket[t+2]--
	v := c.doPick(melds+1, partials, t)
	c.bucket[t]++
	c.bucket[t+1]++
	c.bucket[t+2]++
	return v
}

func (c *shantenCalc) pickAdjacent(melds, partials int, t Tile) int {
	if t.Num() > 8 || c.bucket[t+1] == 0 {
		return 0
	}
	c.bucket[t]--
	c.bucket[t+1]--
	v := c.doPick(melds, partials+1, t)
	c.bucket[t]++
	c.bucket[t+1]++
	return v
}

func (c *shantenCalc) pickGapped(melds, partials int, t Tile) int {
	if t.Num() > 7 || c.bucket[t+2] == 0 {
		return 0
	}
	c.bucket[t]--
	c.bucket[t+2]--
	v := c.doPick(melds, partials+1, t)
	c.bucket[t]++
	c.bucket[t+2]++
	return v
}

// ShantenNormal 一般形 (四面子一雀头) 向听数
func ShantenNormal(h *Hand) (int, error) {
	if err := checkShantenHand(h); err != nil {
		return ShantenNone, err
	}
	c := &shantenCalc{bucket: h.Bucket}
	melds := len(h.Melds)
	best := c.doPick(melds, 0, 0)
	for t := Tile(0); t < TileCount; t++ {
		if c.bucket[t] < 2 {
			continue
		}
		c.bucket[t] -= 2
		best = max(best, c.doPick(melds, 0, 0)+1)
		c.bucket[t] += 2
	}
	return 2*MeldCount - best, nil
}

// Shanten 三种形中的最小向听数. 0 为听牌.
func Shanten(h *Hand) (int, ShantenKind, error) {
	if err := checkShantenHand(h); err != nil {
		return ShantenNone, ShantenKindNormal, err
	}
	calcs := []struct {
		kind ShantenKind
		calc func(*Hand) (int, error)
	}{
		{ShantenKindKokushi, ShantenKokushi},
		{ShantenKindChiitoi, ShantenChiitoi},
		{ShantenKindNormal, ShantenNormal},
	}
	best, kind := ShantenNone, ShantenKindNormal
	for _, c := range calcs {
		n, err := c.calc(h)
		if err != nil {
			return ShantenNone, ShantenKindNormal, err
		}
		if n < best {
			best, kind = n, c.kind
		}
		if best == 0 {
			break
		}
	}
	return best, kind, nil
}
