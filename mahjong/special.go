package mahjong

// 13 种幺九牌
var terminalsAndHonors = func() []Tile {
	var tiles []Tile
	for t := Tile(0); t < TileCount; t++ {
		if t.IsTerminalOrHonor() {
			tiles = append(tiles, t)
		}
	}
	return tiles
}()

// finishChiitoi 七对子: 六对加一张单张
func finishChiitoi(h *Hand) []FinishedHand {
	if len(h.Melds) > 0 {
		return nil
	}
	wait := TileNull
	kinds := 0
	for i, c := range h.Bucket {
		switch c {
		case 0:
			continue
		case 1:
			if wait != TileNull {
				return nil
			}
			wait = Tile(i)
		case 2:
		default:
			return nil
		}
		kinds++
	}
	if kinds != PairCount || wait == TileNull {
		return nil
	}
	if h.Finish != TileNull && h.Finish != wait {
		return nil
	}

	melds := make([]Meld, 0, PairCount)
	for i, c := range h.Bucket {
		if c > 0 {
			melds = append(melds, Meld{Kind: MeldPair, Tile: Tile(i)})
		}
	}
	return []FinishedHand{{
		Wait:   WaitChiitoi,
		Melds:  melds,
		Head:   TileNull,
		Finish: wait,
		Tsumo:  h.Tsumo,
	}}
}

// finishKokushi 国士无双, 含十三面
func finishKokushi(h *Hand) []FinishedHand {
	if len(h.Melds) > 0 {
		return nil
	}
	if h.Finish != TileNull && !h.Finish.IsTerminalOrHonor() {
		return nil
	}

	missing, double := TileNull, TileNull
	for i, c := range h.Bucket {
		t := Tile(i)
		if !t.IsTerminalOrHonor() {
			if c > 0 {
				return nil
			}
			continue
		}
		switch c {
		case 0:
			if missing != TileNull {
				return nil
			}
			missing = t
		case 1:
		case 2:
			if double != TileNull {
				return nil
			}
			double = t
		default:
			return nil
		}
	}

	result := func(head, finish Tile) FinishedHand {
		return FinishedHand{Wait: WaitKokushi, Head: head, Finish: finish, Tsumo: h.Tsumo}
	}
	switch {
	case double != TileNull && missing != TileNull:
		if h.Finish != TileNull && h.Finish != missing {
			return nil
		}
		return []FinishedHand{result(double, missing)}
	case double == TileNull && missing == TileNull:
		if h.Finish != TileNull {
			return []FinishedHand{result(h.Finish, h.Finish)}
		}
		results := make([]FinishedHand, 0, len(terminalsAndHonors))
		for _, t := range terminalsAndHonors {
			results = append(results, result(t, t))
		}
		return results
	}
	return nil
}
