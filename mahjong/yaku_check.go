package mahjong

// yakuInput 判役时共享的只读数据
type yakuInput struct {
	fh        *FinishedHand
	ctx       *ScoringContext
	rule      *Rule
	concealed bool
}

type yakuChecker struct {
	yaku  Yaku
	check func(in *yakuInput) bool
}

type yakumanChecker struct {
	yakuman Yakuman
	check   func(in *yakuInput) bool
}

var yakuCheckers = []yakuChecker{
	{YakuRiichi, func(in *yakuInput) bool { return in.ctx.Riichi == RiichiSingle }},
	{YakuIppatsu, func(in *yakuInput) bool { return in.ctx.Riichi == RiichiSingle && in.ctx.Ippatsu }},
	{YakuMenzenTsumo, func(in *yakuInput) bool { return in.concealed && in.fh.Tsumo }},
	{YakuTanyao, checkTanyao},
	{YakuIipeikou, func(in *yakuInput) bool { return in.concealed && identicalRunPairs(in.fh.Melds) >= 1 }},
	{YakuRoundEast, roundWindChecker(WindEast)},
	{YakuRoundSouth, roundWindChecker(WindSouth)},
	{YakuRoundWest, roundWindChecker(WindWest)},
	{YakuRoundNorth, roundWindChecker(WindNorth)},
	{YakuSeatEast, seatWindChecker(WindEast)},
	{YakuSeatSouth, seatWindChecker(WindSouth)},
	{YakuSeatWest, seatWindChecker(WindWest)},
	{YakuSeatNorth, seatWindChecker(WindNorth)},
	{YakuHaku, func(in *yakuInput) bool { return hasIdentical(in.fh.Melds, TileWhite) }},
	{YakuHatsu, func(in *yakuInput) bool { return hasIdentical(in.fh.Melds, TileGreen) }},
	{YakuChun, func(in *yakuInput) bool { return hasIdentical(in.fh.Melds, TileRed) }},
	{YakuRinshan, func(in *yakuInput) bool { return in.ctx.Rinshan && in.fh.Tsumo }},
	{YakuChankan, func(in *yakuInput) bool { return in.ctx.Chankan && !in.fh.Tsumo }},
	{YakuHaitei, func(in *yakuInput) bool { return in.ctx.Haitei && in.fh.Tsumo }},
	{YakuHoutei, func(in *yakuInput) bool { return in.ctx.Houtei && !in.fh.Tsumo }},
	{YakuSanshoku, checkSanshoku},
	{YakuIttsu, checkIttsu},
	{YakuChanta, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, Meld.hasTerminalOrHonor) && headIs(in.fh, Tile.IsTerminalOrHonor)
	}},
	{YakuChiitoitsu, func(in *yakuInput) bool { return in.fh.Wait == WaitChiitoi }},
	{YakuToitoi, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, func(m Meld) bool { return m.Kind.IsIdentical() })
	}},
	{YakuSanankou, func(in *yakuInput) bool { return concealedTriplets(in.fh.Melds) >= 3 }},
	{YakuHonroutou, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, func(m Meld) bool {
			return (m.Kind.IsIdentical() || m.Kind.IsPair()) && m.hasTerminalOrHonor()
		}) && headIs(in.fh, Tile.IsTerminalOrHonor)
	}},
	{YakuSanshokuDoukou, checkSanshokuDoukou},
	{YakuSankantsu, func(in *yakuInput) bool { return kanCount(in.fh.Melds) >= 3 }},
	{YakuShousangen, func(in *yakuInput) bool {
		return countIdentical(in.fh.Melds, TileWhite, TileGreen, TileRed) == 2 && in.fh.Head.IsDragon()
	}},
	{YakuDoubleRiichi, func(in *yakuInput) bool { return in.ctx.Riichi == RiichiDouble }},
	{YakuHonitsu, checkHonitsu},
	{YakuJunchan, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, Meld.hasTerminal) && headIs(in.fh, Tile.IsTerminal)
	}},
	{YakuRyanpeikou, func(in *yakuInput) bool { return in.concealed && identicalRunPairs(in.fh.Melds) == 2 }},
	{YakuChinitsu, checkChinitsu},
}

var yakumanCheckers = []yakumanChecker{
	{YakumanSuuankou, func(in *yakuInput) bool { return concealedTriplets(in.fh.Melds) >= 4 }},
	{YakumanDaisangen, func(in *yakuInput) bool {
		return countIdentical(in.fh.Melds, TileWhite, TileGreen, TileRed) == 3
	}},
	{YakumanTsuuiisou, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, func(m Meld) bool { return m.Tile.IsHonor() }) && headIs(in.fh, Tile.IsHonor)
	}},
	{YakumanShousuushii, func(in *yakuInput) bool {
		return countIdentical(in.fh.Melds, TileEast, TileSouth, TileWest, TileNorth) == 3 && in.fh.Head.IsWind()
	}},
	{YakumanDaisuushii, func(in *yakuInput) bool {
		return countIdentical(in.fh.Melds, TileEast, TileSouth, TileWest, TileNorth) == 4
	}},
	{YakumanRyuuiisou, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, Meld.isGreen) && headIs(in.fh, Tile.IsGreen)
	}},
	{YakumanChinroutou, func(in *yakuInput) bool {
		return allMelds(in.fh.Melds, Meld.isTerminalTriplet) && headIs(in.fh, Tile.IsTerminal)
	}},
	{YakumanSuukantsu, func(in *yakuInput) bool { return kanCount(in.fh.Melds) == MeldCount }},
	{YakumanChuuren, checkChuuren},
	{YakumanTenhou, func(in *yakuInput) bool { return in.ctx.Blessing && in.ctx.IsDealer() }},
	{YakumanChiihou, func(in *yakuInput) bool { return in.ctx.Blessing && !in.ctx.IsDealer() }},
}

// checkYaku 一般役, 已去除被包含的役; 平和由计符后补上
func checkYaku(in *yakuInput) YakuSet {
	if in.fh.Wait == WaitKokushi {
		return 0
	}
	var set YakuSet
	for _, c := range yakuCheckers {
		if c.check(in) {
			set = set.Add(c.yaku)
		}
	}
	return set.Normalize()
}

func checkYakuman(in *yakuInput) YakumanSet {
	if in.fh.Wait == WaitKokushi {
		set := NewYakumanSet(YakumanKokushi)
		if in.ctx.Blessing {
			if in.ctx.IsDealer() {
				set = set.Add(YakumanTenhou)
			} else {
				set = set.Add(YakumanChiihou)
			}
		}
		return set
	}
	var set YakumanSet
	for _, c := range yakumanCheckers {
		if c.check(in) {
			set = set.Add(c.yakuman)
		}
	}
	return set
}

func allMelds(melds []Meld, pred func(Meld) bool) bool {
	if len(melds) == 0 {
		return false
	}
	for _, m := range melds {
		if !pred(m) {
			return false
		}
	}
	return true
}

// headIs 七对子没有雀头, 视为满足
func headIs(fh *FinishedHand, pred func(Tile) bool) bool {
	return fh.Head == TileNull || pred(fh.Head)
}

func hasIdentical(melds []Meld, t Tile) bool {
	for _, m := range melds {
		if m.Kind.IsIdentical() && m.Tile == t {
			return true
		}
	}
	return false
}

func countIdentical(melds []Meld, tiles ...Tile) int {
	count := 0
	for _, t := range tiles {
		if hasIdentical(melds, t) {
			count++
		}
	}
	return count
}

// 自己摸成的刻子与暗杠
func concealedTriplets(melds []Meld) int {
	count := 0
	for _, m := range melds {
		if m.Kind.IsIdentical() && !m.Kind.IsOpen() {
			count++
		}
	}
	return count
}

func kanCount(melds []Meld) int {
	count := 0
	for _, m := range melds {
		if m.Kind.IsKan() {
			count++
		}
	}
	return count
}

// identicalRunPairs 相同顺子两两配对的最大对数
func identicalRunPairs(melds []Meld) int {
	runs := make(map[Tile]int)
	for _, m := range melds {
		if m.Kind.IsSequential() {
			runs[m.Tile]++
		}
	}
	pairs := 0
	for _, c := range runs {
		pairs += c / 2
	}
	return pairs
}

func roundWindChecker(w Wind) func(*yakuInput) bool {
	return func(in *yakuInput) bool {
		t, _ := w.Tile()
		return in.ctx.RoundWind == w && hasIdentical(in.fh.Melds, t)
	}
}

func seatWindChecker(w Wind) func(*yakuInput) bool {
	return func(in *yakuInput) bool {
		t, _ := w.Tile()
		return in.ctx.SeatWind == w && hasIdentical(in.fh.Melds, t)
	}
}

func checkTanyao(in *yakuInput) bool {
	if !in.concealed && !in.rule.OpenTanyao {
		return false
	}
	return allMelds(in.fh.Melds, Meld.isSimple) && headIs(in.fh, Tile.IsSimple)
}

// runTable[kind][num-1] 该位置是否有顺子
func runTable(melds []Meld) (table [KindHonor][9]bool) {
	for _, m := range melds {
		if m.Kind.IsSequential() {
			table[m.Suit()][m.Tile.Num()-1] = true
		}
	}
	return table
}

func checkSanshoku(in *yakuInput) bool {
	runs := runTable(in.fh.Melds)
	for n := range 7 {
		if runs[KindMan][n] && runs[KindPin][n] && runs[KindSou][n] {
			return true
		}
	}
	return false
}

func checkIttsu(in *yakuInput) bool {
	runs := runTable(in.fh.Melds)
	for k := KindMan; k < KindHonor; k++ {
		if runs[k][0] && runs[k][3] && runs[k][6] {
			return true
		}
	}
	return false
}

func checkSanshokuDoukou(in *yakuInput) bool {
	var same [KindHonor][9]bool
	for _, m := range in.fh.Melds {
		if m.Kind.IsIdentical() && m.Tile.IsNumber() {
			same[m.Suit()][m.Tile.Num()-1] = true
		}
	}
	for n := range 9 {
		if same[KindMan][n] && same[KindPin][n] && same[KindSou][n] {
			return true
		}
	}
	return false
}

// suits 和了牌涉及的数牌花色与是否含字牌
func suits(fh *FinishedHand) (numbers map[Kind]bool, honor bool) {
	numbers = make(map[Kind]bool)
	add := func(t Tile) {
		if t.IsHonor() {
			honor = true
		} else {
			numbers[t.Kind()] = true
		}
	}
	for _, m := range fh.Melds {
		add(m.Tile)
	}
	if fh.Head != TileNull {
		add(fh.Head)
	}
	return numbers, honor
}

func checkHonitsu(in *yakuInput) bool {
	numbers, honor := suits(in.fh)
	return len(numbers) == 1 && honor
}

func checkChinitsu(in *yakuInput) bool {
	numbers, honor := suits(in.fh)
	return len(numbers) == 1 && !honor
}

// 九莲宝灯: 门前无杠, 1112345678999 加任意一张同色牌
var chuurenTemplate = [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}

func checkChuuren(in *yakuInput) bool {
	if !in.concealed || in.fh.Head == TileNull || kanCount(in.fh.Melds) > 0 {
		return false
	}
	var b Bucket
	b.Add(in.fh.Head, in.fh.Head)
	for _, m := range in.fh.Melds {
		b.Add(m.Tiles()...)
	}
	kind := in.fh.Head.Kind()
	if kind == KindHonor {
		return false
	}
	extra := 0
	for n := 1; n <= 9; n++ {
		diff := b.Count(MustTile(kind, n)) - chuurenTemplate[n-1]
		switch diff {
		case 0:
		case 1:
			extra++
		default:
			return false
		}
	}
	return extra == 1
}
