package mahjong

// 面子符, 幺九牌翻倍
var meldFu = map[MeldKind]int{
	MeldSequence:   0,
	MeldChi:        0,
	MeldTriplet:    4,
	MeldTripletRon: 2,
	MeldPon:        2,
	MeldOpenKan:    8,
	MeldClosedKan:  16,
}

// calcFu 计符. 七对子固定 25 符, 国士不计符.
func calcFu(fh *FinishedHand, ctx *ScoringContext, concealed bool) int {
	switch fh.Wait {
	case WaitKokushi:
		return 0
	case WaitChiitoi:
		return 20 + fh.Wait.Fu()
	}

	fu := 20 + fh.Wait.Fu()
	for _, m := range fh.Melds {
		f := meldFu[m.Kind]
		if m.Tile.IsTerminalOrHonor() {
			f *= 2
		}
		fu += f
	}
	fu += headFu(fh.Head, ctx)

	if fh.Tsumo {
		fu += 2
	} else if concealed {
		fu += 10
	}

	// 平和自摸
	if fu == 22 {
		fu = 20
	}
	if !concealed && fu == 20 {
		fu = 30
	}
	return (fu + 9) / 10 * 10
}

func headFu(head Tile, ctx *ScoringContext) int {
	seat, _ := ctx.SeatWind.Tile()
	round, _ := ctx.RoundWind.Tile()
	fu := 0
	if head.IsDragon() || head == seat {
		fu += 2
	}
	if head == round {
		fu += 2
	}
	if fu > 2 && !ctx.rule().DoubleWindHeadFu {
		fu = 2
	}
	return fu
}
