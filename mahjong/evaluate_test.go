package mahjong_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func mustEvaluate(t *testing.T, s string, ctx *mahjong.ScoringContext) *mahjong.Result {
	t.Helper()
	r, err := mahjong.EvaluateHand(mustHand(t, s), ctx)
	if err != nil {
		t.Fatalf("EvaluateHand(%q): %v", s, err)
	}
	return r
}

func TestChiitoiPoint(t *testing.T) {
	base := mahjong.NewYakuSet(mahjong.YakuRiichi, mahjong.YakuMenzenTsumo, mahjong.YakuChiitoitsu)
	testCases := []struct {
		hand string
		fan  int
		yaku mahjong.YakuSet
	}{
		{"115599m115599p11s", 4, base},
		{"22446688m224466p", 5, base.Add(mahjong.YakuTanyao)},
		{"1199m1199p1199s11z", 6, base.Add(mahjong.YakuHonroutou)},
		{"1133557799m1122z", 7, base.Add(mahjong.YakuHonitsu)},
		{"11224455778899m", 10, base.Add(mahjong.YakuChinitsu)},
	}

	ctx := &mahjong.ScoringContext{
		RoundWind: mahjong.WindEast,
		SeatWind:  mahjong.WindWest,
		Riichi:    mahjong.RiichiSingle,
	}
	for _, tc := range testCases {
		r := mustEvaluate(t, tc.hand, ctx)
		if r.Point.Fan != tc.fan || r.Point.Fu != 25 {
			t.Errorf("%s: fan/fu = %d/%d, want %d/25", tc.hand, r.Point.Fan, r.Point.Fu, tc.fan)
		}
		if r.Point.Yaku != tc.yaku {
			t.Errorf("%s: yaku = %s, want %s", tc.hand, r.Point.Yaku, tc.yaku)
		}
	}
}

func TestOpenTanyaoTsumoEqualsRon(t *testing.T) {
	ctx := &mahjong.ScoringContext{RoundWind: mahjong.WindEast, SeatWind: mahjong.WindWest}

	h := mustHand(t, "C234m C234m 223344p 8s 8s")
	tsumo, err := mahjong.EvaluateHand(h, ctx)
	if err != nil {
		t.Fatal(err)
	}
	h.Tsumo = false
	ron, err := mahjong.EvaluateHand(h, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if mahjong.Compare(tsumo.Point, ron.Point) != 0 {
		t.Errorf("tsumo %+v != ron %+v", tsumo.Point, ron.Point)
	}
	if tsumo.Point.Yaku != mahjong.NewYakuSet(mahjong.YakuTanyao) {
		t.Errorf("yaku = %s, want Tanyao", tsumo.Point.Yaku)
	}

	closed := &mahjong.ScoringContext{Rule: &mahjong.Rule{DoubleWindHeadFu: true}}
	r, err := mahjong.EvaluateHand(h, closed)
	if err != nil {
		t.Fatal(err)
	}
	if r.Point.HasYaku() {
		t.Errorf("open tanyao disabled, yaku = %s", r.Point.Yaku)
	}
}

func TestFuComplex(t *testing.T) {
	r := mustEvaluate(t, "99m345678p234s77z 9m", &mahjong.ScoringContext{
		RoundWind: mahjong.WindEast,
		SeatWind:  mahjong.WindNorth,
	})
	if r.Point.Fan != 1 || r.Point.Fu != 40 {
		t.Errorf("fan/fu = %d/%d, want 1/40", r.Point.Fan, r.Point.Fu)
	}
	if c, d := r.Point.NonDealerTsumo(); c != 400 || d != 700 {
		t.Errorf("NonDealerTsumo = (%d, %d), want (400, 700)", c, d)
	}
}

func TestPractical(t *testing.T) {
	r := mustEvaluate(t, "345m789p2244z A1111m 2z", &mahjong.ScoringContext{
		RoundWind: mahjong.WindEast,
		SeatWind:  mahjong.WindWest,
		Riichi:    mahjong.RiichiSingle,
	})
	if r.Point.Fan != 2 || r.Point.Fu != 70 {
		t.Errorf("fan/fu = %d/%d, want 2/70", r.Point.Fan, r.Point.Fu)
	}
	if c, d := r.Point.NonDealerTsumo(); c != 1200 || d != 2300 {
		t.Errorf("NonDealerTsumo = (%d, %d), want (1200, 2300)", c, d)
	}
}

func TestPinfu(t *testing.T) {
	ctx := &mahjong.ScoringContext{RoundWind: mahjong.WindEast, SeatWind: mahjong.WindSouth}

	r := mustEvaluate(t, "23m456789m234p55s 1m", ctx)
	want := mahjong.NewYakuSet(mahjong.YakuMenzenTsumo, mahjong.YakuPinfu, mahjong.YakuIttsu)
	if r.Point.Yaku != want || r.Point.Fu != 20 {
		t.Errorf("tsumo: yaku = %s fu = %d, want %s 20", r.Point.Yaku, r.Point.Fu, want)
	}

	h := mustHand(t, "23m456789m234p55s 1m")
	h.Tsumo = false
	ron, err := mahjong.EvaluateHand(h, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want = mahjong.NewYakuSet(mahjong.YakuPinfu, mahjong.YakuIttsu)
	if ron.Point.Yaku != want || ron.Point.Fu != 30 || ron.Point.Fan != 3 {
		t.Errorf("ron: %+v, want pinfu ittsu 3 fan 30 fu", ron.Point)
	}
	if got := ron.Point.NonDealerRon(); got != 3900 {
		t.Errorf("NonDealerRon = %d, want 3900", got)
	}
}

func TestYakuCases(t *testing.T) {
	ctx := &mahjong.ScoringContext{RoundWind: mahjong.WindEast, SeatWind: mahjong.WindEast}
	testCases := []struct {
		hand string
		has  []mahjong.Yaku
		not  []mahjong.Yaku
	}{
		{"123m123p123s789s1z 1z", []mahjong.Yaku{mahjong.YakuSanshoku, mahjong.YakuChanta}, []mahjong.Yaku{mahjong.YakuJunchan}},
		{"123m123p123s789s9m 9m", []mahjong.Yaku{mahjong.YakuSanshoku, mahjong.YakuJunchan}, []mahjong.Yaku{mahjong.YakuChanta}},
		{"112233m456p555z7s 7s", []mahjong.Yaku{mahjong.YakuIipeikou, mahjong.YakuHaku, mahjong.YakuMenzenTsumo}, nil},
		{"112233m445566p7s 7s", []mahjong.Yaku{mahjong.YakuRyanpeikou}, []mahjong.Yaku{mahjong.YakuIipeikou}},
		{"222m222p222s5z P777z 5z", []mahjong.Yaku{mahjong.YakuSanshokuDoukou, mahjong.YakuChun, mahjong.YakuToitoi}, nil},
		{"P111z 234m 567m 99m 55z 5z", []mahjong.Yaku{mahjong.YakuRoundEast, mahjong.YakuSeatEast, mahjong.YakuHaku}, []mahjong.Yaku{mahjong.YakuMenzenTsumo}},
		{"555z666z77z 234m 11z 1z", []mahjong.Yaku{mahjong.YakuShousangen, mahjong.YakuHaku, mahjong.YakuHatsu, mahjong.YakuHonitsu}, []mahjong.Yaku{mahjong.YakuChun}},
		{"111m222m999p345s1z 1z", []mahjong.Yaku{mahjong.YakuSanankou}, []mahjong.Yaku{mahjong.YakuToitoi}},
		{"111m999p11s 22z P111z 2z", []mahjong.Yaku{mahjong.YakuToitoi, mahjong.YakuHonroutou}, []mahjong.Yaku{mahjong.YakuChanta}},
	}

	for _, tc := range testCases {
		r, err := mahjong.EvaluateHand(mustHand(t, tc.hand), ctx)
		if err != nil {
			t.Fatalf("%s: %v", tc.hand, err)
		}
		for _, y := range tc.has {
			if !r.Point.Yaku.Has(y) {
				t.Errorf("%s: yaku = %s, missing %s", tc.hand, r.Point.Yaku, y)
			}
		}
		for _, y := range tc.not {
			if r.Point.Yaku.Has(y) {
				t.Errorf("%s: yaku = %s, unexpected %s", tc.hand, r.Point.Yaku, y)
			}
		}
	}
}

func TestYakuman(t *testing.T) {
	ctx := &mahjong.ScoringContext{RoundWind: mahjong.WindEast, SeatWind: mahjong.WindSouth}
	testCases := []struct {
		hand string
		want mahjong.Yakuman
	}{
		{"1m9m1p9p1s9s1234567z 1z", mahjong.YakumanKokushi},
		{"111m333p555s777s9m 9m", mahjong.YakumanSuuankou},
		{"555z666z777z 234m 1p 1p", mahjong.YakumanDaisangen},
		{"111z222z333z555z6z 6z", mahjong.YakumanTsuuiisou},
		{"111z222z333z44z78m 9m", mahjong.YakumanShousuushii},
		{"223344s666s888s6z 6z", mahjong.YakumanRyuuiisou},
		{"111m999m111p 99p 99s 9s", mahjong.YakumanChinroutou},
		{"1112345678999m 5m", mahjong.YakumanChuuren},
	}
	for _, tc := range testCases {
		r := mustEvaluate(t, tc.hand, ctx)
		if !r.Point.Yakuman.Has(tc.want) {
			t.Errorf("%s: yakuman = %s, want %s", tc.hand, r.Point.Yakuman, tc.want)
		}
		if r.Point.Yaku != 0 || r.Point.Fan != 0 {
			t.Errorf("%s: yakuman hand scored yaku %s fan %d", tc.hand, r.Point.Yaku, r.Point.Fan)
		}
		if r.Point.NonDealerRon() < 32000 {
			t.Errorf("%s: NonDealerRon = %d", tc.hand, r.Point.NonDealerRon())
		}
	}
}

func TestSituationalYaku(t *testing.T) {
	const plain = "23m456789m234p55s 1m"
	const kan = "345m789p2244z A1111m 2z"
	testCases := []struct {
		hand  string
		tsumo bool
		ctx   mahjong.ScoringContext
		has   []mahjong.Yaku
		not   []mahjong.Yaku
	}{
		{plain, false, mahjong.ScoringContext{Riichi: mahjong.RiichiSingle, Ippatsu: true},
			[]mahjong.Yaku{mahjong.YakuRiichi, mahjong.YakuIppatsu}, nil},
		{plain, true, mahjong.ScoringContext{Riichi: mahjong.RiichiSingle, Ippatsu: true},
			[]mahjong.Yaku{mahjong.YakuRiichi, mahjong.YakuIppatsu, mahjong.YakuMenzenTsumo}, nil},
		// 两立直不计一发
		{plain, false, mahjong.ScoringContext{Riichi: mahjong.RiichiDouble, Ippatsu: true},
			[]mahjong.Yaku{mahjong.YakuDoubleRiichi}, []mahjong.Yaku{mahjong.YakuRiichi, mahjong.YakuIppatsu}},
		{plain, false, mahjong.ScoringContext{Ippatsu: true},
			nil, []mahjong.Yaku{mahjong.YakuIppatsu, mahjong.YakuRiichi}},
		{plain, true, mahjong.ScoringContext{Haitei: true}, []mahjong.Yaku{mahjong.YakuHaitei}, nil},
		{plain, false, mahjong.ScoringContext{Haitei: true}, nil, []mahjong.Yaku{mahjong.YakuHaitei}},
		{plain, false, mahjong.ScoringContext{Houtei: true}, []mahjong.Yaku{mahjong.YakuHoutei}, nil},
		{plain, true, mahjong.ScoringContext{Houtei: true}, nil, []mahjong.Yaku{mahjong.YakuHoutei}},
		{plain, false, mahjong.ScoringContext{Chankan: true}, []mahjong.Yaku{mahjong.YakuChankan}, nil},
		{plain, true, mahjong.ScoringContext{Chankan: true}, nil, []mahjong.Yaku{mahjong.YakuChankan}},
		{kan, true, mahjong.ScoringContext{Rinshan: true}, []mahjong.Yaku{mahjong.YakuRinshan}, nil},
		{kan, false, mahjong.ScoringContext{Rinshan: true}, nil, []mahjong.Yaku{mahjong.YakuRinshan}},
		{"A1111m A3333m M5555p 234s 9m 9m", true, mahjong.ScoringContext{},
			[]mahjong.Yaku{mahjong.YakuSankantsu}, []mahjong.Yaku{mahjong.YakuSanankou}},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			h := mustHand(t, tc.hand)
			h.Tsumo = tc.tsumo
			r, err := mahjong.EvaluateHand(h, &tc.ctx)
			if err != nil {
				t.Fatal(err)
			}
			for _, y := range tc.has {
				if !r.Point.Yaku.Has(y) {
					t.Errorf("%s: yaku = %s, missing %s", tc.hand, r.Point.Yaku, y)
				}
			}
			for _, y := range tc.not {
				if r.Point.Yaku.Has(y) {
					t.Errorf("%s: yaku = %s, unexpected %s", tc.hand, r.Point.Yaku, y)
				}
			}
		})
	}
}

func TestYakumanExclusive(t *testing.T) {
	ctx := &mahjong.ScoringContext{RoundWind: mahjong.WindEast, SeatWind: mahjong.WindSouth}
	testCases := []struct {
		hand string
		has  []mahjong.Yakuman
		not  []mahjong.Yakuman
	}{
		{"111z222z333z444z5z 5z", []mahjong.Yakuman{mahjong.YakumanDaisuushii, mahjong.YakumanTsuuiisou}, []mahjong.Yakuman{mahjong.YakumanShousuushii}},
		{"A1111m A3333m A5555m A7777m 9m 9m", []mahjong.Yakuman{mahjong.YakumanSuukantsu, mahjong.YakumanSuuankou}, nil},
		{"M1111m M3333m M5555p M7777s 9m 9m", []mahjong.Yakuman{mahjong.YakumanSuukantsu}, []mahjong.Yakuman{mahjong.YakumanSuuankou}},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			r := mustEvaluate(t, tc.hand, ctx)
			for _, y := range tc.has {
				if !r.Point.Yakuman.Has(y) {
					t.Errorf("%s: yakuman = %s, missing %s", tc.hand, r.Point.Yakuman, y)
				}
			}
			for _, y := range tc.not {
				if r.Point.Yakuman.Has(y) {
					t.Errorf("%s: yakuman = %s, unexpected %s", tc.hand, r.Point.Yakuman, y)
				}
			}
			if r.Point.YakumanCount != r.Point.Yakuman.Count() || r.Point.Limit != mahjong.LimitYakuman {
				t.Errorf("%s: count = %d limit = %s", tc.hand, r.Point.YakumanCount, r.Point.Limit)
			}
		})
	}
}

func TestBlessing(t *testing.T) {
	dealer := &mahjong.ScoringContext{SeatWind: mahjong.WindEast, Blessing: true}
	r := mustEvaluate(t, "123m456p789s1122z 2z", dealer)
	if !r.Point.Yakuman.Has(mahjong.YakumanTenhou) {
		t.Errorf("dealer blessing = %s, want Tenhou", r.Point.Yakuman)
	}
	if got := r.Point.DealerTsumo(); got != 16000 {
		t.Errorf("DealerTsumo = %d, want 16000", got)
	}

	child := &mahjong.ScoringContext{SeatWind: mahjong.WindNorth, Blessing: true}
	r = mustEvaluate(t, "123m456p789s1122z 2z", child)
	if !r.Point.Yakuman.Has(mahjong.YakumanChiihou) {
		t.Errorf("child blessing = %s, want Chiihou", r.Point.Yakuman)
	}
}

func TestDora(t *testing.T) {
	ctx := &mahjong.ScoringContext{
		RoundWind: mahjong.WindEast,
		SeatWind:  mahjong.WindSouth,
		Riichi:    mahjong.RiichiSingle,
		Dora:      []mahjong.Tile{mahjong.MustTile(mahjong.KindMan, 1)},
		UraDora:   []mahjong.Tile{mahjong.TileSouth},
	}
	r := mustEvaluate(t, "345m789p2244z A1111m 2z", ctx)
	if r.Point.Dora != 7 {
		t.Errorf("dora = %d, want 7", r.Point.Dora)
	}
	// 立直, 门前自摸, 自风南, 宝牌 7
	if r.Point.Fan != 10 || r.Point.Limit != mahjong.LimitBaiman {
		t.Errorf("fan = %d limit = %s, want 10 baiman", r.Point.Fan, r.Point.Limit)
	}

	ctx.Riichi = mahjong.RiichiNone
	r = mustEvaluate(t, "345m789p2244z A1111m 2z", ctx)
	if r.Point.Dora != 4 {
		t.Errorf("ura dora without riichi: dora = %d, want 4", r.Point.Dora)
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := mahjong.EvaluateHand(mustHand(t, "23m789m123789p11s 6m"), nil); !errors.Is(err, mahjong.ErrNotComplete) {
		t.Errorf("error = %v, want not complete", err)
	}

	ctx := &mahjong.ScoringContext{SeatWind: mahjong.Wind(7)}
	if _, err := mahjong.EvaluateHand(mustHand(t, "23m789m123789p11s 4m"), ctx); !errors.Is(err, mahjong.ErrInvalidTile) {
		t.Errorf("error = %v, want invalid tile", err)
	}

	broken := &mahjong.FinishedHand{
		Wait:   mahjong.WaitRyanmen,
		Melds:  []mahjong.Meld{{Kind: mahjong.MeldSequence, Tile: 0}},
		Head:   mahjong.TileEast,
		Finish: 0,
	}
	if _, err := mahjong.Evaluate(broken, nil); !errors.Is(err, mahjong.ErrInternalConsistency) {
		t.Errorf("error = %v, want internal consistency", err)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	ctx := &mahjong.ScoringContext{SeatWind: mahjong.WindWest, Riichi: mahjong.RiichiSingle}
	h := mustHand(t, "1112345678999m 5m")
	a, err := mahjong.EvaluateHand(h, ctx)
	if err != nil {
		t.Fatal(err)
	}
	b, err := mahjong.EvaluateHand(h, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if a.Point != b.Point {
		t.Errorf("evaluate twice: %+v != %+v", a.Point, b.Point)
	}
}
