package mahjong

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Result 手牌的最高得点及对应拆解
type Result struct {
	Point Point
	Hand  FinishedHand
}

// checkShape 拆解结构是否完整
func checkShape(fh *FinishedHand) error {
	var err *Error
	switch fh.Wait {
	case WaitKokushi:
		if len(fh.Melds) != 0 || !fh.Head.IsTerminalOrHonor() {
			err = newError(KindInternalConsistency, "thirteen orphans with %d melds", len(fh.Melds))
		}
	case WaitChiitoi:
		if len(fh.Melds) != PairCount || fh.Head != TileNull {
			err = newError(KindInternalConsistency, "seven pairs with %d pairs", len(fh.Melds))
		}
		for _, m := range fh.Melds {
			if err == nil && !m.Kind.IsPair() {
				err = newError(KindInternalConsistency, "seven pairs holds %s", m)
			}
		}
	default:
		if len(fh.Melds) != MeldCount || !fh.Head.IsValid() {
			err = newError(KindInternalConsistency, "standard shape with %d melds", len(fh.Melds))
		}
		for _, m := range fh.Melds {
			if err == nil && (m.Kind.IsPair() || !m.Tile.IsValid()) {
				err = newError(KindInternalConsistency, "standard shape holds %s", m)
			}
		}
	}
	if err != nil {
		err.WithContext("wait", fh.Wait.String()).
			WithContext("melds", fh.Melds).
			WithContext("head", fh.Head.String()).
			WithContext("finish", fh.Finish.String())
		logger.Log.WithFields(err.Context).Errorf("evaluate: %s", err.Message)
		return err
	}
	return nil
}

// Evaluate 计算一种拆解的得点
func Evaluate(fh *FinishedHand, ctx *ScoringContext) (Point, error) {
	if ctx == nil {
		ctx = &ScoringContext{}
	}
	if err := ctx.validate(); err != nil {
		return Point{}, err
	}
	if err := checkShape(fh); err != nil {
		return Point{}, err
	}

	in := &yakuInput{
		fh:        fh,
		ctx:       ctx,
		rule:      ctx.rule(),
		concealed: fh.IsConcealed(),
	}
	p := Point{Concealed: in.concealed}

	p.Yakuman = checkYakuman(in)
	if p.YakumanCount = p.Yakuman.Count(); p.YakumanCount > 0 {
		p.Limit = LimitYakuman
		return p, nil
	}

	p.Yaku = checkYaku(in)
	p.Fu = calcFu(fh, ctx, in.concealed)
	if in.concealed && !fh.Wait.IsSpecial() &&
		((fh.Tsumo && p.Fu == 20) || (!fh.Tsumo && p.Fu == 30)) {
		p.Yaku = p.Yaku.Add(YakuPinfu)
	}
	p.Dora = ctx.doraCount(fh)
	p.Fan = p.Yaku.Fan(in.concealed) + p.Dora
	p.settle(in.rule)
	return p, nil
}

// EvaluateHand 枚举所有拆解取最高得点
func EvaluateHand(h *Hand, ctx *ScoringContext) (*Result, error) {
	if h.Finish == TileNull {
		return nil, newError(KindInvalidHand, "finishing tile not set")
	}
	patterns, err := FinishPatterns(h)
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return nil, ErrNotComplete
	}

	var best *Result
	for i := range patterns {
		p, err := Evaluate(&patterns[i], ctx)
		if err != nil {
			return nil, err
		}
		if best == nil || best.Point.Less(p) {
			best = &Result{Point: p, Hand: patterns[i]}
		}
	}
	return best, nil
}
