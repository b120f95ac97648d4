package mahjong

// ScoringContext 和了时的场况
type ScoringContext struct {
	RoundWind Wind
	SeatWind  Wind
	Riichi    RiichiState
	Ippatsu   bool
	Rinshan   bool // 岭上
	Chankan   bool // 抢杠
	Haitei    bool // 海底
	Houtei    bool // 河底
	Blessing  bool // 天和/地和
	Dora      []Tile
	UraDora   []Tile // 仅立直时计入
	Rule      *Rule  // nil 时取默认规则
}

func (c *ScoringContext) IsDealer() bool {
	return c.SeatWind == WindEast
}

func (c *ScoringContext) rule() *Rule {
	if c.Rule == nil {
		return DefaultRule()
	}
	return c.Rule
}

func (c *ScoringContext) validate() error {
	if _, err := c.RoundWind.Tile(); err != nil {
		return err
	}
	if _, err := c.SeatWind.Tile(); err != nil {
		return err
	}
	for _, dora := range [][]Tile{c.Dora, c.UraDora} {
		for _, t := range dora {
			if !t.IsValid() {
				return newError(KindInvalidTile, "dora tile %d out of range", int32(t))
			}
		}
	}
	return nil
}

// DoraFromIndicators 由指示牌列表得到宝牌列表
func DoraFromIndicators(indicators []Tile) ([]Tile, error) {
	dora := make([]Tile, 0, len(indicators))
	for _, ind := range indicators {
		t, err := NextDora(ind)
		if err != nil {
			return nil, err
		}
		dora = append(dora, t)
	}
	return dora, nil
}

func (c *ScoringContext) doraCount(fh *FinishedHand) int {
	count := 0
	tiles := fh.Tiles()
	countIn := func(dora []Tile) {
		for _, d := range dora {
			for _, t := range tiles {
				if t == d {
					count++
				}
			}
		}
	}
	countIn(c.Dora)
	if c.Riichi != RiichiNone {
		countIn(c.UraDora)
	}
	return count
}
