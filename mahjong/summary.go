package mahjong

// Summary 结算展示用的得点信息
type Summary struct {
	YakumanCount int      `json:"yakuman_count"`
	Fan          int      `json:"fan"`
	Fu           int      `json:"fu"`
	Dora         int      `json:"dora"`
	BasePoint    int      `json:"base_point"`
	Limit        string   `json:"limit,omitempty"`
	Yaku         []string `json:"yaku"`
	Yakuman      []string `json:"yakuman,omitempty"`
	Concealed    bool     `json:"concealed"`
	Payment      Payment  `json:"payment"`
}

func (p Point) Summary() Summary {
	return Summary{
		YakumanCount: p.YakumanCount,
		Fan:          p.Fan,
		Fu:           p.Fu,
		Dora:         p.Dora,
		BasePoint:    p.BasePoint,
		Limit:        p.Limit.String(),
		Yaku:         p.Yaku.Names(p.Concealed),
		Yakuman:      p.Yakuman.Names(),
		Concealed:    p.Concealed,
		Payment:      p.Payment(),
	}
}
