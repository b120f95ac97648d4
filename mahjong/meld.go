package mahjong

// 面子类型
type MeldKind int

const (
	MeldSequence   MeldKind = iota // 手中顺子
	MeldChi                        // 吃
	MeldTriplet                    // 暗刻
	MeldTripletRon                 // 荣和完成的刻子, 门前但按明刻计
	MeldPon                        // 碰
	MeldClosedKan                  // 暗杠
	MeldOpenKan                    // 明杠
	MeldPair                       // 七对子的对子
)

var meldKindNames = []string{"sequence", "chi", "triplet", "triplet-ron", "pon", "closed-kan", "open-kan", "pair"}

func (k MeldKind) String() string {
	if k < 0 || int(k) >= len(meldKindNames) {
		return "unknown"
	}
	return meldKindNames[k]
}

func (k MeldKind) IsSequential() bool {
	return k == MeldSequence || k == MeldChi
}

func (k MeldKind) IsIdentical() bool {
	switch k {
	case MeldTriplet, MeldTripletRon, MeldPon, MeldClosedKan, MeldOpenKan:
		return true
	}
	return false
}

// IsConcealed 不破坏门前
func (k MeldKind) IsConcealed() bool {
	switch k {
	case MeldSequence, MeldTriplet, MeldTripletRon, MeldClosedKan, MeldPair:
		return true
	}
	return false
}

// IsOpen 非自摸完成的面子, MeldTripletRon 同时是门前与明
func (k MeldKind) IsOpen() bool {
	switch k {
	case MeldChi, MeldTripletRon, MeldPon, MeldOpenKan:
		return true
	}
	return false
}

func (k MeldKind) IsKan() bool {
	return k == MeldClosedKan || k == MeldOpenKan
}

func (k MeldKind) IsPair() bool {
	return k == MeldPair
}

// Meld 面子, 顺子以最小的牌为锚
type Meld struct {
	Kind MeldKind
	Tile Tile
}

func (m Meld) String() string {
	return m.Kind.String() + ":" + m.Tile.String()
}

func (m Meld) Tiles() []Tile {
	switch {
	case m.Kind.IsSequential():
		return []Tile{m.Tile, m.Tile + 1, m.Tile + 2}
	case m.Kind.IsKan():
		return []Tile{m.Tile, m.Tile, m.Tile, m.Tile}
	case m.Kind.IsPair():
		return []Tile{m.Tile, m.Tile}
	default:
		return []Tile{m.Tile, m.Tile, m.Tile}
	}
}

func (m Meld) Suit() Kind {
	return m.Tile.Kind()
}

func (m Meld) isSimple() bool {
	if m.Kind.IsSequential() {
		return m.Tile.Num() != 1 && m.Tile.Num() != 7
	}
	return m.Tile.IsSimple()
}

// 含幺九
func (m Meld) hasTerminalOrHonor() bool {
	return !m.isSimple()
}

// 含老头, 不含字牌
func (m Meld) hasTerminal() bool {
	if m.Kind.IsSequential() {
		return m.Tile.Num() == 1 || m.Tile.Num() == 7
	}
	return m.Tile.IsTerminal()
}

func (m Meld) isTerminalTriplet() bool {
	return m.Kind.IsIdentical() && m.Tile.IsTerminal()
}

func (m Meld) isGreen() bool {
	if m.Kind.IsSequential() {
		return m.Tile == MustTile(KindSou, 2)
	}
	return m.Tile.IsGreen()
}
