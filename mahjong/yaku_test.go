package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestYakuTable(t *testing.T) {
	for y := mahjong.Yaku(0); y < mahjong.YakuCount; y++ {
		if y.Fan(true) == 0 || y.Name() == "" || y.String() == "" {
			t.Errorf("yaku %d has no table entry", y)
		}
		if y.Fan(false) > y.Fan(true) {
			t.Errorf("%s: open fan %d above closed fan %d", y, y.Fan(false), y.Fan(true))
		}
	}
	for y := mahjong.Yakuman(0); y < mahjong.YakumanCount; y++ {
		if y.Name() == "" || y.Count() != 1 {
			t.Errorf("yakuman %d has no table entry", y)
		}
	}

	if mahjong.YakuChinitsu.Fan(false) != 5 || mahjong.YakuPinfu.Fan(false) != 0 {
		t.Error("open fan values wrong")
	}
	if mahjong.YakuRiichi.Name() != "立直" || mahjong.YakumanKokushi.Name() != "国士無双" {
		t.Error("display names wrong")
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in, want mahjong.YakuSet
	}{
		{
			mahjong.NewYakuSet(mahjong.YakuChinitsu, mahjong.YakuHonitsu),
			mahjong.NewYakuSet(mahjong.YakuChinitsu),
		},
		{
			mahjong.NewYakuSet(mahjong.YakuRyanpeikou, mahjong.YakuIipeikou, mahjong.YakuTanyao),
			mahjong.NewYakuSet(mahjong.YakuRyanpeikou, mahjong.YakuTanyao),
		},
		{
			mahjong.NewYakuSet(mahjong.YakuJunchan, mahjong.YakuChanta),
			mahjong.NewYakuSet(mahjong.YakuJunchan),
		},
		{
			mahjong.NewYakuSet(mahjong.YakuHonroutou, mahjong.YakuChanta, mahjong.YakuToitoi),
			mahjong.NewYakuSet(mahjong.YakuHonroutou, mahjong.YakuToitoi),
		},
	}
	for _, tc := range testCases {
		got := tc.in.Normalize()
		if got != tc.want {
			t.Errorf("Normalize(%s) = %s, want %s", tc.in, got, tc.want)
		}
		if again := got.Normalize(); again != got {
			t.Errorf("Normalize not idempotent: %s -> %s", got, again)
		}
	}
}

func TestYakuSetNames(t *testing.T) {
	s := mahjong.NewYakuSet(mahjong.YakuSanshoku, mahjong.YakuTanyao)
	open := s.Names(false)
	if len(open) != 2 || open[0] != "断么九" || open[1] != "三色同順↓" {
		t.Errorf("Names(open) = %v", open)
	}
	if s.Fan(true) != 3 || s.Fan(false) != 2 {
		t.Errorf("Fan = %d/%d, want 3/2", s.Fan(true), s.Fan(false))
	}
	if s.Len() != 2 || s.Remove(mahjong.YakuTanyao).Has(mahjong.YakuTanyao) {
		t.Error("YakuSet bookkeeping wrong")
	}
}
