package mahjong

import (
	"github.com/spf13/viper"
)

// Rule 可配置的规则项
type Rule struct {
	DoubleWindHeadFu bool `mapstructure:"double_wind_head_fu"` // 连风牌雀头计 4 符
	OpenTanyao       bool `mapstructure:"open_tanyao"`         // 食断
	KazoeYakuman     bool `mapstructure:"kazoe_yakuman"`       // 累计役满
	KiriageMangan    bool `mapstructure:"kiriage_mangan"`      // 切上满贯
}

var ruleDefaults = map[string]any{
	"double_wind_head_fu": true,
	"open_tanyao":         true,
	"kazoe_yakuman":       true,
	"kiriage_mangan":      false,
}

func DefaultRule() *Rule {
	return &Rule{
		DoubleWindHeadFu: true,
		OpenTanyao:       true,
		KazoeYakuman:     true,
	}
}

// LoadRule 读取 yaml 规则文件, 未配置的项取默认值
func LoadRule(file string) (*Rule, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)
	for k, v := range ruleDefaults {
		vp.SetDefault(k, v)
	}
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	rule := &Rule{}
	if err := vp.Unmarshal(rule); err != nil {
		return nil, err
	}
	return rule, nil
}
