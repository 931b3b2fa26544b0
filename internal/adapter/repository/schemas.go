package repository

import "github.com/eslsoft/hskdeck/pkg/filterexpr"

var listLearnedWordsSchema = filterexpr.Schema{
	Fields: map[string]filterexpr.FieldRule{
		"level": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:  "Level",
				filterexpr.OpGTE: "LevelMin",
				filterexpr.OpLTE: "LevelMax",
			},
		},
		"hanzi": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Hanzi",
				filterexpr.OpSW: "HanziPrefix",
			},
		},
		"pinyin": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpSW: "PinyinPrefix"},
		},
		"keyword": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Keyword"},
		},
		"id": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpIN: "IDs"},
		},
		"mastery": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:  "Mastery",
				filterexpr.OpGTE: "MasteryMin",
				filterexpr.OpLTE: "MasteryMax",
			},
		},
		"last_reviewed": {
			Kind: filterexpr.KindTimestamp,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "ReviewedAfter",
				filterexpr.OpLTE: "ReviewedBefore",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		Keys:     []string{"position", "level", "pinyin", "hanzi", "mastery", "last_reviewed"},
		Default:  []filterexpr.OrderKey{{Key: "position"}},
		Fallback: filterexpr.OrderKey{Key: "position"},
	},
}
