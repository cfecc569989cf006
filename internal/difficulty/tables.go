package difficulty

import (
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// progressionTable holds parameters for all 24 grid positions of one
// model, indexed [year-1][subLevel-1]. Arrays keep the tables
// exhaustive by construction.
type progressionTable [6][4]mathmodel.Params

var additionTable = progressionTable{
	{ // year 1
		{MaxValue: 5, OperandCount: 2, Carrying: mathmodel.FreqNever},
		{MaxValue: 10, OperandCount: 2, Carrying: mathmodel.FreqNever},
		{MaxValue: 10, OperandCount: 2, Carrying: mathmodel.FreqRare},
		{MaxValue: 20, OperandCount: 2, Carrying: mathmodel.FreqRare},
	},
	{ // year 2
		{MaxValue: 20, OperandCount: 2, Carrying: mathmodel.FreqRare},
		{MaxValue: 30, OperandCount: 2, Carrying: mathmodel.FreqRare},
		{MaxValue: 40, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 50, OperandCount: 2, Carrying: mathmodel.FreqCommon},
	},
	{ // year 3
		{MaxValue: 50, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 60, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 80, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 100, OperandCount: 2, Carrying: mathmodel.FreqCommon},
	},
	{ // year 4
		{MaxValue: 200, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 400, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 700, OperandCount: 2, Carrying: mathmodel.FreqCommon},
		{MaxValue: 1000, OperandCount: 2, Carrying: mathmodel.FreqCommon},
	},
	{ // year 5
		{MaxValue: 1000, OperandCount: 3, Carrying: mathmodel.FreqCommon},
		{MaxValue: 2000, OperandCount: 3, Carrying: mathmodel.FreqCommon},
		{MaxValue: 5000, OperandCount: 3, Carrying: mathmodel.FreqCommon},
		{MaxValue: 10000, OperandCount: 3, Carrying: mathmodel.FreqCommon, DecimalPlaces: 2},
	},
	{ // year 6
		{MaxValue: 10000, OperandCount: 3, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
		{MaxValue: 20000, OperandCount: 3, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
		{MaxValue: 50000, OperandCount: 3, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
		{MaxValue: 100000, OperandCount: 3, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
	},
}

var subtractionTable = progressionTable{
	{ // year 1
		{MaxValue: 5, Carrying: mathmodel.FreqNever},
		{MaxValue: 10, Carrying: mathmodel.FreqNever},
		{MaxValue: 10, Carrying: mathmodel.FreqRare},
		{MaxValue: 20, Carrying: mathmodel.FreqRare},
	},
	{ // year 2
		{MaxValue: 20, Carrying: mathmodel.FreqRare},
		{MaxValue: 30, Carrying: mathmodel.FreqRare},
		{MaxValue: 40, Carrying: mathmodel.FreqCommon},
		{MaxValue: 50, Carrying: mathmodel.FreqCommon},
	},
	{ // year 3
		{MaxValue: 50, Carrying: mathmodel.FreqCommon},
		{MaxValue: 60, Carrying: mathmodel.FreqCommon},
		{MaxValue: 80, Carrying: mathmodel.FreqCommon},
		{MaxValue: 100, Carrying: mathmodel.FreqCommon},
	},
	{ // year 4
		{MaxValue: 200, Carrying: mathmodel.FreqCommon},
		{MaxValue: 400, Carrying: mathmodel.FreqCommon},
		{MaxValue: 700, Carrying: mathmodel.FreqCommon},
		{MaxValue: 1000, Carrying: mathmodel.FreqCommon},
	},
	{ // year 5
		{MaxValue: 1000, Carrying: mathmodel.FreqCommon},
		{MaxValue: 2000, Carrying: mathmodel.FreqCommon},
		{MaxValue: 5000, Carrying: mathmodel.FreqCommon},
		{MaxValue: 10000, Carrying: mathmodel.FreqCommon, DecimalPlaces: 2},
	},
	{ // year 6
		{MaxValue: 10000, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
		{MaxValue: 20000, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
		{MaxValue: 50000, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
		{MaxValue: 100000, Carrying: mathmodel.FreqAlways, DecimalPlaces: 2},
	},
}

var multiplicationTable = progressionTable{
	{ // year 1
		{MaxValue: 5, MaxMultiplier: 2},
		{MaxValue: 5, MaxMultiplier: 2},
		{MaxValue: 5, MaxMultiplier: 3},
		{MaxValue: 5, MaxMultiplier: 5},
	},
	{ // year 2
		{MaxValue: 5, MaxMultiplier: 5},
		{MaxValue: 10, MaxMultiplier: 5},
		{MaxValue: 10, MaxMultiplier: 10},
		{MaxValue: 12, MaxMultiplier: 10},
	},
	{ // year 3
		{MaxValue: 12, MaxMultiplier: 10},
		{MaxValue: 12, MaxMultiplier: 12},
		{MaxValue: 20, MaxMultiplier: 12},
		{MaxValue: 50, MaxMultiplier: 12},
	},
	{ // year 4
		{MaxValue: 99, MaxMultiplier: 9},
		{MaxValue: 99, MaxMultiplier: 12},
		{MaxValue: 300, MaxMultiplier: 12},
		{MaxValue: 999, MaxMultiplier: 9},
	},
	{ // year 5
		{MaxValue: 999, MaxMultiplier: 12},
		{MaxValue: 999, MaxMultiplier: 25},
		{MaxValue: 999, MaxMultiplier: 50},
		{MaxValue: 999, MaxMultiplier: 99},
	},
	{ // year 6
		{MaxValue: 999, MaxMultiplier: 99, DecimalPlaces: 1},
		{MaxValue: 999, MaxMultiplier: 99, DecimalPlaces: 1},
		{MaxValue: 999, MaxMultiplier: 99, DecimalPlaces: 2},
		{MaxValue: 9999, MaxMultiplier: 99, DecimalPlaces: 2},
	},
}

var divisionTable = progressionTable{
	{ // year 1
		{MaxValue: 5, MaxMultiplier: 2},
		{MaxValue: 5, MaxMultiplier: 2},
		{MaxValue: 10, MaxMultiplier: 2},
		{MaxValue: 10, MaxMultiplier: 5},
	},
	{ // year 2
		{MaxValue: 10, MaxMultiplier: 5},
		{MaxValue: 10, MaxMultiplier: 5},
		{MaxValue: 12, MaxMultiplier: 10},
		{MaxValue: 12, MaxMultiplier: 10},
	},
	{ // year 3
		{MaxValue: 12, MaxMultiplier: 10},
		{MaxValue: 12, MaxMultiplier: 12},
		{MaxValue: 20, MaxMultiplier: 12},
		{MaxValue: 20, MaxMultiplier: 12, AllowRemainder: true},
	},
	{ // year 4
		{MaxValue: 50, MaxMultiplier: 12, AllowRemainder: true},
		{MaxValue: 50, MaxMultiplier: 12, AllowRemainder: true},
		{MaxValue: 80, MaxMultiplier: 12, AllowRemainder: true},
		{MaxValue: 100, MaxMultiplier: 12, AllowRemainder: true},
	},
	{ // year 5
		{MaxValue: 100, MaxMultiplier: 12, AllowRemainder: true},
		{MaxValue: 150, MaxMultiplier: 15, AllowRemainder: true},
		{MaxValue: 200, MaxMultiplier: 20, AllowRemainder: true},
		{MaxValue: 300, MaxMultiplier: 25, AllowRemainder: true},
	},
	{ // year 6
		{MaxValue: 300, MaxMultiplier: 25, AllowRemainder: true},
		{MaxValue: 400, MaxMultiplier: 25, AllowRemainder: true},
		{MaxValue: 500, MaxMultiplier: 25, AllowRemainder: true},
		{MaxValue: 500, MaxMultiplier: 50, AllowRemainder: true},
	},
}

var percentageTable = progressionTable{
	{ // year 1: halves of small amounts only
		{MaxValue: 20, PercentValues: []int{50}},
		{MaxValue: 20, PercentValues: []int{50}},
		{MaxValue: 40, PercentValues: []int{50}},
		{MaxValue: 40, PercentValues: []int{50, 100}},
	},
	{ // year 2
		{MaxValue: 40, PercentValues: []int{50, 100}},
		{MaxValue: 60, PercentValues: []int{50, 100}},
		{MaxValue: 60, PercentValues: []int{25, 50, 100}},
		{MaxValue: 100, PercentValues: []int{25, 50, 100}},
	},
	{ // year 3
		{MaxValue: 100, PercentValues: []int{25, 50, 100}},
		{MaxValue: 100, PercentValues: []int{10, 25, 50}},
		{MaxValue: 150, PercentValues: []int{10, 25, 50}},
		{MaxValue: 200, PercentValues: []int{10, 25, 50, 75}},
	},
	{ // year 4
		{MaxValue: 200, PercentValues: []int{10, 25, 50, 75}},
		{MaxValue: 300, PercentValues: []int{10, 20, 25, 50, 75}},
		{MaxValue: 300, PercentValues: []int{5, 10, 20, 25, 50}},
		{MaxValue: 400, PercentValues: []int{5, 10, 20, 25, 50, 75}},
	},
	{ // year 5
		{MaxValue: 400, PercentValues: []int{5, 10, 20, 25, 40, 75}},
		{MaxValue: 500, PercentValues: []int{5, 10, 15, 20, 40, 75}},
		{MaxValue: 500, PercentValues: []int{5, 15, 30, 35, 60, 85}, DecimalPlaces: 2},
		{MaxValue: 600, PercentValues: []int{5, 15, 30, 35, 60, 85}, DecimalPlaces: 2},
	},
	{ // year 6
		{MaxValue: 600, PercentValues: []int{4, 12, 15, 30, 65, 85}, DecimalPlaces: 2},
		{MaxValue: 800, PercentValues: []int{4, 12, 15, 30, 65, 85}, DecimalPlaces: 2},
		{MaxValue: 800, PercentValues: []int{3, 7, 12, 17, 33, 67}, DecimalPlaces: 2},
		{MaxValue: 1000, PercentValues: []int{3, 7, 12, 17, 33, 67}, DecimalPlaces: 2},
	},
}

var unitRateTable = progressionTable{
	{ // year 1: whole-pound prices, tiny quantities
		{MaxValue: 2, MaxMultiplier: 2, DecimalPlaces: 2},
		{MaxValue: 3, MaxMultiplier: 2, DecimalPlaces: 2},
		{MaxValue: 3, MaxMultiplier: 3, DecimalPlaces: 2},
		{MaxValue: 5, MaxMultiplier: 3, DecimalPlaces: 2},
	},
	{ // year 2
		{MaxValue: 5, MaxMultiplier: 3, DecimalPlaces: 2},
		{MaxValue: 5, MaxMultiplier: 4, DecimalPlaces: 2},
		{MaxValue: 8, MaxMultiplier: 4, DecimalPlaces: 2},
		{MaxValue: 10, MaxMultiplier: 4, DecimalPlaces: 2},
	},
	{ // year 3
		{MaxValue: 10, MaxMultiplier: 4, DecimalPlaces: 2},
		{MaxValue: 10, MaxMultiplier: 5, DecimalPlaces: 2},
		{MaxValue: 12, MaxMultiplier: 5, DecimalPlaces: 2},
		{MaxValue: 15, MaxMultiplier: 6, DecimalPlaces: 2},
	},
	{ // year 4
		{MaxValue: 15, MaxMultiplier: 6, DecimalPlaces: 2},
		{MaxValue: 20, MaxMultiplier: 6, DecimalPlaces: 2},
		{MaxValue: 20, MaxMultiplier: 8, DecimalPlaces: 2},
		{MaxValue: 25, MaxMultiplier: 8, DecimalPlaces: 2},
	},
	{ // year 5
		{MaxValue: 25, MaxMultiplier: 8, DecimalPlaces: 2},
		{MaxValue: 30, MaxMultiplier: 10, DecimalPlaces: 2},
		{MaxValue: 40, MaxMultiplier: 10, DecimalPlaces: 2},
		{MaxValue: 50, MaxMultiplier: 10, DecimalPlaces: 2},
	},
	{ // year 6
		{MaxValue: 50, MaxMultiplier: 12, DecimalPlaces: 2},
		{MaxValue: 60, MaxMultiplier: 12, DecimalPlaces: 2},
		{MaxValue: 80, MaxMultiplier: 12, DecimalPlaces: 2},
		{MaxValue: 100, MaxMultiplier: 12, DecimalPlaces: 2},
	},
}

// tables maps each supported model to its progression table.
var tables = map[mathmodel.Operation]*progressionTable{
	mathmodel.OpAddition:       &additionTable,
	mathmodel.OpSubtraction:    &subtractionTable,
	mathmodel.OpMultiplication: &multiplicationTable,
	mathmodel.OpDivision:       &divisionTable,
	mathmodel.OpPercentage:     &percentageTable,
	mathmodel.OpUnitRate:       &unitRateTable,
}
