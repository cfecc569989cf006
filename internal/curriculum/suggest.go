package curriculum

// Area is a broad curriculum area used when a caller asks for model
// suggestions instead of naming a model directly.
type Area string

const (
	AreaNumber      Area = "number"
	AreaMoney       Area = "money"
	AreaMeasurement Area = "measurement"
	AreaRatio       Area = "ratio"
)

// suggestion pairs a model id with the years it suits best.
type suggestion struct {
	modelID  string
	minYear  int
	maxYear  int
}

// suggestionTable ranks model ids per area, most relevant first.
var suggestionTable = map[Area][]suggestion{
	AreaNumber: {
		{"ADDITION", 1, 6},
		{"SUBTRACTION", 1, 6},
		{"MULTIPLICATION", 2, 6},
		{"DIVISION", 3, 6},
	},
	AreaMoney: {
		{"ADDITION", 1, 6},
		{"UNIT_RATE", 4, 6},
		{"PERCENTAGE", 5, 6},
		{"SUBTRACTION", 1, 6},
	},
	AreaMeasurement: {
		{"MULTIPLICATION", 2, 6},
		{"DIVISION", 3, 6},
		{"ADDITION", 1, 6},
	},
	AreaRatio: {
		{"UNIT_RATE", 4, 6},
		{"PERCENTAGE", 5, 6},
		{"DIVISION", 3, 6},
	},
}

// SuggestModels returns model ids suited to a curriculum area and year,
// ranked by relevance. When an area is unknown or a year filters
// everything out, it falls back to the number strand so callers always
// receive at least one suggestion.
func SuggestModels(area Area, year int) []string {
	rows, ok := suggestionTable[area]
	if !ok {
		rows = suggestionTable[AreaNumber]
	}
	var ids []string
	for _, s := range rows {
		if year >= s.minYear && year <= s.maxYear {
			ids = append(ids, s.modelID)
		}
	}
	if len(ids) == 0 {
		// Early years always have addition and subtraction available.
		ids = []string{"ADDITION", "SUBTRACTION"}
	}
	return ids
}
