package domain

import (
	"encoding/json"
	"time"
)

const (
	PollConfigID     = 1
	DefaultMeatLabel = "With Meat"

	MinPollOptions      = 2
	MaxPollOptions      = 12
	MaxOptionNameLength = 80
	MaxMeatLabelLength  = 40
)

type Metric string

const (
	MetricCalories Metric = "Calories"
	MetricProtein  Metric = "Protein"
	MetricCarbs    Metric = "Carbs"
	MetricFat      Metric = "Fat"
	MetricFiber    Metric = "Fiber"
)

// Metrics lists every nutrition metric in display order.
var Metrics = []Metric{MetricCalories, MetricProtein, MetricCarbs, MetricFat, MetricFiber}

type NutritionFacts map[Metric]string

// UnmarshalJSON accepts numeric values as well as strings; rows written
// before values were normalized to text hold plain numbers.
func (f *NutritionFacts) UnmarshalJSON(data []byte) error {
	var raw map[Metric]json.Number
	if err := json.Unmarshal(data, &raw); err == nil {
		out := make(NutritionFacts, len(raw))
		for k, v := range raw {
			out[k] = v.String()
		}
		*f = out
		return nil
	}

	var mixed map[Metric]any
	if err := json.Unmarshal(data, &mixed); err != nil {
		return err
	}
	out := make(NutritionFacts, len(mixed))
	for k, v := range mixed {
		out[k] = stringify(v)
	}
	*f = out
	return nil
}

type NutritionEntry struct {
	MeatLabel string         `json:"meatLabel,omitempty"`
	Meat      NutritionFacts `json:"meat,omitempty"`
	Veggie    NutritionFacts `json:"veggie,omitempty"`
}

type Nutrition map[string]NutritionEntry

// PollConfig is the single active poll. It is replaced as a whole by the
// admin and never edited in place.
type PollConfig struct {
	Options   []string   `json:"pollOptions"`
	Nutrition Nutrition  `json:"nutrition"`
	MeatLabel string     `json:"meatLabel"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// HasOption reports whether name is one of the active options. The match is
// exact, unlike the case-insensitive uniqueness rule applied on replace.
func (c *PollConfig) HasOption(name string) bool {
	for _, opt := range c.Options {
		if opt == name {
			return true
		}
	}
	return false
}

// UpgradeMeatLabels fills in the per-option meat label for entries stored
// before labels existed. It only touches the in-memory value.
func (c *PollConfig) UpgradeMeatLabels() {
	if c.MeatLabel == "" {
		c.MeatLabel = DefaultMeatLabel
	}
	if c.Nutrition == nil {
		c.Nutrition = Nutrition{}
	}
	for _, opt := range c.Options {
		entry := c.Nutrition[opt]
		if entry.MeatLabel == "" {
			entry.MeatLabel = c.MeatLabel
			c.Nutrition[opt] = entry
		}
	}
}

// DefaultPollConfig returns the built-in poll used on first startup. Entries
// carry no meat label; reads supply it from MeatLabel.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		Options: []string{
			"Mushroom Soup",
			"Plant-Based Meatballs",
			"Chickpea Curry",
			"Veggie Taco Bowl",
		},
		Nutrition: Nutrition{
			"Mushroom Soup": {
				Meat:   facts("340", "24g", "19g", "16g", "2g"),
				Veggie: facts("280", "12g", "30g", "10g", "6g"),
			},
			"Plant-Based Meatballs": {
				Meat:   facts("460", "31g", "33g", "22g", "3g"),
				Veggie: facts("420", "22g", "38g", "18g", "8g"),
			},
			"Chickpea Curry": {
				Meat:   facts("510", "28g", "45g", "21g", "5g"),
				Veggie: facts("430", "17g", "51g", "14g", "11g"),
			},
			"Veggie Taco Bowl": {
				Meat:   facts("540", "34g", "41g", "24g", "6g"),
				Veggie: facts("470", "19g", "49g", "17g", "12g"),
			},
		},
		MeatLabel: DefaultMeatLabel,
	}
}

func facts(calories, protein, carbs, fat, fiber string) NutritionFacts {
	return NutritionFacts{
		MetricCalories: calories,
		MetricProtein:  protein,
		MetricCarbs:    carbs,
		MetricFat:      fat,
		MetricFiber:    fiber,
	}
}
