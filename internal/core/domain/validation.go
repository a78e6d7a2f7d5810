package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidatedConfig is an admin payload that passed ValidateConfig. Option
// names are trimmed and keep their submitted order.
type ValidatedConfig struct {
	Options   []string
	Nutrition Nutrition
}

// ValidateConfig checks an admin-submitted option list and nutrition table as
// decoded from JSON (use json.Decoder.UseNumber to keep numbers verbatim).
// Rules run in a fixed order and the first failure is returned as a
// *ValidationError.
func ValidateConfig(options, nutrition any) (ValidatedConfig, error) {
	rawOptions, ok := options.([]any)
	if !ok {
		return ValidatedConfig{}, invalidf("pollOptions must be a list")
	}

	cleaned := make([]string, 0, len(rawOptions))
	seen := make(map[string]struct{}, len(rawOptions))
	for _, raw := range rawOptions {
		s, ok := raw.(string)
		if !ok {
			return ValidatedConfig{}, invalidf("Each poll option must be text")
		}
		name := strings.TrimSpace(s)
		if name == "" {
			return ValidatedConfig{}, invalidf("Poll option names cannot be empty")
		}
		if utf8.RuneCountInString(name) > MaxOptionNameLength {
			return ValidatedConfig{}, invalidf("Poll option names must be %d characters or less", MaxOptionNameLength)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return ValidatedConfig{}, invalidf("Poll options must be unique")
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, name)
	}

	if len(cleaned) < MinPollOptions {
		return ValidatedConfig{}, invalidf("At least %d poll options are required", MinPollOptions)
	}
	if len(cleaned) > MaxPollOptions {
		return ValidatedConfig{}, invalidf("At most %d poll options are allowed", MaxPollOptions)
	}

	table, ok := nutrition.(map[string]any)
	if !ok {
		return ValidatedConfig{}, invalidf("nutrition must be an object")
	}

	normalized := make(Nutrition, len(cleaned))
	for _, name := range cleaned {
		entry, ok := table[name].(map[string]any)
		if !ok {
			return ValidatedConfig{}, invalidf("Missing nutrition data for: %s", name)
		}

		meat, meatOK := entry["meat"].(map[string]any)
		veggie, veggieOK := entry["veggie"].(map[string]any)
		if !meatOK || !veggieOK {
			return ValidatedConfig{}, invalidf("Nutrition for %s must include meat and veggie sections", name)
		}

		label := DefaultMeatLabel
		if raw, ok := entry["meatLabel"]; ok && raw != nil {
			if s := strings.TrimSpace(stringify(raw)); s != "" {
				label = s
			}
		}
		if utf8.RuneCountInString(label) > MaxMeatLabelLength {
			return ValidatedConfig{}, invalidf("Meat label for %s must be %d characters or less", name, MaxMeatLabelLength)
		}

		out := NutritionEntry{
			MeatLabel: label,
			Meat:      make(NutritionFacts, len(Metrics)),
			Veggie:    make(NutritionFacts, len(Metrics)),
		}
		for _, metric := range Metrics {
			m, inMeat := meat[string(metric)]
			v, inVeggie := veggie[string(metric)]
			if !inMeat || !inVeggie {
				return ValidatedConfig{}, invalidf("Nutrition for %s must include %s in both columns", name, metric)
			}
			out.Meat[metric] = strings.TrimSpace(stringify(m))
			out.Veggie[metric] = strings.TrimSpace(stringify(v))
		}
		normalized[name] = out
	}

	return ValidatedConfig{Options: cleaned, Nutrition: normalized}, nil
}

// stringify renders a decoded JSON value as text. Numbers keep their literal
// form so "24g" and 24 are both accepted.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
