package recipes

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRecipe is the wire shape of a recipe before normalization. Remote
// sources disagree on field types, so anything that has been observed
// as more than one JSON type stays a RawMessage until coercion.
type RawRecipe struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Ingredients json.RawMessage `json:"ingredients"`
	Steps       json.RawMessage `json:"steps"`
	Tags        []any           `json:"tags"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	CookingTime json.RawMessage `json:"cookingTime"`
	Calories    json.RawMessage `json:"calories"`
	Protein     json.RawMessage `json:"protein"`
	Carbs       json.RawMessage `json:"carbs"`
	Fat         json.RawMessage `json:"fat"`
	DietTags    []any           `json:"dietTags"`
	Status      string          `json:"status"`
	Source      string          `json:"source"`
	SubmittedBy string          `json:"submittedBy"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// coerceID renders whatever the source used as an id into a string.
// Numeric ids lose any ".0" suffix so "7" and 7 collide as intended.
func coerceID(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// ingredientsEnvelope covers sources that wrap the list as {items:[...]}.
type ingredientsEnvelope struct {
	Items []any `json:"items"`
}

// coerceIngredients maps every observed ingredients shape to a string
// list: an array is stringified element-wise, a comma string is split,
// a plain string is one ingredient, an {items:[...]} object uses its
// list. Anything else degrades to empty, never an error.
func coerceIngredients(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		return stringifyAll(list)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if !strings.Contains(s, ",") {
			if t := strings.TrimSpace(s); t != "" {
				return []string{t}
			}
			return []string{}
		}
		var out []string
		for _, part := range strings.Split(s, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
		if out == nil {
			out = []string{}
		}
		return out
	}

	var env ingredientsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Items != nil {
		return stringifyAll(env.Items)
	}

	return []string{}
}

// coerceSteps accepts a list of strings or a single instruction string.
func coerceSteps(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		return stringifyAll(list)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
		return []string{strings.TrimSpace(s)}
	}
	return []string{}
}

// coerceNumber parses a JSON number or numeric string; anything
// non-finite or unparseable is unknown (nil).
func coerceNumber(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// coerceMinutes is coerceNumber restricted to non-negative whole
// minutes.
func coerceMinutes(raw json.RawMessage) *int {
	n := coerceNumber(raw)
	if n == nil || *n < 0 {
		return nil
	}
	m := int(*n)
	return &m
}

func stringifyAll(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, stringify(v))
	}
	return out
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
