package vision

import (
	"encoding/json"
	"math"
	"regexp"

	"luma/apperrors"
)

// Layout is a validated coordinate suggestion, rounded to whole pixels
type Layout struct {
	NameX          int `json:"name_x"`
	NameY          int `json:"name_y"`
	NameMaxWidth   int `json:"name_max_width"`
	DateX          int `json:"date_x"`
	DateY          int `json:"date_y"`
	TemplateWidth  int `json:"template_width,omitempty"`
	TemplateHeight int `json:"template_height,omitempty"`
}

var requiredFields = []string{"name_x", "name_y", "name_max_width", "date_x", "date_y"}

// A parser tries to pull a raw JSON object out of one shape of model reply.
// Parsers are tried in order; the first that yields an object wins.
type parser func(msg ChatMessage) (map[string]interface{}, bool)

var layoutParsers = []parser{parseToolCall, parseInlineJSON}

// ParseLayout extracts and validates layout coordinates from a model reply.
// It prefers a structured tool-call payload and falls back to regex-extracting
// the first JSON object from free text.
func ParseLayout(msg ChatMessage) (*Layout, error) {
	for _, p := range layoutParsers {
		if raw, ok := p(msg); ok {
			return validateLayout(raw)
		}
	}
	return nil, apperrors.New(apperrors.KindUpstreamParse, "no layout JSON found in model reply")
}

func parseToolCall(msg ChatMessage) (map[string]interface{}, bool) {
	for _, tc := range msg.ToolCalls {
		var raw map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &raw); err == nil && len(raw) > 0 {
			return raw, true
		}
	}
	return nil, false
}

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

func parseInlineJSON(msg ChatMessage) (map[string]interface{}, bool) {
	block := jsonBlockRe.FindString(msg.Content)
	if block == "" {
		return nil, false
	}
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, false
	}
	return raw, true
}

// validateLayout checks the five required numeric fields and rounds all
// coordinates to integers
func validateLayout(raw map[string]interface{}) (*Layout, error) {
	values := make(map[string]int, len(requiredFields))
	for _, field := range requiredFields {
		n, ok := raw[field].(float64)
		if !ok {
			return nil, apperrors.New(apperrors.KindValidation, "layout field %s is missing or non-numeric", field)
		}
		values[field] = int(math.Round(n))
	}

	layout := &Layout{
		NameX:        values["name_x"],
		NameY:        values["name_y"],
		NameMaxWidth: values["name_max_width"],
		DateX:        values["date_x"],
		DateY:        values["date_y"],
	}
	if w, ok := raw["template_width"].(float64); ok {
		layout.TemplateWidth = int(math.Round(w))
	}
	if h, ok := raw["template_height"].(float64); ok {
		layout.TemplateHeight = int(math.Round(h))
	}
	return layout, nil
}
