package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luma/apperrors"
)

func messageWithToolCall(arguments string) ChatMessage {
	var tc toolCall
	tc.Function.Name = "set_certificate_layout"
	tc.Function.Arguments = arguments
	return ChatMessage{ToolCalls: []toolCall{tc}}
}

func TestParseLayoutFromToolCall(t *testing.T) {
	msg := messageWithToolCall(`{"name_x": 600, "name_y": 416, "name_max_width": 840, "date_x": 210, "date_y": 652}`)

	layout, err := ParseLayout(msg)
	require.NoError(t, err)

	assert.Equal(t, 600, layout.NameX)
	assert.Equal(t, 416, layout.NameY)
	assert.Equal(t, 840, layout.NameMaxWidth)
	assert.Equal(t, 210, layout.DateX)
	assert.Equal(t, 652, layout.DateY)
}

func TestParseLayoutToolCallWinsOverContent(t *testing.T) {
	msg := messageWithToolCall(`{"name_x": 1, "name_y": 2, "name_max_width": 3, "date_x": 4, "date_y": 5}`)
	msg.Content = `{"name_x": 99, "name_y": 99, "name_max_width": 99, "date_x": 99, "date_y": 99}`

	layout, err := ParseLayout(msg)
	require.NoError(t, err)
	assert.Equal(t, 1, layout.NameX)
}

func TestParseLayoutFromInlineJSON(t *testing.T) {
	msg := ChatMessage{Content: `Here are the coordinates you asked for:
{"name_x": 512.7, "name_y": 380.2, "name_max_width": 700, "date_x": 180, "date_y": 640, "template_width": 1024, "template_height": 768}
Let me know if you need anything else.`}

	layout, err := ParseLayout(msg)
	require.NoError(t, err)

	// Fractional coordinates round to the nearest pixel
	assert.Equal(t, 513, layout.NameX)
	assert.Equal(t, 380, layout.NameY)
	assert.Equal(t, 1024, layout.TemplateWidth)
	assert.Equal(t, 768, layout.TemplateHeight)
}

func TestParseLayoutMissingField(t *testing.T) {
	msg := ChatMessage{Content: `{"name_x": 600, "name_y": 416, "date_x": 210, "date_y": 652}`}

	_, err := ParseLayout(msg)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "name_max_width")
}

func TestParseLayoutNonNumericField(t *testing.T) {
	msg := ChatMessage{Content: `{"name_x": "center", "name_y": 416, "name_max_width": 840, "date_x": 210, "date_y": 652}`}

	_, err := ParseLayout(msg)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestParseLayoutNoJSONAnywhere(t *testing.T) {
	msg := ChatMessage{Content: "I am unable to determine the layout from this image."}

	_, err := ParseLayout(msg)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUpstreamParse, apperrors.KindOf(err))
}

func TestParseLayoutMalformedToolCallFallsThrough(t *testing.T) {
	msg := messageWithToolCall(`{"name_x": `)
	msg.Content = `{"name_x": 10, "name_y": 20, "name_max_width": 30, "date_x": 40, "date_y": 50}`

	layout, err := ParseLayout(msg)
	require.NoError(t, err)
	assert.Equal(t, 10, layout.NameX)
}
