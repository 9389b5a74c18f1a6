package vision

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"

	"luma/apperrors"
	"luma/config"
)

const layoutInstruction = `Look at this certificate template image. Identify where a recipient name and an issue date should be drawn. Respond with strict JSON containing exactly these numeric fields: name_x, name_y, name_max_width, date_x, date_y. You may also include template_width and template_height. Coordinates are pixels from the top-left corner; name_x is the horizontal center of the name.`

// ChatMessage is the part of the model reply the layout parsers consume
type ChatMessage struct {
	Content   string     `json:"content"`
	ToolCalls []toolCall `json:"tool_calls"`
}

type toolCall struct {
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// InferLayout sends the template's public URL to the vision model and parses
// the suggested text coordinates out of its reply.
func InferLayout(templateURL string) (*Layout, error) {
	body := map[string]interface{}{
		"model": config.AppConfig.VisionModel,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": layoutInstruction},
					{"type": "image_url", "image_url": map[string]string{"url": templateURL}},
				},
			},
		},
		"tools": []map[string]interface{}{
			{
				"type": "function",
				"function": map[string]interface{}{
					"name":        "set_certificate_layout",
					"description": "Record the pixel coordinates for name and date placement",
					"parameters": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name_x":          map[string]string{"type": "number"},
							"name_y":          map[string]string{"type": "number"},
							"name_max_width":  map[string]string{"type": "number"},
							"date_x":          map[string]string{"type": "number"},
							"date_y":          map[string]string{"type": "number"},
							"template_width":  map[string]string{"type": "number"},
							"template_height": map[string]string{"type": "number"},
						},
						"required": []string{"name_x", "name_y", "name_max_width", "date_x", "date_y"},
					},
				},
			},
		},
	}

	client := resty.New().SetTimeout(60 * time.Second)
	resp, err := client.R().
		SetAuthToken(config.AppConfig.VisionApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(config.AppConfig.VisionApiURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUpstream, err, "vision API request failed")
	}
	if resp.IsError() {
		return nil, apperrors.New(apperrors.KindUpstream, "vision API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, apperrors.Wrap(apperrors.KindUpstreamParse, err, "invalid vision API response")
	}
	if parsed.Error != nil {
		return nil, apperrors.New(apperrors.KindUpstream, "vision API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, apperrors.New(apperrors.KindUpstreamParse, "vision API returned no choices")
	}

	return ParseLayout(parsed.Choices[0].Message)
}
