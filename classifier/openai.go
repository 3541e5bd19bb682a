package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-sentinel/types"
)

const visionPrompt = "Does this image show an active wildfire or visible fire/smoke? " +
	"Reply with exactly one line: FIRE <confidence> or NOFIRE <confidence>, " +
	"where <confidence> is a number from 0 to 100."

// OpenAIClassifier is the fallback when no dedicated model service is
// deployed. It asks a vision model for a constrained one-line verdict and
// parses it into the same shape the CNN service produces.
type OpenAIClassifier struct {
	client *openai.Client
}

func NewOpenAIClassifier(apiKey string) *OpenAIClassifier {
	return &OpenAIClassifier{client: openai.NewClient(apiKey)}
}

func (o *OpenAIClassifier) Predict(ctx context.Context, filename string, image []byte) (types.PredictionResult, error) {
	mime := http.DetectContentType(image)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(image))

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: visionPrompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    dataURL,
								Detail: openai.ImageURLDetailLow,
							},
						},
					},
				},
			},
			MaxTokens: 20,
		},
	)
	if err != nil {
		return types.PredictionResult{}, err
	}
	if len(resp.Choices) == 0 {
		return types.PredictionResult{}, fmt.Errorf("empty completion response")
	}

	return parseVerdict(resp.Choices[0].Message.Content)
}

// parseVerdict turns "FIRE 87" style replies into a PredictionResult with
// the confidence formatted the way the CNN service formats it.
func parseVerdict(reply string) (types.PredictionResult, error) {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(reply)))
	if len(fields) == 0 {
		return types.PredictionResult{}, fmt.Errorf("unparseable model reply: %q", reply)
	}

	label := ""
	switch fields[0] {
	case "FIRE":
		label = LabelFire
	case "NOFIRE", "NO":
		label = LabelNoFire
	default:
		return types.PredictionResult{}, fmt.Errorf("unparseable model reply: %q", reply)
	}

	confidence := 50.0
	if len(fields) > 1 {
		var c float64
		if _, err := fmt.Sscanf(fields[len(fields)-1], "%f", &c); err == nil && c >= 0 && c <= 100 {
			confidence = c
		}
	}

	return types.PredictionResult{
		Prediction: label,
		Confidence: fmt.Sprintf("%.2f%%", confidence),
	}, nil
}
