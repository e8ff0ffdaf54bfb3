package classifier

import (
	"bytes"
	"context"
	"errors"
	"image"
	"math"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/kbellil/interior-design-api/internal/logger"
)

// ClassNames is the fixed, ordered label set of the room classifier.
// Prediction vectors are indexed by this order.
var ClassNames = []string{"bathroom", "bedroom", "office", "kitchen", "living room"}

// ImgSize is the square input dimension the model was trained on.
const ImgSize = 224

// ErrModelUnavailable is returned when the model failed to load at
// process start. It is a process-wide readiness condition, not a
// per-call failure.
var ErrModelUnavailable = errors.New("classification model is not available")

// Model is the opaque inference handle. Input is a flattened
// ImgSize*ImgSize*3 tensor in [0,1]; output is one score per class.
// Implementations must be safe for concurrent calls.
type Model interface {
	Predict(input []float32) ([]float32, error)
}

// Prediction is the labeled result of one classification.
type Prediction struct {
	Class      string             // argmax label
	Confidence float64            // score of the argmax label
	Scores     map[string]float64 // score for every label
}

// Classifier wraps the model handle with preprocessing and label mapping.
type Classifier struct {
	model Model
}

// New creates a Classifier around a loaded model. A nil model makes
// every Classify call fail with ErrModelUnavailable.
func New(model Model) *Classifier {
	return &Classifier{model: model}
}

// Ready reports whether the model handle was loaded.
func (c *Classifier) Ready() bool {
	return c.model != nil
}

// Classify decodes the image, runs inference, and maps the score vector
// to labels.
func (c *Classifier) Classify(ctx context.Context, imageBytes []byte) (*Prediction, error) {
	if c.model == nil {
		return nil, ErrModelUnavailable
	}

	input, err := Preprocess(imageBytes)
	if err != nil {
		return nil, err
	}

	scores, err := c.model.Predict(input)
	if err != nil {
		logger.Log.Errorw("model inference failed", "error", err)
		return nil, err
	}
	if len(scores) != len(ClassNames) {
		return nil, errors.New("model returned an unexpected score vector")
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}

	all := make(map[string]float64, len(ClassNames))
	for i, name := range ClassNames {
		all[name] = round4(float64(scores[i]))
	}

	return &Prediction{
		Class:      ClassNames[best],
		Confidence: round4(float64(scores[best])),
		Scores:     all,
	}, nil
}

// Preprocess decodes an image to RGB, resizes it to ImgSize x ImgSize,
// and scales channel values to [0,1]. The returned slice is the single
// batch element the model expects.
func Preprocess(imageBytes []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}

	resized := image.NewRGBA(image.Rect(0, 0, ImgSize, ImgSize))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Over, nil)

	input := make([]float32, ImgSize*ImgSize*3)
	i := 0
	for y := 0; y < ImgSize; y++ {
		for x := 0; x < ImgSize; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			input[i] = float32(r>>8) / 255.0
			input[i+1] = float32(g>>8) / 255.0
			input[i+2] = float32(b>>8) / 255.0
			i += 3
		}
	}

	return input, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
