package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// DenseModel is a single dense layer with softmax over the flattened
// input tensor, exported from the training pipeline as JSON.
type DenseModel struct {
	weights [][]float32 // one row per class
	bias    []float32
}

type modelFile struct {
	Weights [][]float32 `json:"weights"`
	Bias    []float32   `json:"bias"`
}

// LoadModel reads a model weights file from disk. Any error here leaves
// the service running with classification disabled.
func LoadModel(path string) (*DenseModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, err
	}

	if len(mf.Weights) != len(ClassNames) {
		return nil, fmt.Errorf("model has %d classes, expected %d", len(mf.Weights), len(ClassNames))
	}
	if len(mf.Bias) != len(ClassNames) {
		return nil, errors.New("model bias length does not match class count")
	}
	want := ImgSize * ImgSize * 3
	for i, row := range mf.Weights {
		if len(row) != want {
			return nil, fmt.Errorf("class %d weight row has %d inputs, expected %d", i, len(row), want)
		}
	}

	return &DenseModel{weights: mf.Weights, bias: mf.Bias}, nil
}

// Predict computes softmax(W*x + b).
func (m *DenseModel) Predict(input []float32) ([]float32, error) {
	if len(input) != ImgSize*ImgSize*3 {
		return nil, fmt.Errorf("input has %d values, expected %d", len(input), ImgSize*ImgSize*3)
	}

	logits := make([]float64, len(m.weights))
	for c, row := range m.weights {
		sum := float64(m.bias[c])
		for i, w := range row {
			sum += float64(w) * float64(input[i])
		}
		logits[c] = sum
	}

	// softmax, shifted by the max logit for stability
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}
	var total float64
	exps := make([]float64, len(logits))
	for i, l := range logits {
		exps[i] = math.Exp(l - maxLogit)
		total += exps[i]
	}

	scores := make([]float32, len(logits))
	for i := range exps {
		scores[i] = float32(exps[i] / total)
	}
	return scores, nil
}
