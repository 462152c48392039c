package evaluation

import (
	"fmt"
	"math/rand"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
)

type TrainTestSplitter struct {
	testSize   float64
	randomSeed int64
}

func NewTrainTestSplitter(testSize float64, randomSeed int64) *TrainTestSplitter {
	return &TrainTestSplitter{
		testSize:   testSize,
		randomSeed: randomSeed,
	}
}

// Indices shuffles 0..n-1 with the splitter's seed and returns the train and
// test indices. The test part is the first int(n*testSize) shuffled indices.
func (tts *TrainTestSplitter) Indices(n int) ([]int, []int, error) {
	if tts.testSize <= 0 || tts.testSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be between 0 and 1, got %v", tts.testSize)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	rng := rand.New(rand.NewSource(tts.randomSeed))
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	testCount := int(float64(n) * tts.testSize)
	return indices[testCount:], indices[:testCount], nil
}

// Split returns copies of the train and test partitions. An empty dataset
// gives two empty partitions.
func (tts *TrainTestSplitter) Split(dataset []data.Observation) ([]data.Observation, []data.Observation, error) {
	trainIdx, testIdx, err := tts.Indices(len(dataset))
	if err != nil {
		return nil, nil, err
	}
	return pick(dataset, trainIdx), pick(dataset, testIdx), nil
}

func pick[T any](rows []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = rows[idx]
	}
	return out
}
