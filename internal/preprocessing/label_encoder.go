package preprocessing

import (
	"errors"
	"fmt"
)

var ErrUnknownLabel = errors.New("unknown label")

// LabelEncoder maps class labels to fixed indices. The order is the order in
// which labels were first given, so the mapping never depends on map iteration.
type LabelEncoder struct {
	ClassToInt map[string]int
	IntToClass map[int]string
	Order      []string
	IsFitted   bool
}

func NewLabelEncoder(classes ...string) *LabelEncoder {
	le := &LabelEncoder{
		ClassToInt: make(map[string]int),
		IntToClass: make(map[int]string),
	}
	for _, class := range classes {
		le.add(class)
	}
	le.IsFitted = len(le.Order) > 0
	return le
}

func (le *LabelEncoder) add(label string) {
	if _, ok := le.ClassToInt[label]; ok {
		return
	}
	idx := len(le.Order)
	le.ClassToInt[label] = idx
	le.IntToClass[idx] = label
	le.Order = append(le.Order, label)
}

// Fit appends labels not seen yet, keeping existing indices stable.
func (le *LabelEncoder) Fit(labels []string) {
	for _, label := range labels {
		le.add(label)
	}
	le.IsFitted = true
}

func (le *LabelEncoder) Index(label string) (int, bool) {
	idx, ok := le.ClassToInt[label]
	return idx, ok
}

func (le *LabelEncoder) Classes() []string {
	return append([]string(nil), le.Order...)
}

func (le *LabelEncoder) Len() int {
	return len(le.Order)
}

// Transform encodes labels in order and fails on the first label the
// encoder does not know.
func (le *LabelEncoder) Transform(labels []string) ([]int, error) {
	encoded := make([]int, len(labels))
	for i, label := range labels {
		idx, ok := le.Index(label)
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrUnknownLabel, label, i)
		}
		encoded[i] = idx
	}
	return encoded, nil
}
