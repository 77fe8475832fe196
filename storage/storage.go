package storage

import (
	"errors"
	"fmt"
	"strings"

	ratesSaver "github.com/icmx/rates-saver"
)

type (
	Provider string
)

const (
	// Append grows a running series, one line per run.
	Append Provider = "append"
	// Overwrite keeps only the most recent line.
	Overwrite Provider = "overwrite"
)

var ErrSinkNotFound = errors.New("sink is not found")

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "append":
		return Append, nil
	case "overwrite":
		return Overwrite, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewSink(provider Provider) (ratesSaver.Sink, error) {
	switch provider {
	case Append:
		return AppendSink{}, nil
	case Overwrite:
		return OverwriteSink{}, nil
	}

	return nil, ErrSinkNotFound
}
