package processor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/solindex/internal/indexer"
)

// ErrUnknownProcessor is returned by Parse for names that are not registered.
var ErrUnknownProcessor = errors.New("unknown processor")

// factory builds a processor from the optional argument following the name.
type factory func(arg string) (indexer.Processor, error)

var registry = map[string]factory{
	"successful-only": noArg(SuccessfulOnly),
	"strip-fee":       noArg(StripFee),
	"fee-in-sol":      noArg(FeeInSOL),
	"without-data":    noArg(WithoutData),
	"enrich": func(string) (indexer.Processor, error) {
		return Enrich(time.Now), nil
	},
	"min-fee":      uintArg(MinFee),
	"high-fee":     uintArg(HighFee),
	"min-lamports": uintArg(MinLamports),
	"owned-by": func(arg string) (indexer.Processor, error) {
		if !indexer.IsValidAddress(arg) {
			return nil, fmt.Errorf("owned-by: invalid owner %q", arg)
		}
		return OwnedBy(arg), nil
	},
	"annotate": func(arg string) (indexer.Processor, error) {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("annotate: expected key=value, got %q", arg)
		}
		return Annotate(key, value), nil
	},
}

func noArg(f func() indexer.Processor) factory {
	return func(string) (indexer.Processor, error) {
		return f(), nil
	}
}

func uintArg(f func(uint64) indexer.Processor) factory {
	return func(arg string) (indexer.Processor, error) {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected an unsigned integer argument, got %q: %w", arg, err)
		}
		return f(n), nil
	}
}

// Parse builds a processor from "name" or "name:arg", for example
// "successful-only", "min-fee:5000" or "annotate:category=swap".
func Parse(def string) (indexer.Processor, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(def), ":")

	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProcessor, name)
	}

	p, err := build(arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// ParseAll parses every definition in order.
func ParseAll(defs []string) ([]indexer.Processor, error) {
	processors := make([]indexer.Processor, 0, len(defs))
	for _, def := range defs {
		p, err := Parse(def)
		if err != nil {
			return nil, err
		}
		processors = append(processors, p)
	}
	return processors, nil
}
