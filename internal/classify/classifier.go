package classify

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/born-ml/opcoverage/internal/catalog"
)

// Default trait identifiers, spelled as the operator definition source records them.
const (
	DefaultDynamicRangeTrait      = "DynamicRangeQuantizedOpInterface::Trait"
	DefaultSparseTrait            = "SparseOpInterface::Trait"
	DefaultQuantizableResultTrait = "::mlir::OpTrait::quant::QuantizableResult"
)

// Classification errors.
var (
	ErrMissingClass  = errors.New("capability class not produced")
	ErrUnsortedClass = errors.New("capability class not strictly ascending")
)

// TraitNames holds the trait identifiers the builders test for.
type TraitNames struct {
	DynamicRange      string `yaml:"dynamic_range"`
	Sparse            string `yaml:"sparse"`
	QuantizableResult string `yaml:"quantizable_result"`
}

// DefaultTraitNames returns the trait spellings used by TFLite operator records.
func DefaultTraitNames() TraitNames {
	return TraitNames{
		DynamicRange:      DefaultDynamicRangeTrait,
		Sparse:            DefaultSparseTrait,
		QuantizableResult: DefaultQuantizableResultTrait,
	}
}

// withDefaults fills empty fields from DefaultTraitNames.
func (t TraitNames) withDefaults() TraitNames {
	d := DefaultTraitNames()
	if t.DynamicRange == "" {
		t.DynamicRange = d.DynamicRange
	}
	if t.Sparse == "" {
		t.Sparse = d.Sparse
	}
	if t.QuantizableResult == "" {
		t.QuantizableResult = d.QuantizableResult
	}
	return t
}

// Config controls a Classifier.
type Config struct {
	Traits TraitNames

	// BaseClass restricts classification to operators deriving from it.
	// Empty classifies the whole catalog.
	BaseClass string

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger

	// Registry overrides the builder set. Nil uses NewRegistry.
	Registry *Registry
}

// Classifier partitions an operator catalog into capability classes.
// It keeps no state between calls.
type Classifier struct {
	traits    TraitNames
	baseClass string
	logger    *zap.Logger
	registry  *Registry
}

// New creates a classifier from cfg.
func New(cfg Config) *Classifier {
	c := &Classifier{
		traits:    cfg.Traits.withDefaults(),
		baseClass: cfg.BaseClass,
		logger:    cfg.Logger,
		registry:  cfg.Registry,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.registry == nil {
		c.registry = NewRegistry()
	}
	return c
}

// Classify sorts the catalog once by operator name and runs every builder over
// that single ordering, so each class lists its members in ascending order.
// On error no partial result is returned.
func (c *Classifier) Classify(cat *catalog.Catalog) (*Result, error) {
	scoped := cat.FilterByBaseClass(c.baseClass)
	defs := scoped.Sorted()

	c.logger.Debug("Classifying operators",
		zap.Int("catalog", cat.Len()),
		zap.Int("in_scope", len(defs)),
		zap.String("base_class", c.baseClass))

	merged, err := c.registry.Run(c.traits, defs)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	res := &Result{sets: make(map[Class][]string, len(classNames))}
	for _, class := range Classes() {
		ops, ok := merged[class]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingClass, class)
		}
		if ops == nil {
			ops = []string{}
		}
		if err := checkAscending(ops); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnsortedClass, class, err)
		}
		res.sets[class] = ops
		c.logger.Debug("Class built", zap.Stringer("class", class), zap.Int("ops", len(ops)))
	}

	return res, nil
}

// checkAscending verifies ops is strictly ascending, which Result lookups rely on.
func checkAscending(ops []string) error {
	for i := 1; i < len(ops); i++ {
		if ops[i-1] >= ops[i] {
			return fmt.Errorf("%q before %q", ops[i-1], ops[i])
		}
	}
	return nil
}

// Classify runs a default-configured classifier over cat.
func Classify(cat *catalog.Catalog) (*Result, error) {
	return New(Config{}).Classify(cat)
}
