package puzzle

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/roach88/athena/internal/catalog"
	"github.com/roach88/athena/internal/engine"
	"github.com/roach88/athena/internal/numeral"
	"github.com/roach88/athena/internal/render"
)

// Generation parameter ranges. Conversion targets stay small enough to
// answer without pen and paper; sequence puzzles keep all three shown
// terms and the answer inside the conversion range.
const (
	conversionMax    = 50 // conversion target in [1, conversionMax]
	sequenceStartMax = 20 // sequence start in [1, sequenceStartMax]
	sequenceStepMax  = 3  // sequence step in [1, sequenceStepMax]
	sequenceShown    = 3  // rendered terms in the question
)

// Generator produces puzzles for catalogued systems.
//
// Every random choice is drawn from the *rand.Rand built from the seed,
// so a fixed seed replays the identical puzzle stream. A Generator is
// not safe for concurrent use; construction is cheap, so callers that
// serve parallel requests build one per request.
type Generator struct {
	reg *catalog.Registry
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from seed against reg.
func NewGenerator(reg *catalog.Registry, seed int64) *Generator {
	return &Generator{
		reg: reg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate produces one puzzle for the given system. The kind is drawn
// uniformly, then the kind-specific parameters.
func (g *Generator) Generate(systemID string) (*Puzzle, error) {
	sys, ok := g.reg.Lookup(systemID)
	if !ok {
		return nil, engine.NewNotFoundError(systemID)
	}

	if g.rng.Intn(2) == 0 {
		return g.conversionPuzzle(sys)
	}
	return g.sequencePuzzle(sys)
}

func (g *Generator) conversionPuzzle(sys *numeral.System) (*Puzzle, error) {
	target := g.rng.Intn(conversionMax) + 1

	display, err := renderValue(target, sys)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		SystemID:      sys.ID,
		Kind:          KindConversion,
		Question:      fmt.Sprintf("Convert the number %d into %s.", target, sys.Name),
		Target:        target,
		AnswerDisplay: display,
		Hint:          fmt.Sprintf("Remember, this is a Base-%d system.", sys.Base),
		CatalogHash:   g.reg.Hash(),
	}
	if err := p.seal(); err != nil {
		return nil, err
	}
	return p, nil
}

func (g *Generator) sequencePuzzle(sys *numeral.System) (*Puzzle, error) {
	start := g.rng.Intn(sequenceStartMax) + 1
	step := g.rng.Intn(sequenceStepMax) + 1

	terms := make([]string, sequenceShown)
	for i := range terms {
		rendered, err := renderValue(start+i*step, sys)
		if err != nil {
			return nil, err
		}
		terms[i] = rendered
	}

	target := start + sequenceShown*step
	display, err := renderValue(target, sys)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		SystemID:      sys.ID,
		Kind:          KindSequence,
		Question:      fmt.Sprintf("Find the next number: %s, ...", strings.Join(terms, ", ")),
		Target:        target,
		AnswerDisplay: display,
		Hint:          fmt.Sprintf("Identify the gap between the numbers. It seems to be increasing by %d.", step),
		CatalogHash:   g.reg.Hash(),
	}
	if err := p.seal(); err != nil {
		return nil, err
	}
	return p, nil
}

// renderValue converts n under sys and formats it for question text.
func renderValue(n int, sys *numeral.System) (string, error) {
	result, err := engine.Convert(n, sys)
	if err != nil {
		return "", err
	}
	return render.Text(result, sys), nil
}
