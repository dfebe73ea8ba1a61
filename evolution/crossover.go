package evolution

import "github.com/pthm-cable/lander/xrand"

// scheme identifies one of the three rotating crossover operators.
type scheme int

const (
	schemeInterpolate scheme = iota
	schemeCoinFlip
	schemeAlternate
	schemeCount
)

// crossover produces two children from two parents using the given scheme.
// Every scheme is symmetric: child2 is child1's complement, not an
// independent draw, so a pair always covers both halves of the parents'
// combined genetic material.
func crossover(p1, p2 Individual, s scheme, rng *xrand.Source) (Individual, Individual) {
	switch s {
	case schemeCoinFlip:
		return crossoverCoinFlip(p1, p2, rng)
	case schemeAlternate:
		return crossoverAlternate(p1, p2)
	default:
		return crossoverInterpolate(p1, p2, rng)
	}
}

// crossoverInterpolate draws one blend factor per gene and linearly
// interpolates both components of that gene; the sibling uses the
// complementary factor.
func crossoverInterpolate(p1, p2 Individual, rng *xrand.Source) (Individual, Individual) {
	var c1, c2 Individual
	for i := range c1.Genes {
		r := rng.Float64()
		c1.Genes[i].R = r*p1.Genes[i].R + (1-r)*p2.Genes[i].R
		c1.Genes[i].P = r*p1.Genes[i].P + (1-r)*p2.Genes[i].P
		c2.Genes[i].R = (1-r)*p1.Genes[i].R + r*p2.Genes[i].R
		c2.Genes[i].P = (1-r)*p1.Genes[i].P + r*p2.Genes[i].P
	}
	return c1, c2
}

// crossoverCoinFlip picks each gene wholesale from one parent or the other
// with equal probability; the sibling gets whichever parent was not
// chosen.
func crossoverCoinFlip(p1, p2 Individual, rng *xrand.Source) (Individual, Individual) {
	var c1, c2 Individual
	for i := range c1.Genes {
		if rng.Float64() < 0.5 {
			c1.Genes[i] = p1.Genes[i]
			c2.Genes[i] = p2.Genes[i]
		} else {
			c1.Genes[i] = p2.Genes[i]
			c2.Genes[i] = p1.Genes[i]
		}
	}
	return c1, c2
}

// crossoverAlternate assigns even gene indices from p1 and odd indices
// from p2; the sibling takes the complementary assignment.
func crossoverAlternate(p1, p2 Individual) (Individual, Individual) {
	var c1, c2 Individual
	for i := range c1.Genes {
		if i%2 == 0 {
			c1.Genes[i] = p1.Genes[i]
			c2.Genes[i] = p2.Genes[i]
		} else {
			c1.Genes[i] = p2.Genes[i]
			c2.Genes[i] = p1.Genes[i]
		}
	}
	return c1, c2
}
