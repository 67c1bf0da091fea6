package config

// Strategy selects which β-reduction rule the reduction loop fires at each
// step.
type Strategy string

const (
	NormalOrder  Strategy = "normal-order"
	CallByValue  Strategy = "call-by-value"
)

// DefaultStrategy is used whenever a caller doesn't pick one explicitly.
// Normal-order finds a normal form whenever one exists for a term that has
// one, which call-by-value can miss.
const DefaultStrategy = NormalOrder

// DefaultMaxSteps bounds interactive reduction so a runaway term like
// Ω = (λx. x x) (λx. x x) doesn't hang a REPL session forever even without
// an external cancellation signal.
const DefaultMaxSteps = 1_000_000

// FreshIDBase is where the compiler's and term engine's shared fresh-id
// counter (internal/term.NextFreshID) starts counting from. Free-variable
// ids parsed from source via ParseIndex grow with identifier length, so a
// base this high keeps fresh bound-variable ids out of reach of any
// identifier a person would actually type, without the expense of scanning
// every id live in a program before allocating the next one.
const FreshIDBase = 1 << 40
