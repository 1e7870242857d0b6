// Package hyperltlmso decides and synthesizes HyperLTL-MSO
// hyperproperties over parameterized concurrent systems.
//
// Given a system described as a configuration automaton plus a
// transducer over its executions, this module searches for a
// disjunctive invariant A and a strict pre-order transducer T that
// together certify a trace-quantified MSO property, escalating A's
// state count under a counter-example-guided SAT search until either a
// witness is found or a configured ceiling is hit (in which case no
// proof of that size exists; the property is not refuted).
//
// The work is organized as a pipeline of subpackages, each owning one
// layer of the representation:
//
//	tape/      fixed-width bit-vector symbol alphabet
//	automaton/ single-tape NFA core: construction, composition, language
//	           operations (emptiness, inclusion)
//	multitape/ tape-aware algebra over automata: projection, extension,
//	           cylindrification, and the transducer-parsing/same-process
//	           discipline multi-tape reasoning needs
//	mso/       atomic MSO predicate builders over tape positions
//	formula/   formula arena, free-variable analysis, and normal-form
//	           rewriting feeding the compiler
//	compile/   formula + BNF grammar -> multi-tape automaton
//	decide/    the decision procedures a candidate (A, T) pair must
//	           satisfy: initial inclusion, inductiveness, irreflexivity,
//	           transitivity, backward reachability, trace-quantifier
//	           satisfaction
//	sat/       CNF encoding of candidate automata over
//	           github.com/irifrance/gini, and the CEGAR search loop that
//	           turns a failing decide check into a learned clause
//	driver/    configuration and logging around one end-to-end search
//
// A caller that has already parsed a formula into an AST and built the
// initial-configuration and system-transducer automata drives the
// search through driver.Run; everything upstream of that (grammar,
// lexer, CLI, rendering) is deliberately left to the caller.
package hyperltlmso
