package driver

import (
	"errors"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/arzhanov/hyperltlmso/compile"
	"github.com/arzhanov/hyperltlmso/decide"
	"github.com/arzhanov/hyperltlmso/formula"
	"github.com/arzhanov/hyperltlmso/mso"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/sat"
)

// applyLogLevel maps Config.LogLevel onto gologger's level set,
// defaulting to LevelInfo for an unrecognized name.
func applyLogLevel(name string) {
	lvl := levels.LevelInfo
	switch name {
	case "silent":
		lvl = levels.LevelSilent
	case "fatal":
		lvl = levels.LevelFatal
	case "error":
		lvl = levels.LevelError
	case "warning":
		lvl = levels.LevelWarning
	case "info":
		lvl = levels.LevelInfo
	case "verbose":
		lvl = levels.LevelVerbose
	case "debug":
		lvl = levels.LevelDebug
	}
	gologger.DefaultLogger.SetMaxLevel(lvl)
}

// Run drives one full CEGAR search to completion: it performs the
// C5 (normalise) -> C6 (compile mso_initial, local and eventuality
// constraints) -> C3 (lift/restrict) composition spec.md section 2
// assigns the driver, then hands the restricted automata to sat.Find,
// logging each stage and state-count escalation through gologger.
//
// tree/root is the parsed formula AST; builder fixes the trace-
// quantifier prefix and canonical atomic-proposition list it was
// parsed against. initialAcceptor and systemTransducer are the raw,
// single- and two-tape automata the parse collaborator built from
// --initial_config and --system_transducer (spec.md section 6) before
// any formula-specific restriction is applied.
func Run(
	cfg *Config,
	tree *formula.Tree,
	root formula.NodeID,
	builder *mso.Builder,
	initialAcceptor, systemTransducer *multitape.Automaton,
	traceQuantifiers []decide.TraceQuantifier,
) (*sat.Solution, error) {
	if tree == nil || builder == nil || initialAcceptor == nil || systemTransducer == nil {
		return nil, ErrNoAutomata
	}
	applyLogLevel(cfg.LogLevel)

	gologger.Info().Msg("normalizing formula into mso_initial, local and eventuality constraints")
	bnf, err := formula.Normalize(tree, root)
	if err != nil {
		gologger.Error().Msgf("normalisation failed: %v", err)
		return nil, err
	}

	msoInitial, err := compile.Compile(tree, builder, bnf.Root)
	if err != nil {
		gologger.Error().Msgf("compiling mso_initial failed: %v", err)
		return nil, err
	}
	localConstraints, err := compile.CompileLocalConstraints(tree, builder, bnf)
	if err != nil {
		gologger.Error().Msgf("compiling local constraints failed: %v", err)
		return nil, err
	}

	numTraceTapes := len(builder.TraceQuantifiers)
	restrictedInitial, err := multitape.RestrictInitial(initialAcceptor, msoInitial, numTraceTapes)
	if err != nil {
		gologger.Error().Msgf("restricting the initial-configuration automaton failed: %v", err)
		return nil, err
	}
	restrictedTransducer, err := multitape.RestrictTransducer(systemTransducer, localConstraints)
	if err != nil {
		gologger.Error().Msgf("restricting the system transducer failed: %v", err)
		return nil, err
	}
	alignedSystem, err := multitape.AlignSystemTransducer(systemTransducer, localConstraints)
	if err != nil {
		gologger.Error().Msgf("aligning the system transducer to the trace-quantifier template failed: %v", err)
		return nil, err
	}

	acceptingTrans, err := compile.CompileEventuality(tree, builder, bnf)
	switch {
	case err == nil:
	case errors.Is(err, compile.ErrEmptyConstraintSet):
		// spec.md section 4.8's optimisation note: with no F-subformula
		// the eventuality transducer degenerates to the restricted
		// transducer itself, and every transition becomes accepting.
		gologger.Verbose().Msg("no eventuality constraints; accepting transitions degenerate to the restricted transducer")
		acceptingTrans = restrictedTransducer
	default:
		gologger.Error().Msgf("compiling eventuality constraints failed: %v", err)
		return nil, err
	}

	gologger.Info().Msgf("starting invariant search, max states = %d", cfg.MaxStates)

	sol, err := sat.Find(sat.Inputs{
		MaxStates:            cfg.MaxStates,
		RestrictedInitial:    restrictedInitial,
		RestrictedTransducer: restrictedTransducer,
		SystemTransducer:     alignedSystem,
		AcceptingTrans:       acceptingTrans,
		TraceQuantifiers:     traceQuantifiers,
		OnAttempt: func(kAut int) {
			gologger.Verbose().Msgf("attempting invariant with %d states", kAut)
		},
	})
	if err != nil {
		gologger.Error().Msgf("search failed: %v", err)
		return nil, err
	}
	gologger.Info().Msgf("found invariant with %d states and a matching transition relation",
		sol.Invariant.NFA.NumStates)
	return sol, nil
}
