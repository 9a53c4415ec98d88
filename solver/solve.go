package solver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/stochastic"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// Solve validates cfg, builds its trace logger and runs cfg.Algorithm on p
// from start. Engine errors are returned unchanged.
func Solve[S comparable](cfg *config.Config, p search.Problem[S], start S, x Extras[S]) (search.Result[S], error) {
	if cfg == nil {
		return search.Result[S]{}, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return search.Result[S]{}, err
	}
	logger, err := cfg.Trace.Logger()
	if err != nil {
		return search.Result[S]{}, err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("search started", zap.String("algorithm", string(cfg.Algorithm)))
	res, err := dispatch(cfg, p, start, x, cfg.Options(logger))
	if err != nil {
		logger.Error("search failed", zap.Error(err))
		return res, err
	}
	logger.Info("search finished",
		zap.Bool("found", res.Found),
		zap.Int("path_len", res.Len()),
		zap.Int("expanded", res.Expanded),
	)

	return res, nil
}

func dispatch[S comparable](
	cfg *config.Config,
	p search.Problem[S],
	start S,
	x Extras[S],
	opts []search.Option,
) (search.Result[S], error) {
	// Validate already rejected unparsable modes.
	trav, _ := uninformed.ParseTraversal(cfg.Traversal)
	mode, _ := uninformed.ParseSolutionMode(cfg.Solution)

	switch cfg.Algorithm {
	case config.AlgConfig:
		return uninformed.ConfigSearch(p, start, trav, mode, opts...)
	case config.AlgPlanning:
		if x.Goal == nil {
			return search.Result[S]{}, ErrMissingGoal
		}
		return uninformed.PlanningSearch(p, start, *x.Goal, trav, opts...)
	case config.AlgDFID:
		return uninformed.DFID(p, start, cfg.MaxEpochs, opts...)
	case config.AlgDepthBounded:
		return uninformed.DepthBoundedDFS(p, start, cfg.DepthLimit, opts...)

	case config.AlgBestFirst:
		return heuristic.BestFirstSearch(p, start, opts...)
	case config.AlgHillClimbing:
		return heuristic.HillClimbing(p, start, opts...)
	case config.AlgBeam:
		return heuristic.BeamSearch(p, start, cfg.BeamWidth, cfg.MaxEpochs, opts...)
	case config.AlgTabu:
		return heuristic.TabuSearch(p, start, x.Allowed, cfg.MaxEpochs, cfg.TabuTenure, opts...)
	case config.AlgVNS:
		hoods := x.Neighborhoods
		if len(hoods) == 0 && p.MoveGen != nil {
			hoods = []heuristic.Neighborhood[S]{p.MoveGen}
		}
		return heuristic.VariableNeighborhoodSearch(p, start, hoods, cfg.MaxEpochs, opts...)

	case config.AlgAStar:
		return astar.Search(p, start, opts...)

	case config.AlgRandomWalk:
		return stochastic.RandomWalk(p, start, cfg.MaxEpochs, opts...)
	case config.AlgAnnealing:
		return stochastic.SimulatedAnnealing(p, start, cfg.MaxEpochs, cfg.Schedule(), opts...)
	case config.AlgStochasticHill:
		return stochastic.StochasticHillClimbing(p, start, cfg.MaxEpochs, cfg.HillTemperature, opts...)
	}

	return search.Result[S]{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
}
