package trace

import (
	"github.com/Kolefn/swarm-explore/explore"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

// Replay feeds steps into g in order, using the border registration matching
// each step's axis. It stops at the first rejected step; steps before it stay
// applied.
func Replay(g *explore.Grid, steps []Step) error {
	for i, s := range steps {
		p := explore.C(s.X, s.Y)

		var err error
		switch s.Border {
		case AxisX:
			err = g.RegisterBorderPointX(p)
		case AxisY:
			err = g.RegisterBorderPointY(p)
		default:
			err = g.RegisterPoint(p)
		}
		if err != nil {
			return errors.New("replaying trace step failed").
				WithType(errors.Type(err)).
				WithTag("step", i).
				Wrap(err)
		}
	}

	logs.WithTag("grid_id", g.ID()).
		WithTag("steps", len(steps)).
		Debug("trace replayed")
	return nil
}
