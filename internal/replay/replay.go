// Package replay re-runs recorded sessions headlessly. The simulation is
// deterministic given the recorded seed and inputs, so a replay reproduces
// the original game tick for tick.
package replay

import (
	"fmt"

	"github.com/toroarcade/torosnake/internal/config"
	"github.com/toroarcade/torosnake/internal/core"
	"github.com/toroarcade/torosnake/internal/snake"
	"github.com/toroarcade/torosnake/internal/storage"
)

// Result is the outcome of a replayed session.
type Result struct {
	Session  storage.Session
	Snapshot snake.Snapshot
	Screen   *core.Screen // final frame
}

// Run replays the given session from storage. Presentation colors come
// from cfg; everything that affects the simulation comes from the
// recording itself.
func Run(st *storage.Store, cfg config.Config, sessionID int64) (Result, error) {
	sess, err := st.Session(sessionID)
	if err != nil {
		return Result{}, err
	}
	if sess.Ticks == 0 {
		return Result{}, fmt.Errorf("replay: session %d was never finished", sessionID)
	}

	inputs, err := st.Inputs(sessionID)
	if err != nil {
		return Result{}, err
	}

	byTick := make(map[uint64][]core.Action, len(inputs))
	for _, in := range inputs {
		byTick[in.Tick] = append(byTick[in.Tick], in.Action)
	}

	g := snake.New(snake.Options{
		PixelW:      sess.PixelW,
		PixelH:      sess.PixelH,
		EntitySize:  sess.EntitySize,
		SnakeColor:  core.ParseColor(cfg.Colors.Snake),
		FoodColor:   core.ParseColor(cfg.Colors.Food),
		TextColor:   core.ParseColor(cfg.Colors.Text),
		BorderColor: core.ParseColor(cfg.Colors.Border),
	})
	g.Reset(core.RuntimeConfig{
		ScreenW: sess.ScreenW,
		ScreenH: sess.ScreenH,
		FPS:     sess.FPS,
		Seed:    sess.Seed,
	})

	frame := core.NewInputFrame()
	for tick := uint64(1); tick <= sess.Ticks; tick++ {
		frame.Clear()
		for _, a := range byTick[tick] {
			frame.Set(a)
		}
		g.Step(frame)
	}

	screen := core.NewScreen(sess.ScreenW, sess.ScreenH)
	g.Render(screen)

	return Result{
		Session:  sess,
		Snapshot: g.Snapshot(),
		Screen:   screen,
	}, nil
}
