package micro

import "github.com/hajimehoshi/ebiten/v2"

// debugLog reports the last frame's timing and entity stats. Only called when
// RunConfig.Debug is set.
func (r *runner) debugLog() {
	if !debugEnabled() {
		return
	}
	attrs := []any{
		"frame", r.count,
		"update", r.lastFrame,
		"draw", r.lastDraw,
		"fps", ebiten.ActualFPS(),
		"tps", ebiten.ActualTPS(),
	}
	if sg, ok := r.game.(StackGame); ok && sg.Stack != nil {
		if top := sg.Stack.Top(); top != nil && top.Entities != nil {
			st := top.Entities.Stats()
			attrs = append(attrs,
				"sequence", top.Name,
				"entities", top.Entities.Len(),
				"pairs", st.PairsTried,
				"contacts", st.Contacts)
		}
	}
	Logger().Debug("micro: frame", attrs...)
}
