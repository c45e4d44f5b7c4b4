package elemental

import (
	"strconv"
	"strings"

	"elemental-arena/internal/core"
)

// Parameters reports the arena state for the HUD and the bench runner.
func (a *Arena) Parameters() core.ParameterSnapshot {
	st := a.last
	gw := a.wind.Global()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Arena",
			Params: []core.Parameter{
				intParam("w", "Width", a.grid.w),
				intParam("h", "Height", a.grid.h),
				int64Param("seed", "Seed", a.rng.Seed()),
				int64Param("tick", "Tick", int64(a.tick)),
				intParam("reclaim_interval", "Reclaim interval", a.cfg.ReclaimInterval),
			},
		},
		{
			Name: "Activity",
			Params: []core.Parameter{
				intParam("non_empty", "Non-empty cells", st.NonEmpty),
				intParam("ignitions", "Ignitions", st.Ignitions),
				intParam("steam", "Steam generated", st.SteamGenerated()),
				intParam("explosions", "Explosions", st.Explosions),
				intParam("displaced", "Wind displaced", st.Displaced),
				intParam("pending_events", "Pending events", len(a.events)),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				intParam("wind_dx", "Wind dx", int(gw.DX)),
				intParam("wind_dy", "Wind dy", int(gw.DY)),
				intParam("wind_strength", "Wind strength", int(gw.Strength)),
			},
		},
		{
			Name: "Snapshots",
			Params: []core.Parameter{
				intParam("snapshots", "Stored", a.snaps.Len()),
				{Key: "snapshot_labels", Label: "Labels", Type: core.ParamTypeText, Value: strings.Join(a.snaps.Labels(), ",")},
			},
		},
	}}
}

// SetIntParameter adjusts the reclaim interval or the global wind vector.
func (a *Arena) SetIntParameter(key string, value int) bool {
	gw := a.wind.Global()
	switch key {
	case "reclaim_interval":
		if value <= 0 {
			return false
		}
		a.cfg.ReclaimInterval = value
	case "wind_dx":
		gw.DX = int8(max(-1, min(1, value)))
		a.wind.SetGlobal(gw)
	case "wind_dy":
		gw.DY = int8(max(-1, min(1, value)))
		a.wind.SetGlobal(gw)
	case "wind_strength":
		gw.Strength = clampInt(value)
		a.wind.SetGlobal(gw)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
