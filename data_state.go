package main

import (
	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
)

// dataState owns the chart state machine. The Interpreter and Bridge both write through state.
type dataState struct {
	state       *chart.State
	interpreter *chart.Interpreter
	bridge      *chart.Bridge
	cache       chart.RenderCache
}

func newDataState(d *dataset.Dataset, opts ...chart.InterpreterOption) dataState {
	st := chart.NewState(d)
	return dataState{
		state:       st,
		interpreter: chart.NewInterpreter(st, opts...),
		bridge:      chart.NewBridge(st),
	}
}

func (d *dataState) renderModel() chart.RenderModel {
	return d.cache.Get(chart.Snapshot(d.state, d.interpreter))
}
