package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"regexlab/internal/app/adapters/metrics"
	"regexlab/internal/app/ports"
)

// Общие операции для REST и websocket: вызов валидатора плюс метрики.

func (h *Handlers) setPattern(v ports.ValidatorPort, text string) ports.PatternState {
	st := v.SetPattern(text)
	metrics.PatternCompiles.With(prometheus.Labels{"engine": h.engine, "status": st.Status.String()}).Inc()
	return st
}

func (h *Handlers) applyPreset(v ports.ValidatorPort, name string) (ports.PatternState, error) {
	p, err := v.FindPreset(name)
	if err != nil {
		return v.State(), err
	}

	st := v.ApplyPreset(p.Pattern)
	metrics.PatternCompiles.With(prometheus.Labels{"engine": h.engine, "status": st.Status.String()}).Inc()
	metrics.PresetsApplied.With(prometheus.Labels{"preset": p.Name}).Inc()
	return st, nil
}

func (h *Handlers) addTestString(v ports.ValidatorPort, s string) {
	if s == "" {
		return
	}
	v.AddTestString(s)
	metrics.TestStringOps.With(prometheus.Labels{"op": "add"}).Inc()
}

func (h *Handlers) removeTestString(v ports.ValidatorPort, index int) {
	before := len(v.TestStrings())
	v.RemoveTestString(index)
	if len(v.TestStrings()) < before {
		metrics.TestStringOps.With(prometheus.Labels{"op": "remove"}).Inc()
	}
}
