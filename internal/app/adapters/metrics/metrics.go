package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PatternCompiles - результаты SetPattern/ApplyPreset.
	PatternCompiles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regexlab_pattern_compiles_total",
			Help: "Total number of pattern updates by resulting state",
		},
		[]string{"engine", "status"},
	)

	// PresetsApplied - выбор пресетов по имени.
	PresetsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regexlab_presets_applied_total",
			Help: "Total number of preset selections per preset",
		},
		[]string{"preset"},
	)

	// TestStringOps - добавления и удаления тестовых строк.
	TestStringOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regexlab_test_string_ops_total",
			Help: "Total number of test string mutations per operation",
		},
		[]string{"op"},
	)

	// MatchErrors - ошибки матчинга (таймауты).
	MatchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regexlab_match_errors_total",
			Help: "Total number of match attempts that failed, e.g. on timeout",
		},
		[]string{"engine"},
	)

	// VerdictCache - попадания и промахи кэша вердиктов.
	VerdictCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regexlab_verdict_cache_total",
			Help: "Verdict cache lookups by result",
		},
		[]string{"result"},
	)

	// SessionsActive - количество живых сессий.
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "regexlab_sessions_active",
		Help: "Current number of live sessions",
	})

	// EvaluateTime - время оценки всего списка строк.
	EvaluateTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "regexlab_evaluate_milliseconds",
			Help:    "Time to evaluate the test string list of a session",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 16),
		},
	)
)
