package validator

import (
	"regexlab/internal/app/ports"
	"regexlab/pkg/logger"
	"slices"
	"strconv"
)

const fallbackInvalidMessage = "invalid regular expression"

type Validator struct {
	log     logger.Logger
	regex   ports.RegexPort
	cache   ports.CachePort[bool]
	onError func(err error)

	presets     []ports.Preset
	pattern     string
	state       ports.PatternState
	testStrings []string
}

type Option func(*Validator)

// WithCache кэширует вердикты по паре (текст паттерна, строка).
// Компиляция детерминирована, поэтому текст однозначно задаёт скомпилированный паттерн.
func WithCache(cache ports.CachePort[bool]) Option {
	return func(v *Validator) {
		v.cache = cache
	}
}

func WithPresets(presets []ports.Preset) Option {
	return func(v *Validator) {
		v.presets = slices.Clone(presets)
	}
}

func WithLogger(log logger.Logger) Option {
	return func(v *Validator) {
		v.log = log
	}
}

// WithMatchErrorHook вызывается на каждую ошибку матчинга (таймаут regexp2).
func WithMatchErrorHook(fn func(err error)) Option {
	return func(v *Validator) {
		v.onError = fn
	}
}

func New(regex ports.RegexPort, opts ...Option) *Validator {
	v := &Validator{
		regex:       regex,
		presets:     BuiltinPresets(),
		state:       ports.EmptyState(),
		testStrings: make([]string, 0),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *Validator) SetPattern(text string) ports.PatternState {
	v.pattern = text

	if text == "" {
		v.state = ports.EmptyState()
	} else if m, err := v.regex.Compile(text); err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackInvalidMessage
		}
		v.state = ports.InvalidState(text, msg)
	} else {
		v.state = ports.ValidState(text, m)
	}

	if v.log != nil {
		v.log.Debug("Pattern updated", "engine", v.regex.Name(), "status", v.state.Status.String())
	}
	return v.state
}

func (v *Validator) ApplyPreset(pattern string) ports.PatternState {
	return v.SetPattern(pattern)
}

func (v *Validator) Evaluate(testStrings []string) []ports.Result {
	results := make([]ports.Result, len(testStrings))

	m := v.state.Matcher()
	for i, s := range testStrings {
		results[i] = ports.Result{Text: s, Matched: m != nil && v.match(m, s)}
	}

	return results
}

// verdictKey однозначен: длина паттерна отделяет его от строки.
func verdictKey(pattern, s string) string {
	return strconv.Itoa(len(pattern)) + ":" + pattern + s
}

func (v *Validator) match(m ports.MatcherPort, s string) bool {
	key := verdictKey(v.pattern, s)
	if v.cache != nil {
		if matched, ok := v.cache.Get(key); ok {
			return matched
		}
	}

	matched, err := m.MatchString(s)
	if err != nil {
		if v.log != nil {
			v.log.Warn("Match failed, counted as no match", "engine", v.regex.Name(), "pattern", v.pattern, "error", err.Error())
		}
		if v.onError != nil {
			v.onError(err)
		}
		// ошибку не кэшируем: таймаут зависит от нагрузки
		return false
	}

	if v.cache != nil {
		v.cache.Set(key, matched)
	}
	return matched
}

func (v *Validator) AddTestString(s string) {
	if s == "" {
		return
	}
	v.testStrings = append(v.testStrings, s)
}

func (v *Validator) RemoveTestString(index int) {
	if index < 0 || index >= len(v.testStrings) {
		return
	}
	v.testStrings = slices.Delete(v.testStrings, index, index+1)
}

func (v *Validator) ListPresets() []ports.Preset {
	return slices.Clone(v.presets)
}

func (v *Validator) FindPreset(name string) (ports.Preset, error) {
	return findPreset(v.presets, name)
}

func (v *Validator) Pattern() string {
	return v.pattern
}

func (v *Validator) State() ports.PatternState {
	return v.state
}

func (v *Validator) TestStrings() []string {
	return slices.Clone(v.testStrings)
}

func (v *Validator) Results() []ports.Result {
	return v.Evaluate(v.testStrings)
}

func (v *Validator) Snapshot() ports.Snapshot {
	return ports.Snapshot{
		State:       v.state,
		Results:     v.Results(),
		TestStrings: len(v.testStrings),
	}
}
