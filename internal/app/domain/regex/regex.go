package regex

import (
	"errors"
	"fmt"
	"github.com/dlclark/regexp2"
	re2 "github.com/grafana/regexp"
	"regexlab/internal/app/ports"
	"time"
)

const (
	EngineRegexp2 = "regexp2"
	EngineRE2     = "re2"
)

var ErrUnknownEngine = errors.New("unknown regex engine")

// New возвращает движок по имени из конфига. matchTimeout учитывается только regexp2.
func New(name string, matchTimeout time.Duration) (ports.RegexPort, error) {
	switch name {
	case EngineRegexp2, "":
		return &Regexp2{timeout: matchTimeout}, nil
	case EngineRE2:
		return &RE2{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

func Names() []string {
	return []string{EngineRegexp2, EngineRE2}
}

type Regexp2 struct {
	timeout time.Duration
}

func (r *Regexp2) Name() string {
	return EngineRegexp2
}

func (r *Regexp2) Compile(pattern string) (ports.MatcherPort, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	if r.timeout > 0 {
		re.MatchTimeout = r.timeout
	}
	return &regexp2Matcher{re: re}, nil
}

type regexp2Matcher struct {
	re *regexp2.Regexp
}

func (m *regexp2Matcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s)
}

func (m *regexp2Matcher) String() string {
	return m.re.String()
}

type RE2 struct{}

func (r *RE2) Name() string {
	return EngineRE2
}

func (r *RE2) Compile(pattern string) (ports.MatcherPort, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &re2Matcher{re: re}, nil
}

type re2Matcher struct {
	re *re2.Regexp
}

func (m *re2Matcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s), nil
}

func (m *re2Matcher) String() string {
	return m.re.String()
}
