package ports

type PatternStatus int

const (
	StatusEmpty PatternStatus = iota
	StatusValid
	StatusInvalid
)

func (s PatternStatus) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	}
	return "empty"
}

func (s PatternStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type PatternState struct {
	Status  PatternStatus `json:"status"`
	Pattern string        `json:"pattern"`
	Error   string        `json:"error,omitempty"`

	matcher MatcherPort
}

func EmptyState() PatternState {
	return PatternState{Status: StatusEmpty}
}

func ValidState(pattern string, m MatcherPort) PatternState {
	return PatternState{Status: StatusValid, Pattern: pattern, matcher: m}
}

func InvalidState(pattern, message string) PatternState {
	return PatternState{Status: StatusInvalid, Pattern: pattern, Error: message}
}

func (ps PatternState) IsValid() bool {
	return ps.Status == StatusValid && ps.matcher != nil
}

// Matcher возвращает nil для Empty и Invalid.
func (ps PatternState) Matcher() MatcherPort {
	if ps.Status != StatusValid {
		return nil
	}
	return ps.matcher
}

type Result struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

type Preset struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

type Snapshot struct {
	State       PatternState `json:"state"`
	Results     []Result     `json:"results"`
	TestStrings int          `json:"test_strings"`
}

type ValidatorPort interface {
	SetPattern(text string) PatternState
	ApplyPreset(pattern string) PatternState
	Evaluate(testStrings []string) []Result
	AddTestString(s string)
	RemoveTestString(index int)
	ListPresets() []Preset
	FindPreset(name string) (Preset, error)

	Pattern() string
	State() PatternState
	TestStrings() []string
	Results() []Result
	Snapshot() Snapshot
}
