package ports

type MatcherPort interface {
	// MatchString ищет совпадение в любом месте строки.
	MatchString(s string) (bool, error)
	String() string
}

type RegexPort interface {
	Compile(pattern string) (MatcherPort, error)
	Name() string
}
