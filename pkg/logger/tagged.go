package logger

// TaggedLogger добавляет постоянную пару key/value ко всем записям.
type TaggedLogger struct {
	inner Logger
	tag   []any
}

func NewTaggedLogger(inner Logger, key string, value any) *TaggedLogger {
	return &TaggedLogger{
		inner: inner,
		tag:   []any{key, value},
	}
}

func (t *TaggedLogger) with(args []any) []any {
	return append(append(make([]any, 0, len(t.tag)+len(args)), t.tag...), args...)
}

func (t *TaggedLogger) SetLogLevel(levelStr string) {
	t.inner.SetLogLevel(levelStr)
}

func (t *TaggedLogger) GetLogLevel() string {
	return t.inner.GetLogLevel()
}

func (t *TaggedLogger) Trace(msg string, args ...any) {
	t.inner.Trace(msg, t.with(args)...)
}

func (t *TaggedLogger) Debug(msg string, args ...any) {
	t.inner.Debug(msg, t.with(args)...)
}

func (t *TaggedLogger) Info(msg string, args ...any) {
	t.inner.Info(msg, t.with(args)...)
}

func (t *TaggedLogger) Warn(msg string, args ...any) {
	t.inner.Warn(msg, t.with(args)...)
}

func (t *TaggedLogger) Error(msg string, err error, args ...any) {
	t.inner.Error(msg, err, t.with(args)...)
}

func (t *TaggedLogger) Fatal(msg string, err error, args ...any) {
	t.inner.Fatal(msg, err, t.with(args)...)
}
