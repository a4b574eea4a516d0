package logger

// Logger is the logging facade used across the service. Implementations live
// in adapter packages (see zap_adapter) so business code never imports a
// concrete logging library.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
