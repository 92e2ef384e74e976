package logger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field aliases zap.Field so callers do not import zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

// UUID renders an id as its canonical string
func UUID(key string, val uuid.UUID) Field {
	return zap.String(key, val.String())
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
