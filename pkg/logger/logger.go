package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Logger описывает минимальный интерфейс структурированного логгера,
// достаточный для использования в handler'ах и middleware.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type stdLogger struct{}

// Default возвращает простой логгер на базе стандартного log.Printf.
// В будущем реализацию можно заменить на zap/logrus/zerolog без изменения интерфейса.
func Default() Logger {
	return &stdLogger{}
}

func (l *stdLogger) Info(msg string, fields map[string]any) {
	log.Printf("INFO: %s%s", msg, formatFields(fields))
}

func (l *stdLogger) Error(msg string, fields map[string]any) {
	log.Printf("ERROR: %s%s", msg, formatFields(fields))
}

// formatFields сериализует поля в стабильном порядке ключей, чтобы записи
// лога были воспроизводимы.
func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
