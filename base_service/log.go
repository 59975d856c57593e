package base_service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var GlobalLogger *zerolog.Logger
var LogFile *os.File
var LogLevel = zerolog.InfoLevel

func formatLevel(i interface{}) string {
	return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
}

// CreateLog logs to stderr and to a daily log file in the working directory.
func CreateLog() {
	if GlobalLogger != nil {
		return
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(LogLevel)
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime, FormatLevel: formatLevel}
	file, err := os.OpenFile(fmt.Sprintf("log-%s.log", time.Now().Format(time.DateOnly)), os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
		log.Warn().Err(err).Msg("Failed to open log file, logging to stderr only")
	} else {
		fileWriter := zerolog.ConsoleWriter{Out: file, TimeFormat: time.DateTime, NoColor: true, FormatLevel: formatLevel}
		log.Logger = zerolog.New(zerolog.MultiLevelWriter(output, fileWriter)).With().Timestamp().Logger()
		LogFile = file
	}
	GlobalLogger = &log.Logger
}

func CloseLog() {
	if LogFile == nil {
		return
	}
	err := LogFile.Close()
	if err != nil {
		fmt.Println("Failed to close log file:", err)
	}
	LogFile = nil
}

func GetLogger(module string) zerolog.Logger {
	if GlobalLogger == nil {
		CreateLog()
	}
	return GlobalLogger.With().Str("module", module).Logger()
}

// WithLogger attaches the global logger to ctx so library code logging via
// zerolog.Ctx writes to the same outputs.
func WithLogger(ctx context.Context) context.Context {
	if GlobalLogger == nil {
		CreateLog()
	}
	return GlobalLogger.WithContext(ctx)
}
