package main

import (
	"fmt"
	"log"
)

// Logger - логгер с префиксом и уровнями
type Logger struct {
	prefix  string
	verbose bool
}

// NewLogger создает логгер с префиксом; Debug печатается только при verbose
func NewLogger(prefix string, verbose bool) *Logger {
	return &Logger{prefix: "[" + prefix + "]", verbose: verbose}
}

// line добавляет аргументы к сообщению, только если они есть
func line(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf("%s %v", msg, args)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	log.Printf("%s INFO: %s", l.prefix, line(msg, args))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	log.Printf("%s WARN: %s", l.prefix, line(msg, args))
}

func (l *Logger) Error(msg string, err error, args ...interface{}) {
	log.Printf("%s ERROR: %s", l.prefix, line(fmt.Sprintf("%s - %v", msg, err), args))
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	log.Printf("%s DEBUG: %s", l.prefix, line(msg, args))
}
