// Package logger provides the built-in Logger implementations of prunecluster.
package logger

import "github.com/arloliu/prunecluster/types"

// NopLogger discards every message. It is the overlay default.
//
// Example:
//
//	ov, _ := prunecluster.NewOverlay(cfg, src, prunecluster.WithLogger(logger.NewNop()))
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a logger that discards all messages.
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(_ string, _ ...any) {}

func (n *NopLogger) Info(_ string, _ ...any) {}

func (n *NopLogger) Warn(_ string, _ ...any) {}

func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message and does not exit.
func (n *NopLogger) Fatal(_ string, _ ...any) {}
