package config

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	json "github.com/json-iterator/go"
)

func init() {
	json.RegisterTypeDecoderFunc("time.Duration", decodeDuration)
}

// Load reads a JSON file and overlays it onto the defaults. Fields missing in the file keep
// their default values. Durations are accepted either as strings understood by
// time.ParseDuration or as integer nanoseconds.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse does the same as Load, but takes the JSON document directly.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the server can't work with.
func (c *Config) Validate() error {
	switch {
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("config: net.read_buffer_size must be positive, got %d", c.NET.ReadBufferSize)
	case c.NET.MaxHeaderSize <= 0:
		return fmt.Errorf("config: net.max_header_size must be positive, got %d", c.NET.MaxHeaderSize)
	case c.NET.MaxConnections <= 0:
		return fmt.Errorf("config: net.max_connections must be positive, got %d", c.NET.MaxConnections)
	case c.NET.ReadTimeout <= 0:
		return fmt.Errorf("config: net.read_timeout must be positive, got %s", c.NET.ReadTimeout)
	case c.NET.AcceptLoopInterruptPeriod <= 0:
		return fmt.Errorf(
			"config: net.accept_loop_interrupt_period must be positive, got %s", c.NET.AcceptLoopInterruptPeriod,
		)
	case len(c.Static.DefaultDocument) == 0:
		return fmt.Errorf("config: static.default_document must not be empty")
	}

	return nil
}

func decodeDuration(ptr unsafe.Pointer, iter *json.Iterator) {
	switch iter.WhatIsNext() {
	case json.StringValue:
		d, err := time.ParseDuration(iter.ReadString())
		if err != nil {
			iter.ReportError("decode time.Duration", err.Error())
			return
		}

		*(*time.Duration)(ptr) = d
	case json.NumberValue:
		*(*time.Duration)(ptr) = time.Duration(iter.ReadInt64())
	default:
		iter.ReportError("decode time.Duration", "expected string or number")
		iter.Skip()
	}
}
