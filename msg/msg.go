/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package msg is the diagnostic message service shared by all
// components of the library. Messages flow through a single leveled
// logger whose threshold can be changed globally or for the duration
// of a scope.
package msg

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var logger = zap.New(zapcore.NewCore(
	zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
	zapcore.Lock(os.Stderr),
	level,
))

// Logger returns the shared diagnostic logger.
func Logger() *zap.Logger {
	return logger
}

// Level returns the current message threshold.
func Level() zapcore.Level {
	return level.Level()
}

// SetLevel sets the message threshold; messages below it are dropped.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// Scoped raises or lowers the message threshold and returns a function
// restoring the previous one. Intended for deferred use, so suppression
// cannot leak past the end of the calling scope:
//
//	defer msg.Scoped(zapcore.WarnLevel)()
func Scoped(l zapcore.Level) func() {
	prev := level.Level()
	level.SetLevel(l)
	return func() {
		level.SetLevel(prev)
	}
}
