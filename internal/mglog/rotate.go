/*
 *     Copyright 2023 The modelgate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mglog

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	CoreLogFileName = "core.log"
	GinLogFileName  = "gin.log"
	GormLogFileName = "gorm.log"
)

const (
	defaultRotateMaxSize    = 300
	defaultRotateMaxBackups = 50
	defaultRotateMaxAge     = 7

	encodeTimeFormat = "2006-01-02 15:04:05.000"
)

// Init switches the package loggers from console output to rotated
// files under dir. Console mode keeps the development loggers from init().
func Init(console bool, dir string) error {
	if console {
		return nil
	}

	coreLogger, err := CreateLogger(filepath.Join(dir, CoreLogFileName), false)
	if err != nil {
		return err
	}
	SetCoreLogger(coreLogger.Sugar())

	ginLogger, err := CreateLogger(filepath.Join(dir, GinLogFileName), false)
	if err != nil {
		return err
	}
	SetGinLogger(ginLogger.Sugar())

	gormLogger, err := CreateLogger(filepath.Join(dir, GormLogFileName), false)
	if err != nil {
		return err
	}
	SetGormLogger(gormLogger)

	return nil
}

// CreateLogger builds a zap logger writing to a lumberjack rotated file.
func CreateLogger(filePath string, compress bool) (*zap.Logger, error) {
	rotateConfig := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    defaultRotateMaxSize,
		MaxAge:     defaultRotateMaxAge,
		MaxBackups: defaultRotateMaxBackups,
		LocalTime:  true,
		Compress:   compress,
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	levels = append(levels, level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(encodeTimeFormat)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(rotateConfig),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}
