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

package mgerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure so that callers can distinguish
// "fix your request" from "system is in an unexpected state".
type Code string

const (
	// CodeNotFound means no endpoint, status kind or version matched.
	CodeNotFound Code = "not_found"

	// CodeAmbiguousVersion means a version hint matched none of the
	// active algorithms under the endpoint.
	CodeAmbiguousVersion Code = "ambiguous_version"

	// CodeAmbiguousSelection means more than one active algorithm matched
	// and the caller must disambiguate with an explicit version.
	CodeAmbiguousSelection Code = "ambiguous_selection"

	// CodeInvalidPair means an A/B test was started with a degenerate
	// algorithm pair.
	CodeInvalidPair Code = "invalid_pair"

	// CodeNotRegistered means the algorithm exists durably but has no
	// live instance loaded in this process.
	CodeNotRegistered Code = "not_registered"

	// CodePredictionFailed means the model instance itself returned an error.
	CodePredictionFailed Code = "prediction_failed"

	// CodeAlreadyStopped means the A/B test has already been stopped.
	CodeAlreadyStopped Code = "already_stopped"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func New(code Code, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func Newf(code Code, format string, a ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}

	return false
}
