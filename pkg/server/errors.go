// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
)

// WriteError writes a structured ErrorResponse with the given status.
// The request ID is taken from the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code hmerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to an HTTP response. Structured errors keep
// their code, message and context; anything else becomes INTERNAL with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *hmerrors.StructuredError
	if stderrors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := extraDetails
	if err != nil {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, hmerrors.ErrCodeInternal, fallbackMessage, true, details)
}

// HTTPStatusFromCode returns the HTTP status for an error code.
// Unknown codes map to 500.
func HTTPStatusFromCode(code hmerrors.ErrorCode) int {
	switch code {
	case hmerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case hmerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case hmerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case hmerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case hmerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case hmerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case hmerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code hmerrors.ErrorCode) bool {
	switch code {
	case hmerrors.ErrCodeTimeout, hmerrors.ErrCodeUnavailable,
		hmerrors.ErrCodeRateLimitExceeded, hmerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries overriding a's, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
