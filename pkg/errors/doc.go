// Package errors provides structured error types for programmatic error
// handling across the catalog, similarity index, and HTTP layers.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeNotFound,
//	    "API not found",
//	    map[string]any{
//	        "apiId": id,
//	    },
//	)
//
//	if errors.IsNotFound(err) {
//	    // respond with 404
//	}
package errors
