// Package validators contains pure checks that tests apply to API responses.
// None of them fail a test directly; they return a result for the caller to
// assert on.
package validators

import (
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultMaxResponseTimeMS is the latency threshold used when a caller has no
// more specific limit.
const DefaultMaxResponseTimeMS = 1000

// ValidResult is the message returned by ValidateJSONSchema for a document
// that conforms to its schema.
const ValidResult = "Valid"

// Timed is anything that knows how long it took, such as *githubapi.Response.
type Timed interface {
	ElapsedTime() time.Duration
}

// ValidateResponseTime returns true if the elapsed time of r is at most maxMS
// milliseconds.
func ValidateResponseTime(r Timed, maxMS int) bool {
	return r.ElapsedTime() <= time.Duration(maxMS)*time.Millisecond
}

// ValidateJSONSchema checks data against schema. Either argument may be a
// Go value (maps, slices, structs), raw JSON bytes, or a gojsonschema.JSONLoader.
//
// It returns (true, ValidResult) on success. Otherwise it returns false and
// the validator's description of every violation, or of the error that
// prevented validation.
func ValidateJSONSchema(data, schema interface{}) (bool, string) {
	result, err := gojsonschema.Validate(loaderFor(schema), loaderFor(data))
	if err != nil {
		return false, err.Error()
	}
	if result.Valid() {
		return true, ValidResult
	}
	messages := make([]string, len(result.Errors()))
	for i, verr := range result.Errors() {
		messages[i] = verr.String()
	}
	return false, strings.Join(messages, "; ")
}

func loaderFor(value interface{}) gojsonschema.JSONLoader {
	switch v := value.(type) {
	case gojsonschema.JSONLoader:
		return v
	case []byte:
		return gojsonschema.NewBytesLoader(v)
	default:
		return gojsonschema.NewGoLoader(v)
	}
}

// SatisfiesMinimumResults applies the minimum-result expectation of a search
// case. For a positive minimum, the reported total must reach it and at least
// one item must have been returned. For a minimum of zero, either a zero total
// or an empty item list counts as "no results"; the two fields are not
// required to agree.
func SatisfiesMinimumResults(totalCount, itemCount, min int) bool {
	if min > 0 {
		return totalCount >= min && itemCount > 0
	}
	return totalCount == 0 || itemCount == 0
}
