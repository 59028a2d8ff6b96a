package artifactory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AqlDomain selects the primary domain an AQL query searches.
type AqlDomain string

// AQL domains.
const (
	AqlDomainItems          AqlDomain = "items"
	AqlDomainBuilds         AqlDomain = "builds"
	AqlDomainArchiveEntries AqlDomain = "archive.entries"
)

// Aql is a structured query for the search endpoint. BuildQuery compiles
// it into the query-language text the remote engine expects.
//
// Find carries the filter criteria and is passed through verbatim as
// JSON; criteria are emitted in sorted key order so that compilation is
// deterministic. Sort maps a single field to its direction list; a
// mapping with more than one key is rejected at validation rather than
// silently reduced to one. Offset and Limit are omitted when zero.
type Aql struct {
	Domain  AqlDomain                `json:"domain,omitempty"  yaml:"domain,omitempty"`
	Find    map[string]interface{}   `json:"find,omitempty"    yaml:"find,omitempty"`
	Include []string                 `json:"include,omitempty" yaml:"include,omitempty"`
	Sort    map[string][]string      `json:"sort,omitempty"    yaml:"sort,omitempty"`
	Offset  int                      `json:"offset,omitempty"  yaml:"offset,omitempty"`
	Limit   int                      `json:"limit,omitempty"   yaml:"limit,omitempty"`
}

// AqlResult is one row of a query result.
type AqlResult map[string]interface{}

// Validate checks the query before compilation.
func (a *Aql) Validate() error {
	if len(a.Sort) > 1 {
		return ErrMultipleSortKeys
	}

	return validation.ValidateStruct(a,
		validation.Field(&a.Offset, validation.Min(0)),
		validation.Field(&a.Limit, validation.Min(0)),
	)
}

// BuildQuery compiles a query into query-language text. The grammar is
// fixed: find, then include, then sort, then offset, then limit, each
// clause omitted entirely when its input is empty.
func BuildQuery(query *Aql) (string, error) {
	err := query.Validate()
	if err != nil {
		return "", fmt.Errorf("validating query: %w", err)
	}

	domain := query.Domain
	if domain == "" {
		domain = AqlDomainItems
	}

	var builder strings.Builder

	builder.WriteString(string(domain))
	builder.WriteString(".find(")

	if len(query.Find) > 0 {
		fragment, err := encodeQueryJSON(query.Find)
		if err != nil {
			return "", fmt.Errorf("encoding find criteria: %w", err)
		}

		builder.WriteString(fragment)
	}

	builder.WriteString(")")

	if len(query.Include) > 0 {
		builder.WriteString(".include(")

		for i, field := range query.Include {
			if i > 0 {
				builder.WriteString(", ")
			}

			builder.WriteString(strconv.Quote(field))
		}

		builder.WriteString(")")
	}

	if len(query.Sort) > 0 {
		for key, directions := range query.Sort {
			fragment, err := encodeQueryJSON(directions)
			if err != nil {
				return "", fmt.Errorf("encoding sort directions: %w", err)
			}

			builder.WriteString(".sort({")
			builder.WriteString(strconv.Quote(key))
			builder.WriteString(": ")
			builder.WriteString(fragment)
			builder.WriteString("})")
		}
	}

	if query.Offset > 0 {
		builder.WriteString(".offset(")
		builder.WriteString(strconv.Itoa(query.Offset))
		builder.WriteString(")")
	}

	if query.Limit > 0 {
		builder.WriteString(".limit(")
		builder.WriteString(strconv.Itoa(query.Limit))
		builder.WriteString(")")
	}

	return builder.String(), nil
}

// encodeQueryJSON renders a value as the JSON text the query engine
// receives from reference clients: ", " between elements and ": " after
// object keys. encoding/json emits no separator spaces, so objects and
// arrays are walked here and only scalar leaves are delegated to it.
func encodeQueryJSON(value interface{}) (string, error) {
	var builder strings.Builder

	err := writeQueryJSON(&builder, value)
	if err != nil {
		return "", err
	}

	return builder.String(), nil
}

func writeQueryJSON(builder *strings.Builder, value interface{}) error {
	switch typed := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		builder.WriteString("{")

		for i, key := range keys {
			if i > 0 {
				builder.WriteString(", ")
			}

			builder.WriteString(strconv.Quote(key))
			builder.WriteString(": ")

			err := writeQueryJSON(builder, typed[key])
			if err != nil {
				return err
			}
		}

		builder.WriteString("}")

		return nil
	case []interface{}:
		builder.WriteString("[")

		for i, element := range typed {
			if i > 0 {
				builder.WriteString(", ")
			}

			err := writeQueryJSON(builder, element)
			if err != nil {
				return err
			}
		}

		builder.WriteString("]")

		return nil
	case []string:
		builder.WriteString("[")

		for i, element := range typed {
			if i > 0 {
				builder.WriteString(", ")
			}

			builder.WriteString(strconv.Quote(element))
		}

		builder.WriteString("]")

		return nil
	default:
		var buf bytes.Buffer

		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)

		err := encoder.Encode(typed)
		if err != nil {
			return fmt.Errorf("encoding query value: %w", err)
		}

		builder.WriteString(strings.TrimSuffix(buf.String(), "\n"))

		return nil
	}
}
