// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package validator

import (
	"github.com/creachadair/jsonlint"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// An Environment names the rule set a schema is written for.
type Environment string

// The supported environments.
const (
	Draft04   Environment = "draft-04"
	Draft06   Environment = "draft-06"
	Draft07   Environment = "draft-07"
	Draft2019 Environment = "draft-2019-09"
	Draft2020 Environment = "draft-2020-12"
	JTD       Environment = "jtd" // JSON Type Definition, RFC 8927

	// DefaultEnvironment is used when no environment is specified.
	DefaultEnvironment = Draft07
)

var envAliases = map[string]Environment{
	"json-schema-draft-04":      Draft04,
	"json-schema-draft-06":      Draft06,
	"json-schema-draft-07":      Draft07,
	"json-schema-draft-2019-09": Draft2019,
	"json-schema-draft-2020-12": Draft2020,
	"json-type-definition":      JTD,
	"rfc8927":                   JTD,
}

// ParseEnvironment returns the environment named by s, which may be a
// canonical name or one of its aliases. An empty string denotes
// DefaultEnvironment.
func ParseEnvironment(s string) (Environment, error) {
	if s == "" {
		return DefaultEnvironment, nil
	}
	if _, ok := engines[Environment(s)]; ok {
		return Environment(s), nil
	}
	if env, ok := envAliases[s]; ok {
		return env, nil
	}
	return "", &jsonlint.ConfigError{
		Option:  "environment",
		Value:   s,
		Message: "unsupported environment for schema validation",
	}
}

// engines maps each environment to the engine that serves it.
var engines = map[Environment]engine{
	Draft04: schemaEngine{
		draft:    jsonschema.Draft4,
		keywords: draft04Keywords,
	},
	Draft06: schemaEngine{
		draft:    jsonschema.Draft6,
		formats:  true,
		keywords: draft06Keywords,
	},
	Draft07: schemaEngine{
		draft:    jsonschema.Draft7,
		formats:  true,
		keywords: draft07Keywords,
	},
	Draft2019: schemaEngine{
		draft:    jsonschema.Draft2019,
		formats:  true,
		keywords: draft2019Keywords,
	},
	Draft2020: schemaEngine{
		draft:    jsonschema.Draft2020,
		formats:  true,
		keywords: draft2020Keywords,
	},
	JTD: jtdEngine{},
}
