// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package urltemplate

import (
	"regexp"
)

// Brace resolves brace-delimited templates of the form /users/{id}.
var Brace Strategy = &braceStrategy{memo: newNameMemo()}

var braceToken = regexp.MustCompile(`\{([^/{}]+)\}`)

type braceStrategy struct {
	memo *nameMemo
}

func (s *braceStrategy) ParamNames(template string) []string {
	return s.memo.names(template, func(t string) []string {
		matches := braceToken.FindAllStringSubmatch(t, -1)
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m[1]
		}
		return names
	})
}

func (s *braceStrategy) Resolve(template string, params map[string]any) (string, error) {
	var firstErr error
	resolved := braceToken.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := params[name]
		if !ok {
			if firstErr == nil {
				firstErr = &MissingParamError{Template: template, Name: name}
			}
			return token
		}
		styled, err := styleValue(name, value)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return token
		}
		return styled
	})
	if firstErr != nil {
		return "", firstErr
	}
	return resolved, nil
}
