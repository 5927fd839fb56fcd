// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package urltemplate

import (
	"regexp"
)

// Colon resolves colon-prefixed templates of the form /users/:id.
//
// A token must start with a letter or underscore, so port numbers in
// absolute URLs (for example :8080) are never treated as parameters.
var Colon Strategy = &colonStrategy{memo: newNameMemo()}

var colonToken = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

type colonStrategy struct {
	memo *nameMemo
}

func (s *colonStrategy) ParamNames(template string) []string {
	return s.memo.names(template, func(t string) []string {
		matches := colonToken.FindAllStringSubmatch(t, -1)
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m[1]
		}
		return names
	})
}

func (s *colonStrategy) Resolve(template string, params map[string]any) (string, error) {
	var firstErr error
	resolved := colonToken.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1:]
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
