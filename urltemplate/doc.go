// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package urltemplate provides pluggable URL template resolution
strategies for the exchange pipeline (fetcher.Client).

A Strategy substitutes named path parameters into a URL template.
Two template styles are supported out of the box: brace-delimited
tokens as used by OpenAPI path templates,

	/users/{id}/posts/{postId}

and colon-prefixed tokens as used by Express-style routers,

	/users/:id/posts/:postId

Install a strategy on a client with fetcher.WithURLTemplateStrategy.
The default is Brace.
*/
package urltemplate
