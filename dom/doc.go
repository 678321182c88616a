/*
Package dom adapts golang.org/x/net/html parse trees to the abstract
selector.Node contract, so the style pipeline's own selector matcher
(package selector) can query real HTML documents without either
package depending on the other.

Status

Early draft—API may change frequently. Please stay patient.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("wxcss.dom")
}

var errNilNode = fmt.Errorf("dom: nil html.Node")
