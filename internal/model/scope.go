package model

import "trustrate-srv/pkg/scope"

// Scope is the authenticated caller identity, re-exported so domain
// signatures stay inside the model package.
type Scope = scope.Scope
