package jsxrewrite

import "github.com/jward/jsxrewrite/internal/store"

// Public type aliases for internal store types used in the Report API.
// These are Go type aliases (=) and need no conversion.

type Store = store.Store
type File = store.File
type Discovery = store.Discovery
type ComponentUse = store.ComponentUse
type Run = store.Run

// Discovery kinds.
const (
	KindTag       = store.KindTag
	KindComponent = store.KindComponent
	KindObject    = store.KindObject
)
