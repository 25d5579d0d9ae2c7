// File: strata/doc.go

// Package strata loads layered configuration from declarative files and
// exposes the merged result as a read-only, dot-addressable tree.
//
// A document declares its ancestors through a reserved top-level "extends"
// key holding a sequence of file paths. Each ancestor is resolved
// recursively (relative paths resolve against the declaring file's
// directory) and the trees deep-merge in order: earlier extends entries
// first, later entries over them, the document's own keys over all
// ancestors. Nested mappings merge key by key; sequences and scalars are
// replaced wholesale by the override.
//
// Features:
//   - Transitive extends resolution with cycle and missing-file detection
//   - Deterministic deep merge with last-writer-wins override semantics
//   - YAML, TOML and JSON documents with automatic format detection
//   - Immutable dotted-path access with typed accessors
//   - Struct decoding via mapstructure with duration/time hooks
//   - Config file discovery (env var, working dir, project root, parents)
//   - Builder pattern for easy initialization
//   - Optional process-wide handle with atomic reload
//
// Quick Start:
//
//	// base.yaml:
//	//   app:
//	//     name: Base
//	//     debug: false
//	//
//	// config.yaml:
//	//   extends: ["base.yaml"]
//	//   app:
//	//     name: MyApp
//	//     port: 8080
//
//	cfg, err := strata.Load("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := cfg.String("app.name")  // "MyApp"
//	port, _ := cfg.Int64("app.port")   // 8080
//	debug, _ := cfg.Bool("app.debug")  // false, inherited from base.yaml
//
// Error Handling:
// Any resolution failure (unparseable document, missing file, cyclic
// extends chain, malformed extends value) aborts the whole load; no
// partial configuration is ever returned. Lookup failures surface as
// *KeyNotFoundError and *TypeMismatchError carrying the full dotted path.
//
// Thread Safety:
// A loaded Config is immutable and safe for concurrent use without
// locking. The optional global handle is replaced atomically on reload.
package strata
