// Package generate runs the documentation passes described by a [Manifest].
//
// Three passes exist:
//
//   - [PassMessages] extracts the annotated enum and writes the message
//     list page.
//   - [PassConfiguration] extracts the annotated Lua configuration script
//     and writes up to five pages (overview, general, node types, layouts,
//     modes).
//   - [PassFunctions] extracts documented functions and writes the function
//     reference page.
//
// Passes are independent and render concurrently. A [Runner] writes pages
// only after every requested pass rendered successfully, then runs the
// manifest's formatter command once (prettier for the built-in layout).
// The formatter's exit status is logged, never returned.
//
// # Manifest
//
// A manifest is a YAML file. Paths are relative to root, which is itself
// relative to the manifest's directory:
//
//	root: ..
//	messages:
//	  source: src/msg/in_/external.rs
//	  output: docs/en/src/messages.md
//	  enum: ExternalMsg
//	configuration:
//	  source: src/init.lua
//	  namespace: xplr.
//	  outputs:
//	    overview: docs/en/src/configuration.md
//	    general: docs/en/src/general-config.md
//	functions:
//	  source: src/lua/util.rs
//	  output: docs/en/src/xplr.util.md
//	  prefix: xplr.util.
//	formatter: [prettier, --write, docs/en/src]
//
// [Schema] returns the manifest's JSON Schema; [DefaultManifest] returns the
// layout used when no manifest is given.
package generate
