// Package confloader provides configuration loading mechanism.
//
// This package implements a layered configuration loader that uses koanf
// as the underlying library. Sources are applied in call order and later
// sources override earlier ones:
//
//  1. Default values (LoadMap)
//  2. Configuration file (LoadFile, YAML)
//  3. Command-line flags (LoadMap)
//  4. Environment snapshot (LoadMap)
//
// The loader never reads the process environment itself. Callers pass an
// explicit snapshot so that tests can drive every layer.
package confloader
