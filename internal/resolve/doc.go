// Package resolve validates a [options.RawOptionSet] and turns it into the
// immutable [Configuration] handed to the execution engine.
//
// Resolution runs in three ordered steps:
//
//  1. Mandatory and exclusion rules: exactly one of --pipeline-path and
//     --ir-path, plus --parallel and --output-path. Any violation stops
//     resolution with a [*MissingMandatoryError].
//  2. Field domain checks. Every field is checked and every failure is
//     collected into a [*ValidationError]; nothing short-circuits.
//  3. Defaulting and coercion, including the strict key=value split of
//     --parameters, which fails with a [*ParameterParseError].
//
// A Configuration is only ever returned fully populated. On failure the
// returned configuration is nil.
//
// Path existence is the only filesystem access. The stat function is
// injectable with [WithStat].
package resolve
