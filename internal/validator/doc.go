// Package validator provides the issue and result types used to report
// engine option validation.
//
// A [Result] accumulates every [Issue] found while checking a set of
// options; nothing short-circuits, so a single run reports all failing
// fields at once. A [Reporter] renders a result as colored text or JSON.
//
//	result := &validator.Result{}
//	if cpus <= 0 {
//		result.AddError("cpus", validator.KindNotPositiveInteger, "cpus value must be positive", raw)
//	}
//	if result.HasErrors() {
//		_ = validator.NewReporter(os.Stderr, validator.FormatText).Report(result)
//	}
package validator
