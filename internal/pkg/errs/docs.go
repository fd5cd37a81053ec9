// Package errs holds the typed validation and lookup errors shared by the
// domain, the repositories and the HTTP adapter.
//
// Every type unwraps to a sentinel, so callers classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		// 404
//	}
//
// and read the details with errors.As:
//
//	var invalid *errs.ValueIsInvalidError
//	if errors.As(err, &invalid) {
//		log.Println(invalid.ParamName)
//	}
package errs
